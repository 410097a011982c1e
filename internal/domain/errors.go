package domain

import "errors"

// Domain errors.
var (
	ErrEmptyCode          = errors.New("speech code is required")
	ErrUnknownCode        = errors.New("speech code is not allowed")
	ErrEmptyMessage       = errors.New("broadcast message is empty")
	ErrUnknownLayout      = errors.New("unknown export layout")
	ErrUnauthorized       = errors.New("secret mismatch")
	ErrNotConfirmed       = errors.New("operation not confirmed")
	ErrCodeNotFound       = errors.New("speech code not found")
	ErrDanglingReference  = errors.New("response references a missing user")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Kind groups domain errors the way callers react to them.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindAuthorization      Kind = "authorization"
	KindNotFound           Kind = "not_found"
	KindDanglingReference  Kind = "dangling_reference"
	KindStorageUnavailable Kind = "storage_unavailable"
	KindInternal           Kind = "internal"
)

var kinds = []struct {
	err  error
	code string
	kind Kind
}{
	{ErrEmptyCode, "empty_code", KindValidation},
	{ErrUnknownCode, "unknown_code", KindValidation},
	{ErrEmptyMessage, "empty_message", KindValidation},
	{ErrUnknownLayout, "unknown_layout", KindValidation},
	{ErrUnauthorized, "unauthorized", KindAuthorization},
	{ErrNotConfirmed, "not_confirmed", KindAuthorization},
	{ErrCodeNotFound, "code_not_found", KindNotFound},
	{ErrDanglingReference, "dangling_reference", KindDanglingReference},
	{ErrStorageUnavailable, "storage_unavailable", KindStorageUnavailable},
}

// Code returns the stable short code of a domain error, or "" when err does
// not wrap one.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.code
		}
	}
	return ""
}

// KindOf classifies err. Anything that is not a domain error is internal.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
