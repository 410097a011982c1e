package application

import (
	"crypto/subtle"

	"livefeedback/internal/domain"
)

// DefaultConfirmation is the literal token destructive operations expect.
const DefaultConfirmation = "YES"

// Authorizer gates privileged operations behind one process-wide secret.
type Authorizer struct {
	secret       []byte
	confirmation string
}

// NewAuthorizer creates an Authorizer. An empty confirmation falls back to
// DefaultConfirmation.
func NewAuthorizer(secret, confirmation string) *Authorizer {
	if confirmation == "" {
		confirmation = DefaultConfirmation
	}
	return &Authorizer{secret: []byte(secret), confirmation: confirmation}
}

// Authorize reports whether supplied equals the configured secret. An empty
// configured secret authorizes nothing.
func (a *Authorizer) Authorize(supplied string) bool {
	if len(a.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(a.secret, []byte(supplied)) == 1
}

// Check is Authorize as an error.
func (a *Authorizer) Check(supplied string) error {
	if !a.Authorize(supplied) {
		return domain.ErrUnauthorized
	}
	return nil
}

// Confirm checks the secret, then the literal confirmation token.
func (a *Authorizer) Confirm(supplied, token string) error {
	if err := a.Check(supplied); err != nil {
		return err
	}
	if token != a.confirmation {
		return domain.ErrNotConfirmed
	}
	return nil
}
