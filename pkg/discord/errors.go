package discord

import "livefeedback/internal/domain"

// DomainErrorKey maps a domain error code to the i18n key of its
// user-facing message.
func DomainErrorKey(code string) string {
	switch code {
	case "empty_code":
		return "code_empty"
	case "unknown_code":
		return "register_unknown_code"
	case "empty_message":
		return "broadcast_empty_message"
	case "unknown_layout":
		return "export_unknown_layout"
	case "unauthorized":
		return "admin_unauthorized"
	case "not_confirmed":
		return "admin_not_confirmed"
	case "code_not_found":
		return "code_not_found"
	default:
		return "error_generic"
	}
}

// ErrorKey is a convenience helper that extracts the domain error code
// and immediately resolves it to a message key.
func ErrorKey(err error) string {
	if err == nil {
		return ""
	}
	return DomainErrorKey(domain.Code(err))
}
