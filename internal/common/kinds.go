package common

import "errors"

// Error kinds carried in API error responses so that callers can branch on a
// machine-checkable kind instead of message text.
const (
	KindValidation   = "validation"
	KindConflict     = "conflict"
	KindUnauthorized = "unauthorized"
	KindInternal     = "internal"
)

// KindOf maps an error to its wire kind. Unrecognized errors are reported as
// internal.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrAlreadyExists):
		return KindConflict
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired):
		return KindUnauthorized
	default:
		return KindInternal
	}
}

// ErrorByKind maps a wire kind back to its sentinel error, the inverse of
// KindOf as far as the closed kind set allows.
func ErrorByKind(kind string) error {
	switch kind {
	case KindValidation:
		return ErrValidation
	case KindConflict:
		return ErrAlreadyExists
	case KindUnauthorized:
		return ErrUnauthorized
	default:
		return ErrInternal
	}
}
