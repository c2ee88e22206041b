// Package common defines shared constants and sentinel errors used across
// client and server layers of authgate. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation and conflict errors (client's fault).
	ErrValidation    = errors.New("validation error")
	ErrAlreadyExists = errors.New("email already registered")

	// Authentication errors. ErrUnauthorized is deliberately generic: login
	// failures never reveal whether the email exists.
	ErrUnauthorized = errors.New("invalid credentials")

	// Token lifecycle errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Service-level errors (generic/internal flow control).
	ErrInternal    = errors.New("internal error")
	ErrUnavailable = errors.New("server unavailable")
)
