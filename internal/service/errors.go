package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers missing or malformed input, bad time ordering,
	// and invalid status values.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden covers role and ownership violations.
	ErrForbidden = errors.New("access denied")

	// ErrInvalidCredentials is returned for any signin failure; the cause
	// (unknown user vs wrong password) is deliberately not distinguished.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers malformed, expired, and revoked bearer tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
