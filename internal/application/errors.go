package application

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by application services. Handlers translate these
// into HTTP statuses; anything else is reported as an internal error.
var (
	ErrValidation         = errors.New("invalid input")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrExpired            = errors.New("listing expired")
)

// validationf wraps ErrValidation with a caller-facing message.
func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
