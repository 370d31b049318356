package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound reports that a referenced record does not exist. Handlers map
// it to 404.
var ErrNotFound = errors.New("record not found")

// ValidationError reports malformed or missing input. It is always raised
// before any store access, so invalid requests never leave partial state.
// Handlers map it to 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// storeErr translates GORM's not-found into the service taxonomy; anything
// else stays as an opaque store failure for the handler to log and 500.
func storeErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
