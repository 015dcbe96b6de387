package errs

import (
	"errors"
)

var (
	ErrNotFound                 = errors.New("not found")
	ErrValidation               = errors.New("validation failed")
	ErrInsufficientAvailability = errors.New("insufficient available quantity")
	ErrAlreadyReturned          = errors.New("borrow record already returned")
	ErrConflict                 = errors.New("conflict")
)
