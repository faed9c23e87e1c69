package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation            = errors.New("validation error")                // 422
	ErrWineNotFound          = errors.New("wine not found")                  // 404
	ErrInventoryNotFound     = errors.New("inventory item not found")        // 404
	ErrInsufficientInventory = errors.New("not enough bottles in inventory") // 400
)

// ValidationError carries a client-facing detail and unwraps to ErrValidation.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}
