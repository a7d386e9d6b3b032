// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned by every Engine method called before
	// Initialize has succeeded.
	ErrNotInitialized = errors.New("listing engine not initialized")

	// ErrInvalidInput is returned when Initialize receives an item without a
	// usable identifier, or a setter receives an unknown enum value.
	ErrInvalidInput = errors.New("invalid listing input")
)

// InvalidInputError identifies the offending item in a collection.
// It unwraps to ErrInvalidInput.
type InvalidInputError struct {
	// Index is the position of the item in the collection, or -1 when the
	// error concerns a query value rather than an item.
	Index int

	// Reason describes what is wrong with the item.
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%v: item %d: %s", ErrInvalidInput, e.Index, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

func invalidValue(format string, args ...any) error {
	return &InvalidInputError{Index: -1, Reason: fmt.Sprintf(format, args...)}
}
