package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrEmptyStore is returned when a random pick is requested from an
	// empty table.
	ErrEmptyStore = errors.New("store is empty")

	// Entity-specific "not found" errors

	// ErrVerbNotFound indicates that the requested verb does not exist in the store.
	ErrVerbNotFound = fmt.Errorf("%w: verb", ErrNotFound)

	// ErrConjugationNotFound indicates that the requested conjugation does not exist in the store.
	ErrConjugationNotFound = fmt.Errorf("%w: conjugation", ErrNotFound)

	// ErrSentenceNotFound indicates that the requested sentence does not exist in the store.
	ErrSentenceNotFound = fmt.Errorf("%w: sentence", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
