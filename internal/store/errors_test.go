package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrVerbNotFound))
	assert.True(t, IsNotFoundError(ErrConjugationNotFound))
	assert.True(t, IsNotFoundError(ErrSentenceNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup failed: %w", ErrSentenceNotFound)))

	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(ErrEmptyStore))
	assert.False(t, IsNotFoundError(errors.New("something else")))
}

func TestEntitySpecificErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrVerbNotFound, ErrSentenceNotFound))
	assert.False(t, errors.Is(ErrSentenceNotFound, ErrVerbNotFound))
}
