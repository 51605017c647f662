package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreservesKind(t *testing.T) {
	err := New(ErrInsufficientStock, "stock cannot go negative")
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, "stock cannot go negative: insufficient stock", err.Error())
}

func TestNewfFormats(t *testing.T) {
	err := Newf(ErrNotFound, "product %s does not exist", "abc")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "product abc does not exist")
}

func TestKindsAreDistinct(t *testing.T) {
	kinds := []error{
		ErrStorageUnavailable, ErrStorage, ErrInsufficientStock,
		ErrDuplicateKey, ErrNotFound, ErrValidation, ErrNoFieldsToUpdate,
	}
	for i, a := range kinds {
		for j, b := range kinds {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}

func TestWrappedThroughLayers(t *testing.T) {
	inner := New(ErrDuplicateKey, "UNIQUE constraint failed: categories.name")
	outer := fmt.Errorf("add category: %w", inner)
	assert.True(t, errors.Is(outer, ErrDuplicateKey))
}
