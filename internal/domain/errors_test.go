package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("raster", "imaging capability not loaded")

	assert.True(t, IsUnavailable(err))
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Contains(t, err.Error(), "raster")
	assert.Contains(t, err.Error(), "imaging capability not loaded")
}

func TestUnavailableError_NoReason(t *testing.T) {
	err := NewUnavailableError("raster", "")

	assert.Equal(t, `capability "raster" unavailable`, err.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("canvas.size", "must be positive")

	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "canvas.size")
}

func TestIsUnavailable_Wrapped(t *testing.T) {
	err := fmt.Errorf("rendering raster: %w", NewUnavailableError("raster", "disabled"))

	assert.True(t, IsUnavailable(err))
	assert.False(t, IsValidation(err))
}
