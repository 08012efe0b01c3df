package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WrappedCodeIsVisible(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("refresh EUR: %w", NewProvider("exchangerate-api", cause))

	assert.True(t, IsProvider(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsLocked(err))
}

func TestAppError_WithDetail(t *testing.T) {
	err := NewValidation("tax rate must not be negative").
		WithDetail("field", "tax").
		WithDetail("value", "-0.1")

	assert.Equal(t, "tax", err.Details["field"])
	assert.Equal(t, "VALIDATION_ERROR: tax rate must not be negative", err.Error())
	assert.True(t, IsValidation(err))
}

func TestAppError_LockedIsNotValidation(t *testing.T) {
	err := NewLocked("funding request", "42")

	assert.True(t, IsLocked(err))
	assert.False(t, IsValidation(err))
}
