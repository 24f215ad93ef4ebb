package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError([]FieldError{
		{Field: "quantity", Message: "Quantity must be greater than zero"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.Equal(t, "Validation failed", err.Message)
	require.Len(t, err.Errors, 1)
	assert.Equal(t, "quantity", err.Errors[0].Field)
	assert.True(t, IsValidationError(err))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Supplier")
	assert.Equal(t, http.StatusNotFound, err.Code)
	assert.Equal(t, "Supplier not found", err.Message)
	assert.False(t, IsValidationError(err))
}

func TestNewStorageError(t *testing.T) {
	err := NewStorageError("create purchase")
	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "Storage operation failed: create purchase", err.Message)
}

func TestGetAppError(t *testing.T) {
	appErr := GetAppError(ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	assert.Equal(t, "Invalid username or password", appErr.Message)

	// Wrapped errors unwrap to the original AppError
	wrapped := fmt.Errorf("login: %w", ErrInvalidCredentials)
	assert.Equal(t, appErr, GetAppError(wrapped))

	// Plain errors fall back to an internal server error
	plain := GetAppError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, plain.Code)
	assert.Equal(t, "boom", plain.Message)
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrNotFound))
	assert.True(t, IsAppError(fmt.Errorf("wrap: %w", ErrConflict)))
	assert.False(t, IsAppError(errors.New("boom")))
}
