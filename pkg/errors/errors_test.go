package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "title is required")
			},
			expected: "VALIDATION_ERROR: title is required",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return Wrap(DatabaseError, "failed to list todos", cause)
			},
			expected: "DATABASE_ERROR: failed to list todos (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("timeout")
	err := NewExternalAPIError("forecast request failed", cause)
	assert.Equal(t, cause, err.Unwrap())

	assert.Nil(t, NewNotFoundError("todo not found").Unwrap())
}

func TestTypeCheckers_WalkWrappedChain(t *testing.T) {
	base := NewNotFoundError("todo not found")
	wrapped := fmt.Errorf("get todo abc: %w", base)

	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.Equal(t, NotFoundError, TypeOf(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ValidationError, "VALIDATION_ERROR"},
		{NotFoundError, "NOT_FOUND_ERROR"},
		{AlreadyExistsError, "ALREADY_EXISTS_ERROR"},
		{PermissionError, "PERMISSION_ERROR"},
		{DatabaseError, "DATABASE_ERROR"},
		{ExternalAPIError, "EXTERNAL_API_ERROR"},
		{CacheError, "CACHE_ERROR"},
		{ConfigurationError, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("boom")

	assert.True(t, IsValidationError(NewValidationError("v")))
	assert.True(t, IsPermissionError(NewPermissionError("denied")))
	assert.True(t, IsDatabaseError(NewDatabaseError("db", cause)))
	assert.True(t, IsExternalAPIError(NewExternalAPIError("api", cause)))
	assert.True(t, IsConfigurationError(NewConfigurationError("cfg", nil)))
	assert.Equal(t, CacheError, NewCacheError("cache", cause).Type)
	assert.Equal(t, AlreadyExistsError, NewAlreadyExistsError("dup").Type)
}
