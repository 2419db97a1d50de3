package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMatchesSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NotFound("recipe", 7), ErrNotFound},
		{"validation", ValidationFailed("price", "too many digits"), ErrValidation},
		{"conflict", Conflict("email", "taken"), ErrConflict},
		{"credentials", InvalidCredentials(), ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))

			var appErr *AppError
			assert.True(t, errors.As(wrapped, &appErr))
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "recipe not found with id 7", NotFound("recipe", 7).Error())
}

func TestValidationFailedKeepsField(t *testing.T) {
	err := ValidationFailed("price", "too many digits")
	assert.Equal(t, "price", err.Field)
	assert.Equal(t, "too many digits", err.Error())
}
