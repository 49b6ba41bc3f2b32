package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewDataFormatError("label All-items not found", nil),
			want: "[DATA_FORMAT] label All-items not found",
		},
		{
			name: "with cause",
			err:  NewStorageError("cannot open source", errors.New("no such file")),
			want: "[STORAGE] cannot open source: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewParsingError("bad cell", cause)

	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("loader failed: %w", err)
	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, ErrTypeParsing, appErr.Type)
}

func TestIsType(t *testing.T) {
	err := NewInsufficientHistoryError(11, 12)
	wrapped := fmt.Errorf("scenario build: %w", err)

	assert.True(t, IsType(wrapped, ErrTypeInsufficientHistory))
	assert.False(t, IsType(wrapped, ErrTypeConfiguration))
	assert.False(t, IsType(errors.New("plain"), ErrTypeConfiguration))
}

func TestNewMissingVariableError(t *testing.T) {
	err := NewMissingVariableError("Unemployment_Rate")

	assert.Equal(t, ErrTypeMissingVariable, err.Type)
	assert.Contains(t, err.Error(), "Unemployment_Rate")
	assert.Equal(t, "Unemployment_Rate", err.Context["variable"])
}

func TestWithContext(t *testing.T) {
	err := NewConfigurationError("unknown interpolation method", nil).
		WithContext("method", "quartic")

	assert.Equal(t, "quartic", err.Context["method"])
}
