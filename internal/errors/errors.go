package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies an application error. Every fatal condition in the
// consolidation run maps to exactly one type.
type ErrorType string

const (
	// ErrTypeDataFormat - an expected row/column label is missing from a raw source
	ErrTypeDataFormat ErrorType = "DATA_FORMAT"
	// ErrTypeConfiguration - unknown interpolation method or malformed date window
	ErrTypeConfiguration ErrorType = "CONFIGURATION"
	// ErrTypeMissingVariable - a composite indicator input column is absent from the panel
	ErrTypeMissingVariable ErrorType = "MISSING_VARIABLE"
	// ErrTypeInsufficientHistory - scenario build attempted on fewer than 12 panel rows
	ErrTypeInsufficientHistory ErrorType = "INSUFFICIENT_HISTORY"
	// ErrTypeParsing - a raw source could not be decoded at all
	ErrTypeParsing ErrorType = "PARSING"
	// ErrTypeStorage - file system failure while reading inputs or writing outputs
	ErrTypeStorage ErrorType = "STORAGE"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper functions for common error types

// NewDataFormatError creates an error for a raw source missing an expected label or column
func NewDataFormatError(message string, cause error) *AppError {
	return NewAppError(ErrTypeDataFormat, message, cause)
}

// NewConfigurationError creates a configuration-related error
func NewConfigurationError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfiguration, message, cause)
}

// NewMissingVariableError creates an error for a composite computed over an absent column
func NewMissingVariableError(variable string) *AppError {
	return NewAppError(ErrTypeMissingVariable,
		fmt.Sprintf("required variable %q is not present in the panel", variable), nil).
		WithContext("variable", variable)
}

// NewInsufficientHistoryError creates an error for a scenario build with too little history
func NewInsufficientHistoryError(rows, required int) *AppError {
	return NewAppError(ErrTypeInsufficientHistory,
		fmt.Sprintf("panel has %d rows, scenario derivation requires at least %d", rows, required), nil).
		WithContext("rows", rows).
		WithContext("required", required)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}
