package errors

import "fmt"

// Error codes
const (
	CodeConfig     = "CONFIG_ERROR"
	CodeProvider   = "PROVIDER_ERROR"
	CodeValidation = "VALIDATION_ERROR"
)

type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// ConfigError signals a missing or unusable credential. It surfaces when the
// corresponding backend call is attempted, not at startup.
type ConfigError struct {
	*AppError
	Variable string
}

func NewConfigError(message, variable string) *ConfigError {
	return &ConfigError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeConfig,
			StatusCode: 500,
			Context: map[string]any{
				"variable": variable,
			},
		},
		Variable: variable,
	}
}

// ProviderError signals a failed call to the search or text-generation
// backend. It aborts the whole generation request; no retry, no fallback to
// the other provider.
type ProviderError struct {
	*AppError
	Provider  string
	Operation string
}

func NewProviderError(message, provider, operation string, cause error) *ProviderError {
	return &ProviderError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeProvider,
			StatusCode: 502,
			Context: map[string]any{
				"provider":  provider,
				"operation": operation,
			},
			Cause: cause,
		},
		Provider:  provider,
		Operation: operation,
	}
}

type ValidationError struct {
	*AppError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}
