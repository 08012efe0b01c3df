// Package apperror provides structured error handling for the funding core.
// Every failure raised by a value object or aggregate is an AppError so callers
// can tell bad input apart from lifecycle violations and lookup failures.
package apperror

import (
	"errors"
	"fmt"
)

// Error codes
const (
	// Construction-time validation
	CodeValidation       = "VALIDATION_ERROR"
	CodeCurrencyMismatch = "CURRENCY_MISMATCH"

	// Lifecycle state
	CodeLocked = "REQUEST_LOCKED"

	// Lookups
	CodeUnknownCurrency = "UNKNOWN_CURRENCY"
	CodeMissingRate     = "MISSING_RATE"
	CodeDuplicate       = "DUPLICATE_ENTRY"

	// External collaborators
	CodeProvider = "PROVIDER_ERROR"
	CodeInternal = "INTERNAL_ERROR"
)

// AppError is the standard error type of the module.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field, value, currencies, etc.)
	Details map[string]any `json:"details,omitempty"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewValidation creates a validation error.
func NewValidation(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewCurrencyMismatch is returned when two non-zero amounts in different
// currencies are compared or combined.
func NewCurrencyMismatch(left, right string) *AppError {
	return &AppError{
		Code:    CodeCurrencyMismatch,
		Message: fmt.Sprintf("cannot combine amounts in %s and %s", left, right),
		Details: map[string]any{"left": left, "right": right},
	}
}

// NewLocked creates the lifecycle error raised when a reviewed entity is
// transitioned or mutated without being reopened first.
func NewLocked(entity string, id any) *AppError {
	return &AppError{
		Code:    CodeLocked,
		Message: fmt.Sprintf("%s is locked", entity),
		Details: map[string]any{"entity": entity, "id": id},
	}
}

// NewUnknownCurrency is returned by catalog lookups for codes outside the table.
func NewUnknownCurrency(code string) *AppError {
	return &AppError{
		Code:    CodeUnknownCurrency,
		Message: fmt.Sprintf("unknown currency %q", code),
		Details: map[string]any{"code": code},
	}
}

// NewMissingRate is returned when no exchange rate exists for a currency pair.
func NewMissingRate(from, to string) *AppError {
	return &AppError{
		Code:    CodeMissingRate,
		Message: fmt.Sprintf("no exchange rate from %s to %s", from, to),
		Details: map[string]any{"from": from, "to": to},
	}
}

// NewDuplicate creates a duplicate entry error.
func NewDuplicate(entity, field, value string) *AppError {
	return &AppError{
		Code:    CodeDuplicate,
		Message: fmt.Sprintf("%s with this %s already exists", entity, field),
		Details: map[string]any{"entity": entity, "field": field, "value": value},
	}
}

// NewProvider wraps a failure of an external rate provider.
func NewProvider(provider string, err error) *AppError {
	return &AppError{
		Code:    CodeProvider,
		Message: fmt.Sprintf("%s request failed", provider),
		Details: map[string]any{"provider": provider},
		Err:     err,
	}
}

// NewInternal creates an internal error.
func NewInternal(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "internal error",
		Err:     err,
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// IsValidation checks if error is CodeValidation
func IsValidation(err error) bool { return HasCode(err, CodeValidation) }

// IsLocked checks if error is CodeLocked
func IsLocked(err error) bool { return HasCode(err, CodeLocked) }

// IsCurrencyMismatch checks if error is CodeCurrencyMismatch
func IsCurrencyMismatch(err error) bool { return HasCode(err, CodeCurrencyMismatch) }

// IsUnknownCurrency checks if error is CodeUnknownCurrency
func IsUnknownCurrency(err error) bool { return HasCode(err, CodeUnknownCurrency) }

// IsMissingRate checks if error is CodeMissingRate
func IsMissingRate(err error) bool { return HasCode(err, CodeMissingRate) }

// IsDuplicate checks if error is CodeDuplicate
func IsDuplicate(err error) bool { return HasCode(err, CodeDuplicate) }

// IsProvider checks if error is CodeProvider
func IsProvider(err error) bool { return HasCode(err, CodeProvider) }
