// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Validation errors (100-199): Invalid parameters, missing data, type mismatches
//   - Data integrity errors (200-299): Empty, non-monotonic or malformed price series
//   - Indicator errors (300-399): Technical indicator calculation and lookup errors
//   - Strategy errors (400-499): Strategy lookup, configuration, and runtime errors
//   - Execution errors (500-599): Order submission failures at the execution endpoint
//   - Backtest errors (600-699): Backtest input and state errors
//   - Market data errors (700-799): Market data fetching, parsing and storage errors
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidParameter, "invalid parameter value")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeDataUnavailable, "no data for symbol %s", symbol)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeMarketDataFetchFailed, "failed to fetch history", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeDataUnavailable) { ... }
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from an error if it's an *Error type.
// Returns ErrCodeUnknown if the error is not an *Error type.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// DataIntegrityError represents a structural violation of the price series
// invariants: empty input, non-monotonic or duplicate timestamps, or a
// non-positive close. It always carries the offending index and timestamp
// for diagnosis.
type DataIntegrityError struct {
	Code      ErrorCode // One of the 200-range data integrity codes
	Index     int       // Index of the offending observation
	Timestamp time.Time // Timestamp of the offending observation (zero for empty input)
	Message   string    // Human-readable message
}

// NewDataIntegrityError creates a new DataIntegrityError.
func NewDataIntegrityError(code ErrorCode, index int, timestamp time.Time, message string) *DataIntegrityError {
	return &DataIntegrityError{
		Code:      code,
		Index:     index,
		Timestamp: timestamp,
		Message:   message,
	}
}

// NewDataIntegrityErrorf creates a new DataIntegrityError with a formatted message.
func NewDataIntegrityErrorf(code ErrorCode, index int, timestamp time.Time, format string, args ...any) *DataIntegrityError {
	return &DataIntegrityError{
		Code:      code,
		Index:     index,
		Timestamp: timestamp,
		Message:   fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("[%d] %s (index=%d, timestamp=%s)", e.Code, e.Message, e.Index, e.Timestamp.Format(time.RFC3339))
}

// IsDataIntegrityError checks if an error is a DataIntegrityError.
// It uses errors.As to check the error chain.
func IsDataIntegrityError(err error) bool {
	var integrityErr *DataIntegrityError

	return errors.As(err, &integrityErr)
}

// InsufficientHistoryError represents an error when a price series is too
// short for a requested computation (e.g. a strategy requiring a minimum
// indicator warmup). This is a configuration-time failure; routine undefined
// indicator values are represented as NaN, never as this error.
type InsufficientHistoryError struct {
	Required int    // Minimum data points required
	Actual   int    // Actual data points available
	Symbol   string // Optional: symbol context
	Message  string // Human-readable message
}

// NewInsufficientHistoryError creates a new InsufficientHistoryError.
func NewInsufficientHistoryError(required, actual int, symbol, message string) *InsufficientHistoryError {
	return &InsufficientHistoryError{
		Required: required,
		Actual:   actual,
		Symbol:   symbol,
		Message:  message,
	}
}

// NewInsufficientHistoryErrorf creates a new InsufficientHistoryError with a formatted message.
func NewInsufficientHistoryErrorf(required, actual int, symbol, format string, args ...any) *InsufficientHistoryError {
	return &InsufficientHistoryError{
		Required: required,
		Actual:   actual,
		Symbol:   symbol,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *InsufficientHistoryError) Error() string {
	return e.Message
}

// IsInsufficientHistoryError checks if an error is an InsufficientHistoryError.
// It uses errors.As to check the error chain.
func IsInsufficientHistoryError(err error) bool {
	var insufficientErr *InsufficientHistoryError

	return errors.As(err, &insufficientErr)
}
