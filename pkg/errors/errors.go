// Package errors provides structured error handling for the application
// Following enterprise patterns for error management and observability
package errors

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// ErrorCode represents an error code
type ErrorCode string

// Common error codes following RESTful API conventions
const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Server errors (5xx)
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Business logic errors
	CodeInvalidUnit    ErrorCode = "INVALID_UNIT"
	CodeUnknownField   ErrorCode = "UNKNOWN_FIELD"
	CodeNoMatch        ErrorCode = "NO_MATCH"
	CodeAmbiguousMatch ErrorCode = "AMBIGUOUS_MATCH"
	CodeDataImport     ErrorCode = "DATA_IMPORT"
	CodeRecipeNotFound ErrorCode = "RECIPE_NOT_FOUND"
	CodeOrderNotFound  ErrorCode = "ORDER_NOT_FOUND"
	CodeOutOfStock     ErrorCode = "OUT_OF_STOCK"
)

// AppError represents an application error with structured information
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Cause      error                  `json:"-"`
	StackTrace string                 `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed, CodeInvalidUnit, CodeUnknownField, CodeDataImport:
		return http.StatusBadRequest
	case CodeNotFound, CodeNoMatch, CodeRecipeNotFound, CodeOrderNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeAmbiguousMatch, CodeOutOfStock:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Details:    details,
		StackTrace: getStackTrace(),
	}
}

// Predefined error constructors for common scenarios

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *AppError {
	return NewAppError(CodeBadRequest, message, "")
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	message := "Resource not found"
	if resource != "" {
		message = fmt.Sprintf("%s not found", strings.Title(resource))
	}
	return NewAppError(CodeNotFound, message, "")
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, cause error) *AppError {
	return NewAppError(
		CodeDatabaseError,
		"Database operation failed",
		fmt.Sprintf("Failed to %s", operation),
	).WithCause(cause)
}

// Business domain specific errors

// NewInvalidUnitError creates an error for an unrecognized measurement unit
func NewInvalidUnitError(unit string) *AppError {
	return NewAppError(
		CodeInvalidUnit,
		"Invalid unit",
		fmt.Sprintf("%q is not a recognized unit", unit),
	).WithMetadata("unit", unit)
}

// NewUnknownFieldError creates an error for a bottle field outside the
// editable enumeration
func NewUnknownFieldError(field string) *AppError {
	return NewAppError(
		CodeUnknownField,
		"Unknown field",
		fmt.Sprintf("%q is not a valid bottle field", field),
	).WithMetadata("field", field)
}

// NewNoMatchError creates an error for a specifier that matched no bottles
// when exactly one was required
func NewNoMatchError(specifier string) *AppError {
	return NewAppError(
		CodeNoMatch,
		"No matching bottle",
		fmt.Sprintf("%s has no entry in the barstock", specifier),
	).WithMetadata("specifier", specifier)
}

// NewAmbiguousMatchError creates an error for a specifier that matched more
// than one bottle when exactly one was required
func NewAmbiguousMatchError(specifier string, count int) *AppError {
	return NewAppError(
		CodeAmbiguousMatch,
		"Ambiguous match",
		fmt.Sprintf("%s has %d entries in the barstock", specifier, count),
	).WithMetadata("specifier", specifier).WithMetadata("count", count)
}

// NewDataImportError creates an error for a malformed barstock row. Import
// callers log these and skip the row rather than aborting the whole load.
func NewDataImportError(row string, cause error) *AppError {
	return NewAppError(
		CodeDataImport,
		"Malformed barstock row",
		row,
	).WithCause(cause)
}

// NewRecipeNotFoundError creates a recipe not found error
func NewRecipeNotFoundError(name string) *AppError {
	return NewAppError(
		CodeRecipeNotFound,
		"Recipe not found",
		fmt.Sprintf("Recipe %q is not in the library", name),
	).WithMetadata("recipe", name)
}

// NewOrderNotFoundError creates an order not found error
func NewOrderNotFoundError(id string) *AppError {
	return NewAppError(
		CodeOrderNotFound,
		"Order not found",
		fmt.Sprintf("Order with ID %s does not exist", id),
	).WithMetadata("order_id", id)
}

// NewOutOfStockError creates an error for ordering a drink that cannot be
// made from the current barstock
func NewOutOfStockError(recipe string) *AppError {
	return NewAppError(
		CodeOutOfStock,
		"Out of stock",
		fmt.Sprintf("Ingredients to make %q are out of stock", recipe),
	).WithMetadata("recipe", recipe)
}

// Utility functions

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}

// getStackTrace captures the current stack trace
func getStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var builder strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "pkg/errors") {
			builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}

	return builder.String()
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails represents the error details in API responses
type ErrorDetails struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// ToErrorResponse converts an AppError to an API error response
func ToErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetails{
			Code:     err.Code,
			Message:  err.Message,
			Details:  err.Details,
			Metadata: err.Metadata,
		},
	}
}
