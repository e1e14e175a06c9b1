package errors

import (
	"net/http"

	"hashsvc/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Codes shared by every server-side hashing failure. Computation and
// malformed-artifact failures are indistinguishable to the client.
const (
	CodeInternalError  = "INTERNAL_ERROR"
	MessageInternalErr = "Internal server error, please try again later"
)

// Causes reported by the hash engine and the worker pool.
var (
	ErrCostOutOfRange      = errors.New("cost out of range for algorithm")
	ErrPlainTextTooLong    = errors.New("plaintext exceeds algorithm limit")
	ErrUnsupportedArtifact = errors.New("artifact prefix not recognised")
	ErrArtifactMalformed   = errors.New("artifact is not well-formed")
	ErrPoolUnavailable     = errors.New("worker pool unavailable")
)

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrServiceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
		"Service is busy, please retry later",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternalError,
		MessageInternalErr,
		"",
	)
)

// HashComputationError reports a failed compute: cost out of range,
// plaintext over the primitive's limit, or a primitive failure.
type HashComputationError struct {
	err error
}

// NewHashComputationError wraps the cause of a failed compute.
func NewHashComputationError(err error) *HashComputationError {
	return &HashComputationError{err: err}
}

func (e *HashComputationError) Error() string {
	return "hash computation failed: " + e.err.Error()
}

func (e *HashComputationError) Unwrap() error { return e.err }

func (e *HashComputationError) HTTPCode() int { return http.StatusInternalServerError }

func (e *HashComputationError) ErrorCode() string { return CodeInternalError }

func (e *HashComputationError) Message() string { return MessageInternalErr }

func (e *HashComputationError) Details() string { return "" }

// ArtifactMalformedError reports an artifact that does not parse for any
// recognised algorithm.
type ArtifactMalformedError struct {
	err error
}

// NewArtifactMalformedError wraps the structural problem found in an artifact.
func NewArtifactMalformedError(err error) *ArtifactMalformedError {
	return &ArtifactMalformedError{err: err}
}

func (e *ArtifactMalformedError) Error() string {
	return "malformed hash artifact: " + e.err.Error()
}

func (e *ArtifactMalformedError) Unwrap() error { return e.err }

func (e *ArtifactMalformedError) HTTPCode() int { return http.StatusInternalServerError }

func (e *ArtifactMalformedError) ErrorCode() string { return CodeInternalError }

func (e *ArtifactMalformedError) Message() string { return MessageInternalErr }

func (e *ArtifactMalformedError) Details() string { return "" }
