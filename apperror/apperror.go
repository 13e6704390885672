// Package apperror defines a centralized system for application-specific errors.
// Every failure in the service layer is expressed as an *AppError carrying one
// of the types below; handlers translate it into an HTTP status and a JSON
// message at the request boundary. Nothing propagates as an uncaught fault.
package apperror

import (
	"errors"
	"net/http"
)

// ErrorType defines the type of application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// ConfigError represents an error related to application configuration.
	ConfigError
	// AuthError represents a missing, malformed, or expired session token.
	AuthError
	// CredentialError represents a failed username/password match at login.
	// The upstream API reports this as 208 Already Reported, which is kept
	// for client compatibility.
	CredentialError
	// NotFoundError represents a resource not found error (unknown ISBN,
	// review slot with no entry).
	NotFoundError
	// ValidationError represents an input validation error.
	ValidationError
	// ConflictError represents a conflict, e.g. a username already taken.
	ConflictError
	// InternalError represents a generic internal server error.
	InternalError
)

// AppError is the custom error type for the application. It wraps an
// optional underlying error so callers can still inspect the chain with
// errors.Is and errors.As.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error satisfies the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ConfigError:
		return http.StatusInternalServerError
	case AuthError:
		return http.StatusUnauthorized
	case CredentialError:
		return http.StatusAlreadyReported
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError:
		return http.StatusBadRequest
	case ConflictError:
		return http.StatusConflict
	case InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError with an arbitrary type.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlyingError,
	}
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, underlyingError error) *AppError {
	return NewAppError(ConfigError, message, underlyingError)
}

// NewAuthError creates a new AuthError.
func NewAuthError(message string, underlyingError error) *AppError {
	return NewAppError(AuthError, message, underlyingError)
}

// NewCredentialError creates a new CredentialError.
func NewCredentialError(message string, underlyingError error) *AppError {
	return NewAppError(CredentialError, message, underlyingError)
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string, underlyingError error) *AppError {
	return NewAppError(ValidationError, message, underlyingError)
}

// NewConflictError creates a new ConflictError.
func NewConflictError(message string, underlyingError error) *AppError {
	return NewAppError(ConflictError, message, underlyingError)
}

// NewInternalError creates a new InternalError.
func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

// ErrorResponse is the JSON payload sent to clients for any failed request.
// The upstream API uses a "message" field for both successes and failures,
// so errors follow the same shape.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ToResponse converts an AppError to an ErrorResponse. Only the user-facing
// Message is exposed, never the underlying error details.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// FromError attempts to convert a generic error to an *AppError.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsAuthError checks if an error is an AuthError.
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsCredentialError checks if an error is a CredentialError.
func IsCredentialError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == CredentialError
}

// IsValidationError checks if an error is a Validation error.
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsConflictError checks if an error is a Conflict error.
func IsConflictError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}
