// Package errors provides custom error types for the job board API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Company errors.
var (
	ErrCompanyNotFound = &AppError{Code: "COMPANY_NOT_FOUND", Message: "Company not found", StatusCode: http.StatusNotFound}
)

// Advertisement errors.
var (
	ErrAdvertisementNotFound = &AppError{Code: "ADVERTISEMENT_NOT_FOUND", Message: "Advertisement not found", StatusCode: http.StatusNotFound}
)

// Application errors.
var (
	ErrApplicationNotFound  = &AppError{Code: "APPLICATION_NOT_FOUND", Message: "Application not found", StatusCode: http.StatusNotFound}
	ErrDuplicateApplication = &AppError{Code: "DUPLICATE_APPLICATION", Message: "You have already applied to this position", StatusCode: http.StatusConflict}
	ErrCVRequired           = &AppError{Code: "CV_REQUIRED", Message: "A CV is required to apply", StatusCode: http.StatusBadRequest}
)

// Application log errors.
var (
	ErrApplicationLogNotFound = &AppError{Code: "APPLICATION_LOG_NOT_FOUND", Message: "Application log not found", StatusCode: http.StatusNotFound}
	ErrCoverLetterTooLong     = &AppError{Code: "COVER_LETTER_TOO_LONG", Message: "cover_letter exceeds 3000 characters", StatusCode: http.StatusBadRequest}
)
