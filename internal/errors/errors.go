package errors

import (
	"errors"
	"net/http"
)

// Kind classifies a failure into the status family it is answered with.
type Kind int

const (
	// KindStorage covers persistence failures; always answered 500.
	KindStorage Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a guard failure with a client-facing message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

var (
	// ErrCaptchaMissing is returned when the captcha cookie or the submitted code is absent.
	ErrCaptchaMissing = newError(KindValidation, "CAPTCHA_MISSING", "Please enter the captcha code")
	// ErrCaptchaExpired is returned when no live challenge matches the token.
	ErrCaptchaExpired = newError(KindValidation, "CAPTCHA_EXPIRED", "Captcha expired. Please refresh the image.")
	// ErrCaptchaMismatch is returned when the submitted code differs from the stored one.
	ErrCaptchaMismatch = newError(KindValidation, "CAPTCHA_MISMATCH", "Wrong Captcha Code")

	ErrInvalidEmail       = newError(KindValidation, "INVALID_EMAIL", "Invalid email")
	ErrInvalidName        = newError(KindValidation, "INVALID_NAME", "First or last name is too short")
	ErrInvalidPassword    = newError(KindValidation, "INVALID_PASSWORD", "Password is too short")
	ErrInvalidProfileName = newError(KindValidation, "INVALID_NAMES", "Invalid names")
	ErrInvalidBody        = newError(KindValidation, "INVALID_BODY", "Invalid request body")

	// ErrEmailTaken is returned when registering an email that already has a user.
	ErrEmailTaken = newError(KindConflict, "EMAIL_TAKEN", "Email already registered")

	// ErrUnknownEmail is returned by login when no user has the email.
	ErrUnknownEmail = newError(KindAuth, "UNKNOWN_EMAIL", "Invalid email or password")
	// ErrWrongPassword is returned by login when the password digest differs.
	ErrWrongPassword = newError(KindAuth, "WRONG_PASSWORD", "Invalid password")
	// ErrUnauthorized is returned when a protected route is called without a session cookie.
	ErrUnauthorized = newError(KindAuth, "UNAUTHORIZED", "Unauthorized")
	// ErrSessionExpired is returned when the session cookie matches no live session.
	ErrSessionExpired = newError(KindAuth, "SESSION_EXPIRED", "Session expired")
	// ErrOldPasswordIncorrect is returned by a password change with a wrong current password.
	ErrOldPasswordIncorrect = newError(KindAuth, "OLD_PASSWORD_INCORRECT", "Old password is incorrect")
	// ErrWeakNewPassword keeps the historical 401 answer for a too short new password.
	ErrWeakNewPassword = newError(KindAuth, "WEAK_NEW_PASSWORD", "New password is too weak")

	// ErrFileNotFound is returned by the static resolver.
	ErrFileNotFound = newError(KindNotFound, "FILE_NOT_FOUND", "404 - FILE NOT FOUND!")
)

// ErrorResponse represents a standardized JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// Internal reports whether the error is not a classified guard failure,
// i.e. it must be logged and hidden behind a generic 500.
func Internal(err error) bool {
	var e *Error
	return !errors.As(err, &e) || e.Kind == KindStorage
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything that is not a
// classified *Error becomes a 500 carrying fallback, never the internal detail.
func MapErrorToHTTP(err error, fallback string) *HTTPError {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindStorage {
		return NewHTTPError(e.Kind.Status(), e.Message, e.Code)
	}
	return NewHTTPError(http.StatusInternalServerError, fallback, "INTERNAL_ERROR")
}
