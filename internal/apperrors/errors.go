package apperrors

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// NotFoundError is returned when a record with the requested id does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NewNotFound creates a NotFoundError for the given resource name.
func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// ValidationError is returned when input is missing, malformed, or violates
// an enum or range constraint. Fields lists the offending field names.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError with the offending fields.
func NewValidation(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// ConflictError is returned when a unique key is already taken.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict creates a ConflictError.
func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// AuthError is returned for missing/invalid credentials (401) or, with
// Forbidden set, for an authenticated caller lacking the required role (403).
type AuthError struct {
	Message   string
	Forbidden bool
}

func (e *AuthError) Error() string {
	return e.Message
}

// NewAuth creates a 401 AuthError.
func NewAuth(message string) *AuthError {
	return &AuthError{Message: message}
}

// NewForbidden creates a 403 AuthError.
func NewForbidden(message string) *AuthError {
	return &AuthError{Message: message, Forbidden: true}
}

// ErrInvalidCredentials is returned for both unknown email and wrong password,
// so a failed login never reveals which check failed.
var ErrInvalidCredentials = NewAuth("Invalid credentials")

// ErrorResponse is the JSON body every error returns to clients.
type ErrorResponse struct {
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
	Fields  []string `json:"fields,omitempty"`
	Detail  string   `json:"detail,omitempty"`
}

// MapToHTTP maps a domain error to an HTTP status and response body. It is
// the single place status codes are decided.
//
// Unrecognized errors become a 500 whose body echoes the underlying error
// text. A hardened deployment would log the detail instead of returning it.
func MapToHTTP(err error) (int, ErrorResponse) {
	var (
		notFound   *NotFoundError
		validation *ValidationError
		conflict   *ConflictError
		authErr    *AuthError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{Message: notFound.Error(), Code: "NOT_FOUND"}
	case errors.As(err, &validation):
		return http.StatusBadRequest, ErrorResponse{Message: validation.Message, Code: "VALIDATION_FAILED", Fields: validation.Fields}
	case errors.As(err, &conflict):
		// Duplicate-key failures return 400, not 409. Clients depend on it.
		return http.StatusBadRequest, ErrorResponse{Message: conflict.Message, Code: "CONFLICT"}
	case errors.As(err, &authErr):
		if authErr.Forbidden {
			return http.StatusForbidden, ErrorResponse{Message: authErr.Message, Code: "FORBIDDEN"}
		}
		return http.StatusUnauthorized, ErrorResponse{Message: authErr.Message, Code: "UNAUTHORIZED"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Message: "Server error", Code: "INTERNAL_ERROR", Detail: err.Error()}
	}
}

// FromValidator converts a validator.v10 error into a ValidationError listing
// the failed fields.
func FromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewValidation("invalid request body")
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return NewValidation("validation failed", fields...)
}
