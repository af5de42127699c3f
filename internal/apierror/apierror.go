// Package apierror provides the error taxonomy for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// APIError is the canonical error carried from services up to the HTTP layer.
// Status decides the response code; Message is safe to show to clients.
type APIError struct {
	Status  int               `json:"-"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string { return e.Message }

func New(msg string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: msg}
}

// Validation wraps field-level input errors (422).
func Validation(fields map[string]string) *APIError {
	return &APIError{Status: http.StatusUnprocessableEntity, Message: "Error de validacion", Fields: fields}
}

// Authentication covers bad credentials and invalid/revoked tokens (401).
func Authentication(msg string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: msg}
}

// Authorization covers inactive accounts and insufficient access (403).
func Authorization(msg string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: msg}
}

// Conflict surfaces unique-constraint violations distinctly (409) so that
// callers racing on code generation can detect and retry.
func Conflict(msg string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: msg}
}

// FromDB translates common persistence errors into API errors.
// Requires gorm.Config{TranslateError: true} so duplicate keys surface as
// gorm.ErrDuplicatedKey regardless of driver.
func FromDB(err error, notFoundMsg, conflictMsg string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict(conflictMsg)
	default:
		return err
	}
}

// IsConflict reports whether err is a 409 (duplicate código under race).
func IsConflict(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusConflict
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
