package backend

import (
	"errors"
	"fmt"
	"net/http"

	dErrors "unipick/pkg/domain-errors"
)

// ErrorCategory classifies failed backend calls so callers can pick a
// user-facing message without parsing raw errors.
type ErrorCategory string

const (
	ErrorNotFound   ErrorCategory = "not_found"
	ErrorBadRequest ErrorCategory = "bad_request"
	ErrorServer     ErrorCategory = "server"
	ErrorTransport  ErrorCategory = "transport"
	ErrorBadData    ErrorCategory = "bad_data"
	ErrorInternal   ErrorCategory = "internal"
)

// APIError is returned for every non-2xx response or transport failure.
// The client never retries; the caller decides what the user sees.
type APIError struct {
	Category   ErrorCategory
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("backend %s [%s]", e.Operation, e.Category)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status %d", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func newAPIError(category ErrorCategory, op string, status int, msg string, err error) *APIError {
	return &APIError{Category: category, Operation: op, StatusCode: status, Message: msg, Err: err}
}

// categoryForStatus maps a non-2xx status to a category.
func categoryForStatus(status int) ErrorCategory {
	switch {
	case status == http.StatusNotFound:
		return ErrorNotFound
	case status >= 400 && status < 500:
		return ErrorBadRequest
	default:
		return ErrorServer
	}
}

// CategoryOf extracts the category from an error chain.
func CategoryOf(err error) ErrorCategory {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Category
	}
	return ErrorInternal
}

// IsNotFound reports whether the backend answered 404.
func IsNotFound(err error) bool {
	return CategoryOf(err) == ErrorNotFound
}

// DomainError maps a failed call onto a domain error; what names the
// resource in not-found messages.
func DomainError(err error, what string) error {
	switch CategoryOf(err) {
	case ErrorNotFound:
		return dErrors.Wrap(err, dErrors.CodeNotFound, what+" not found")
	case ErrorBadRequest:
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "backend rejected the request")
	default:
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "backend is unavailable, please retry")
	}
}
