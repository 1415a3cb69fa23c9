package types

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unified error code across the client.
type ErrorCode string

// Transport and codec error codes
const (
	ErrNetwork ErrorCode = "NETWORK"
	ErrEncode  ErrorCode = "ENCODE"
	ErrDecode  ErrorCode = "DECODE"
)

// API error codes, derived from the HTTP status of a non-2xx response.
const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrForbidden      ErrorCode = "FORBIDDEN"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrRateLimited    ErrorCode = "RATE_LIMITED"
	ErrUpstreamError  ErrorCode = "UPSTREAM_ERROR"
)

// Webhook payload error codes
const (
	ErrKindMismatch ErrorCode = "KIND_MISMATCH"
	ErrNoResponse   ErrorCode = "NO_RESPONSE"
)

// Error represents a structured error with code, message, and metadata.
type Error struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Operation  string    `json:"operation,omitempty"`
	HTTPStatus int       `json:"http_status,omitempty"`
	Body       string    `json:"body,omitempty"`
	Cause      error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Operation != "" {
		msg = e.Operation + ": " + msg
	}
	if e.HTTPStatus != 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.HTTPStatus)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithHTTPStatus sets the HTTP status code.
func (e *Error) WithHTTPStatus(status int) *Error {
	e.HTTPStatus = status
	return e
}

// WithBody attaches the raw response body returned by the server.
func (e *Error) WithBody(body string) *Error {
	e.Body = body
	return e
}

// WithOperation sets the client operation that failed.
func (e *Error) WithOperation(op string) *Error {
	e.Operation = op
	return e
}

// IsAPIError reports whether the error came from a non-2xx server response.
func (e *Error) IsAPIError() bool {
	return e.HTTPStatus != 0
}

// NewAPIError maps a non-2xx HTTP status onto an Error carrying status and body.
func NewAPIError(status int, body string) *Error {
	var code ErrorCode
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		code = ErrInvalidRequest
	case status == http.StatusUnauthorized:
		code = ErrUnauthorized
	case status == http.StatusForbidden:
		code = ErrForbidden
	case status == http.StatusNotFound:
		code = ErrNotFound
	case status == http.StatusTooManyRequests:
		code = ErrRateLimited
	default:
		code = ErrUpstreamError
	}
	msg := http.StatusText(status)
	if msg == "" {
		msg = "unexpected status"
	}
	return &Error{Code: code, Message: msg, HTTPStatus: status, Body: body}
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsErrorCode reports whether err carries the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	e, ok := AsError(err)
	return ok && e.Code == code
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) ErrorCode {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return ""
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	if e, ok := AsError(err); ok {
		return e.HTTPStatus
	}
	return 0
}
