package api

import (
	"errors"
	"net/http"
)

// HTTPError is an error with a status code and a machine-readable key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // error code reported to clients, e.g. "bad_request"
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// Client and server errors returned in the response envelope.
var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrRequestTooLarge      = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessable        = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests      = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrInternal             = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// Request decoding errors. They are joined with one of the HTTPError values
// above so both errors.Is checks succeed.
var (
	ErrInvalidJSON    = errors.New("invalid JSON")
	ErrEmptyBatch     = errors.New("batch has no items")
	ErrBatchTooLarge  = errors.New("batch has too many items")
	ErrBodyTooLarge   = errors.New("request body too large")
	ErrWrongMediaType = errors.New("expected application/json")
	ErrUserAgentLong  = errors.New("user agent or platform too long")
)
