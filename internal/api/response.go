package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/detectua/pkg/logger"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data any) {
	if err := writeJSON(w, http.StatusOK, Envelope{Data: data}); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := errorToDetail(err)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	} else {
		h.log.DebugContext(r.Context(), "request rejected",
			slog.Int("status", status), logger.Error(err))
	}
	if werr := writeJSON(w, status, Envelope{Error: detail}); werr != nil {
		h.log.ErrorContext(r.Context(), "failed to write error response", logger.Error(werr))
	}
}

// errorToDetail maps err to a status code and client-facing detail.
// Server errors never expose their cause.
func errorToDetail(err error) (int, *ErrorDetail) {
	var httpErr HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = ErrInternal
	}
	if httpErr.Code >= http.StatusInternalServerError {
		return httpErr.Code, &ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}
	}
	return httpErr.Code, &ErrorDetail{
		Code:    httpErr.Key,
		Message: clientMessage(err, httpErr),
	}
}

// clientMessage prefers the first non-HTTPError message joined into err.
func clientMessage(err error, httpErr HTTPError) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if _, isHTTP := e.(HTTPError); !isHTTP {
				return e.Error()
			}
		}
	}
	return http.StatusText(httpErr.Code)
}
