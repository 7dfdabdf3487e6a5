package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// decodeJSON reads exactly one JSON value from the request body into v.
// An empty Content-Type is accepted; any other media type is rejected.
func decodeJSON(r *http.Request, maxBytes int64, v any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return errors.Join(ErrUnsupportedMediaType, ErrWrongMediaType)
		}
	}

	body := http.MaxBytesReader(nil, r.Body, maxBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return errors.Join(ErrRequestTooLarge, ErrBodyTooLarge)
		case errors.Is(err, io.EOF):
			return errors.Join(ErrBadRequest, fmt.Errorf("%w: empty body", ErrInvalidJSON))
		default:
			return errors.Join(ErrBadRequest, fmt.Errorf("%w: %v", ErrInvalidJSON, err))
		}
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errors.Join(ErrBadRequest, fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON))
	}
	return nil
}
