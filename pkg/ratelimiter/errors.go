package ratelimiter

import "errors"

var (
	// ErrInvalidConfig indicates an unusable bucket configuration.
	ErrInvalidConfig = errors.New("invalid rate limit configuration")

	// ErrInvalidTokenCount indicates a non-positive token request.
	ErrInvalidTokenCount = errors.New("invalid token count")

	// ErrEmptyKey indicates a check without a bucket key.
	ErrEmptyKey = errors.New("empty rate limit key")

	// ErrStoreUnavailable wraps failures of a remote store.
	ErrStoreUnavailable = errors.New("rate limit store unavailable")
)
