package useragent

import "net/http"

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	maxLength int
}

// TruncateAt cuts request user agents and platforms to n bytes before they
// are classified. The default is DefaultMaxLength; a non-positive n disables
// the limit.
func TruncateAt(n int) MiddlewareOption {
	return func(c *middlewareConfig) { c.maxLength = n }
}

// Middleware classifies every request and stores the Detector in the request
// context. A nil parser falls back to DefaultParser.
func Middleware(p Parser, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if p == nil {
		p = DefaultParser
	}
	cfg := middlewareConfig{maxLength: DefaultMaxLength}
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := p.Parse(RequestNavigator(r).Truncate(cfg.maxLength))
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), d)))
		})
	}
}
