package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/detectua/pkg/cache"
	"github.com/dmitrymomot/detectua/pkg/clientip"
	"github.com/dmitrymomot/detectua/pkg/ratelimiter"
	"github.com/dmitrymomot/detectua/pkg/useragent"
)

// Request limits used unless configured otherwise.
const (
	DefaultMaxBatchSize       = 100     // navigators per batch request
	DefaultMaxBodyBytes int64 = 1 << 20 // bytes per request body
)

// Detection is the classification of one user agent as returned by the API.
type Detection struct {
	useragent.Result `yaml:",inline"`
	Summary          string `json:"summary" yaml:"summary"`
}

// BatchRequest is the body of POST /v1/detect/batch.
type BatchRequest struct {
	Items []useragent.Navigator `json:"items"`
}

// Handler serves the detection endpoints.
type Handler struct {
	parser       useragent.Parser
	limiter      ratelimiter.Limiter
	clientIP     *clientip.Resolver
	log          *slog.Logger
	maxBatchSize int
	maxBodyBytes int64
	maxUALength  int
}

// Option configures a Handler.
type Option func(*Handler)

// WithParser sets the parser used to classify user agents.
func WithParser(p useragent.Parser) Option {
	return func(h *Handler) {
		if p != nil {
			h.parser = p
		}
	}
}

// WithRateLimiter charges every classification to the client IP. A batch
// costs one token per item.
func WithRateLimiter(l ratelimiter.Limiter) Option {
	return func(h *Handler) { h.limiter = l }
}

// WithClientIP sets the resolver identifying callers for rate limiting.
// The default trusts no proxy headers.
func WithClientIP(res *clientip.Resolver) Option {
	return func(h *Handler) {
		if res != nil {
			h.clientIP = res
		}
	}
}

// WithMaxUserAgentLength limits user agent and platform strings to n bytes.
// Longer values are rejected in request bodies and truncated in headers.
func WithMaxUserAgentLength(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxUALength = n
		}
	}
}

// WithLogger sets the handler logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMaxBatchSize limits the number of items in a batch request.
func WithMaxBatchSize(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBatchSize = n
		}
	}
}

// WithMaxBodyBytes limits the size of request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler returns a Handler using useragent.DefaultParser unless
// configured otherwise.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		parser:       useragent.DefaultParser,
		clientIP:     &clientip.Resolver{},
		log:          slog.New(slog.DiscardHandler),
		maxBatchSize: DefaultMaxBatchSize,
		maxBodyBytes: DefaultMaxBodyBytes,
		maxUALength:  useragent.DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewDetection snapshots d.
func NewDetection(d *useragent.Detector) Detection {
	return Detection{Result: d.Result(), Summary: d.Summary()}
}

// DetectSelf classifies the calling client. It relies on
// useragent.Middleware having stored the Detector in the request context.
func (h *Handler) DetectSelf(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, 1) {
		return
	}
	h.respond(w, r, NewDetection(useragent.FromContext(r.Context())))
}

// Detect classifies the navigator sent in the request body.
func (h *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	var n useragent.Navigator
	if err := decodeJSON(r, h.maxBodyBytes, &n); err != nil {
		h.fail(w, r, err)
		return
	}
	if n.Exceeds(h.maxUALength) {
		h.fail(w, r, errors.Join(ErrUnprocessable,
			fmt.Errorf("%w: limit is %d bytes", ErrUserAgentLong, h.maxUALength)))
		return
	}
	if !h.allow(w, r, 1) {
		return
	}
	h.respond(w, r, NewDetection(h.parser.Parse(n)))
}

// DetectBatch classifies every navigator of a batch request, preserving order.
func (h *Handler) DetectBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := decodeJSON(r, h.maxBodyBytes, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	switch {
	case len(req.Items) == 0:
		h.fail(w, r, errors.Join(ErrUnprocessable, ErrEmptyBatch))
		return
	case len(req.Items) > h.maxBatchSize:
		h.fail(w, r, errors.Join(ErrUnprocessable,
			fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(req.Items), h.maxBatchSize)))
		return
	}
	for i, n := range req.Items {
		if n.Exceeds(h.maxUALength) {
			h.fail(w, r, errors.Join(ErrUnprocessable,
				fmt.Errorf("item %d: %w: limit is %d bytes", i, ErrUserAgentLong, h.maxUALength)))
			return
		}
	}

	if !h.allow(w, r, len(req.Items)) {
		return
	}

	out := make([]Detection, len(req.Items))
	for i, n := range req.Items {
		out[i] = NewDetection(h.parser.Parse(n))
	}
	h.respond(w, r, out)
}

// Stats reports parser cache usage. Parsers without a cache answer 404.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	s, ok := h.parser.(interface{ Stats() cache.Stats })
	if !ok {
		h.fail(w, r, ErrNotFound)
		return
	}
	h.respond(w, r, s.Stats())
}

// allow charges cost tokens to the caller and answers 429 when the quota is
// exhausted. Requests without a resolvable client IP share one bucket.
func (h *Handler) allow(w http.ResponseWriter, r *http.Request, cost int) bool {
	if h.limiter == nil {
		return true
	}
	key := clientip.FromContext(r.Context())
	if key == "" {
		key = "unknown"
	}
	res, err := h.limiter.AllowN(r.Context(), key, cost)
	if err != nil {
		h.fail(w, r, errors.Join(ErrInternal, err))
		return false
	}
	ratelimiter.WriteHeaders(w, res)
	if !res.Allowed() {
		h.fail(w, r, ErrTooManyRequests)
		return false
	}
	return true
}
