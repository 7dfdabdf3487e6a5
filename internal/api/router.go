package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/detectua/pkg/httpserver"
	"github.com/dmitrymomot/detectua/pkg/logger"
	"github.com/dmitrymomot/detectua/pkg/requestid"
	"github.com/dmitrymomot/detectua/pkg/useragent"
)

// Router mounts the detection API and health probes.
//
//	h := api.NewHandler(api.WithParser(useragent.NewCachedParser(1024)), api.WithLogger(log))
//	srv.Run(ctx, api.Router(h))
func Router(h *Handler, readiness ...httpserver.Check) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(h.clientIP.Middleware)
	r.Use(useragent.Middleware(h.parser, useragent.TruncateAt(h.maxUALength)))
	r.Use(h.logRequests)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) { h.fail(w, r, ErrNotFound) })
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) { h.fail(w, r, ErrMethodNotAllowed) })

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", httpserver.LivenessHandler())
		r.Get("/ready", httpserver.ReadinessHandler(h.log, readiness...))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/detect", h.DetectSelf)
		r.Post("/detect", h.Detect)
		r.Post("/detect/batch", h.DetectBatch)
		r.Get("/stats", h.Stats)
	})

	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.log.InfoContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
			logger.UserAgent(useragent.FromContext(r.Context()).UserAgent()),
		)
	})
}
