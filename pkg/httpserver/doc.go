// Package httpserver wraps net/http with graceful shutdown, timeouts,
// lifecycle hooks and health-check handlers.
//
// Run listens on the configured address, serves the handler and blocks until
// the context is cancelled or SIGINT/SIGTERM arrives; it then calls
// http.Server.Shutdown with the configured deadline. Errors are joined with
// ErrStart or ErrShutdown for errors.Is checks.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler serve the usual probe endpoints.
package httpserver
