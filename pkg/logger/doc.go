// Package logger builds *slog.Logger instances from functional options and
// injects request-scoped values from context.Context into every record.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs the registered ContextExtractor
// callbacks on each Handle call. This is how request ids and the classified
// client of an HTTP request end up on every log line without being passed
// around explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "detectua"),
//	    logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        useragent.LoggerExtractor(),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "classified",
//	    logger.Device(string(d.DeviceClass())),
//	    logger.Browser(b.Name, b.Version),
//	)
//
// Attribute helpers such as Error, RequestID and Platform return an empty Attr
// for nil or empty input, which slog drops, so callers need no extra checks:
//
//	log.Info("done", logger.Error(err))
package logger
