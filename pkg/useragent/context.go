package useragent

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/detectua/pkg/logger"
)

type detectorContextKey struct{}

// WithContext returns a copy of ctx carrying d.
func WithContext(ctx context.Context, d *Detector) context.Context {
	return context.WithValue(ctx, detectorContextKey{}, d)
}

// FromContext returns the Detector stored in ctx. Without one it returns a
// Detector over the empty user agent, so callers never have to nil-check.
func FromContext(ctx context.Context) *Detector {
	if ctx != nil {
		if d, ok := ctx.Value(detectorContextKey{}).(*Detector); ok && d != nil {
			return d
		}
	}
	return New()
}

// LoggerExtractor adds the request's device class, browser and platform to
// log records under the "client" group.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ctx == nil {
			return slog.Attr{}, false
		}
		d, ok := ctx.Value(detectorContextKey{}).(*Detector)
		if !ok || d == nil {
			return slog.Attr{}, false
		}
		b := d.Browser()
		p, _ := d.Platform()
		return logger.Group("client",
			logger.Device(string(d.DeviceClass())),
			logger.Browser(b.Name, b.Version),
			logger.Platform(p.Name, p.Version),
		), true
	}
}
