package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// UserAgent records the raw user agent under the key "user_agent".
func UserAgent(ua string) slog.Attr {
	return slog.String("user_agent", ua)
}

// Device records the device class under the key "device".
func Device(class string) slog.Attr {
	return slog.String("device", class)
}

// Browser groups browser name and version under the key "browser".
func Browser(name, version string) slog.Attr {
	return Group("browser", slog.String("name", name), slog.String("version", version))
}

// Platform groups platform name and version under the key "platform".
// An empty name yields an empty Attr.
func Platform(name, version string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return Group("platform", slog.String("name", name), slog.String("version", version))
}
