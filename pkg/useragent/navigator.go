package useragent

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Headers a client may send to report navigator properties that are not part
// of the User-Agent header. They are needed to tell iPadOS Safari apart from
// desktop Safari.
const (
	HeaderPlatform       = "X-Navigator-Platform"
	HeaderMaxTouchPoints = "X-Navigator-Max-Touch-Points"
	HeaderMSStream       = "X-Navigator-MSStream"
)

// DefaultMaxLength bounds the user agent and platform strings accepted from
// clients. Real user agents are a few hundred bytes long.
const DefaultMaxLength = 2048

// macIntelPlatform is the navigator.platform value reported by Intel Macs and
// by iPads requesting desktop websites.
const macIntelPlatform = "MacIntel"

// Navigator describes the host environment a user agent string came from.
// The zero value is a valid navigator with an empty user agent.
type Navigator struct {
	UserAgent      string `json:"user_agent" yaml:"user_agent"`
	Platform       string `json:"platform,omitempty" yaml:"platform,omitempty"`
	MaxTouchPoints int    `json:"max_touch_points,omitempty" yaml:"max_touch_points,omitempty"`
	MSStream       bool   `json:"ms_stream,omitempty" yaml:"ms_stream,omitempty"`
}

// NavigatorFunc resolves the current navigator. It returns false when no host
// environment is available.
type NavigatorFunc func() (Navigator, bool)

// Static returns a NavigatorFunc that always reports n.
func Static(n Navigator) NavigatorFunc {
	return func() (Navigator, bool) { return n, true }
}

// masksIPad reports whether the navigator belongs to an iPad whose browser
// presents a desktop Safari user agent: a touch capable "MacIntel" without the
// legacy IE marker.
func (n Navigator) masksIPad() bool {
	return n.Platform == macIntelPlatform && n.MaxTouchPoints > 2 && !n.MSStream
}

// Exceeds reports whether the user agent or the platform is longer than limit
// bytes. A non-positive limit is never exceeded.
func (n Navigator) Exceeds(limit int) bool {
	return limit > 0 && (len(n.UserAgent) > limit || len(n.Platform) > limit)
}

// Truncate returns n with the user agent and platform cut to at most limit
// bytes. A non-positive limit leaves n unchanged.
func (n Navigator) Truncate(limit int) Navigator {
	n.UserAgent = truncate(n.UserAgent, limit)
	n.Platform = truncate(n.Platform, limit)
	return n
}

// truncate never splits a UTF-8 sequence and copies the result so that the
// original string can be collected.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return strings.Clone(s[:limit])
}

// RequestNavigator builds a Navigator from an incoming request.
// Malformed navigator headers are ignored. Values are returned in full; see
// Middleware for length limits.
func RequestNavigator(r *http.Request) Navigator {
	if r == nil {
		return Navigator{}
	}
	n := Navigator{
		UserAgent: r.UserAgent(),
		Platform:  strings.TrimSpace(r.Header.Get(HeaderPlatform)),
	}
	if v := strings.TrimSpace(r.Header.Get(HeaderMaxTouchPoints)); v != "" {
		if points, err := strconv.Atoi(v); err == nil && points >= 0 {
			n.MaxTouchPoints = points
		}
	}
	if v := strings.TrimSpace(r.Header.Get(HeaderMSStream)); v != "" {
		if ms, err := strconv.ParseBool(v); err == nil {
			n.MSStream = ms
		}
	}
	return n
}
