package useragent

import (
	"regexp"
	"strings"
	"sync"
)

// Option configures a Detector.
type Option func(*options)

type options struct {
	userAgent string
	navigator NavigatorFunc
}

// WithUserAgent binds the Detector to ua. A non-empty value takes precedence
// over the user agent reported by the navigator.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithNavigator sets the host environment used when no user agent is given
// explicitly and for the iPadOS touch check.
func WithNavigator(n Navigator) Option {
	return WithNavigatorFunc(Static(n))
}

// WithNavigatorFunc is like WithNavigator but resolves the navigator lazily,
// once, while the Detector is built. Nil functions are ignored.
func WithNavigatorFunc(fn NavigatorFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.navigator = fn
		}
	}
}

// Detector answers classification queries about one user agent string.
// Every query is computed at most once and is safe for concurrent use.
type Detector struct {
	userAgent string

	// Derived once at construction and shared by the classifiers.
	android   bool
	iosDevice string

	tablet  func() bool
	mobile  func() bool
	desktop func() bool
	macOS   func() (Platform, bool)
	windows func() (Platform, bool)
	ios     func() (Platform, bool)
	droid   func() (Platform, bool)
	browser func() Browser
}

// New returns a Detector bound to the user agent from opts.
// Without an explicit user agent or a navigator the empty string is used.
func New(opts ...Option) *Detector {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var (
		nav    Navigator
		hasNav bool
	)
	if o.navigator != nil {
		nav, hasNav = o.navigator()
	}

	ua := o.userAgent
	if ua == "" && hasNav {
		ua = nav.UserAgent
	}

	d := &Detector{
		userAgent: ua,
		android:   isAndroid(ua),
		iosDevice: strings.ToLower(extract(ua, 1, reIOSDevice)),
	}
	if hasNav && nav.masksIPad() {
		d.iosDevice = iosDeviceIPad
	}

	d.tablet = sync.OnceValue(d.detectTablet)
	d.mobile = sync.OnceValue(d.detectMobile)
	d.desktop = sync.OnceValue(func() bool { return !d.IsMobile() && !d.IsTablet() })
	d.macOS = sync.OnceValues(d.detectMacOS)
	d.windows = sync.OnceValues(d.detectWindows)
	d.ios = sync.OnceValues(d.detectIOS)
	d.droid = sync.OnceValues(d.detectAndroid)
	d.browser = sync.OnceValue(d.detectBrowser)
	return d
}

// Parse is shorthand for New(WithUserAgent(ua)).
func Parse(ua string) *Detector {
	return New(WithUserAgent(ua))
}

// UserAgent returns the bound user agent string.
func (d *Detector) UserAgent() string { return d.userAgent }

// String returns the bound user agent string.
func (d *Detector) String() string { return d.userAgent }

// Extract applies pattern case-insensitively to the user agent and returns
// the capture group at index group. It returns "" when the pattern is
// invalid, does not match or has no such group.
func (d *Detector) Extract(group int, pattern string) string {
	re, err := regexp.Compile(`(?i)` + pattern)
	if err != nil {
		return ""
	}
	return extract(d.userAgent, group, re)
}

// IsMobile reports whether the user agent belongs to a phone-class device.
func (d *Detector) IsMobile() bool { return d.mobile() }

// IsTablet reports whether the user agent belongs to a tablet.
func (d *Detector) IsTablet() bool { return d.tablet() }

// IsDesktop reports whether the user agent is neither mobile nor tablet.
func (d *Detector) IsDesktop() bool { return d.desktop() }

// DeviceClass returns the single device class of the user agent.
func (d *Detector) DeviceClass() DeviceClass {
	switch {
	case d.IsTablet():
		return DeviceTablet
	case d.IsMobile():
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

// MacOS returns the macOS platform and true when the user agent is a Mac.
func (d *Detector) MacOS() (Platform, bool) { return d.macOS() }

// Windows returns the Windows platform and true when the user agent runs Windows.
func (d *Detector) Windows() (Platform, bool) { return d.windows() }

// IOS returns the iOS platform and true for iPhone, iPod and iPad devices.
func (d *Detector) IOS() (Platform, bool) { return d.ios() }

// Android returns the Android platform and true for Android devices.
func (d *Detector) Android() (Platform, bool) { return d.droid() }

// Browser returns the browser name and version. It is always populated,
// although both fields are empty for unrecognized user agents.
func (d *Detector) Browser() Browser { return d.browser() }
