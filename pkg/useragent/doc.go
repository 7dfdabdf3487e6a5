// Package useragent classifies browser User-Agent strings into device class,
// operating system and browser.
//
// A Detector is bound to exactly one user agent for its whole lifetime and
// answers a fixed set of queries:
//   - Device class: IsMobile, IsTablet, IsDesktop (exactly one is true)
//   - Platform: MacOS, Windows, IOS, Android, each with a version name
//   - Browser: name and version, always populated
//
// Classification is a pure function of the string: fixed regular expressions
// evaluated in a fixed order, first match wins. Nothing is looked up, scored
// or fetched, and no input can make a query fail. Malformed or empty strings
// simply match nothing and end up as desktop with an empty browser.
//
// # Architecture
//
// extract.go holds the capture-group primitive every classifier is built on.
// device.go, platform.go and browser.go hold the three classifiers and their
// pattern tables; constants.go holds names and version tables. Each query is
// memoized with sync.OnceValue, so repeated calls are free and a Detector can
// be shared between goroutines.
//
//	            ┌──────────────┐
//	Navigator ─▶│     New      │── ua, iOS token, android flag
//	            └──────┬───────┘
//	        ┌──────────┼───────────┐
//	        ▼          ▼           ▼
//	   device.go   platform.go  browser.go ──► Result / Summary
//
// # iPadOS
//
// iPads request desktop websites with a user agent identical to desktop
// Safari. The navigator's platform ("MacIntel") together with more than two
// touch points reveals them; New then treats the device as an iPad before any
// query runs. Over HTTP these values come from the X-Navigator-* headers, see
// RequestNavigator.
//
// # Usage
//
//	d := useragent.Parse(r.UserAgent())
//	if d.IsMobile() {
//	    // serve the compact layout
//	}
//	if win, ok := d.Windows(); ok && win.Version == "XP" {
//	    // ...
//	}
//	log.Printf("client=%s", d.Summary())
//
// In HTTP servers use Middleware with a CachedParser and read the Detector
// back with FromContext:
//
//	r.Use(useragent.Middleware(useragent.NewCachedParser(1024)))
//	...
//	d := useragent.FromContext(r.Context())
package useragent
