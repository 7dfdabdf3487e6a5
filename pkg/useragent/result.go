package useragent

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result is a snapshot of every classification of one user agent.
// Platforms that do not match are nil.
type Result struct {
	UserAgent string      `json:"user_agent" yaml:"user_agent"`
	Device    DeviceClass `json:"device" yaml:"device"`
	IsMobile  bool        `json:"is_mobile" yaml:"is_mobile"`
	IsTablet  bool        `json:"is_tablet" yaml:"is_tablet"`
	IsDesktop bool        `json:"is_desktop" yaml:"is_desktop"`
	MacOS     *Platform   `json:"macos,omitempty" yaml:"macos,omitempty"`
	Windows   *Platform   `json:"windows,omitempty" yaml:"windows,omitempty"`
	IOS       *Platform   `json:"ios,omitempty" yaml:"ios,omitempty"`
	Android   *Platform   `json:"android,omitempty" yaml:"android,omitempty"`
	Browser   Browser     `json:"browser" yaml:"browser"`
}

// Result evaluates all queries and returns them as one value.
func (d *Detector) Result() Result {
	return Result{
		UserAgent: d.UserAgent(),
		Device:    d.DeviceClass(),
		IsMobile:  d.IsMobile(),
		IsTablet:  d.IsTablet(),
		IsDesktop: d.IsDesktop(),
		MacOS:     optional(d.MacOS()),
		Windows:   optional(d.Windows()),
		IOS:       optional(d.IOS()),
		Android:   optional(d.Android()),
		Browser:   d.Browser(),
	}
}

func optional(p Platform, ok bool) *Platform {
	if !ok {
		return nil
	}
	return &p
}

// Platform returns the most specific matching platform. Mobile platforms
// win over desktop ones so that an iPad masked as a Mac reports iOS.
func (d *Detector) Platform() (Platform, bool) {
	for _, detect := range []func() (Platform, bool){d.IOS, d.Android, d.Windows, d.MacOS} {
		if p, ok := detect(); ok {
			return p, true
		}
	}
	return Platform{}, false
}

// Summary returns a short human-readable identifier for logs, for example
// "Chrome/91.0 (Windows 10, Desktop)".
func (d *Detector) Summary() string {
	browser := d.Browser()
	name, version := browser.Name, browser.Version
	if name == "" {
		name = "Unknown"
	}
	if version == "" {
		version = "?"
	}

	platform := "Unknown OS"
	if p, ok := d.Platform(); ok {
		platform = p.Name
		if p.Version != "" {
			platform += " " + p.Version
		}
	}

	class := cases.Title(language.English).String(string(d.DeviceClass()))
	return fmt.Sprintf("%s/%s (%s, %s)", name, version, platform, class)
}
