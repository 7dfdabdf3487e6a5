package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/detectua/pkg/useragent"
)

func TestMacOS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ua      string
		ok      bool
		version string
	}{
		{name: "Catalina", ua: uaSafariMacOS, ok: true, version: "Catalina"},
		{name: "dotted version", ua: uaFirefoxMac, ok: true, version: "Mojave"},
		{name: "Leopard", ua: "Mozilla/5.0 (Macintosh; U; Intel Mac OS X 10_5_8; en-us) AppleWebKit/531.9 Safari/531.9", ok: true, version: "Leopard"},
		{name: "El Capitan", ua: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_11_6) AppleWebKit/601.7.7 Safari/601.7.7", ok: true, version: "El Capitan"},
		{name: "Tiger is outside the table", ua: "Mozilla/5.0 (Macintosh; U; PPC Mac OS X 10_4_11; en) AppleWebKit/528.18 Safari/528.16", ok: true, version: ""},
		{name: "major 11 has no codename", ua: "Mozilla/5.0 (Macintosh; Intel Mac OS X 11_2_3) AppleWebKit/605.1.15 Safari/605.1.15", ok: true, version: ""},
		{name: "no version number", ua: "Mozilla/5.0 (Macintosh; PPC Mac OS X) Safari", ok: true, version: ""},
		{name: "Windows", ua: uaChromeWindows, ok: false},
		{name: "iPhone", ua: uaSafariIPhone, ok: false},
		{name: "empty", ua: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, ok := useragent.Parse(tc.ua).MacOS()
			assert.Equal(t, tc.ok, ok)
			if !tc.ok {
				assert.Equal(t, useragent.Platform{}, p)
				return
			}
			assert.Equal(t, useragent.PlatformMacOS, p.Name)
			assert.Equal(t, tc.version, p.Version)
		})
	}
}

func TestWindows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ua      string
		ok      bool
		version string
	}{
		{name: "Windows 10", ua: uaChromeWindows, ok: true, version: "10"},
		{name: "Windows 8.1", ua: uaIE11, ok: true, version: "8.1"},
		{name: "Windows 8", ua: uaIE10, ok: true, version: "8"},
		{name: "Windows 7", ua: uaOperaPresto, ok: true, version: "7"},
		{name: "Windows XP via NT 5.1", ua: uaFirefoxXP, ok: true, version: "XP"},
		{name: "Windows Vista", ua: "Mozilla/4.0 (compatible; MSIE 7.0; Windows NT 6.0)", ok: true, version: "Vista"},
		{name: "Windows 2000", ua: "Mozilla/4.0 (compatible; MSIE 6.0; Windows NT 5.0)", ok: true, version: "2000"},
		{name: "Windows Server 2003", ua: "Mozilla/4.0 (compatible; MSIE 6.0; Windows NT 5.2; SV1)", ok: true, version: "2003"},
		{name: "bare XP", ua: "Mozilla/4.0 (compatible; MSIE 6.0; Windows XP)", ok: true, version: "XP"},
		{name: "bare NT", ua: "Mozilla/4.0 (compatible; MSIE 5.0; Windows NT;)", ok: true, version: "NT"},
		{name: "unmapped NT 4.0", ua: "Mozilla/4.0 (compatible; MSIE 5.0; Windows NT 4.0)", ok: true, version: ""},
		{name: "Windows 98", ua: "Mozilla/4.0 (compatible; MSIE 5.5; Windows 98)", ok: true, version: ""},
		{name: "lower case", ua: uaLowerCaseChrome, ok: true, version: "7"},
		{name: "Mac", ua: uaSafariMac, ok: false},
		{name: "empty", ua: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, ok := useragent.Parse(tc.ua).Windows()
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, useragent.Platform{Name: useragent.PlatformWindows, Version: tc.version}, p)
			}
		})
	}
}

func TestIOS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ua      string
		ok      bool
		version string
	}{
		{name: "iPhone", ua: uaSafariIPhone, ok: true, version: "14.4"},
		{name: "iPad", ua: uaSafariIPad, ok: true, version: "13.3"},
		{name: "iPod", ua: uaSafariIPod, ok: true, version: "12.5"},
		{name: "three component version", ua: "Mozilla/5.0 (iPhone; CPU iPhone OS 12_4_1 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148", ok: true, version: "12.4.1"},
		{name: "newline separated version", ua: "Mozilla/5.0 (iPhone; CPU iPhone OS 14\n2\r1 like Mac OS X) Mobile/15E148", ok: true, version: "14.2.1"},
		{name: "falls back to Version token", ua: "Mozilla/5.0 (iPhone; U; en-us) AppleWebKit/532.9 Version/4.0.5 Mobile/8A293 Safari/6531.22.7", ok: true, version: "4.0"},
		{name: "no version at all", ua: "Mozilla/5.0 (iPhone)", ok: true, version: ""},
		{name: "Mac is not iOS", ua: uaSafariMac, ok: false},
		{name: "Android", ua: uaAndroidPhone, ok: false},
		{name: "empty", ua: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, ok := useragent.Parse(tc.ua).IOS()
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, useragent.Platform{Name: useragent.PlatformIOS, Version: tc.version}, p)
			}
		})
	}
}

func TestAndroid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ua      string
		ok      bool
		version string
	}{
		{name: "phone", ua: uaAndroidPhone, ok: true, version: "11"},
		{name: "three component version", ua: uaNexus7, ok: true, version: "4.4.4"},
		{name: "dash separator", ua: "Mozilla/5.0 (Linux; U; Android-4.0.3; en-us) AppleWebKit/534.30 Mobile Safari/534.30", ok: true, version: "4.0.3"},
		{name: "no version", ua: "Mozilla/5.0 (Linux; Android; Mobile) Chrome/91.0", ok: true, version: ""},
		{name: "like Android", ua: uaLikeAndroid, ok: false},
		{name: "iPhone", ua: uaSafariIPhone, ok: false},
		{name: "empty", ua: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, ok := useragent.Parse(tc.ua).Android()
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, useragent.Platform{Name: useragent.PlatformAndroid, Version: tc.version}, p)
			}
		})
	}
}

func TestPlatform_Independent(t *testing.T) {
	t.Parallel()

	// Windows Phone mentions both Windows and Android; each detector answers on its own.
	d := useragent.Parse(uaWindowsPhone)

	win, ok := d.Windows()
	assert.True(t, ok)
	assert.Equal(t, "", win.Version)

	android, ok := d.Android()
	assert.True(t, ok)
	assert.Equal(t, "6.0.1", android.Version)

	p, ok := d.Platform()
	assert.True(t, ok)
	assert.Equal(t, useragent.PlatformAndroid, p.Name)
}
