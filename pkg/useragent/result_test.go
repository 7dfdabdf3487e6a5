package useragent_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/detectua/pkg/useragent"
)

func TestResult(t *testing.T) {
	t.Parallel()

	t.Run("iPhone", func(t *testing.T) {
		t.Parallel()
		r := useragent.Parse(uaSafariIPhone).Result()
		assert.Equal(t, useragent.DeviceMobile, r.Device)
		assert.True(t, r.IsMobile)
		assert.False(t, r.IsTablet)
		assert.False(t, r.IsDesktop)
		require.NotNil(t, r.IOS)
		assert.Equal(t, "14.4", r.IOS.Version)
		assert.Nil(t, r.MacOS)
		assert.Nil(t, r.Windows)
		assert.Nil(t, r.Android)
		assert.Equal(t, useragent.Browser{Name: "Safari", Version: "14.0"}, r.Browser)
	})

	t.Run("JSON omits absent platforms", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(useragent.Parse(uaChromeWindows).Result())
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, "desktop", m["device"])
		assert.Equal(t, map[string]any{"name": "Windows", "version": "10"}, m["windows"])
		assert.NotContains(t, m, "macos")
		assert.NotContains(t, m, "ios")
		assert.NotContains(t, m, "android")
		assert.Equal(t, map[string]any{"name": "Chrome", "version": "91.0"}, m["browser"])
	})

	t.Run("empty user agent still has a browser", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(useragent.Parse("").Result())
		require.NoError(t, err)
		assert.Contains(t, string(data), `"browser":{"name":"","version":""}`)
	})
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{name: "Chrome on Windows", ua: uaChromeWindows, expected: "Chrome/91.0 (Windows 10, Desktop)"},
		{name: "Safari on iPhone", ua: uaSafariIPhone, expected: "Safari/14.0 (iOS 14.4, Mobile)"},
		{name: "Chrome on Android tablet", ua: uaAndroidTablet, expected: "Chrome/91.0 (Android 11, Tablet)"},
		{name: "Safari on Mac", ua: uaSafariMacOS, expected: "Safari/13.1 (MacOS Catalina, Desktop)"},
		{name: "platform without version", ua: "Mozilla/4.0 (compatible; MSIE 5.5; Windows 98)", expected: "Internet Explorer/5.5 (Windows, Desktop)"},
		{name: "unknown everything", ua: "", expected: "Unknown/? (Unknown OS, Desktop)"},
		{name: "fallback product", ua: uaWget, expected: "Wget/1.21.1 (Unknown OS, Desktop)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, useragent.Parse(tc.ua).Summary())
		})
	}
}

func TestSummary_IPadOSReportsIOS(t *testing.T) {
	t.Parallel()

	d := useragent.New(useragent.WithNavigator(useragent.Navigator{
		UserAgent:      uaSafariMac,
		Platform:       "MacIntel",
		MaxTouchPoints: 5,
	}))
	assert.Equal(t, "Safari/14.0 (iOS 14.0, Tablet)", d.Summary())
}
