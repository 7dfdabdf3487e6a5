package useragent

// DeviceClass is the coarse device bucket a user agent falls into.
// Exactly one class applies to any user agent string.
type DeviceClass string

const (
	// DeviceMobile identifies phones and other handheld devices.
	DeviceMobile DeviceClass = "mobile"

	// DeviceTablet identifies tablets, including iPads running iPadOS with a desktop user agent.
	DeviceTablet DeviceClass = "tablet"

	// DeviceDesktop identifies everything that is neither mobile nor tablet.
	DeviceDesktop DeviceClass = "desktop"
)

// Platform names reported by the platform detectors.
const (
	PlatformMacOS   = "MacOS"
	PlatformWindows = "Windows"
	PlatformIOS     = "iOS"
	PlatformAndroid = "Android"
)

// Browser names reported by the browser cascade.
const (
	BrowserOpera            = "Opera"
	BrowserSamsung          = "Samsung Internet for Android"
	BrowserYandex           = "Yandex Browser"
	BrowserUC               = "UC Browser"
	BrowserInternetExplorer = "Internet Explorer"
	BrowserEdge             = "Microsoft Edge"
	BrowserFirefox          = "Firefox"
	BrowserChromium         = "Chromium"
	BrowserChrome           = "Chrome"
	BrowserSafari           = "Safari"
)

// iOS device tokens as they appear (lower-cased) in the user agent.
const (
	iosDeviceIPhone = "iphone"
	iosDeviceIPod   = "ipod"
	iosDeviceIPad   = "ipad"
)

// macOSCodenames maps the minor version of Mac OS X 10.x to its release name.
var macOSCodenames = map[int]string{
	5:  "Leopard",
	6:  "Snow Leopard",
	7:  "Lion",
	8:  "Mountain Lion",
	9:  "Mavericks",
	10: "Yosemite",
	11: "El Capitan",
	12: "Sierra",
	13: "High Sierra",
	14: "Mojave",
	15: "Catalina",
}

// windowsVersions maps the Windows token from the user agent to its marketing version.
var windowsVersions = map[string]string{
	"NT":      "NT",
	"XP":      "XP",
	"NT 5.0":  "2000",
	"NT 5.1":  "XP",
	"NT 5.2":  "2003",
	"NT 6.0":  "Vista",
	"NT 6.1":  "7",
	"NT 6.2":  "8",
	"NT 6.3":  "8.1",
	"NT 10.0": "10",
}
