package useragent_test

// Real-world user agents shared by the tests in this package.
const (
	uaChromeWindows   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	uaSafariIPhone    = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	uaSafariIPad      = "Mozilla/5.0 (iPad; CPU OS 13_3 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/13.0.4 Mobile/15E148 Safari/604.1"
	uaSafariIPod      = "Mozilla/5.0 (iPod touch; CPU iPhone OS 12_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/12.1.2 Mobile/15E148 Safari/604.1"
	uaSafariMac       = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_6) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Safari/605.1.15"
	uaSafariMacOS     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_4) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/13.1 Safari/605.1.15"
	uaAndroidPhone    = "Mozilla/5.0 (Linux; Android 11; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Mobile Safari/537.36"
	uaAndroidTablet   = "Mozilla/5.0 (Linux; Android 11; SM-T500) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Safari/537.36"
	uaNexus7          = "Mozilla/5.0 (Linux; Android 4.4.4; Nexus 7 Build/KTU84P) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/38.0.2125.114 Safari/537.36"
	uaNexus5          = "Mozilla/5.0 (Linux; Android 6.0.1; Nexus 5 Build/M4B30Z) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/56.0.2924.87 Mobile Safari/537.36"
	uaIE10            = "Mozilla/5.0 (compatible; MSIE 10.0; Windows NT 6.2; Trident/6.0)"
	uaIE11            = "Mozilla/5.0 (Windows NT 6.3; Trident/7.0; rv:11.0) like Gecko"
	uaTabletPC        = "Mozilla/5.0 (Windows NT 6.1; WOW64; Trident/7.0; Tablet PC 2.0; rv:11.0) like Gecko"
	uaEdgeLegacy      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/46.0.2486.0 Safari/537.36 Edge/13.10586"
	uaEdge13          = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/46.0.2486.0 Safari/537.36 Edg/13.10586"
	uaEdgeChromium    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Edg/91.0.864.59"
	uaEdgeIOS         = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 EdgiOS/46.3.13 Mobile/15E148 Safari/605.1.15"
	uaFirefoxWindows  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:89.0) Gecko/20100101 Firefox/89.0"
	uaFirefoxMac      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.14; rv:89.0) Gecko/20100101 Firefox/89.0"
	uaFirefoxIOS      = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) FxiOS/34.0 Mobile/15E148 Safari/605.1.15"
	uaFirefoxTablet   = "Mozilla/5.0 (Tablet; rv:26.0) Gecko/26.0 Firefox/26.0"
	uaFirefoxXP       = "Mozilla/5.0 (Windows NT 5.1; rv:52.0) Gecko/20100101 Firefox/52.0"
	uaOperaPresto     = "Opera/9.80 (Windows NT 6.1; WOW64) Presto/2.12.388 Version/12.18"
	uaOperaNoVersion  = "Opera/9.63 (X11; Linux i686; U; en) Presto/2.1.1"
	uaOperaChromium   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 OPR/77.0.4054.203"
	uaSamsung         = "Mozilla/5.0 (Linux; Android 11; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/14.0 Chrome/87.0.4280.141 Mobile Safari/537.36"
	uaSamsungVersion  = "Mozilla/5.0 (Linux; Android 5.0; SM-N900) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 SamsungBrowser/2.1 Chrome/34.0.1847.76 Mobile Safari/537.36"
	uaYandex          = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.212 YaBrowser/21.5.3.742 Yowser/2.5 Safari/537.36"
	uaUC              = "Mozilla/5.0 (Linux; U; Android 11; en-US; SM-A515F) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/78.0.3904.108 UCBrowser/13.4.0.1306 Mobile Safari/537.36"
	uaChromium        = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chromium/90.0.4430.212 Chrome/90.0.4430.212 Safari/537.36"
	uaChromeIOS       = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) CriOS/91.0.4472.80 Mobile/15E148 Safari/604.1"
	uaWindowsPhone    = "Mozilla/5.0 (Windows Phone 10.0; Android 6.0.1; Microsoft; Lumia 950) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/52.0.2743.116 Mobile Safari/537.36 Edge/15.15063"
	uaWget            = "Wget/1.21.1 (linux-gnu)"
	uaCurl            = "curl/7.68.0"
	uaLikeAndroid     = "Mozilla/5.0 (X11; like Android 4.0) AppleWebKit/537.36 Safari/537.36"
	uaHyphenMobi      = "Mozilla/5.0 (X11; Linux x86_64) Foo-mobile/1.0"
	uaBareNexus7      = "Mozilla/5.0 (Nexus 7) Foo"
	uaBareNexus5      = "Mozilla/5.0 (Nexus 5) Foo"
	uaMalformed       = "((((/////\x00\xff mobi"
	uaOnlyWhitespace  = "   \t  "
	uaLowerCaseChrome = "mozilla/5.0 (windows nt 6.1; win64; x64) applewebkit/537.36 (khtml, like gecko) chrome/91.0.4472.124 safari/537.36"
)

// corpus is every fixture, used by the property tests.
var corpus = []string{
	"",
	uaChromeWindows, uaSafariIPhone, uaSafariIPad, uaSafariIPod, uaSafariMac, uaSafariMacOS,
	uaAndroidPhone, uaAndroidTablet, uaNexus7, uaNexus5, uaIE10, uaIE11, uaTabletPC,
	uaEdgeLegacy, uaEdge13, uaEdgeChromium, uaEdgeIOS, uaFirefoxWindows, uaFirefoxMac,
	uaFirefoxIOS, uaFirefoxTablet, uaFirefoxXP, uaOperaPresto, uaOperaNoVersion,
	uaOperaChromium, uaSamsung, uaSamsungVersion, uaYandex, uaUC, uaChromium, uaChromeIOS,
	uaWindowsPhone, uaWget, uaCurl, uaLikeAndroid, uaHyphenMobi, uaBareNexus7, uaBareNexus5,
	uaMalformed, uaOnlyWhitespace, uaLowerCaseChrome,
}
