package useragent

import "regexp"

// Browser represents browser information
type Browser struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// browserRule is one step of the browser cascade.
type browserRule struct {
	name      string
	signature *regexp.Regexp
	version   extractions
}

// browserRules are evaluated in order and the first matching signature wins.
// Order matters: Chromium based Edge, Opera, Samsung and Yandex all carry a
// Chrome token, and nearly everything carries a Safari/AppleWebKit token.
var browserRules = []browserRule{
	{
		name:      BrowserOpera,
		signature: compile(`opera`),
		version:   extractions{versionIdentifier, group1(`(?:opera|opr|opios)[\s/](\d+(\.\d+)?)`)},
	},
	{
		name:      BrowserOpera,
		signature: compile(`opr/|opios`),
		version:   extractions{group1(`(?:opr|opios)[\s/](\d+(\.\d+)?)`), versionIdentifier},
	},
	{
		name:      BrowserSamsung,
		signature: compile(`samsungbrowser`),
		version:   extractions{versionIdentifier, group1(`samsungbrowser[\s/](\d+(\.\d+)?)`)},
	},
	{
		name:      BrowserYandex,
		signature: compile(`yabrowser`),
		version:   extractions{versionIdentifier, group1(`yabrowser[\s/](\d+(\.\d+)?)`)},
	},
	{
		name:      BrowserUC,
		signature: compile(`ucbrowser`),
		version:   extractions{group1(`ucbrowser[\s/](\d+(\.\d+)?)`)},
	},
	{
		name:      BrowserInternetExplorer,
		signature: compile(`msie|trident`),
		version:   extractions{group1(`(?:msie |rv:)(\d+(\.\d+)?)`)},
	},
	{
		name:      BrowserEdge,
		signature: compile(`edge|edgios|edga|edg`),
		version:   extractions{{group: 2, re: compile(`(edge|edgios|edga|edg)/(\d+(\.\d+)?)`)}},
	},
	{
		name:      BrowserFirefox,
		signature: compile(`firefox|iceweasel|fxios`),
		version:   extractions{group1(`(?:firefox|iceweasel|fxios)[ /](\d+(\.\d+)?)`)},
	},
	{
		name:      BrowserChromium,
		signature: compile(`chromium`),
		version:   extractions{group1(`chromium[\s/](\d+(?:\.\d+)?)`), versionIdentifier},
	},
	{
		name:      BrowserChrome,
		signature: compile(`chrome|crios|crmo`),
		version:   extractions{group1(`(?:chrome|crios|crmo)/(\d+(\.\d+)?)`)},
	},
	{
		name:      BrowserSafari,
		signature: compile(`safari|applewebkit`),
		version:   extractions{versionIdentifier},
	},
}

// reProduct picks the first "name/version " pair of an unrecognized user agent.
var reProduct = regexp.MustCompile(`^([^/]+)/(\S+)\s`)

func (d *Detector) detectBrowser() Browser {
	ua := d.userAgent
	for _, rule := range browserRules {
		if rule.signature.MatchString(ua) {
			return Browser{Name: rule.name, Version: rule.version.first(ua)}
		}
	}
	return Browser{
		Name:    extract(ua, 1, reProduct),
		Version: extract(ua, 2, reProduct),
	}
}
