package useragent

import (
	"strconv"
	"strings"
)

// Platform is an operating system name and its human-readable version.
type Platform struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

var (
	reMacintosh    = compile(`macintosh`)
	reMacOSVersion = compile(`mac os x (\d+([._]?\d+)+)`)
	reWindows      = compile(`windows `)
	reWindowsToken = compile(`windows ((NT|XP)( \d\d?.\d)?)`)

	iosVersion = extractions{
		group1(`os (\d+([_\s]\d+)*) like mac os x`),
		versionIdentifier,
	}
	androidVersion = extractions{
		group1(`android[ /-](\d+(\.\d+)*)`),
	}

	// Matches every separator the iOS version pattern accepts.
	reVersionSeparator = compile(`[_\s]`)
)

func dotted(version string) string {
	return reVersionSeparator.ReplaceAllString(version, ".")
}

func (d *Detector) detectMacOS() (Platform, bool) {
	if !reMacintosh.MatchString(d.userAgent) {
		return Platform{}, false
	}
	raw := dotted(extract(d.userAgent, 1, reMacOSVersion))
	return Platform{Name: PlatformMacOS, Version: macOSCodename(raw)}, true
}

// macOSCodename maps a dotted "10.x" version to its release name. Only the
// first two components are consulted; anything outside 10.5–10.15 yields "".
func macOSCodename(version string) string {
	parts := strings.SplitN(version, ".", 3)
	nums := [2]int{}
	for i := 0; i < len(parts) && i < 2; i++ {
		// non-numeric components count as 0
		nums[i], _ = strconv.Atoi(parts[i])
	}
	if nums[0] != 10 {
		return ""
	}
	return macOSCodenames[nums[1]]
}

func (d *Detector) detectWindows() (Platform, bool) {
	if !reWindows.MatchString(d.userAgent) {
		return Platform{}, false
	}
	token := strings.ToUpper(extract(d.userAgent, 1, reWindowsToken))
	return Platform{Name: PlatformWindows, Version: windowsVersions[token]}, true
}

func (d *Detector) detectIOS() (Platform, bool) {
	if d.iosDevice == "" {
		return Platform{}, false
	}
	return Platform{
		Name:    PlatformIOS,
		Version: dotted(iosVersion.first(d.userAgent)),
	}, true
}

func (d *Detector) detectAndroid() (Platform, bool) {
	if !d.android {
		return Platform{}, false
	}
	return Platform{Name: PlatformAndroid, Version: androidVersion.first(d.userAgent)}, true
}
