package useragent

import "regexp"

// extract returns the capture group at index group of the first match of re
// in s. Missing matches and missing or empty groups all yield "".
func extract(s string, group int, re *regexp.Regexp) string {
	if re == nil || group < 0 {
		return ""
	}
	m := re.FindStringSubmatch(s)
	if len(m) < 2 || group >= len(m) {
		return ""
	}
	return m[group]
}

// extraction is a single capture-group lookup.
type extraction struct {
	group int
	re    *regexp.Regexp
}

// extractions are tried in order; the first non-empty result wins.
type extractions []extraction

func (e extractions) first(s string) string {
	for _, x := range e {
		if v := extract(s, x.group, x.re); v != "" {
			return v
		}
	}
	return ""
}

// group1 is shorthand for the common first-capture-group extraction.
func group1(pattern string) extraction {
	return extraction{group: 1, re: compile(pattern)}
}

// compile builds a case-insensitive pattern.
func compile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

// versionIdentifier is the generic "Version/X.Y" token used as a fallback
// by several browsers and by iOS.
var versionIdentifier = group1(`version/(\d+(\.\d+)?)`)
