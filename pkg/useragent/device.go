package useragent

// Device signatures. Order of evaluation lives in detectTablet/detectMobile.
var (
	reTablet      = compile(`tablet`)
	reTabletPC    = compile(`tablet pc`)
	reIOSDevice   = compile(`(iphone|ipod|ipad)`)
	reAndroid     = compile(`android`)
	reLikeAndroid = compile(`like android`)
	reMobi        = compile(`[^-]mobi`)
	reNexusPhone  = compile(`nexus\s*[0-6]\s*`)
	reNexus       = compile(`nexus\s*[0-9]+`)
)

// isAndroid excludes user agents that only claim to be "like Android".
func isAndroid(ua string) bool {
	return reAndroid.MatchString(ua) && !reLikeAndroid.MatchString(ua)
}

// detectTablet checks, in order: a generic tablet token (Windows tablet PCs
// excluded), an iPad, an Android device without the mobi token, and a Nexus
// model numbered 7 or higher.
func (d *Detector) detectTablet() bool {
	ua := d.userAgent
	return (reTablet.MatchString(ua) && !reTabletPC.MatchString(ua)) ||
		d.iosDevice == iosDeviceIPad ||
		(d.android && !reMobi.MatchString(ua)) ||
		(!reNexusPhone.MatchString(ua) && reNexus.MatchString(ua))
}

// detectMobile never reports a tablet as mobile.
func (d *Detector) detectMobile() bool {
	if d.IsTablet() {
		return false
	}
	ua := d.userAgent
	return reMobi.MatchString(ua) ||
		d.iosDevice == iosDeviceIPhone ||
		d.iosDevice == iosDeviceIPod ||
		d.android ||
		reNexusPhone.MatchString(ua)
}
