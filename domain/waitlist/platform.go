package waitlist

import "strings"

// Platform is the phone operating system a visitor picked, if any.
type Platform string

const (
	PlatformNone    Platform = ""
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// ParsePlatform accepts "ios" and "android" in any case. Anything else is PlatformNone.
func ParsePlatform(raw string) Platform {
	switch Platform(strings.ToLower(strings.TrimSpace(raw))) {
	case PlatformIOS:
		return PlatformIOS
	case PlatformAndroid:
		return PlatformAndroid
	default:
		return PlatformNone
	}
}

func (p Platform) IsSelected() bool {
	return p == PlatformIOS || p == PlatformAndroid
}

// Label is the text shown on the platform picker.
func (p Platform) Label() string {
	switch p {
	case PlatformIOS:
		return "iPhone"
	case PlatformAndroid:
		return "Android"
	default:
		return ""
	}
}

// column returns the value stored in phone_os; nil when nothing was selected.
func (p Platform) column() *string {
	if !p.IsSelected() {
		return nil
	}
	v := string(p)
	return &v
}
