package bookmarker

import "strings"

// Platform identifies which extraction strategy applies to a URL.
type Platform string

// Recognized platforms. Anything that is not one of the four known hosts
// is PlatformGeneric.
const (
	PlatformYouTube   Platform = "YouTube"
	PlatformReddit    Platform = "Reddit"
	PlatformX         Platform = "X"
	PlatformInstagram Platform = "Instagram"
	PlatformGeneric   Platform = "Web"
)

// Classify inspects a raw URL string and returns the platform that owns its
// extraction. Matching is case-insensitive substring matching on host
// fragments rather than strict URL parsing, so malformed URLs still
// classify (as Generic) instead of failing.
func Classify(rawURL string) Platform {
	u := strings.ToLower(rawURL)
	switch {
	case strings.Contains(u, "youtube.com") || strings.Contains(u, "youtu.be"):
		return PlatformYouTube
	case strings.Contains(u, "reddit.com"):
		return PlatformReddit
	case strings.Contains(u, "x.com") || strings.Contains(u, "twitter.com"):
		return PlatformX
	case strings.Contains(u, "instagram.com"):
		return PlatformInstagram
	default:
		return PlatformGeneric
	}
}
