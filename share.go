package bookmarker

import "regexp"

// urlPattern matches the first URL-shaped substring in free text. This is a
// heuristic, not a strict URL grammar: scheme and www are optional, the
// host must contain a dot followed by a 2-6 letter TLD-like token, and any
// path/query is swept up greedily.
var urlPattern = regexp.MustCompile(`(https?://)?(www\.)?[-a-zA-Z0-9@:%._\+~#=]{2,256}\.[a-z]{2,6}\b([-a-zA-Z0-9@:%_\+.~#?&//=]*)?`)

// ExtractURL returns the first URL-shaped substring in text, tolerant of
// surrounding prose (share intents often arrive as "check this out:
// https://..."). The second return value reports whether one was found.
func ExtractURL(text string) (string, bool) {
	match := urlPattern.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}
