package clients

import "regexp"

// Video IDs are exactly 11 characters over [A-Za-z0-9_-]. Patterns cover the
// bare ID plus the standard watch, short-link, embed, and shorts URL shapes.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([A-Za-z0-9_-]{11})$`),
	regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`/embed/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`/shorts/([A-Za-z0-9_-]{11})`),
}

// ExtractVideoID pulls the 11-character video ID out of a bare ID or any
// standard YouTube URL shape. The second return is false when nothing
// matches.
func ExtractVideoID(input string) (string, bool) {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(input); m != nil {
			return m[1], true
		}
	}
	return "", false
}
