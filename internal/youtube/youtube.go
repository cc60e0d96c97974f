// Package youtube classifies YouTube video URLs and extracts video IDs.
// Pure string matching, no network I/O.
package youtube

import (
	"regexp"
)

var (
	// videoURLPattern accepts watch, short-link and embed URLs, with or
	// without scheme and www. The loose youtu\.?be alternation also
	// admits a bare "youtube" host; kept for lenient user input.
	videoURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.?be)/.+$`)

	// videoIDPatterns are tried in order; the first capture wins.
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11}).*`), // watch?v= and path forms
		regexp.MustCompile(`(?:youtu\.be/)([0-9A-Za-z_-]{11})`),
		regexp.MustCompile(`(?:embed/)([0-9A-Za-z_-]{11})`),
	}
)

// IsVideoURL reports whether s looks like a YouTube video URL.
func IsVideoURL(s string) bool {
	return videoURLPattern.MatchString(s)
}

// ExtractVideoID pulls the 11-character video identifier out of a YouTube
// URL. Returns false when no identifier is present (channel pages, search
// results, malformed links).
func ExtractVideoID(s string) (string, bool) {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(s); m != nil {
			return m[1], true
		}
	}
	return "", false
}
