// Package youtube classifies clipboard text against the known YouTube link
// shapes and rewrites Shorts and youtu.be links into the canonical watch form.
package youtube

import (
	"fmt"
	"regexp"
)

// LinkType identifies which YouTube URL shape a string matched.
type LinkType string

const (
	// LinkShorts is a youtube.com/shorts/<id> URL.
	LinkShorts LinkType = "shorts"
	// LinkRegular is a canonical watch URL or a youtu.be short link
	// (which normalizes to one).
	LinkRegular LinkType = "regular"
	// LinkNone means the text matched no known shape.
	LinkNone LinkType = ""
)

// Prefix matches: trailing text after the video id is tolerated.
var (
	shortsPattern  = regexp.MustCompile(`^https?://(www\.)?youtube\.com/shorts/[A-Za-z0-9_-]+`)
	watchPattern   = regexp.MustCompile(`^https?://(www\.)?youtube\.com/watch\?v=[A-Za-z0-9_-]+`)
	youtuBePattern = regexp.MustCompile(`^https?://youtu\.be/([A-Za-z0-9_-]+)`)

	shortsSegment = regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]+)`)
)

// Classify tests s against the three known shapes in precedence order:
// shorts, then watch, then youtu.be. First match wins. Anything else is
// LinkNone.
func Classify(s string) LinkType {
	switch {
	case shortsPattern.MatchString(s):
		return LinkShorts
	case watchPattern.MatchString(s):
		return LinkRegular
	case youtuBePattern.MatchString(s):
		return LinkRegular
	default:
		return LinkNone
	}
}

// Normalize rewrites s into the canonical watch form for its shape.
// Shorts URLs keep their scheme and www. prefix; youtu.be links are rebuilt
// as https://www.youtube.com/watch?v=<id> regardless of the original scheme.
// Already-canonical watch URLs pass through unchanged, so Normalize is
// idempotent.
func Normalize(s string) string {
	if shortsPattern.MatchString(s) {
		return shortsSegment.ReplaceAllString(s, "youtube.com/watch?v=$1")
	}
	if watchPattern.MatchString(s) {
		return s
	}
	if m := youtuBePattern.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("https://www.youtube.com/watch?v=%s", m[1])
	}
	return s
}
