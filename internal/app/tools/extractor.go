package tools

import (
	"regexp"
	"strings"
)

var (
	searchPattern      = regexp.MustCompile(`(?i)\b(search|find|look for)\b.*\b(video|videos)\b.*\b(about|on|for|of)\b\s+(.+)`)
	trendingPattern    = regexp.MustCompile(`(?i)\b(trending|popular)\b.*\b(videos|music)\b.*\b(in|on|about)\b\s+(.+)`)
	directVideoPattern = regexp.MustCompile(`(?i)(video|videos)(\s+of|\s+about|\s+on|\s+showing|\s+featuring)?\s+(.+)`)
)

// ExtractToolRequest picks the tool and its argument from text. It never
// fails: input that matches no pattern becomes a search for the whole text.
func ExtractToolRequest(text string) Request {
	if m := searchPattern.FindStringSubmatch(text); m != nil {
		return SearchVideo{Query: strings.TrimSpace(m[4])}
	}
	if m := trendingPattern.FindStringSubmatch(text); m != nil {
		return TrendingVideos{Category: strings.TrimSpace(m[4])}
	}
	if m := directVideoPattern.FindStringSubmatch(text); m != nil {
		return SearchVideo{Query: strings.TrimSpace(m[3])}
	}
	return SearchVideo{Query: strings.TrimSpace(text)}
}
