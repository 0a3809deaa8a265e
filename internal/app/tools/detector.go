package tools

import "regexp"

var directRequestPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(show|provide|give|send|get|find)(\s+me)?\s+a\s+video`),
	regexp.MustCompile(`(?i)(can|could)\s+you\s+(show|provide|give|send|get|find)(\s+me)?\s+a\s+video`),
	regexp.MustCompile(`(?i)(i\s+want|i'd\s+like|please\s+show)\s+(to\s+see\s+)?(a\s+)?video`),
	regexp.MustCompile(`(?i)video\s+of`),
	regexp.MustCompile(`(?i)videos?\s+(about|on|showing|featuring)`),
	regexp.MustCompile(`(?i)(watch|see)\s+(a\s+)?videos?`),
}

var (
	videoKeywords = regexp.MustCompile(`(?i)\b(watch|look|see|show|gaze|glance|stare|peek|scan|view|notice|spot|glimpse|behold|catch)\b.*\b(video|play|film|clip|movie|watch)\b`)
	toolKeywords  = regexp.MustCompile(`(?i)\b(search|find|get|recommend|suggest)\b.*\b(video|youtube|clip|music)\b`)
)

// DetectVideoRequest reports whether text asks for a video.
func DetectVideoRequest(text string) bool {
	for _, p := range directRequestPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return videoKeywords.MatchString(text) || toolKeywords.MatchString(text)
}
