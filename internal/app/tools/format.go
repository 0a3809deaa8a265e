package tools

import (
	"fmt"
	"strings"
)

// Format renders a tool result as chat text.
func Format(result Result, name ToolName) string {
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Unknown error"
		}
		return fmt.Sprintf("I tried to use the %s tool, but encountered an error: %s", name, msg)
	}

	if len(result.Results) == 0 {
		return fmt.Sprintf("I used the %s tool, but didn't find any results.", name)
	}

	first := result.Results[0]
	switch name {
	case ToolSearchVideo:
		return fmt.Sprintf("I found a video that might interest you: '%s'\n%s", first.Title, first.URL)
	case ToolTrendingVideos:
		var b strings.Builder
		b.WriteString("Here are some trending videos you might enjoy:\n")
		for i, v := range result.Results {
			fmt.Fprintf(&b, "%d. '%s'\n%s\n", i+1, v.Title, v.URL)
		}
		return b.String()
	case ToolMoodRecommendation:
		return fmt.Sprintf("Based on your mood, you might enjoy this video: '%s'\n%s", first.Title, first.URL)
	default:
		lines := make([]string, 0, len(result.Results))
		for _, v := range result.Results {
			lines = append(lines, fmt.Sprintf("- %s (%s)", v.Title, v.URL))
		}
		return fmt.Sprintf("Here are the results from the %s tool:\n", name) + strings.Join(lines, "\n")
	}
}
