package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectVideoRequest(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Find me a video about mindfulness meditation", true},
		{"Could you show me a video of the ocean?", true},
		{"I'd like to see a video", true},
		{"VIDEO OF cats", true},
		{"any videos showing sunsets", true},
		{"I want to watch videos tonight", true},
		{"let's catch a movie", true},
		{"can you recommend some music", true},
		{"search youtube for lofi", true},
		{"I had a long day at work", false},
		{"I feel anxious about tomorrow", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectVideoRequest(tt.text), tt.text)
	}
}

func TestExtractToolRequest(t *testing.T) {
	tests := []struct {
		text string
		want Request
	}{
		{"Find me a video about mindfulness meditation", SearchVideo{Query: "mindfulness meditation"}},
		{"search for videos on breathing exercises", SearchVideo{Query: "breathing exercises"}},
		{"What are the popular videos in Comedy", TrendingVideos{Category: "Comedy"}},
		{"show me trending music on science", TrendingVideos{Category: "science"}},
		{"a video of waves crashing", SearchVideo{Query: "waves crashing"}},
		{"videos showing northern lights", SearchVideo{Query: "northern lights"}},
		{"  calm piano  ", SearchVideo{Query: "calm piano"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractToolRequest(tt.text), tt.text)
	}
}

func TestExtractToolRequestSearchContainsTopic(t *testing.T) {
	text := "Find me a video about mindfulness meditation"
	require.True(t, DetectVideoRequest(text))

	req := ExtractToolRequest(text)
	search, ok := req.(SearchVideo)
	require.True(t, ok)
	assert.Equal(t, ToolSearchVideo, req.Name())
	assert.Contains(t, search.Query, "mindfulness meditation")
}
