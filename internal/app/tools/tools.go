package tools

import "github.com/PabloGalante/inner-mirror/internal/domain"

// ToolName identifies one of the remote video operations.
type ToolName string

const (
	ToolSearchVideo        ToolName = "search_video"
	ToolTrendingVideos     ToolName = "get_trending_videos"
	ToolMoodRecommendation ToolName = "get_mood_based_recommendation"
)

// Request is a resolved tool invocation. The set of implementations is closed:
// SearchVideo, TrendingVideos and MoodRecommendation.
type Request interface {
	Name() ToolName
	isRequest()
}

// SearchVideo is a keyword search. MaxResults <= 0 means 1.
type SearchVideo struct {
	Query      string
	MaxResults int
}

// TrendingVideos lists the most popular videos of a category. MaxResults <= 0 means 3.
type TrendingVideos struct {
	Category   string
	MaxResults int
}

// MoodRecommendation searches with a phrase chosen for the mood. MaxResults <= 0 means 1.
type MoodRecommendation struct {
	Mood       domain.Mood
	MaxResults int
}

func (SearchVideo) Name() ToolName        { return ToolSearchVideo }
func (TrendingVideos) Name() ToolName     { return ToolTrendingVideos }
func (MoodRecommendation) Name() ToolName { return ToolMoodRecommendation }

func (SearchVideo) isRequest()        {}
func (TrendingVideos) isRequest()     {}
func (MoodRecommendation) isRequest() {}

// Result is the normalized outcome of a dispatch.
type Result struct {
	Success bool           `json:"success"`
	Results []domain.Video `json:"results,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func failure(msg string) Result {
	return Result{Success: false, Error: msg}
}
