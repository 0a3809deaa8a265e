package tools

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/PabloGalante/inner-mirror/internal/domain"
	"github.com/PabloGalante/inner-mirror/internal/observability"
)

const (
	defaultSearchResults   = 1
	defaultTrendingResults = 3
	defaultMoodResults     = 1

	fallbackCategoryID = "10" // music
	fallbackMoodQuery  = "relaxing videos"
)

var categoryIDs = map[string]string{
	"music":      "10",
	"comedy":     "23",
	"education":  "27",
	"science":    "28",
	"meditation": "26",
}

var moodQueries = map[domain.Mood]string{
	domain.MoodJoy:        "uplifting motivational videos",
	domain.MoodPositive:   "inspiring videos",
	domain.MoodStress:     "relaxing meditation music",
	domain.MoodNegative:   "calming nature videos",
	domain.MoodSadness:    "uplifting music videos",
	domain.MoodAnger:      "calming meditation videos",
	domain.MoodSurprise:   "amazing nature videos",
	domain.MoodGratitude:  "gratitude meditation videos",
	domain.MoodConfusion:  "explanatory videos",
	domain.MoodCurious:    "educational videos",
	domain.MoodGreeting:   "positive morning videos",
	domain.MoodReflection: "mindfulness reflection videos",
	domain.MoodNeutral:    "relaxing videos",
}

// CategoryID resolves a category name, ignoring case and surrounding
// punctuation. Unknown names resolve to music.
func CategoryID(name string) string {
	key := strings.ToLower(strings.TrimFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	}))
	if id, ok := categoryIDs[key]; ok {
		return id
	}
	return fallbackCategoryID
}

// MoodQuery returns the search phrase used to recommend a video for m.
func MoodQuery(m domain.Mood) string {
	if q, ok := moodQueries[m]; ok {
		return q
	}
	return fallbackMoodQuery
}

// Dispatcher routes tool requests to the video-search collaborator.
type Dispatcher struct {
	videos  domain.VideoSearcher
	metrics *observability.Metrics
}

func NewDispatcher(videos domain.VideoSearcher, metrics *observability.Metrics) *Dispatcher {
	return &Dispatcher{videos: videos, metrics: metrics}
}

// Dispatch never returns an error: remote failures come back as a failed Result.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Result {
	log := observability.LoggerFromContext(ctx)

	var (
		videos []domain.Video
		err    error
		name   ToolName = "<nil>"
	)

	switch r := req.(type) {
	case SearchVideo:
		name = r.Name()
		videos, err = d.videos.Search(ctx, r.Query, orDefault(r.MaxResults, defaultSearchResults))
	case TrendingVideos:
		name = r.Name()
		videos, err = d.videos.Trending(ctx, CategoryID(r.Category), orDefault(r.MaxResults, defaultTrendingResults))
	case MoodRecommendation:
		name = r.Name()
		videos, err = d.videos.Search(ctx, MoodQuery(r.Mood), orDefault(r.MaxResults, defaultMoodResults))
	default:
		if req != nil {
			name = req.Name()
		}
		d.record(name, "unknown")
		return failure(fmt.Sprintf("unknown tool: %s", name))
	}

	if err != nil {
		log.Warn("tool call failed", zap.String("tool", string(name)), zap.Error(err))
		d.record(name, "error")
		return failure(err.Error())
	}

	log.Debug("tool call done", zap.String("tool", string(name)), zap.Int("results", len(videos)))
	d.record(name, "success")
	return Result{Success: true, Results: videos}
}

func (d *Dispatcher) record(name ToolName, outcome string) {
	if d.metrics == nil {
		return
	}
	d.metrics.ToolCalls.WithLabelValues(string(name), outcome).Inc()
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
