package youtube

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/PabloGalante/inner-mirror/internal/domain"
	"github.com/PabloGalante/inner-mirror/internal/observability"
)

const watchURL = "https://www.youtube.com/watch?v="

// Client implements domain.VideoSearcher on the YouTube Data API v3.
// Calls go through a circuit breaker so a failing API is not hammered once
// per chat message.
type Client struct {
	svc     *yt.Service
	breaker *gobreaker.CircuitBreaker
}

// New builds a client authenticated with an API key. Extra options are
// appended after the key (tests use option.WithEndpoint).
func New(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube api key is required")
	}

	svc, err := yt.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}

	return &Client{svc: svc, breaker: newBreaker("youtube")}, nil
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			observability.WithFields(zap.String("breaker", name)).Warn("circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
}

// Search returns up to maxResults videos matching query, in API order.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]domain.Video, error) {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.svc.Search.List([]string{"snippet"}).
			Q(query).
			Type("video").
			MaxResults(int64(maxResults)).
			Context(ctx).
			Do()
		if err != nil {
			return nil, err
		}

		videos := make([]domain.Video, 0, len(resp.Items))
		for _, item := range resp.Items {
			if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
				continue
			}
			videos = append(videos, video(item.Id.VideoId, item.Snippet.Title))
		}
		return videos, nil
	})
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}
	return out.([]domain.Video), nil
}

// Trending returns the region's most popular videos in a category.
func (c *Client) Trending(ctx context.Context, categoryID string, maxResults int) ([]domain.Video, error) {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.svc.Videos.List([]string{"snippet"}).
			Chart("mostPopular").
			VideoCategoryId(categoryID).
			MaxResults(int64(maxResults)).
			Context(ctx).
			Do()
		if err != nil {
			return nil, err
		}

		videos := make([]domain.Video, 0, len(resp.Items))
		for _, item := range resp.Items {
			if item.Id == "" || item.Snippet == nil {
				continue
			}
			videos = append(videos, video(item.Id, item.Snippet.Title))
		}
		return videos, nil
	})
	if err != nil {
		return nil, fmt.Errorf("youtube trending: %w", err)
	}
	return out.([]domain.Video), nil
}

// Snippet titles arrive HTML-escaped ("Don&#39;t").
func video(id, title string) domain.Video {
	return domain.Video{Title: html.UnescapeString(title), URL: watchURL + id}
}
