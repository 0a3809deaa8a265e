package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(context.Background(), "test-key", option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return c
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "cats", q.Get("q"))
		assert.Equal(t, "video", q.Get("type"))
		assert.Equal(t, "2", q.Get("maxResults"))
		assert.Equal(t, "test-key", q.Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [
			{"id": {"kind": "youtube#video", "videoId": "abc"}, "snippet": {"title": "Cats &amp; Dogs"}},
			{"id": {"kind": "youtube#video", "videoId": "def"}, "snippet": {"title": "More cats"}}
		]}`))
	})

	videos, err := c.Search(context.Background(), "cats", 2)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "Cats & Dogs", videos[0].Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", videos[0].URL)
	assert.Equal(t, "https://www.youtube.com/watch?v=def", videos[1].URL)
}

func TestTrending(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "mostPopular", q.Get("chart"))
		assert.Equal(t, "10", q.Get("videoCategoryId"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [{"id": "xyz", "snippet": {"title": "Top song"}}]}`))
	})

	videos, err := c.Trending(context.Background(), "10", 3)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "Top song", videos[0].Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=xyz", videos[0].URL)
}

func TestSearch_ErrorOpensBreaker(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "quotaExceeded"}}`))
	})

	for i := 0; i < 5; i++ {
		_, err := c.Search(context.Background(), "x", 1)
		require.Error(t, err)
	}

	_, err := c.Search(context.Background(), "x", 1)
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 5, calls)
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := New(context.Background(), "")
	assert.Error(t, err)
}
