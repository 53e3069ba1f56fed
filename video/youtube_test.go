package video

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "items": [{
    "id": "dQw4w9WgXcQ",
    "snippet": {
      "title": "Perfect Omelette",
      "channelTitle": "Home Kitchen",
      "description": "Three eggs and patience.",
      "publishedAt": "2021-03-04T05:06:07Z",
      "thumbnails": {
        "default": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/default.jpg"},
        "high": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}
      }
    }
  }]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *YouTubeClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewYouTubeClient("test-key",
		WithBaseURL(server.URL),
		WithTimeout(2*time.Second),
		WithRetries(3, time.Millisecond))
	require.NoError(t, err)
	return client
}

func TestNewYouTubeClient_RequiresKey(t *testing.T) {
	_, err := NewYouTubeClient("")
	assert.ErrorIs(t, err, ErrAPIKeyRequired)
}

func TestFetchMetadata(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
		assert.Equal(t, "dQw4w9WgXcQ", r.URL.Query().Get("id"))
		assert.Equal(t, "snippet", r.URL.Query().Get("part"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	})

	v, err := client.FetchMetadata(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", v.VideoId)
	assert.Equal(t, "Perfect Omelette", v.Title)
	assert.Equal(t, "Home Kitchen", v.ChannelTitle)
	assert.Equal(t, "Three eggs and patience.", v.Description)
	assert.Equal(t, "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg", v.ThumbnailUrl)
	assert.Equal(t, time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC), v.PublishedAt)
	assert.Empty(t, v.Id)
}

func TestFetchMetadata_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	})

	v, err := client.FetchMetadata(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Perfect Omelette", v.Title)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchMetadata_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.FetchMetadata(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchMetadata_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	})

	_, err := client.FetchMetadata(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestFetchMetadata_ThumbnailFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [{"id": "dQw4w9WgXcQ", "snippet": {"title": "No thumbs", "publishedAt": "2021-03-04T05:06:07Z"}}]}`))
	})

	v, err := client.FetchMetadata(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, ThumbnailURL("dQw4w9WgXcQ"), v.ThumbnailUrl)
}
