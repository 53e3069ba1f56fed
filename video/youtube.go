package video

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/poiesic/recipebox/core"
)

// Defaults for the YouTube Data API client.
const (
	DefaultBaseURL    = "https://www.googleapis.com"
	DefaultTimeout    = 10 * time.Second
	DefaultRetries    = 3
	DefaultRetryDelay = 500 * time.Millisecond
)

// MetadataFetcher retrieves metadata for a video id.
// Implementations must be safe for concurrent use.
type MetadataFetcher interface {
	// FetchMetadata returns the video's metadata with VideoId set.
	// Returns ErrVideoNotFound if the service doesn't know the id.
	FetchMetadata(ctx context.Context, videoID string) (*core.Video, error)
}

// YouTubeClient fetches video metadata from the YouTube Data API v3.
type YouTubeClient struct {
	client     *resty.Client
	apiKey     string
	retries    int
	retryDelay time.Duration
	logger     *slog.Logger
}

var _ MetadataFetcher = (*YouTubeClient)(nil)

// ClientOption configures a YouTubeClient.
type ClientOption func(*YouTubeClient)

// WithBaseURL points the client at another API host.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *YouTubeClient) {
		c.client.SetBaseURL(baseURL)
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *YouTubeClient) {
		c.client.SetTimeout(timeout)
	}
}

// WithRetries sets how many attempts a fetch makes and the base backoff delay.
func WithRetries(attempts int, delay time.Duration) ClientOption {
	return func(c *YouTubeClient) {
		if attempts < 1 {
			attempts = 1
		}
		c.retries = attempts
		c.retryDelay = delay
	}
}

// WithClientLogger sets a custom logger.
// Default is slog.Default().
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *YouTubeClient) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewYouTubeClient creates a metadata client authenticated with apiKey.
func NewYouTubeClient(apiKey string, opts ...ClientOption) (*YouTubeClient, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	c := &YouTubeClient{
		client: resty.New().
			SetBaseURL(DefaultBaseURL).
			SetHeader("Accept", "application/json").
			SetTimeout(DefaultTimeout),
		apiKey:     apiKey,
		retries:    DefaultRetries,
		retryDelay: DefaultRetryDelay,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// videosResponse is the subset of a videos.list response the client reads.
type videosResponse struct {
	Items []struct {
		Id      string  `json:"id"`
		Snippet snippet `json:"snippet"`
	} `json:"items"`
}

type snippet struct {
	Title        string               `json:"title"`
	ChannelTitle string               `json:"channelTitle"`
	Description  string               `json:"description"`
	PublishedAt  time.Time            `json:"publishedAt"`
	Thumbnails   map[string]thumbnail `json:"thumbnails"`
}

type thumbnail struct {
	URL string `json:"url"`
}

// thumbnailPreference lists thumbnail sizes from most to least preferred.
var thumbnailPreference = []string{"high", "medium", "standard", "default", "maxres"}

func (s snippet) thumbnailURL(videoID string) string {
	for _, size := range thumbnailPreference {
		if t, ok := s.Thumbnails[size]; ok && t.URL != "" {
			return t.URL
		}
	}
	return ThumbnailURL(videoID)
}

// FetchMetadata calls GET /youtube/v3/videos?part=snippet for videoID,
// retrying transient failures with exponential backoff.
func (c *YouTubeClient) FetchMetadata(ctx context.Context, videoID string) (*core.Video, error) {
	var result *core.Video
	err := RetryWithBackoff(ctx, func() error {
		var err error
		result, err = c.fetch(ctx, videoID)
		return err
	}, c.retries, c.retryDelay)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *YouTubeClient) fetch(ctx context.Context, videoID string) (*core.Video, error) {
	var body videosResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"id":   videoID,
			"part": "snippet",
			"key":  c.apiKey,
		}).
		SetResult(&body).
		Get("/youtube/v3/videos")
	if err != nil {
		if ctx.Err() != nil {
			return nil, Permanent(ctx.Err())
		}
		return nil, fmt.Errorf("youtube request: %w", err)
	}

	switch status := resp.StatusCode(); {
	case status == http.StatusOK:
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return nil, fmt.Errorf("youtube status %d", status)
	default:
		// Bad key, quota or malformed request; retrying won't help.
		return nil, Permanent(fmt.Errorf("youtube status %d: %s", status, resp.String()))
	}

	if len(body.Items) == 0 {
		return nil, Permanent(fmt.Errorf("%w: %s", ErrVideoNotFound, videoID))
	}

	s := body.Items[0].Snippet
	c.logger.Debug("fetched video metadata", "videoId", videoID, "title", s.Title)
	return &core.Video{
		VideoId:      videoID,
		Title:        s.Title,
		ChannelTitle: s.ChannelTitle,
		ThumbnailUrl: s.thumbnailURL(videoID),
		Description:  s.Description,
		PublishedAt:  s.PublishedAt.UTC().Truncate(time.Microsecond),
	}, nil
}
