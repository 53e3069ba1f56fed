package video

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/storage"
)

// Placeholder metadata used when a video can't be looked up.
const (
	PlaceholderTitle   = "YouTube Video"
	PlaceholderChannel = "Unknown Channel"
)

// ThumbnailURL returns the public thumbnail address of a video id.
func ThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/hqdefault.jpg"
}

// Placeholder builds the metadata returned when nothing better is known about a video.
func Placeholder(videoID string) *core.Video {
	return &core.Video{
		VideoId:      videoID,
		Title:        PlaceholderTitle,
		ChannelTitle: PlaceholderChannel,
		ThumbnailUrl: ThumbnailURL(videoID),
		PublishedAt:  core.Now(),
	}
}

// Service looks up video metadata and links videos to recipes.
type Service struct {
	gateway storage.Gateway
	fetcher MetadataFetcher
	pool    *ants.Pool
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithFetcher sets the metadata source. Without one every uncached lookup
// returns a placeholder.
func WithFetcher(fetcher MetadataFetcher) Option {
	return func(s *Service) error {
		s.fetcher = fetcher
		return nil
	}
}

// WithPoolSize sets the worker pool size used by LookupAll.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Service) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewService creates a video service. Call Release when done.
func NewService(gateway storage.Gateway, opts ...Option) (*Service, error) {
	if gateway == nil {
		return nil, ErrGatewayRequired
	}

	pool, err := ants.NewPool(max(runtime.NumCPU(), 1))
	if err != nil {
		return nil, err
	}

	s := &Service{
		gateway: gateway,
		pool:    pool,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(s); optErr != nil {
			s.Release()
			return nil, optErr
		}
	}
	s.logger = s.logger.With("component", "video")

	return s, nil
}

// Release releases the worker pool. The service should not be used afterwards.
func (s *Service) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Lookup resolves a video link to metadata. The returned video is not stored and
// carries no Id or RecipeId.
//
// Resolution order: a stored video with the same external id, then the metadata
// fetcher, then a placeholder. Only an unparseable link is an error.
func (s *Service) Lookup(ctx context.Context, rawURL string) (*core.Video, error) {
	videoID, err := core.ParseVideoID(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVideoURL, rawURL)
	}
	return s.lookupID(ctx, videoID)
}

func (s *Service) lookupID(ctx context.Context, videoID string) (*core.Video, error) {
	cached, err := storage.QueryAs(ctx, s.gateway, storage.Videos, func(v *core.Video) bool {
		return v.VideoId == videoID
	})
	if err != nil {
		return nil, err
	}
	if len(cached) > 0 {
		s.logger.Debug("video metadata from cache", "videoId", videoID)
		return detach(cached[0]), nil
	}

	if s.fetcher == nil {
		return Placeholder(videoID), nil
	}

	fetched, err := s.fetcher.FetchMetadata(ctx, videoID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.logger.Warn("video metadata lookup failed, using placeholder", "videoId", videoID, "err", err)
		return Placeholder(videoID), nil
	}
	v := detach(fetched)
	v.VideoId = videoID
	return v, nil
}

// LookupAll resolves many links concurrently on the worker pool. The result has
// one entry per link in input order; entries for links that failed are nil and
// their errors are joined into the returned error.
func (s *Service) LookupAll(ctx context.Context, rawURLs []string) ([]*core.Video, error) {
	results := make([]*core.Video, len(rawURLs))
	errs := make([]error, len(rawURLs))

	var wg sync.WaitGroup
	for i, rawURL := range rawURLs {
		wg.Add(1)
		submitErr := s.pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = s.Lookup(ctx, rawURL)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit lookup: %w", submitErr)
		}
	}
	wg.Wait()

	return results, errors.Join(errs...)
}

// GetVideo retrieves a stored video by id.
func (s *Service) GetVideo(ctx context.Context, id string) (*core.Video, error) {
	return storage.GetAs[*core.Video](ctx, s.gateway, storage.Videos, id)
}

// LinkToRecipe stores video as belonging to recipeID and returns the stored copy.
// A video without an id, or one currently linked to another recipe, is stored
// under a fresh id so the other link is left intact.
func (s *Service) LinkToRecipe(ctx context.Context, recipeID string, video *core.Video) (*core.Video, error) {
	if recipeID == "" {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidVideo, core.ErrMissingRecipeID)
	}
	if err := core.ValidateVideo(video); err != nil {
		return nil, err
	}

	v := *video
	if v.Id == "" || (v.RecipeId != "" && v.RecipeId != recipeID) {
		v.Id = core.NewID()
	}
	v.RecipeId = recipeID

	if _, err := s.gateway.Set(ctx, storage.Videos, &v); err != nil {
		s.logger.Error("error linking video", "recipe", recipeID, "videoId", v.VideoId, "err", err)
		return nil, err
	}
	return &v, nil
}

// LinkedVideos returns the videos linked to a recipe.
func (s *Service) LinkedVideos(ctx context.Context, recipeID string) ([]*core.Video, error) {
	return storage.QueryAs(ctx, s.gateway, storage.Videos, func(v *core.Video) bool {
		return v.RecipeId == recipeID
	})
}

// RemoveFromRecipe deletes the video with id if it is linked to recipeID.
// It reports false when the video doesn't exist or belongs to another recipe.
func (s *Service) RemoveFromRecipe(ctx context.Context, recipeID, id string) (bool, error) {
	removed := false
	err := s.gateway.Update(ctx, func(tx storage.Tx) error {
		removed = false
		v, err := storage.GetAs[*core.Video](ctx, tx, storage.Videos, id)
		if storage.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if v.RecipeId != recipeID {
			return nil
		}
		if err := tx.Remove(ctx, storage.Videos, id); err != nil {
			return err
		}
		removed = true
		return nil
	})
	if err != nil {
		s.logger.Error("error removing video", "recipe", recipeID, "id", id, "err", err)
		return false, err
	}
	return removed, nil
}

// detach copies a video's metadata without its storage identity.
func detach(v *core.Video) *core.Video {
	c := *v
	c.Id = ""
	c.RecipeId = ""
	return &c
}
