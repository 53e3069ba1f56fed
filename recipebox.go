// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package recipebox

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/poiesic/recipebox/config"
	"github.com/poiesic/recipebox/recipe"
	"github.com/poiesic/recipebox/search"
	"github.com/poiesic/recipebox/shopping"
	"github.com/poiesic/recipebox/storage"
	"github.com/poiesic/recipebox/storage/badger"
	"github.com/poiesic/recipebox/transfer"
	"github.com/poiesic/recipebox/video"
)

// Box owns an open recipe database and the services built on it.
// Services are constructed once and shared; Box holds no global state.
type Box struct {
	cfg      *config.Config
	backend  *badger.Backend
	gateway  *badger.Gateway
	recipes  *recipe.Service
	searcher *search.Searcher
	videos   *video.Service
	shopping *shopping.Service
	logger   *slog.Logger
}

// BoxOption configures a Box.
type BoxOption func(*boxOptions)

type boxOptions struct {
	logger  *slog.Logger
	fetcher video.MetadataFetcher
}

// WithLogger sets the logger shared by every service.
func WithLogger(logger *slog.Logger) BoxOption {
	return func(o *boxOptions) {
		o.logger = logger
	}
}

// WithFetcher replaces the metadata fetcher built from the configuration.
func WithFetcher(fetcher video.MetadataFetcher) BoxOption {
	return func(o *boxOptions) {
		o.fetcher = fetcher
	}
}

// Open opens (or creates) the database described by cfg, migrates it to the
// current schema and seeds the default categories and tags.
// A nil cfg uses config.DefaultConfig().
func Open(ctx context.Context, cfg *config.Config, opts ...BoxOption) (*Box, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &boxOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	logger := options.logger

	backend, err := badger.OpenBackend(cfg.DBPath, cfg.InMemory)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DBPath, "err", err)
		return nil, err
	}

	box := &Box{
		cfg:     cfg,
		backend: backend,
		logger:  logger,
	}
	if err := box.init(ctx, options); err != nil {
		box.Close()
		return nil, err
	}
	return box, nil
}

func (b *Box) init(ctx context.Context, options *boxOptions) error {
	var err error

	b.gateway, err = badger.NewGateway(b.backend, badger.WithLogger(b.logger))
	if err != nil {
		return err
	}
	if err = b.gateway.Initialize(ctx); err != nil {
		return err
	}

	b.recipes, err = recipe.NewService(b.gateway, recipe.WithLogger(b.logger))
	if err != nil {
		return err
	}
	if err = b.recipes.Initialize(ctx); err != nil {
		return err
	}

	b.searcher, err = search.NewSearcher(b.gateway, search.WithLogger(b.logger))
	if err != nil {
		return err
	}

	fetcher := options.fetcher
	if fetcher == nil && b.cfg.YouTubeAPIKey != "" {
		fetcher, err = video.NewYouTubeClient(b.cfg.YouTubeAPIKey,
			video.WithBaseURL(b.cfg.YouTubeBaseURL),
			video.WithTimeout(b.cfg.LookupTimeout),
			video.WithRetries(b.cfg.LookupRetries, b.cfg.LookupRetryDelay),
			video.WithClientLogger(b.logger),
		)
		if err != nil {
			return err
		}
	}
	videoOpts := []video.Option{
		video.WithPoolSize(b.cfg.LookupWorkers),
		video.WithLogger(b.logger),
	}
	if fetcher != nil {
		videoOpts = append(videoOpts, video.WithFetcher(fetcher))
	} else {
		b.logger.Info("no YouTube API key configured, video lookups return placeholders")
	}
	b.videos, err = video.NewService(b.gateway, videoOpts...)
	if err != nil {
		return err
	}

	b.shopping, err = shopping.NewService(b.gateway, shopping.WithLogger(b.logger))
	return err
}

// Close releases the lookup pool and closes the database.
func (b *Box) Close() error {
	if b.videos != nil {
		b.videos.Release()
	}

	var errs []error
	if b.gateway != nil {
		if err := b.gateway.Close(); err != nil {
			b.logger.Error("error closing gateway", "err", err)
			errs = append(errs, err)
		}
	}
	if !b.backend.IsClosed() {
		if err := b.backend.Close(); err != nil {
			b.logger.Error("error closing backend storage", "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *Box) Config() *config.Config {
	return b.cfg
}

func (b *Box) Gateway() storage.Gateway {
	return b.gateway
}

func (b *Box) Recipes() *recipe.Service {
	return b.recipes
}

func (b *Box) Searcher() *search.Searcher {
	return b.searcher
}

func (b *Box) Videos() *video.Service {
	return b.videos
}

func (b *Box) Shopping() *shopping.Service {
	return b.shopping
}

// NewImporter creates a recipe book importer bound to this box.
// Progress is written to progress when it is not nil.
func (b *Box) NewImporter(progress io.Writer, opts ...transfer.ImporterOption) (*transfer.Importer, error) {
	all := []transfer.ImporterOption{transfer.WithLogger(b.logger)}
	if progress != nil {
		all = append(all, transfer.WithProgress(progress))
	}
	return transfer.NewImporter(b.recipes, b.videos, append(all, opts...)...)
}

func (b *Box) NewExporter() (*transfer.Exporter, error) {
	return transfer.NewExporter(b.recipes, b.logger)
}
