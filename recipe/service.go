package recipe

import (
	"log/slog"

	"github.com/poiesic/recipebox/storage"
)

// Service implements recipe, ingredient, step and vocabulary operations on a storage gateway.
// It is safe for concurrent use.
type Service struct {
	gateway storage.Gateway
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

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

// NewService creates a recipe service over an initialized gateway.
func NewService(gateway storage.Gateway, opts ...Option) (*Service, error) {
	if gateway == nil {
		return nil, ErrGatewayRequired
	}

	s := &Service{
		gateway: gateway,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.With("component", "recipe")

	return s, nil
}
