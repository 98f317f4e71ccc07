package app

import (
	"context"
	"log/slog"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// ExploreService manages the explore feed images. The feed is small
// and shown whole, so listings are not paginated.
type ExploreService struct {
	client ports.ExploreClient
	logger *slog.Logger
}

// ExploreServiceConfig contains configuration for the explore service.
type ExploreServiceConfig struct {
	Client ports.ExploreClient
	Logger *slog.Logger
}

// NewExploreService creates a new explore service with the provided dependencies.
func NewExploreService(cfg ExploreServiceConfig) *ExploreService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ExploreService{
		client: cfg.Client,
		logger: logger.With(slog.String("component", "app.ExploreService")),
	}
}

// List returns every explore image.
func (s *ExploreService) List(ctx context.Context) ([]domain.ExploreImage, error) {
	return s.client.List(ctx)
}

// Create uploads a new explore image and returns the refetched feed.
func (s *ExploreService) Create(ctx context.Context, image ports.FileUpload) ([]domain.ExploreImage, error) {
	if err := s.client.Create(ctx, image); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "explore image created")

	return s.refetch(ctx)
}

// Update replaces an explore image and returns the refetched feed.
func (s *ExploreService) Update(ctx context.Context, id string, image ports.FileUpload) ([]domain.ExploreImage, error) {
	if err := s.client.Update(ctx, id, image); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "explore image updated", slog.String("image_id", id))

	return s.refetch(ctx)
}

// Delete removes an explore image and returns the refetched feed.
func (s *ExploreService) Delete(ctx context.Context, id string) ([]domain.ExploreImage, error) {
	if err := s.client.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "explore image deleted", slog.String("image_id", id))

	return s.refetch(ctx)
}

func (s *ExploreService) refetch(ctx context.Context) ([]domain.ExploreImage, error) {
	images, err := s.client.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "refetch after mutation failed", slog.Any("error", err))
		return []domain.ExploreImage{}, nil
	}

	return images, nil
}
