// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/listing"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// CategoryPageSize is the fixed page size for category listings.
const CategoryPageSize = 10

// CategoryService orchestrates category management. Every mutation
// forwards to the upstream API and then refetches the collection, so
// the returned page always reflects the server's state.
type CategoryService struct {
	client   ports.CategoryClient
	logger   *slog.Logger
	pipeline listing.Pipeline[domain.Category]
}

// CategoryServiceConfig contains configuration for the category service.
type CategoryServiceConfig struct {
	Client ports.CategoryClient
	Logger *slog.Logger
}

// NewCategoryService creates a new category service with the provided dependencies.
func NewCategoryService(cfg CategoryServiceConfig) *CategoryService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CategoryService{
		client: cfg.Client,
		logger: logger.With(slog.String("component", "app.CategoryService")),
		pipeline: listing.Pipeline[domain.Category]{
			SearchFields: func(c domain.Category) []string { return []string{c.Title, c.Emoji} },
			SortKey:      func(c domain.Category) string { return c.Title },
			SortKeys: map[string]func(domain.Category) string{
				"title": func(c domain.Category) string { return c.Title },
				"emoji": func(c domain.Category) string { return c.Emoji },
			},
			PageSize: CategoryPageSize,
		},
	}
}

// List fetches the category collection and applies the query pipeline.
func (s *CategoryService) List(ctx context.Context, query listing.Query) (listing.Page[domain.Category], error) {
	categories, err := s.client.List(ctx)
	if err != nil {
		return listing.Page[domain.Category]{}, err
	}

	return s.pipeline.Run(categories, query), nil
}

// Create adds a category and returns the refetched page.
func (s *CategoryService) Create(ctx context.Context, upload ports.CategoryUpload, query listing.Query) (listing.Page[domain.Category], error) {
	candidate := domain.Category{Title: upload.Title, Emoji: upload.Emoji}
	if err := candidate.Validate(); err != nil {
		return listing.Page[domain.Category]{}, err
	}

	if err := s.client.Create(ctx, upload); err != nil {
		return listing.Page[domain.Category]{}, err
	}

	s.logger.InfoContext(ctx, "category created", slog.String("title", upload.Title))

	return s.refetch(ctx, query)
}

// Update replaces a category and returns the refetched page.
func (s *CategoryService) Update(ctx context.Context, id string, upload ports.CategoryUpload, query listing.Query) (listing.Page[domain.Category], error) {
	candidate := domain.Category{ID: id, Title: upload.Title, Emoji: upload.Emoji}
	if err := candidate.Validate(); err != nil {
		return listing.Page[domain.Category]{}, err
	}

	if err := s.client.Update(ctx, id, upload); err != nil {
		return listing.Page[domain.Category]{}, err
	}

	s.logger.InfoContext(ctx, "category updated", slog.String("category_id", id))

	return s.refetch(ctx, query)
}

// Delete removes a category and returns the refetched page. Quotes that
// referenced it keep their dangling reference and list under the
// "Unknown" label.
func (s *CategoryService) Delete(ctx context.Context, id string, query listing.Query) (listing.Page[domain.Category], error) {
	if err := s.client.Delete(ctx, id); err != nil {
		return listing.Page[domain.Category]{}, err
	}

	s.logger.InfoContext(ctx, "category deleted", slog.String("category_id", id))

	return s.refetch(ctx, query)
}

// refetch re-reads the collection after a successful mutation. The
// mutation already succeeded, so a refetch failure degrades to an empty
// page rather than failing the request.
func (s *CategoryService) refetch(ctx context.Context, query listing.Query) (listing.Page[domain.Category], error) {
	page, err := s.List(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, "refetch after mutation failed", slog.Any("error", err))
		return s.pipeline.Run(nil, query), nil
	}

	return page, nil
}
