package app

import (
	"context"
	"log/slog"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/listing"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// QuotePageSize is the fixed page size for quote listings.
const QuotePageSize = 20

// QuoteService orchestrates quote management. Listings join the
// category collection, fetched concurrently, to label each quote with
// its category's title and emoji.
type QuoteService struct {
	quotes     ports.QuoteClient
	categories ports.CategoryClient
	logger     *slog.Logger
	pipeline   listing.Pipeline[domain.LabeledQuote]
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Quotes     ports.QuoteClient
	Categories ports.CategoryClient
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		quotes:     cfg.Quotes,
		categories: cfg.Categories,
		logger:     logger.With(slog.String("component", "app.QuoteService")),
		pipeline: listing.Pipeline[domain.LabeledQuote]{
			SearchFields: func(q domain.LabeledQuote) []string { return []string{q.Text} },
			CategoryKey:  func(q domain.LabeledQuote) string { return q.CategoryID },
			SortKey:      func(q domain.LabeledQuote) string { return q.Text },
			PageSize:     QuotePageSize,
		},
	}
}

// List fetches quotes and categories concurrently, labels each quote
// and applies the query pipeline. A quote whose category was deleted
// keeps its dangling reference and is labeled "Unknown".
func (s *QuoteService) List(ctx context.Context, query listing.Query) (listing.Page[domain.LabeledQuote], error) {
	quotes, categories, err := Parallel2(ctx, s.quotes.List, s.categories.List)
	if err != nil {
		return listing.Page[domain.LabeledQuote]{}, err
	}

	return s.pipeline.Run(label(quotes, categories), query), nil
}

// Create adds a quote and returns the refetched page.
func (s *QuoteService) Create(ctx context.Context, quote domain.Quote, query listing.Query) (listing.Page[domain.LabeledQuote], error) {
	if err := quote.Validate(); err != nil {
		return listing.Page[domain.LabeledQuote]{}, err
	}

	if err := s.quotes.Create(ctx, quote); err != nil {
		return listing.Page[domain.LabeledQuote]{}, err
	}

	s.logger.InfoContext(ctx, "quote created", slog.String("category_id", quote.CategoryID))

	return s.refetch(ctx, query)
}

// Update replaces a quote and returns the refetched page.
func (s *QuoteService) Update(ctx context.Context, id string, quote domain.Quote, query listing.Query) (listing.Page[domain.LabeledQuote], error) {
	if err := quote.Validate(); err != nil {
		return listing.Page[domain.LabeledQuote]{}, err
	}

	if err := s.quotes.Update(ctx, id, quote); err != nil {
		return listing.Page[domain.LabeledQuote]{}, err
	}

	s.logger.InfoContext(ctx, "quote updated", slog.String("quote_id", id))

	return s.refetch(ctx, query)
}

// Delete removes a quote and returns the refetched page.
func (s *QuoteService) Delete(ctx context.Context, id string, query listing.Query) (listing.Page[domain.LabeledQuote], error) {
	if err := s.quotes.Delete(ctx, id); err != nil {
		return listing.Page[domain.LabeledQuote]{}, err
	}

	s.logger.InfoContext(ctx, "quote deleted", slog.String("quote_id", id))

	return s.refetch(ctx, query)
}

func (s *QuoteService) refetch(ctx context.Context, query listing.Query) (listing.Page[domain.LabeledQuote], error) {
	page, err := s.List(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, "refetch after mutation failed", slog.Any("error", err))
		return s.pipeline.Run(nil, query), nil
	}

	return page, nil
}

// label joins quotes with their categories.
func label(quotes []domain.Quote, categories []domain.Category) []domain.LabeledQuote {
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	labeled := make([]domain.LabeledQuote, 0, len(quotes))
	for _, q := range quotes {
		labeled = append(labeled, domain.Label(q, byID))
	}

	return labeled
}
