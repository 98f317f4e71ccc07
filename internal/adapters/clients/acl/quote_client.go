package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/clients"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/platform/logging"
)

// QuoteAdapter implements ports.QuoteClient against the content API.
type QuoteAdapter struct {
	BaseAdapter

	logger *slog.Logger
}

// NewQuoteAdapter creates the quote adapter. Panics if client is nil.
// Defaults logger to slog.Default() if nil.
func NewQuoteAdapter(client *clients.Client, logger *slog.Logger) *QuoteAdapter {
	if client == nil {
		panic("QuoteAdapter: client is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteAdapter{
		BaseAdapter: NewBaseAdapter(client, contentServiceName),
		logger:      logger,
	}
}

// externalQuote is the content API's quote DTO.
// This is an internal type - never exposed outside the ACL.
type externalQuote struct {
	ID         string `json:"_id"`
	Text       string `json:"text"`
	CategoryID string `json:"categoryId"`
}

// externalQuoteList wraps the quote collection. Unlike the other
// collections, the quotes endpoint nests the array under a key.
type externalQuoteList struct {
	Quotes []externalQuote `json:"quotes"`
}

// quotePayload is the JSON body for quote mutations.
type quotePayload struct {
	Text       string `json:"text"`
	CategoryID string `json:"categoryId"`
}

// List fetches the full quote collection.
func (a *QuoteAdapter) List(ctx context.Context) ([]domain.Quote, error) {
	const path = "/quotes"
	a.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	body, err := a.Get(ctx, path, "list quotes", "")
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponseForService[externalQuoteList](body, a.ServiceName())
	if err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, 0, len(ext.Quotes))
	for _, e := range ext.Quotes {
		quotes = append(quotes, domain.Quote{
			ID:         e.ID,
			Text:       e.Text,
			CategoryID: e.CategoryID,
		})
	}

	a.logger.DebugContext(ctx, "fetched quotes", slog.Int("count", len(quotes)))

	return quotes, nil
}

// Create posts a new quote.
func (a *QuoteAdapter) Create(ctx context.Context, quote domain.Quote) error {
	body, err := encodeQuotePayload(quote)
	if err != nil {
		return err
	}

	respBody, err := a.Post(ctx, "/quotes", body, "create quote")
	if err != nil {
		return err
	}

	return drain(respBody)
}

// Update replaces an existing quote.
func (a *QuoteAdapter) Update(ctx context.Context, id string, quote domain.Quote) error {
	if err := ValidateRequired(id, "id"); err != nil {
		return err
	}

	body, err := encodeQuotePayload(quote)
	if err != nil {
		return err
	}

	respBody, err := a.Put(ctx, "/quotes/"+id, body, "update quote", id)
	if err != nil {
		return err
	}

	return drain(respBody)
}

// Delete removes a quote.
func (a *QuoteAdapter) Delete(ctx context.Context, id string) error {
	if err := ValidateRequired(id, "id"); err != nil {
		return err
	}

	return a.BaseAdapter.Delete(ctx, "/quotes/"+id, "delete quote", id)
}

func encodeQuotePayload(quote domain.Quote) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(quotePayload{
		Text:       quote.Text,
		CategoryID: quote.CategoryID,
	}); err != nil {
		return nil, fmt.Errorf("encoding quote payload: %w", err)
	}

	return &buf, nil
}
