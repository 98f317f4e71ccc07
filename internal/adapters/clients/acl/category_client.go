package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/clients"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// contentServiceName identifies the upstream content API in errors,
// logs and health checks.
const contentServiceName = "content-api"

// CategoryAdapter implements ports.CategoryClient against the content API.
// It also doubles as the upstream health checker since the category
// collection is the cheapest endpoint to probe.
type CategoryAdapter struct {
	BaseAdapter

	logger *slog.Logger
}

// NewCategoryAdapter creates the category adapter. Panics if client is nil.
// Defaults logger to slog.Default() if nil.
func NewCategoryAdapter(client *clients.Client, logger *slog.Logger) *CategoryAdapter {
	if client == nil {
		panic("CategoryAdapter: client is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CategoryAdapter{
		BaseAdapter: NewBaseAdapter(client, contentServiceName),
		logger:      logger,
	}
}

// externalCategory is the content API's category DTO.
type externalCategory struct {
	ID      string `json:"_id"`
	Title   string `json:"title"`
	Emoji   string `json:"emoji"`
	IconURL string `json:"iconUrl"`
}

// List fetches the full category collection.
func (a *CategoryAdapter) List(ctx context.Context) ([]domain.Category, error) {
	body, err := a.Get(ctx, "/categories", "list categories", "")
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponseForService[[]externalCategory](body, a.ServiceName())
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(*ext))
	for _, e := range *ext {
		categories = append(categories, domain.Category{
			ID:      e.ID,
			Title:   e.Title,
			Emoji:   e.Emoji,
			IconURL: e.IconURL,
		})
	}

	a.logger.DebugContext(ctx, "fetched categories", slog.Int("count", len(categories)))

	return categories, nil
}

// Create posts a new category as a multipart form.
func (a *CategoryAdapter) Create(ctx context.Context, upload ports.CategoryUpload) error {
	return a.PostForm(ctx, "/categories", categoryForm(upload), "create category")
}

// Update replaces an existing category.
func (a *CategoryAdapter) Update(ctx context.Context, id string, upload ports.CategoryUpload) error {
	if err := ValidateRequired(id, "id"); err != nil {
		return err
	}

	return a.PutForm(ctx, "/categories/"+id, categoryForm(upload), "update category", id)
}

// Delete removes a category.
func (a *CategoryAdapter) Delete(ctx context.Context, id string) error {
	if err := ValidateRequired(id, "id"); err != nil {
		return err
	}

	return a.BaseAdapter.Delete(ctx, "/categories/"+id, "delete category", id)
}

func categoryForm(upload ports.CategoryUpload) *clients.MultipartForm {
	form := clients.NewMultipartForm().
		Field("title", upload.Title).
		Field("emoji", upload.Emoji)

	if upload.Icon != nil {
		form.File("icon", upload.Icon.Filename, upload.Icon.Content)
	}

	return form
}

// Name returns the health check name for the content API.
// Implements ports.HealthChecker.
func (a *CategoryAdapter) Name() string {
	return contentServiceName
}

// Check probes the content API by listing categories.
// Implements ports.HealthChecker.
func (a *CategoryAdapter) Check(ctx context.Context) error {
	resp, err := a.Client().Get(ctx, "/categories")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content API returned status %d", resp.StatusCode)
	}

	return nil
}
