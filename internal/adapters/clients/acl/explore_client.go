package acl

import (
	"context"
	"log/slog"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/clients"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// ExploreAdapter implements ports.ExploreClient against the content API.
type ExploreAdapter struct {
	BaseAdapter

	logger *slog.Logger
}

// NewExploreAdapter creates the explore gallery adapter. Panics if
// client is nil. Defaults logger to slog.Default() if nil.
func NewExploreAdapter(client *clients.Client, logger *slog.Logger) *ExploreAdapter {
	if client == nil {
		panic("ExploreAdapter: client is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ExploreAdapter{
		BaseAdapter: NewBaseAdapter(client, contentServiceName),
		logger:      logger,
	}
}

// externalExploreImage is the content API's explore image DTO.
type externalExploreImage struct {
	ID  string `json:"_id"`
	URL string `json:"url"`
}

// List fetches the full explore gallery.
func (a *ExploreAdapter) List(ctx context.Context) ([]domain.ExploreImage, error) {
	body, err := a.Get(ctx, "/explore", "list explore images", "")
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponseForService[[]externalExploreImage](body, a.ServiceName())
	if err != nil {
		return nil, err
	}

	images := make([]domain.ExploreImage, 0, len(*ext))
	for _, e := range *ext {
		images = append(images, domain.ExploreImage{ID: e.ID, URL: e.URL})
	}

	a.logger.DebugContext(ctx, "fetched explore images", slog.Int("count", len(images)))

	return images, nil
}

// Create uploads a new gallery image.
func (a *ExploreAdapter) Create(ctx context.Context, image ports.FileUpload) error {
	form := clients.NewMultipartForm().File("image", image.Filename, image.Content)

	return a.PostForm(ctx, "/explore", form, "create explore image")
}

// Update replaces the image of an existing gallery entry.
func (a *ExploreAdapter) Update(ctx context.Context, id string, image ports.FileUpload) error {
	if err := ValidateRequired(id, "id"); err != nil {
		return err
	}

	form := clients.NewMultipartForm().File("image", image.Filename, image.Content)

	return a.PutForm(ctx, "/explore/"+id, form, "update explore image", id)
}

// Delete removes a gallery entry.
func (a *ExploreAdapter) Delete(ctx context.Context, id string) error {
	if err := ValidateRequired(id, "id"); err != nil {
		return err
	}

	return a.BaseAdapter.Delete(ctx, "/explore/"+id, "delete explore image", id)
}
