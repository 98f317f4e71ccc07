package acl

import (
	"context"
	"log/slog"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/clients"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// SoundAdapter implements ports.SoundClient against the content API.
type SoundAdapter struct {
	BaseAdapter

	logger *slog.Logger
}

// NewSoundAdapter creates the sound adapter. Panics if client is nil.
// Defaults logger to slog.Default() if nil.
func NewSoundAdapter(client *clients.Client, logger *slog.Logger) *SoundAdapter {
	if client == nil {
		panic("SoundAdapter: client is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SoundAdapter{
		BaseAdapter: NewBaseAdapter(client, contentServiceName),
		logger:      logger,
	}
}

// externalSound is the content API's sound DTO.
type externalSound struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Image string `json:"image"`
}

// List fetches the full sound collection.
func (a *SoundAdapter) List(ctx context.Context) ([]domain.Sound, error) {
	body, err := a.Get(ctx, "/sounds", "list sounds", "")
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponseForService[[]externalSound](body, a.ServiceName())
	if err != nil {
		return nil, err
	}

	sounds := make([]domain.Sound, 0, len(*ext))
	for _, e := range *ext {
		sounds = append(sounds, domain.Sound{
			ID:       e.ID,
			Title:    e.Title,
			URL:      e.URL,
			ImageURL: e.Image,
		})
	}

	a.logger.DebugContext(ctx, "fetched sounds", slog.Int("count", len(sounds)))

	return sounds, nil
}

// Create uploads a new sound with its cover image.
func (a *SoundAdapter) Create(ctx context.Context, upload ports.SoundUpload) error {
	return a.PostForm(ctx, "/sounds", soundForm(upload), "create sound")
}

// Update replaces any subset of a sound's title, audio file and cover
// image. Unset parts are omitted from the form and keep their current
// value upstream.
func (a *SoundAdapter) Update(ctx context.Context, id string, upload ports.SoundUpload) error {
	if err := ValidateRequired(id, "id"); err != nil {
		return err
	}

	return a.PutForm(ctx, "/sounds/"+id, soundForm(upload), "update sound", id)
}

// Delete removes a sound.
func (a *SoundAdapter) Delete(ctx context.Context, id string) error {
	if err := ValidateRequired(id, "id"); err != nil {
		return err
	}

	return a.BaseAdapter.Delete(ctx, "/sounds/"+id, "delete sound", id)
}

func soundForm(upload ports.SoundUpload) *clients.MultipartForm {
	form := clients.NewMultipartForm()

	if upload.Title != "" {
		form.Field("title", upload.Title)
	}
	if upload.Sound != nil {
		form.File("sound", upload.Sound.Filename, upload.Sound.Content)
	}
	if upload.Image != nil {
		form.File("image", upload.Image.Filename, upload.Image.Content)
	}

	return form
}
