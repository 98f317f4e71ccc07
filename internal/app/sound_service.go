package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// SoundService manages the background sound library.
type SoundService struct {
	client ports.SoundClient
	logger *slog.Logger
}

// SoundServiceConfig contains configuration for the sound service.
type SoundServiceConfig struct {
	Client ports.SoundClient
	Logger *slog.Logger
}

// NewSoundService creates a new sound service with the provided dependencies.
func NewSoundService(cfg SoundServiceConfig) *SoundService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SoundService{
		client: cfg.Client,
		logger: logger.With(slog.String("component", "app.SoundService")),
	}
}

// List returns every sound in the library.
func (s *SoundService) List(ctx context.Context) ([]domain.Sound, error) {
	return s.client.List(ctx)
}

// Create uploads a new sound. Title and the audio file are both
// required on creation.
func (s *SoundService) Create(ctx context.Context, upload ports.SoundUpload) ([]domain.Sound, error) {
	if strings.TrimSpace(upload.Title) == "" {
		return nil, domain.NewValidationError("title", "must not be empty")
	}
	if upload.Sound == nil {
		return nil, domain.NewValidationError("sound", "audio file is required")
	}

	if err := s.client.Create(ctx, upload); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "sound created", slog.String("title", upload.Title))

	return s.refetch(ctx)
}

// Update applies a partial update: only the fields present in the
// upload are sent, the rest keep their stored values.
func (s *SoundService) Update(ctx context.Context, id string, upload ports.SoundUpload) ([]domain.Sound, error) {
	if upload.Title == "" && upload.Sound == nil && upload.Image == nil {
		return nil, domain.NewValidationError("sound", "nothing to update")
	}

	if err := s.client.Update(ctx, id, upload); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "sound updated", slog.String("sound_id", id))

	return s.refetch(ctx)
}

// Delete removes a sound and returns the refetched library.
func (s *SoundService) Delete(ctx context.Context, id string) ([]domain.Sound, error) {
	if err := s.client.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "sound deleted", slog.String("sound_id", id))

	return s.refetch(ctx)
}

func (s *SoundService) refetch(ctx context.Context) ([]domain.Sound, error) {
	sounds, err := s.client.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "refetch after mutation failed", slog.Any("error", err))
		return []domain.Sound{}, nil
	}

	return sounds, nil
}
