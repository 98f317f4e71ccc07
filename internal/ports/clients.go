// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"
	"io"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
)

// FileUpload is a streamed file attached to a mutation. Content is read
// once while the request body is built.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// CategoryUpload carries the fields of a category create or update.
// Icon is optional.
type CategoryUpload struct {
	Title string
	Emoji string
	Icon  *FileUpload
}

// SoundUpload carries the fields of a sound create or update. On update
// any subset of the fields may be set; unset fields keep their current
// value upstream.
type SoundUpload struct {
	Title string
	Sound *FileUpload
	Image *FileUpload
}

// CategoryClient integrates with the content API's category collection.
// Returns domain.ErrUnavailable when the upstream is unreachable and
// domain.ErrNotFound for unknown identifiers.
type CategoryClient interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, upload CategoryUpload) error
	Update(ctx context.Context, id string, upload CategoryUpload) error
	Delete(ctx context.Context, id string) error
}

// QuoteClient integrates with the content API's quote collection.
type QuoteClient interface {
	List(ctx context.Context) ([]domain.Quote, error)
	Create(ctx context.Context, quote domain.Quote) error
	Update(ctx context.Context, id string, quote domain.Quote) error
	Delete(ctx context.Context, id string) error
}

// ExploreClient integrates with the content API's explore image gallery.
type ExploreClient interface {
	List(ctx context.Context) ([]domain.ExploreImage, error)
	Create(ctx context.Context, image FileUpload) error
	Update(ctx context.Context, id string, image FileUpload) error
	Delete(ctx context.Context, id string) error
}

// SoundClient integrates with the content API's sound collection.
type SoundClient interface {
	List(ctx context.Context) ([]domain.Sound, error)
	Create(ctx context.Context, upload SoundUpload) error
	Update(ctx context.Context, id string, upload SoundUpload) error
	Delete(ctx context.Context, id string) error
}

// DashboardClient reads the three dashboard datasets. Each method maps
// to one upstream endpoint so callers can fetch them concurrently.
type DashboardClient interface {
	Stats(ctx context.Context) ([]domain.StatCount, error)
	Chart(ctx context.Context) ([]domain.ChartPoint, error)
	Recent(ctx context.Context) ([]domain.RecentShayari, error)
}

// AuthClient exchanges admin credentials for a session token.
// Returns domain.ErrUnauthorized with the upstream's message when the
// credentials are rejected.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (string, error)
}
