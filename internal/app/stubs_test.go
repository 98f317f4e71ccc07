package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubCategoryClient implements ports.CategoryClient against a fixed
// in-memory list, recording calls and optionally failing them.
type stubCategoryClient struct {
	categories []domain.Category
	listErr    error
	mutateErr  error

	listCalls int
	created   []ports.CategoryUpload
	updated   []string
	deleted   []string
}

func (c *stubCategoryClient) List(ctx context.Context) ([]domain.Category, error) {
	c.listCalls++
	if c.listErr != nil {
		return nil, c.listErr
	}

	return c.categories, nil
}

func (c *stubCategoryClient) Create(ctx context.Context, upload ports.CategoryUpload) error {
	c.created = append(c.created, upload)

	return c.mutateErr
}

func (c *stubCategoryClient) Update(ctx context.Context, id string, upload ports.CategoryUpload) error {
	c.updated = append(c.updated, id)

	return c.mutateErr
}

func (c *stubCategoryClient) Delete(ctx context.Context, id string) error {
	c.deleted = append(c.deleted, id)

	return c.mutateErr
}

type stubQuoteClient struct {
	quotes    []domain.Quote
	listErr   error
	mutateErr error

	listCalls int
	created   []domain.Quote
	updated   []string
	deleted   []string
}

func (c *stubQuoteClient) List(ctx context.Context) ([]domain.Quote, error) {
	c.listCalls++
	if c.listErr != nil {
		return nil, c.listErr
	}

	return c.quotes, nil
}

func (c *stubQuoteClient) Create(ctx context.Context, quote domain.Quote) error {
	c.created = append(c.created, quote)

	return c.mutateErr
}

func (c *stubQuoteClient) Update(ctx context.Context, id string, quote domain.Quote) error {
	c.updated = append(c.updated, id)

	return c.mutateErr
}

func (c *stubQuoteClient) Delete(ctx context.Context, id string) error {
	c.deleted = append(c.deleted, id)

	return c.mutateErr
}

type stubExploreClient struct {
	images    []domain.ExploreImage
	listErr   error
	mutateErr error

	created []ports.FileUpload
	updated []string
	deleted []string
}

func (c *stubExploreClient) List(ctx context.Context) ([]domain.ExploreImage, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}

	return c.images, nil
}

func (c *stubExploreClient) Create(ctx context.Context, image ports.FileUpload) error {
	c.created = append(c.created, image)

	return c.mutateErr
}

func (c *stubExploreClient) Update(ctx context.Context, id string, image ports.FileUpload) error {
	c.updated = append(c.updated, id)

	return c.mutateErr
}

func (c *stubExploreClient) Delete(ctx context.Context, id string) error {
	c.deleted = append(c.deleted, id)

	return c.mutateErr
}

type stubSoundClient struct {
	sounds    []domain.Sound
	listErr   error
	mutateErr error

	created []ports.SoundUpload
	updated []string
	deleted []string
}

func (c *stubSoundClient) List(ctx context.Context) ([]domain.Sound, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}

	return c.sounds, nil
}

func (c *stubSoundClient) Create(ctx context.Context, upload ports.SoundUpload) error {
	c.created = append(c.created, upload)

	return c.mutateErr
}

func (c *stubSoundClient) Update(ctx context.Context, id string, upload ports.SoundUpload) error {
	c.updated = append(c.updated, id)

	return c.mutateErr
}

func (c *stubSoundClient) Delete(ctx context.Context, id string) error {
	c.deleted = append(c.deleted, id)

	return c.mutateErr
}

type stubDashboardClient struct {
	stats  []domain.StatCount
	chart  []domain.ChartPoint
	recent []domain.RecentShayari

	statsErr  error
	chartErr  error
	recentErr error
}

func (c *stubDashboardClient) Stats(ctx context.Context) ([]domain.StatCount, error) {
	if c.statsErr != nil {
		return nil, c.statsErr
	}

	return c.stats, nil
}

func (c *stubDashboardClient) Chart(ctx context.Context) ([]domain.ChartPoint, error) {
	if c.chartErr != nil {
		return nil, c.chartErr
	}

	return c.chart, nil
}

func (c *stubDashboardClient) Recent(ctx context.Context) ([]domain.RecentShayari, error) {
	if c.recentErr != nil {
		return nil, c.recentErr
	}

	return c.recent, nil
}

type stubAuthClient struct {
	token string
	err   error

	emails    []string
	passwords []string
}

func (c *stubAuthClient) Login(ctx context.Context, email, password string) (string, error) {
	c.emails = append(c.emails, email)
	c.passwords = append(c.passwords, password)

	if c.err != nil {
		return "", c.err
	}

	return c.token, nil
}

type stubSessionStore struct {
	token     string
	loginErr  error
	logoutErr error

	logins  []string
	logouts int
}

func (s *stubSessionStore) Token() (string, bool) {
	return s.token, s.token != ""
}

func (s *stubSessionStore) Authenticated() bool {
	return s.token != ""
}

func (s *stubSessionStore) Login(token string) error {
	if s.loginErr != nil {
		return s.loginErr
	}

	s.logins = append(s.logins, token)
	s.token = token

	return nil
}

func (s *stubSessionStore) Logout() error {
	if s.logoutErr != nil {
		return s.logoutErr
	}

	s.logouts++
	s.token = ""

	return nil
}
