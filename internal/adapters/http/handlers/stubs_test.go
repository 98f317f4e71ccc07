package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serve runs a single request through a fresh engine with the given
// route registration applied under /api/v1.
func serve(t *testing.T, register func(rg *gin.RouterGroup), req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	engine := gin.New()
	register(engine.Group("/api/v1"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

type fakeCategoryClient struct {
	categories []domain.Category
	listErr    error
	mutateErr  error

	created []ports.CategoryUpload
	updated map[string]ports.CategoryUpload
	deleted []string
}

func (f *fakeCategoryClient) List(_ context.Context) ([]domain.Category, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.categories, nil
}

func (f *fakeCategoryClient) Create(_ context.Context, upload ports.CategoryUpload) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.created = append(f.created, upload)
	return nil
}

func (f *fakeCategoryClient) Update(_ context.Context, id string, upload ports.CategoryUpload) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]ports.CategoryUpload)
	}
	f.updated[id] = upload
	return nil
}

func (f *fakeCategoryClient) Delete(_ context.Context, id string) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeQuoteClient struct {
	quotes    []domain.Quote
	listErr   error
	mutateErr error

	created []domain.Quote
	updated map[string]domain.Quote
	deleted []string
}

func (f *fakeQuoteClient) List(_ context.Context) ([]domain.Quote, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.quotes, nil
}

func (f *fakeQuoteClient) Create(_ context.Context, quote domain.Quote) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.created = append(f.created, quote)
	return nil
}

func (f *fakeQuoteClient) Update(_ context.Context, id string, quote domain.Quote) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]domain.Quote)
	}
	f.updated[id] = quote
	return nil
}

func (f *fakeQuoteClient) Delete(_ context.Context, id string) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeExploreClient struct {
	images    []domain.ExploreImage
	listErr   error
	mutateErr error

	created int
	updated []string
	deleted []string
}

func (f *fakeExploreClient) List(_ context.Context) ([]domain.ExploreImage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.images, nil
}

func (f *fakeExploreClient) Create(_ context.Context, _ ports.FileUpload) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.created++
	return nil
}

func (f *fakeExploreClient) Update(_ context.Context, id string, _ ports.FileUpload) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.updated = append(f.updated, id)
	return nil
}

func (f *fakeExploreClient) Delete(_ context.Context, id string) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSoundClient struct {
	sounds    []domain.Sound
	listErr   error
	mutateErr error

	created []ports.SoundUpload
	updated map[string]ports.SoundUpload
	deleted []string
}

func (f *fakeSoundClient) List(_ context.Context) ([]domain.Sound, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sounds, nil
}

func (f *fakeSoundClient) Create(_ context.Context, upload ports.SoundUpload) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.created = append(f.created, upload)
	return nil
}

func (f *fakeSoundClient) Update(_ context.Context, id string, upload ports.SoundUpload) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]ports.SoundUpload)
	}
	f.updated[id] = upload
	return nil
}

func (f *fakeSoundClient) Delete(_ context.Context, id string) error {
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeDashboardClient struct {
	stats  []domain.StatCount
	chart  []domain.ChartPoint
	recent []domain.RecentShayari

	statsErr  error
	chartErr  error
	recentErr error
}

func (f *fakeDashboardClient) Stats(_ context.Context) ([]domain.StatCount, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

func (f *fakeDashboardClient) Chart(_ context.Context) ([]domain.ChartPoint, error) {
	if f.chartErr != nil {
		return nil, f.chartErr
	}
	return f.chart, nil
}

func (f *fakeDashboardClient) Recent(_ context.Context) ([]domain.RecentShayari, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.recent, nil
}

type fakeAuthClient struct {
	token    string
	loginErr error

	emails    []string
	passwords []string
}

func (f *fakeAuthClient) Login(_ context.Context, email, password string) (string, error) {
	f.emails = append(f.emails, email)
	f.passwords = append(f.passwords, password)
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

type fakeSessionStore struct {
	token    string
	loginErr error

	logouts int
}

func (f *fakeSessionStore) Token() (string, bool) {
	return f.token, f.token != ""
}

func (f *fakeSessionStore) Authenticated() bool {
	return f.token != ""
}

func (f *fakeSessionStore) Login(token string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.token = token
	return nil
}

func (f *fakeSessionStore) Logout() error {
	f.token = ""
	f.logouts++
	return nil
}
