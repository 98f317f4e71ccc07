package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/dto"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/app"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
)

func newQuoteHandler(quotes *fakeQuoteClient, categories *fakeCategoryClient) *QuoteHandler {
	return NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{
		Quotes:     quotes,
		Categories: categories,
		Logger:     testLogger(),
	}))
}

func decodeQuotePage(t *testing.T, w *httptest.ResponseRecorder) dto.PageResponse[QuoteResponse] {
	t.Helper()

	var page dto.PageResponse[QuoteResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	return page
}

func TestQuoteHandler_List(t *testing.T) {
	quotes := &fakeQuoteClient{quotes: []domain.Quote{
		{ID: "q1", Text: `dil ki baat\nankhon se`, CategoryID: "c1"},
		{ID: "q2", Text: "zindagi ek safar", CategoryID: "c2"},
		{ID: "q3", Text: "orphaned lines", CategoryID: "gone"},
	}}
	categories := &fakeCategoryClient{categories: []domain.Category{
		{ID: "c1", Title: "Love", Emoji: "❤️"},
		{ID: "c2", Title: "Life"},
	}}
	handler := newQuoteHandler(quotes, categories)

	t.Run("labels quotes and expands display text", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes", nil)
		w := serve(t, handler.RegisterQuoteRoutes, req)

		require.Equal(t, http.StatusOK, w.Code)
		page := decodeQuotePage(t, w)
		require.Len(t, page.Items, 3)
		assert.Equal(t, 3, page.TotalItems)
		assert.Equal(t, app.QuotePageSize, page.PageSize)

		byID := make(map[string]QuoteResponse)
		for _, item := range page.Items {
			byID[item.ID] = item
		}

		assert.Equal(t, "Love", byID["q1"].CategoryTitle)
		assert.Equal(t, "❤️", byID["q1"].CategoryEmoji)
		assert.Equal(t, `dil ki baat\nankhon se`, byID["q1"].Text)
		assert.Equal(t, "dil ki baat\nankhon se", byID["q1"].DisplayText)
		assert.Equal(t, domain.UnknownCategoryTitle, byID["gone"].CategoryTitle)
	})

	t.Run("filters by category", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes?category=c2", nil)
		w := serve(t, handler.RegisterQuoteRoutes, req)

		require.Equal(t, http.StatusOK, w.Code)
		page := decodeQuotePage(t, w)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "q2", page.Items[0].ID)
	})

	t.Run("rejects an invalid sort direction", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes?sort=upwards", nil)
		w := serve(t, handler.RegisterQuoteRoutes, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
	})

	t.Run("upstream failure maps to 503", func(t *testing.T) {
		broken := newQuoteHandler(
			&fakeQuoteClient{listErr: domain.NewUnavailableError("content-api", "connection refused")},
			&fakeCategoryClient{},
		)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes", nil)
		w := serve(t, broken.RegisterQuoteRoutes, req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeUnavailable, resp.Error.Code)
	})
}

func TestQuoteHandler_Create(t *testing.T) {
	t.Run("creates and returns the refreshed listing", func(t *testing.T) {
		quotes := &fakeQuoteClient{quotes: []domain.Quote{
			{ID: "q1", Text: "naya shayari", CategoryID: "c1"},
		}}
		handler := newQuoteHandler(quotes, &fakeCategoryClient{categories: []domain.Category{
			{ID: "c1", Title: "Love"},
		}})

		body := strings.NewReader(`{"text":"naya shayari","categoryId":"c1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", body)
		req.Header.Set("Content-Type", "application/json")
		w := serve(t, handler.RegisterQuoteRoutes, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, quotes.created, 1)
		assert.Equal(t, "naya shayari", quotes.created[0].Text)
		assert.Equal(t, "c1", quotes.created[0].CategoryID)

		page := decodeQuotePage(t, w)
		require.Len(t, page.Items, 1)
	})

	t.Run("missing category id fails validation without an upstream call", func(t *testing.T) {
		quotes := &fakeQuoteClient{}
		handler := newQuoteHandler(quotes, &fakeCategoryClient{})

		body := strings.NewReader(`{"text":"naya shayari"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", body)
		req.Header.Set("Content-Type", "application/json")
		w := serve(t, handler.RegisterQuoteRoutes, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, quotes.created)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		handler := newQuoteHandler(&fakeQuoteClient{}, &fakeCategoryClient{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := serve(t, handler.RegisterQuoteRoutes, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestQuoteHandler_Update(t *testing.T) {
	quotes := &fakeQuoteClient{quotes: []domain.Quote{
		{ID: "q1", Text: "badla hua", CategoryID: "c1"},
	}}
	handler := newQuoteHandler(quotes, &fakeCategoryClient{categories: []domain.Category{
		{ID: "c1", Title: "Love"},
	}})

	body := strings.NewReader(`{"text":"badla hua","categoryId":"c1"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/quotes/q1", body)
	req.Header.Set("Content-Type", "application/json")
	w := serve(t, handler.RegisterQuoteRoutes, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, quotes.updated, "q1")
	assert.Equal(t, "badla hua", quotes.updated["q1"].Text)
}

func TestQuoteHandler_Delete(t *testing.T) {
	t.Run("requires the confirm parameter", func(t *testing.T) {
		quotes := &fakeQuoteClient{}
		handler := newQuoteHandler(quotes, &fakeCategoryClient{})

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/quotes/q1", nil)
		w := serve(t, handler.RegisterQuoteRoutes, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, quotes.deleted)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Message, "confirm")
	})

	t.Run("deletes when confirmed", func(t *testing.T) {
		quotes := &fakeQuoteClient{}
		handler := newQuoteHandler(quotes, &fakeCategoryClient{})

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/quotes/q1?confirm=true", nil)
		w := serve(t, handler.RegisterQuoteRoutes, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"q1"}, quotes.deleted)
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		quotes := &fakeQuoteClient{mutateErr: domain.NewNotFoundError("quote", "missing")}
		handler := newQuoteHandler(quotes, &fakeCategoryClient{})

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/quotes/missing?confirm=true", nil)
		w := serve(t, handler.RegisterQuoteRoutes, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestQuoteHandler_RegisterQuoteRoutes(t *testing.T) {
	handler := newQuoteHandler(&fakeQuoteClient{}, &fakeCategoryClient{})

	router := gin.New()
	handler.RegisterQuoteRoutes(router.Group("/api/v1"))

	routeMap := make(map[string]bool)
	for _, r := range router.Routes() {
		routeMap[r.Method+" "+r.Path] = true
	}

	for _, expected := range []string{
		"GET /api/v1/quotes",
		"POST /api/v1/quotes",
		"PUT /api/v1/quotes/:id",
		"DELETE /api/v1/quotes/:id",
	} {
		assert.True(t, routeMap[expected], "missing route: %s", expected)
	}
}
