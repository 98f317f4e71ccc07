package acl

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

func TestExploreAdapter_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/explore", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"_id":"e1","url":"https://cdn.example.com/1.jpg"},
			{"_id":"e2","url":"https://cdn.example.com/2.jpg"}
		]`))
	})

	adapter := NewExploreAdapter(client, testLogger())

	images, err := adapter.List(context.Background())
	require.NoError(t, err)
	require.Len(t, images, 2)

	assert.Equal(t, "e1", images[0].ID)
	assert.Equal(t, "https://cdn.example.com/1.jpg", images[0].URL)
}

func TestExploreAdapter_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/explore", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		assert.Equal(t, "sunset.jpg", header.Filename)

		w.WriteHeader(http.StatusCreated)
	})

	adapter := NewExploreAdapter(client, testLogger())

	err := adapter.Create(context.Background(), ports.FileUpload{
		Filename: "sunset.jpg",
		Content:  strings.NewReader("jpeg-bytes"),
	})
	assert.NoError(t, err)
}

func TestExploreAdapter_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/explore/e1", r.URL.Path)

		w.WriteHeader(http.StatusOK)
	})

	adapter := NewExploreAdapter(client, testLogger())

	err := adapter.Update(context.Background(), "e1", ports.FileUpload{
		Filename: "replaced.jpg",
		Content:  strings.NewReader("jpeg-bytes"),
	})
	assert.NoError(t, err)
}

func TestExploreAdapter_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/explore/e1", r.URL.Path)

		w.WriteHeader(http.StatusOK)
	})

	adapter := NewExploreAdapter(client, testLogger())

	assert.NoError(t, adapter.Delete(context.Background(), "e1"))
}
