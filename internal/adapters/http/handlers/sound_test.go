package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/dto"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/app"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
)

func newSoundHandler(client *fakeSoundClient) *SoundHandler {
	return NewSoundHandler(app.NewSoundService(app.SoundServiceConfig{
		Client: client,
		Logger: testLogger(),
	}))
}

// soundForm builds a multipart body. Empty filenames skip that part so
// partial updates can be expressed.
func soundForm(t *testing.T, title, soundFile, imageFile string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if title != "" {
		require.NoError(t, writer.WriteField("title", title))
	}

	if soundFile != "" {
		part, err := writer.CreateFormFile("sound", soundFile)
		require.NoError(t, err)
		_, err = part.Write([]byte("mp3-bytes"))
		require.NoError(t, err)
	}

	if imageFile != "" {
		part, err := writer.CreateFormFile("image", imageFile)
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestSoundHandler_List(t *testing.T) {
	handler := newSoundHandler(&fakeSoundClient{sounds: []domain.Sound{
		{ID: "s1", Title: "Rain", URL: "https://cdn.example.com/rain.mp3"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sounds", nil)
	w := serve(t, handler.RegisterSoundRoutes, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListResponse[SoundResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Rain", resp.Items[0].Title)
}

func TestSoundHandler_Create(t *testing.T) {
	t.Run("uploads title, audio and artwork", func(t *testing.T) {
		client := &fakeSoundClient{}
		handler := newSoundHandler(client)

		body, contentType := soundForm(t, "Rain", "rain.mp3", "rain.png")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sounds", body)
		req.Header.Set("Content-Type", contentType)
		w := serve(t, handler.RegisterSoundRoutes, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, client.created, 1)

		upload := client.created[0]
		assert.Equal(t, "Rain", upload.Title)
		require.NotNil(t, upload.Sound)
		assert.Equal(t, "rain.mp3", upload.Sound.Filename)
		require.NotNil(t, upload.Image)
		assert.Equal(t, "rain.png", upload.Image.Filename)
	})

	t.Run("missing audio file fails validation without an upstream call", func(t *testing.T) {
		client := &fakeSoundClient{}
		handler := newSoundHandler(client)

		body, contentType := soundForm(t, "Rain", "", "")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sounds", body)
		req.Header.Set("Content-Type", contentType)
		w := serve(t, handler.RegisterSoundRoutes, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, client.created)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
	})
}

func TestSoundHandler_Update(t *testing.T) {
	t.Run("title-only update keeps the stored files", func(t *testing.T) {
		client := &fakeSoundClient{}
		handler := newSoundHandler(client)

		body, contentType := soundForm(t, "Heavy Rain", "", "")
		req := httptest.NewRequest(http.MethodPut, "/api/v1/sounds/s1", body)
		req.Header.Set("Content-Type", contentType)
		w := serve(t, handler.RegisterSoundRoutes, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, client.updated, "s1")

		upload := client.updated["s1"]
		assert.Equal(t, "Heavy Rain", upload.Title)
		assert.Nil(t, upload.Sound)
		assert.Nil(t, upload.Image)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		client := &fakeSoundClient{}
		handler := newSoundHandler(client)

		body, contentType := soundForm(t, "", "", "")
		req := httptest.NewRequest(http.MethodPut, "/api/v1/sounds/s1", body)
		req.Header.Set("Content-Type", contentType)
		w := serve(t, handler.RegisterSoundRoutes, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, client.updated)
	})
}

func TestSoundHandler_Delete(t *testing.T) {
	t.Run("requires the confirm parameter", func(t *testing.T) {
		client := &fakeSoundClient{}
		handler := newSoundHandler(client)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/sounds/s1", nil)
		w := serve(t, handler.RegisterSoundRoutes, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, client.deleted)
	})

	t.Run("deletes when confirmed", func(t *testing.T) {
		client := &fakeSoundClient{}
		handler := newSoundHandler(client)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/sounds/s1?confirm=true", nil)
		w := serve(t, handler.RegisterSoundRoutes, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"s1"}, client.deleted)
	})
}
