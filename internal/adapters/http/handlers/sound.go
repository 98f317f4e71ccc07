package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/dto"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/app"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// SoundHandler handles background sound library endpoints.
type SoundHandler struct {
	service *app.SoundService
}

// NewSoundHandler creates a new sound handler.
func NewSoundHandler(service *app.SoundService) *SoundHandler {
	return &SoundHandler{
		service: service,
	}
}

// SoundResponse is the HTTP response structure for a sound.
type SoundResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func toSoundResponse(s domain.Sound) SoundResponse {
	return SoundResponse{
		ID:       s.ID,
		Title:    s.Title,
		URL:      s.URL,
		ImageURL: s.ImageURL,
	}
}

// List handles GET /api/v1/sounds
func (h *SoundHandler) List(c *gin.Context) {
	sounds, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(sounds, toSoundResponse))
}

// Create handles POST /api/v1/sounds
// Accepts a multipart form with title, a required audio file and an
// optional artwork image.
func (h *SoundHandler) Create(c *gin.Context) {
	upload, closeFiles, err := bindSoundUpload(c)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}
	defer closeFiles()

	sounds, err := h.service.Create(c.Request.Context(), upload)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewListResponse(sounds, toSoundResponse))
}

// Update handles PUT /api/v1/sounds/:id
// All parts are optional; only the supplied ones change.
func (h *SoundHandler) Update(c *gin.Context) {
	upload, closeFiles, err := bindSoundUpload(c)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}
	defer closeFiles()

	sounds, err := h.service.Update(c.Request.Context(), c.Param("id"), upload)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(sounds, toSoundResponse))
}

// Delete handles DELETE /api/v1/sounds/:id
// Requires confirm=true.
func (h *SoundHandler) Delete(c *gin.Context) {
	if err := dto.ConfirmDeletion(c); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	sounds, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(sounds, toSoundResponse))
}

// RegisterSoundRoutes registers sound routes on the given router group.
func (h *SoundHandler) RegisterSoundRoutes(rg *gin.RouterGroup) {
	sounds := rg.Group("/sounds")
	sounds.GET("", h.List)
	sounds.POST("", h.Create)
	sounds.PUT("/:id", h.Update)
	sounds.DELETE("/:id", h.Delete)
}

// bindSoundUpload reads the multipart sound form. The returned closer
// releases any opened file parts.
func bindSoundUpload(c *gin.Context) (ports.SoundUpload, func(), error) {
	upload := ports.SoundUpload{Title: c.PostForm("title")}

	sound, closeSound, err := optionalFormFile(c, "sound")
	if err != nil {
		return ports.SoundUpload{}, nil, err
	}

	image, closeImage, err := optionalFormFile(c, "image")
	if err != nil {
		closeSound()
		return ports.SoundUpload{}, nil, err
	}

	upload.Sound = sound
	upload.Image = image

	return upload, func() {
		closeSound()
		closeImage()
	}, nil
}
