package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/dto"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/app"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// ExploreHandler handles explore gallery endpoints.
type ExploreHandler struct {
	service *app.ExploreService
}

// NewExploreHandler creates a new explore handler.
func NewExploreHandler(service *app.ExploreService) *ExploreHandler {
	return &ExploreHandler{
		service: service,
	}
}

// ExploreImageResponse is the HTTP response structure for an explore image.
type ExploreImageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func toExploreImageResponse(img domain.ExploreImage) ExploreImageResponse {
	return ExploreImageResponse{ID: img.ID, URL: img.URL}
}

// List handles GET /api/v1/explore
func (h *ExploreHandler) List(c *gin.Context) {
	images, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(images, toExploreImageResponse))
}

// Create handles POST /api/v1/explore
// Accepts a multipart form with a required image file.
func (h *ExploreHandler) Create(c *gin.Context) {
	file, closeFile, err := requiredFormFile(c, "image")
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}
	defer closeFile()

	images, err := h.service.Create(c.Request.Context(), *file)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewListResponse(images, toExploreImageResponse))
}

// Update handles PUT /api/v1/explore/:id
func (h *ExploreHandler) Update(c *gin.Context) {
	file, closeFile, err := requiredFormFile(c, "image")
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}
	defer closeFile()

	images, err := h.service.Update(c.Request.Context(), c.Param("id"), *file)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(images, toExploreImageResponse))
}

// Delete handles DELETE /api/v1/explore/:id
// Requires confirm=true.
func (h *ExploreHandler) Delete(c *gin.Context) {
	if err := dto.ConfirmDeletion(c); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	images, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(images, toExploreImageResponse))
}

// RegisterExploreRoutes registers explore routes on the given router group.
func (h *ExploreHandler) RegisterExploreRoutes(rg *gin.RouterGroup) {
	explore := rg.Group("/explore")
	explore.GET("", h.List)
	explore.POST("", h.Create)
	explore.PUT("/:id", h.Update)
	explore.DELETE("/:id", h.Delete)
}

// requiredFormFile opens a multipart file part that must be present.
func requiredFormFile(c *gin.Context, field string) (*ports.FileUpload, func(), error) {
	file, closeFile, err := optionalFormFile(c, field)
	if err != nil {
		return nil, nil, err
	}

	if file == nil {
		closeFile()
		return nil, nil, fmt.Errorf("%w: %s file is required", dto.ErrValidation, field)
	}

	return file, closeFile, nil
}
