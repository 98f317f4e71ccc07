package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/dto"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/app"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// CategoryHandler handles category management endpoints.
type CategoryHandler struct {
	service *app.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service *app.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// CategoryResponse is the HTTP response structure for a category.
type CategoryResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Emoji   string `json:"emoji"`
	IconURL string `json:"iconUrl,omitempty"`
}

func toCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:      c.ID,
		Title:   c.Title,
		Emoji:   c.Emoji,
		IconURL: c.IconURL,
	}
}

// List handles GET /api/v1/categories
// Returns the category collection filtered, sorted and paginated.
//
// @Summary List categories
// @Tags categories
// @Produce json
// @Param search query string false "Case-insensitive title or emoji filter"
// @Param sort query string false "Sort direction: asc or desc"
// @Param page query int false "1-based page number"
// @Success 200 {object} dto.PageResponse[CategoryResponse]
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	query, err := dto.BindListQuery(c)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, toCategoryResponse))
}

// Create handles POST /api/v1/categories
// Accepts a multipart form with title, emoji and an optional icon file.
func (h *CategoryHandler) Create(c *gin.Context) {
	query, err := dto.BindListQuery(c)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	upload, closeIcon, err := bindCategoryUpload(c)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}
	defer closeIcon()

	page, err := h.service.Create(c.Request.Context(), upload, query)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPageResponse(page, toCategoryResponse))
}

// Update handles PUT /api/v1/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	query, err := dto.BindListQuery(c)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	upload, closeIcon, err := bindCategoryUpload(c)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}
	defer closeIcon()

	page, err := h.service.Update(c.Request.Context(), c.Param("id"), upload, query)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, toCategoryResponse))
}

// Delete handles DELETE /api/v1/categories/:id
// Requires confirm=true. Quotes referencing the category keep their
// dangling reference and list under "Unknown" afterwards.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := dto.ConfirmDeletion(c); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	query, err := dto.BindListQuery(c)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	page, err := h.service.Delete(c.Request.Context(), c.Param("id"), query)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, toCategoryResponse))
}

// RegisterCategoryRoutes registers category routes on the given router group.
func (h *CategoryHandler) RegisterCategoryRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.GET("", h.List)
	categories.POST("", h.Create)
	categories.PUT("/:id", h.Update)
	categories.DELETE("/:id", h.Delete)
}

// bindCategoryUpload reads the multipart category form. The returned
// closer releases the icon file, if any.
func bindCategoryUpload(c *gin.Context) (ports.CategoryUpload, func(), error) {
	upload := ports.CategoryUpload{
		Title: c.PostForm("title"),
		Emoji: c.PostForm("emoji"),
	}

	file, closeFile, err := optionalFormFile(c, "icon")
	if err != nil {
		return ports.CategoryUpload{}, nil, err
	}

	upload.Icon = file

	return upload, closeFile, nil
}

// optionalFormFile opens a multipart file part if present. The closer
// is always non-nil so callers can defer it unconditionally.
func optionalFormFile(c *gin.Context, field string) (*ports.FileUpload, func(), error) {
	noop := func() {}

	// FormFile errors when the part is absent or the request has no
	// multipart body. Either way there is no file to forward.
	header, err := c.FormFile(field)
	if err != nil {
		return nil, noop, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, err
	}

	return &ports.FileUpload{Filename: header.Filename, Content: file}, func() { _ = file.Close() }, nil
}
