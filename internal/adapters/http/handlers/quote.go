package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/dto"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/app"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
)

// QuoteHandler handles quote management endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// QuoteRequest is the JSON body for quote mutations.
type QuoteRequest struct {
	Text       string `json:"text"       validate:"required,notempty"`
	CategoryID string `json:"categoryId" validate:"required"`
}

// QuoteResponse is the HTTP response structure for a quote. Text keeps
// the stored escape sequences; DisplayText has them expanded for
// rendering.
type QuoteResponse struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	DisplayText   string `json:"displayText"`
	CategoryID    string `json:"categoryId"`
	CategoryTitle string `json:"categoryTitle"`
	CategoryEmoji string `json:"categoryEmoji,omitempty"`
}

func toQuoteResponse(q domain.LabeledQuote) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		Text:          q.Text,
		DisplayText:   q.DisplayText(),
		CategoryID:    q.CategoryID,
		CategoryTitle: q.CategoryTitle,
		CategoryEmoji: q.CategoryEmoji,
	}
}

// List handles GET /api/v1/quotes
// Returns quotes labeled with their category, filtered, sorted and
// paginated.
//
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Param search query string false "Case-insensitive text filter"
// @Param category query string false "Category ID filter"
// @Param sort query string false "Sort direction: asc or desc"
// @Param page query int false "1-based page number"
// @Success 200 {object} dto.PageResponse[QuoteResponse]
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.NewPageResponse(page, toQuoteResponse))
}

// Create handles POST /api/v1/quotes
func (h *QuoteHandler) Create(c *gin.Context) {
	query, err := dto.BindListQuery(c)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	var req QuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	page, err := h.service.Create(c.Request.Context(), domain.Quote{
		Text:       req.Text,
		CategoryID: req.CategoryID,
	}, query)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPageResponse(page, toQuoteResponse))
}

// Update handles PUT /api/v1/quotes/:id
func (h *QuoteHandler) Update(c *gin.Context) {
	query, err := dto.BindListQuery(c)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	var req QuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	page, err := h.service.Update(c.Request.Context(), c.Param("id"), domain.Quote{
		Text:       req.Text,
		CategoryID: req.CategoryID,
	}, query)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page, toQuoteResponse))
}

// Delete handles DELETE /api/v1/quotes/:id
// Requires confirm=true; without it the upstream is never called.
func (h *QuoteHandler) Delete(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.NewPageResponse(page, toQuoteResponse))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.List)
	quotes.POST("", h.Create)
	quotes.PUT("/:id", h.Update)
	quotes.DELETE("/:id", h.Delete)
}
