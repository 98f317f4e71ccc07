package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/dto"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/app"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
)

// DashboardHandler handles the landing dashboard endpoint.
type DashboardHandler struct {
	service *app.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service *app.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// StatCountResponse is a single headline counter.
type StatCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ChartPointResponse is one bar of the per-category chart.
type ChartPointResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RecentShayariResponse is a recently added shayari, title already
// expanded for display.
type RecentShayariResponse struct {
	Title         string `json:"title"`
	CategoryTitle string `json:"categoryTitle"`
	TimeAgo       string `json:"timeAgo"`
}

// DashboardResponse is the full dashboard payload.
type DashboardResponse struct {
	Stats  []StatCountResponse     `json:"stats"`
	Chart  []ChartPointResponse    `json:"chart"`
	Recent []RecentShayariResponse `json:"recent"`
}

func toDashboardResponse(d domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Stats:  make([]StatCountResponse, 0, len(d.Stats)),
		Chart:  make([]ChartPointResponse, 0, len(d.Chart)),
		Recent: make([]RecentShayariResponse, 0, len(d.Recent)),
	}

	for _, s := range d.Stats {
		resp.Stats = append(resp.Stats, StatCountResponse{Name: s.Name, Count: s.Count})
	}

	for _, p := range d.Chart {
		resp.Chart = append(resp.Chart, ChartPointResponse{Name: p.Name, Count: p.Count})
	}

	for _, r := range d.Recent {
		resp.Recent = append(resp.Recent, RecentShayariResponse{
			Title:         r.DisplayTitle(),
			CategoryTitle: r.CategoryTitle,
			TimeAgo:       r.TimeAgo,
		})
	}

	return resp
}

// Load handles GET /api/v1/dashboard
// Assembles the three dashboard feeds; if any of them fails the whole
// request fails.
//
// @Summary Load the dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Load(c *gin.Context) {
	dashboard, err := h.service.Load(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDashboardResponse(dashboard))
}

// RegisterDashboardRoutes registers dashboard routes on the given router group.
func (h *DashboardHandler) RegisterDashboardRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Load)
}
