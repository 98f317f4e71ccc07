package acl

import (
	"context"
	"log/slog"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/clients"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
)

// DashboardAdapter implements ports.DashboardClient against the content
// API's three read-only dashboard endpoints.
type DashboardAdapter struct {
	BaseAdapter

	logger *slog.Logger
}

// NewDashboardAdapter creates the dashboard adapter. Panics if client is
// nil. Defaults logger to slog.Default() if nil.
func NewDashboardAdapter(client *clients.Client, logger *slog.Logger) *DashboardAdapter {
	if client == nil {
		panic("DashboardAdapter: client is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &DashboardAdapter{
		BaseAdapter: NewBaseAdapter(client, contentServiceName),
		logger:      logger,
	}
}

// externalStat is one named counter from /dashboard/stats.
type externalStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// externalChartPoint is one datapoint from /dashboard/chart. The
// upstream
// names the value field after the content type.
type externalChartPoint struct {
	Name     string `json:"name"`
	Shayaris int    `json:"shayaris"`
}

// externalRecentShayari is one entry from /dashboard/recent-shayaris.
type externalRecentShayari struct {
	Title         string `json:"title"`
	CategoryTitle string `json:"categoryTitle"`
	TimeAgo       string `json:"timeAgo"`
}

// Stats fetches the dashboard overview counters.
func (a *DashboardAdapter) Stats(ctx context.Context) ([]domain.StatCount, error) {
	body, err := a.Get(ctx, "/dashboard/stats", "fetch dashboard stats", "")
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponseForService[[]externalStat](body, a.ServiceName())
	if err != nil {
		return nil, err
	}

	stats := make([]domain.StatCount, 0, len(*ext))
	for _, e := range *ext {
		stats = append(stats, domain.StatCount{Name: e.Name, Count: e.Count})
	}

	return stats, nil
}

// Chart fetches the per-category chart datapoints.
func (a *DashboardAdapter) Chart(ctx context.Context) ([]domain.ChartPoint, error) {
	body, err := a.Get(ctx, "/dashboard/chart", "fetch dashboard chart", "")
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponseForService[[]externalChartPoint](body, a.ServiceName())
	if err != nil {
		return nil, err
	}

	points := make([]domain.ChartPoint, 0, len(*ext))
	for _, e := range *ext {
		points = append(points, domain.ChartPoint{Name: e.Name, Count: e.Shayaris})
	}

	return points, nil
}

// Recent fetches the recently added shayaris feed.
func (a *DashboardAdapter) Recent(ctx context.Context) ([]domain.RecentShayari, error) {
	body, err := a.Get(ctx, "/dashboard/recent-shayaris", "fetch recent shayaris", "")
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponseForService[[]externalRecentShayari](body, a.ServiceName())
	if err != nil {
		return nil, err
	}

	recent := make([]domain.RecentShayari, 0, len(*ext))
	for _, e := range *ext {
		recent = append(recent, domain.RecentShayari{
			Title:         e.Title,
			CategoryTitle: e.CategoryTitle,
			TimeAgo:       e.TimeAgo,
		})
	}

	return recent, nil
}
