package app

import (
	"context"
	"log/slog"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// DashboardService assembles the landing dashboard from three upstream
// feeds fetched concurrently. The dashboard is all-or-nothing: if any
// feed fails, the whole load fails rather than rendering a partial view.
type DashboardService struct {
	client ports.DashboardClient
	logger *slog.Logger
}

// DashboardServiceConfig contains configuration for the dashboard service.
type DashboardServiceConfig struct {
	Client ports.DashboardClient
	Logger *slog.Logger
}

// NewDashboardService creates a new dashboard service with the provided dependencies.
func NewDashboardService(cfg DashboardServiceConfig) *DashboardService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &DashboardService{
		client: cfg.Client,
		logger: logger.With(slog.String("component", "app.DashboardService")),
	}
}

// Load fetches stats, chart data and recent shayaris concurrently.
func (s *DashboardService) Load(ctx context.Context) (domain.Dashboard, error) {
	stats, chart, recent, err := Parallel3(ctx, s.client.Stats, s.client.Chart, s.client.Recent)
	if err != nil {
		return domain.Dashboard{}, err
	}

	return domain.Dashboard{
		Stats:  stats,
		Chart:  chart,
		Recent: recent,
	}, nil
}
