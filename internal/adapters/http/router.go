package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/dto"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/handlers"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/middleware"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/platform/config"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/platform/telemetry"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// SessionStore backs the admin session guard.
	SessionStore ports.SessionStore

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// AuthHandler handles login and logout.
	AuthHandler *handlers.AuthHandler

	// CategoryHandler handles category management endpoints.
	CategoryHandler *handlers.CategoryHandler

	// QuoteHandler handles shayari management endpoints.
	QuoteHandler *handlers.QuoteHandler

	// ExploreHandler handles explore image management endpoints.
	ExploreHandler *handlers.ExploreHandler

	// SoundHandler handles sound management endpoints.
	SoundHandler *handlers.SoundHandler

	// DashboardHandler handles the dashboard endpoint.
	DashboardHandler *handlers.DashboardHandler

	// Timeout is the default request timeout.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips health endpoints)
//  6. Timeout - request deadline (applied per-route or globally)
//
// Route groups:
//   - /-/ (internal): Health endpoints, no auth required
//   - /api/v1/auth: Login and logout, reachable anonymously
//   - /api/v1/ (everything else): Requires an admin session
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// Apply global middleware in order
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	// Unmatched paths get the standard error envelope instead of gin's default
	engine.NoRoute(func(c *gin.Context) {
		RespondWithErrorCode(c, dto.ErrorCodeNotFound, "route not found")
	})

	// Register health endpoints (no auth, no timeout for probes)
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// Setup API v1 routes with timeout
	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	// Register API routes
	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers business API routes. Auth endpoints stay
// outside the session guard so the console can log in; everything else
// requires an established session.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthHandler != nil {
		cfg.AuthHandler.RegisterAuthRoutes(rg)
	}

	admin := rg.Group("")
	admin.Use(middleware.RequireSession(cfg.SessionStore))

	if cfg.CategoryHandler != nil {
		cfg.CategoryHandler.RegisterCategoryRoutes(admin)
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(admin)
	}

	if cfg.ExploreHandler != nil {
		cfg.ExploreHandler.RegisterExploreRoutes(admin)
	}

	if cfg.SoundHandler != nil {
		cfg.SoundHandler.RegisterSoundRoutes(admin)
	}

	if cfg.DashboardHandler != nil {
		cfg.DashboardHandler.RegisterDashboardRoutes(admin)
	}
}

// SetupMinimalRouter sets up a minimal router with just health endpoints.
// Useful for testing or lightweight deployments.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	sessions ports.SessionStore,
	healthHandler *handlers.HealthHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		SessionStore:  sessions,
		HealthHandler: healthHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
