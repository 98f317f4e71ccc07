// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/clients"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/clients/acl"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/handlers"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/store"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/app"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/platform/config"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/platform/logging"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/platform/telemetry"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(newLoggerConfig(cfg))
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Load the durable session store
	sessions, err := store.NewTokenFile(cfg.Session.TokenFile)
	if err != nil {
		return fmt.Errorf("loading session store: %w", err)
	}

	// 7. Create the instrumented HTTP client for the content API.
	// The session token is attached per attempt so a login mid-flight
	// is picked up by retries.
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Content.BaseURL,
		ServiceName: cfg.Services.Content.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		AuthFunc: func(req *stdhttp.Request) {
			if token, ok := sessions.Token(); ok {
				req.Header.Set("Authorization", "Bearer "+token)
			}
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating HTTP client: %w", err)
	}

	// 8. Create content API adapters (ACL pattern)
	categoryClient := acl.NewCategoryAdapter(httpClient, logger)
	quoteClient := acl.NewQuoteAdapter(httpClient, logger)
	exploreClient := acl.NewExploreAdapter(httpClient, logger)
	soundClient := acl.NewSoundAdapter(httpClient, logger)
	dashboardClient := acl.NewDashboardAdapter(httpClient, logger)
	authClient := acl.NewAuthAdapter(httpClient, logger)

	// The category adapter doubles as the content API health check
	if err := healthRegistry.Register(categoryClient); err != nil {
		return fmt.Errorf("registering content API health check: %w", err)
	}

	// 9. Create application services
	categoryService := app.NewCategoryService(app.CategoryServiceConfig{
		Client: categoryClient,
		Logger: logger,
	})
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Quotes:     quoteClient,
		Categories: categoryClient,
		Logger:     logger,
	})
	exploreService := app.NewExploreService(app.ExploreServiceConfig{
		Client: exploreClient,
		Logger: logger,
	})
	soundService := app.NewSoundService(app.SoundServiceConfig{
		Client: soundClient,
		Logger: logger,
	})
	dashboardService := app.NewDashboardService(app.DashboardServiceConfig{
		Client: dashboardClient,
		Logger: logger,
	})
	authService := app.NewAuthService(app.AuthServiceConfig{
		Client:  authClient,
		Session: sessions,
		Logger:  logger,
	})

	// 10. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)

	// 11. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 12. Setup router with all middleware and routes
	routerCfg := http.RouterConfig{
		Logger:           logger,
		AppConfig:        &cfg.App,
		SessionStore:     sessions,
		HealthHandler:    healthHandler,
		AuthHandler:      handlers.NewAuthHandler(authService),
		CategoryHandler:  handlers.NewCategoryHandler(categoryService),
		QuoteHandler:     handlers.NewQuoteHandler(quoteService),
		ExploreHandler:   handlers.NewExploreHandler(exploreService),
		SoundHandler:     handlers.NewSoundHandler(soundService),
		DashboardHandler: handlers.NewDashboardHandler(dashboardService),
		Timeout:          http.DefaultRequestTimeout,
	}
	http.SetupRouter(server.Engine(), routerCfg)

	// 13. Start server (non-blocking)
	serverErr := server.Start()

	// 14. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
// newLoggerConfig maps the loaded configuration onto the logging package's
// config, including the rolling-file settings.
func newLoggerConfig(cfg *config.Config) *logging.Config {
	return &logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}
}

func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
