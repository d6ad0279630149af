package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/utafrali/demostore/pkg/health"
	"github.com/utafrali/demostore/pkg/middleware"
	"github.com/utafrali/demostore/pkg/tracing"

	"github.com/utafrali/demostore/internal/auth"
	"github.com/utafrali/demostore/internal/config"
	handler "github.com/utafrali/demostore/internal/handler/http"
	"github.com/utafrali/demostore/internal/repository/memory"
	"github.com/utafrali/demostore/internal/service"
)

const serviceName = "demostore"

// App wires together all dependencies and runs the demo store service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Tracing is a no-op unless explicitly enabled.
	tracingCfg := tracing.DefaultConfig(serviceName)
	tracingCfg.Enabled = cfg.TracingEnabled
	tracingCfg.OTLPEndpoint = cfg.OTLPEndpoint
	tracingShutdown, err := tracing.InitTracer(ctx, tracingCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Build the dependency graph over a single in-memory store.
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	productRepo := memory.NewProductRepository(store)
	addressRepo := memory.NewAddressRepository(store)
	reviewRepo := memory.NewReviewRepository(store)
	cartRepo := memory.NewCartRepository(store)
	orderSeq := memory.NewOrderSequence(store)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenExpiry)

	userService := service.NewUserService(userRepo, addressRepo, tokens, logger)
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderSeq, productRepo, userRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, productRepo, userRepo, logger)
	cartService := service.NewCartService(cartRepo, productRepo, userRepo, logger)
	notificationService := service.NewNotificationService(userRepo, logger)

	if cfg.SeedDemoData {
		if err := seedDemoData(ctx, userRepo, productRepo); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info("demo data seeded")
	}

	// Health checks. The store is process memory, so readiness has nothing
	// external to probe beyond the store being constructed.
	healthHandler := health.NewHandler(serviceName)
	healthHandler.Register("store", func(ctx context.Context) error {
		if store == nil {
			return fmt.Errorf("store not initialized")
		}
		return nil
	})

	rateLimitRPS := 0
	if cfg.RateLimitEnabled {
		rateLimitRPS = cfg.RateLimitRPS
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins

	router := handler.NewRouter(
		userService,
		productService,
		orderService,
		reviewService,
		cartService,
		notificationService,
		healthHandler,
		logger,
		handler.RouterConfig{
			ServiceName:    serviceName,
			CORS:           corsCfg,
			RateLimitRPS:   rateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
			TracingEnabled: cfg.TracingEnabled,
		},
	)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
