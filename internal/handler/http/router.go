package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/demostore/pkg/health"
	"github.com/utafrali/demostore/pkg/httputil"
	"github.com/utafrali/demostore/pkg/middleware"

	"github.com/utafrali/demostore/internal/service"
)

// RouterConfig carries the handler-level knobs the router needs beyond the
// services themselves.
type RouterConfig struct {
	ServiceName    string
	CORS           middleware.CORSConfig
	RateLimitRPS   int
	RateLimitBurst int
	TracingEnabled bool
}

// NewRouter creates a chi router with all routes registered.
func NewRouter(
	userService *service.UserService,
	productService *service.ProductService,
	orderService *service.OrderService,
	reviewService *service.ReviewService,
	cartService *service.CartService,
	notificationService *service.NotificationService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))
	if cfg.TracingEnabled {
		r.Use(middleware.Tracing(cfg.ServiceName))
	}
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
	}

	// Service info
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{
			"service": cfg.ServiceName,
			"message": "demo store API",
		}})
	})

	// Health check endpoints
	r.Get("/health", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		promhttp.Handler().ServeHTTP(w, req)
	})

	userHandler := NewUserHandler(userService, logger)
	productHandler := NewProductHandler(productService, logger)
	orderHandler := NewOrderHandler(orderService, logger)
	reviewHandler := NewReviewHandler(reviewService, logger)
	cartHandler := NewCartHandler(cartService, logger)
	authHandler := NewAuthHandler(userService, logger)
	notificationHandler := NewNotificationHandler(notificationService, logger)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Get("/{id}", userHandler.GetUser)
		r.Delete("/{id}", userHandler.DeleteUser)

		r.Group(func(r chi.Router) {
			r.Use(ContentTypeJSON)

			r.Post("/", userHandler.CreateUser)
			r.Put("/{id}", userHandler.UpdateUser)
			r.Post("/{id}/addresses", userHandler.CreateAddress)
			r.Post("/{id}/notifications/preferences", notificationHandler.UpdatePreferences)
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)
		r.Get("/{id}", productHandler.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(ContentTypeJSON)

			r.Post("/", productHandler.CreateProduct)
			r.Post("/{id}/reviews", reviewHandler.CreateReview)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/", orderHandler.CreateOrder)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/", cartHandler.CreateCart)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/login", authHandler.Login)
		r.Post("/register", authHandler.Register)
	})

	return r
}
