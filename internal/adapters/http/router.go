package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/delivery-cost-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/delivery-cost-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/delivery-cost-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/delivery-cost-service/internal/platform/config"
	"github.com/jsamuelsen/delivery-cost-service/internal/platform/telemetry"
)

// Scopes accepted on the batch quote route when auth is enabled.
const (
	ScopeBatch = "delivery:batch"
	ScopeAdmin = "delivery:admin"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the base logger seeded into every request context.
	Logger *slog.Logger

	// Config is the loaded service configuration.
	Config *config.Config

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// DeliveryHandler handles the quote endpoints.
	DeliveryHandler *handlers.DeliveryHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Context logger - seed the request logger
//  3. Request ID - generate/extract request ID
//  4. Correlation ID - handle distributed tracing correlation
//  5. OpenTelemetry - tracing and metrics
//  6. Logging - request logging (skips health endpoints)
//  7. Timeout - request deadline on /api/v1
//
// Route groups:
//   - /-/ (internal): Health endpoints, no auth required
//   - /api/v1/ (public API): Delivery endpoints, gateway auth when enabled
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(middleware.Recovery(cfg.Logger), middleware.ContextLogger(cfg.Logger))
	engine.Use(middleware.RequestID(), middleware.CorrelationID())
	engine.Use(telemetry.Middleware(cfg.Config.App.Name)...)
	engine.Use(middleware.Logging())

	engine.NoRoute(func(c *gin.Context) {
		dto.AbortWithErrorCode(c, dto.ErrorCodeNotFound, "route not found")
	})

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Config.Server.RequestTimeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Config.Server.RequestTimeout))
	}

	setupAPIRoutes(apiV1, cfg)
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.DeliveryHandler == nil {
		return
	}

	auth := &cfg.Config.Auth
	if !auth.Enabled {
		cfg.DeliveryHandler.RegisterDeliveryRoutes(rg)
		return
	}

	protected := rg.Group("")
	protected.Use(middleware.RequireAuth(auth))
	cfg.DeliveryHandler.RegisterDeliveryRoutes(protected, middleware.RequireAnyScope(auth, ScopeBatch, ScopeAdmin))
}
