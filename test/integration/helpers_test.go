//go:build integration

package integration

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/jsamuelsen/delivery-cost-service/internal/adapters/http"
	"github.com/jsamuelsen/delivery-cost-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/delivery-cost-service/internal/app"
	"github.com/jsamuelsen/delivery-cost-service/internal/platform/config"
	"github.com/jsamuelsen/delivery-cost-service/internal/ports"
)

// integrationConfig returns a complete configuration with gateway auth on.
func integrationConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "delivery-cost-service", Environment: "test", Version: "integration"},
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            config.DefaultServerPort,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			RequestTimeout:  2 * time.Second,
			MaxRequestSize:  config.DefaultMaxRequestSize,
		},
		Log: config.LogConfig{Level: "error", Format: "json"},
		Auth: config.AuthConfig{
			Enabled:       true,
			SubjectHeader: "X-User-ID",
			ScopesHeader:  "X-User-Scopes",
		},
		Quote: config.QuoteConfig{Batch: config.BatchConfig{Limit: 5, Workers: 2}},
	}
}

// newServiceHandler wires the full HTTP stack in-process.
func newServiceHandler(cfg *config.Config) (http.Handler, error) {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.DiscardHandler)

	registry := ports.NewHealthRegistry()
	if err := registry.Register(app.NewRulesChecker()); err != nil {
		return nil, err
	}

	svc := app.NewDeliveryQuoteService(app.DeliveryQuoteServiceConfig{
		Logger:       logger,
		BatchWorkers: cfg.Quote.Batch.Workers,
	})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:          logger,
		Config:          cfg,
		HealthHandler:   handlers.NewHealthHandler(registry, handlers.NewBuildInfo(cfg.App.Name, cfg.App.Version, "test", "")),
		DeliveryHandler: handlers.NewDeliveryHandler(svc, cfg.Quote.Batch.Limit),
	})

	return engine, nil
}

// startService starts an in-process server and closes it with the test.
func startService(t *testing.T) *httptest.Server {
	t.Helper()

	handler, err := newServiceHandler(integrationConfig())
	if err != nil {
		t.Fatalf("wiring service: %v", err)
	}

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv
}
