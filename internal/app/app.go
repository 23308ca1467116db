package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marketdash/marketdash/config"
	"github.com/marketdash/marketdash/internal/api"
	"github.com/marketdash/marketdash/internal/service"
	"github.com/marketdash/marketdash/internal/stockclient"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router plus a cleanup function for graceful shutdown.
//
// Responsibilities:
//   - Creates the stock client against the configured backend URL.
//   - Wires client -> service -> HTTP handler -> router.
//   - Registers health and readiness probes (readiness pings the backend).
//   - Provides a cleanup function to release pooled connections.
//
// The API mode holds no database connection; the only external dependency
// is the market-data backend.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	client := clientCtor(cfg.Backend.URL)

	svc := service.NewStockService(client)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx)
	})
	healthHandler.Register(router)

	cleanup := func() {
		client.CloseIdleConnections()
	}

	return router, cleanup, nil
}

// clientCtor is an indirection used by InitializeApp; overridden in tests.
var clientCtor = stockclient.New
