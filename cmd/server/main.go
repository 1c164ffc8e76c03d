// Package main implements the entry point for the users & orders demo
// API server: a two-resource CRUD service backed by in-memory stores
// that are re-seeded on every process start.
package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/orders-api/internal/api"
	"github.com/phrazzld/orders-api/internal/config"
	"github.com/phrazzld/orders-api/internal/platform/logger"
	"github.com/phrazzld/orders-api/internal/platform/memstore"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, wires the application components together and
// starts the HTTP server. It returns when the server has shut down.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	// Everything lives in memory; the stores start from the same demo
	// seed on every boot.
	userStore := memstore.NewUserStore(seedUsers()...)
	orderStore := memstore.NewOrderStore(seedOrders()...)

	router := api.NewRouter(userStore, orderStore, appLogger)

	return startHTTPServer(cfg.Server, appLogger, router)
}
