package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopkit/cartsim/internal/adapters/config"
	"github.com/shopkit/cartsim/internal/adapters/console"
	"github.com/shopkit/cartsim/internal/adapters/memory"
	"github.com/shopkit/cartsim/internal/core/logger"
	"github.com/shopkit/cartsim/internal/core/service"
)

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Fprintln(os.Stderr, "failed to initialize logger: "+err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// the catalog is seeded once; the cart owns the only reference to it
	catalog := memory.NewCatalog(memory.SampleProducts()...)
	cartService := service.NewCartService(catalog)
	catalogService := service.NewCatalogService(catalog)

	session := console.NewSession(cartService, catalogService, os.Stdin, os.Stdout)
	session.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := logger.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintln(os.Stderr, "logger shutdown error: "+err.Error())
	}
}
