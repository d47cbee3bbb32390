// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/FedericoLuna01/wallbit-challenge/internal/config"
	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/cart"
	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/catalog"
	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/discount"
	"github.com/FedericoLuna01/wallbit-challenge/internal/infrastructure/storage/memory"
	"github.com/FedericoLuna01/wallbit-challenge/internal/infrastructure/storage/redis"
	httpserver "github.com/FedericoLuna01/wallbit-challenge/internal/interfaces/http"
	"github.com/FedericoLuna01/wallbit-challenge/internal/interfaces/http/middleware"
	"github.com/FedericoLuna01/wallbit-challenge/internal/pkg/currency"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := middleware.NewLogger(cfg)
	logger.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Select the cart storage backend
	var store cart.Store
	var redisClient *goredis.Client

	if cfg.Storage.Backend == "redis" {
		conn, err := redis.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer conn.Close()

		if err := conn.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}

		redisClient = conn.GetClient()
		store = redis.NewStore(redisClient, cfg.Storage.KeyPrefix)
		logger.Info("Redis connection established")
	} else {
		store = memory.NewStore()
		logger.Warn("Using in-memory storage, cart will not survive restarts")
	}

	// Build the cart service and hydrate persisted state
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, logger)
	resolver := discount.NewResolver(nil)
	cartService := cart.NewService(store, catalogClient, resolver, time.Now, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := cartService.Hydrate(ctx); err != nil {
		cancel()
		log.Fatalf("Failed to hydrate cart: %v", err)
	}
	cancel()

	formatter := currency.NewFormatter(cfg.Display.Locale, cfg.Display.Currency)

	// Create and start HTTP server
	server := httpserver.NewServer(cfg, cartService, formatter, redisClient, logger)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	logger.Info("Server shutdown completed")
}
