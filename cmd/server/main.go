package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/config"
	httpDelivery "github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/delivery/http"
	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/domain"
	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/infrastructure/cache"
	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/infrastructure/fakestore"
	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/infrastructure/vocabulary"
	applog "github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/logger"
	"github.com/Zahid-Pathan/AI-for-Ecommerce-Platform/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("storefront search: %v", err)
	}
}

// run wires the service and blocks until shutdown. Deferred cleanup runs
// before main exits on error.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := applog.NewLogger(cfg.Server.Environment, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting storefront search",
		zap.String("version", httpDelivery.Version),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache_type", cfg.Cache.Type),
		zap.Duration("cache_ttl", cfg.Cache.TTL),
	)

	// Initialize infrastructure dependencies
	catalogCache, err := newCache(cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	defer catalogCache.Close()

	catalogClient := fakestore.NewClient(fakestore.ClientConfig{
		BaseURL:           cfg.Catalog.BaseURL,
		Timeout:           cfg.Catalog.Timeout,
		RequestsPerSecond: cfg.Catalog.RequestsPerSecond,
		Burst:             cfg.Catalog.Burst,
		MaxRetries:        cfg.Catalog.MaxRetries,
		Logger:            logger.Named("catalog"),
	})
	logger.Info("Catalog API configured", zap.String("base_url", cfg.Catalog.BaseURL))

	parserConfig, err := vocabulary.Load(cfg.Search.VocabularyPath)
	if err != nil {
		return fmt.Errorf("failed to load search vocabulary: %w", err)
	}
	if cfg.Search.VocabularyPath != "" {
		logger.Info("Search vocabulary loaded", zap.String("path", cfg.Search.VocabularyPath))
	}

	// Initialize usecase layer
	searchService := usecase.NewSearchService(
		catalogCache,
		catalogClient,
		usecase.NewQueryParser(parserConfig),
		usecase.SearchServiceConfig{
			CatalogTTL: cfg.Cache.TTL,
			Logger:     logger.Named("search"),
		},
	)

	handler := httpDelivery.NewHandler(searchService)
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	return serve(srv, quit, logger)
}

// serve runs srv until it fails or a signal arrives on quit, then shuts it
// down gracefully. A listen failure is returned instead of exiting so the
// caller's deferred cleanup still runs.
func serve(srv *http.Server, quit <-chan os.Signal, logger *zap.Logger) error {
	serverErr := make(chan error, 1)

	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		logger.Error("HTTP server error", zap.Error(err))
		return fmt.Errorf("http server: %w", err)
	case <-quit:
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// closableCache is a catalog cache that owns background resources
type closableCache interface {
	domain.CacheRepository
	io.Closer
}

// newCache builds the catalog cache selected by configuration
func newCache(cfg config.CacheConfig) (closableCache, error) {
	switch cfg.Type {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return cache.NewRedisCache(ctx, cfg.RedisURL, "")
	default:
		return cache.NewMemoryCache(), nil
	}
}
