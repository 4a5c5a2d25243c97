package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/cart/repository"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/catalog/cache"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/config"
	gateway "github.com/fjod/go_storefront/internal/http"
	"github.com/fjod/go_storefront/internal/ui"
	"github.com/fjod/go_storefront/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.Info("storefront starting")

	ctx := context.Background()

	// Durable cart storage
	repo, err := repository.NewSQLiteRepository(cfg.CartDBPath, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open cart storage")
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}
	log.WithField("path", cfg.CartDBPath).Info("cart storage ready")

	store, err := cart.NewStore(ctx, repo, log)
	if err != nil {
		log.WithError(err).Fatal("failed to load cart")
	}
	store.Subscribe(func(e cart.Event) {
		log.WithFields(map[string]interface{}{
			"kind":       string(e.Kind),
			"product_id": e.ProductID,
		}).Info(e.Message())
	})

	// Catalog client with its cache backend
	var catalogCache cache.Cache
	if cfg.CacheBackend == config.CacheBackendRedis {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.WithError(err).Fatal("redis connection failed")
		}
		catalogCache = cache.NewRedisCache(redisClient, cfg.CatalogCacheTTL)
		log.WithField("addr", cfg.RedisAddr).Info("using redis catalog cache")
	} else {
		catalogCache = cache.NewMemoryCache(cfg.CatalogCacheTTL)
	}

	client := catalog.NewClient(cfg.CatalogBaseURL, catalogCache, log)

	notifier := checkout.NewNotifier(log)
	ctrl := ui.NewController(client, store, notifier, log)
	defer ctrl.Close()

	router := gateway.NewRouter(ctrl, store, client, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.HTTPPort).Info("storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down storefront...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("storefront stopped")
}
