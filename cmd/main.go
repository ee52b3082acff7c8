package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/web"
)

const serviceName = "StorefrontService"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, relying on system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("error loading configuration")
	}
	setupLogger(cfg.LogLevel)
	log.WithFields(log.Fields{"env": cfg.AppEnv, "apiBase": cfg.Catalog.PublicAPIBase}).
		Info("starting storefront")

	slot, err := cart.OpenSlotStore(cfg.Cart.DBPath, cfg.Cart.StorageKey)
	if err != nil {
		log.WithError(err).Fatal("failed to open cart storage")
	}

	cartStore := cart.NewStore(slot)
	cartStore.Subscribe(func(items []domain.CartItem) {
		log.WithFields(log.Fields{"items": len(items), "total": cart.Total(items)}).
			Debug("cart updated")
	})
	client := catalog.NewClient(cfg.Catalog.PublicAPIBase, cfg.Catalog.PublicAPIKey, cfg.Catalog.PerPage)

	// Categories must be cached before products are mapped: product mapping
	// resolves category names, so the two fetches are sequenced, not
	// concurrent. Both failures are soft; the page serves an empty grid.
	client.FetchCategories(context.Background())
	products := client.FetchProducts(context.Background())
	log.WithField("count", len(products)).Info("catalogue loaded")

	handler := web.NewHandler(client, cartStore, cfg.Catalog.PublicAPIKey, cfg.Catalog.PublicAPIBase)

	router := chi.NewRouter()
	setupBaseMiddleware(router)
	registerHealthCheck(router, slot)
	handler.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:         ":" + cfg.HttpServer.Port,
		Handler:      router,
		ReadTimeout:  cfg.HttpServer.TimeoutRead,
		WriteTimeout: cfg.HttpServer.TimeoutWrite,
		IdleTimeout:  cfg.HttpServer.TimeoutIdle,
	}

	go func() {
		log.WithField("port", cfg.HttpServer.Port).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server ListenAndServe error")
		}
	}()

	shutdownComplete := make(chan struct{})
	go waitForShutdown(httpServer, slot, shutdownComplete)
	<-shutdownComplete
	log.Info("shutdown sequence finished")
}

func setupLogger(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func setupBaseMiddleware(router *chi.Mux) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
}

func registerHealthCheck(router *chi.Mux, slot *cart.SlotStore) {
	router.Get("/api/v1/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		storageStatus := "healthy"
		if err := slot.Ping(ctx); err != nil {
			storageStatus = "unhealthy"
			log.WithError(err).Warn("health check storage ping failed")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":      "healthy",
			"serviceName": serviceName,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"cartStorage": storageStatus,
		})
	})
}

func waitForShutdown(httpServer *http.Server, slot *cart.SlotStore, shutdownComplete chan struct{}) {
	defer close(shutdownComplete)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	received := <-sigChan
	log.WithField("signal", received.String()).Info("starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("HTTP server graceful shutdown failed")
	}
	if err := slot.Close(); err != nil {
		log.WithError(err).Warn("error closing cart storage")
	}
}
