package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zigueroutine/internal/cart"
	"zigueroutine/internal/catalog"
	"zigueroutine/internal/config"
	"zigueroutine/internal/handler"
	"zigueroutine/internal/notify"
	"zigueroutine/internal/repository"
	"zigueroutine/internal/router"
	"zigueroutine/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting zigueroutine API server")

	// Static tire catalogue, loaded once at startup
	cat := catalog.New()

	// Order storage on the local filesystem
	orderRepo := repository.NewOrderRepository(cfg.Storage.DataDir, logger)

	// Operator notifications via Resend, or log-only when disabled
	var notifier notify.Notifier
	if cfg.Notify.Enabled {
		notifier = notify.NewResendNotifier(cfg.Notify.APIKey, cfg.Notify.From, cfg.Notify.To, logger)
	} else {
		notifier = notify.NewLogNotifier(logger)
		logger.Info().Msg("email notifications disabled, using log-only notifier")
	}

	// In-memory cart store and pricing
	cartStore := cart.NewStore(logger)
	pricing := cart.Pricing{
		VATRate:       cfg.Pricing.VATRate,
		EcoFeeEnabled: cfg.Pricing.EcoFeeEnabled,
		EcoFee:        cfg.Pricing.EcoFee,
	}

	// Initialize services
	orderService := service.NewOrderService(orderRepo, notifier, cfg.Notify.Timeout, logger)
	catalogService := service.NewCatalogService(cat, logger)
	cartService := service.NewCartService(cartStore, cat, pricing, orderService, logger)

	// Initialize HTTP handlers
	tireHandler := handler.NewTireHandler(catalogService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	// Initialize router
	mux := router.New(tireHandler, cartHandler, orderHandler, cfg.CORS.AllowedOrigins, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("data_dir", cfg.Storage.DataDir).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
