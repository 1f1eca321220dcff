package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arena-store/internal/auth"
	"arena-store/internal/cart"
	"arena-store/internal/config"
	"arena-store/internal/coupon"
	"arena-store/internal/database"
	"arena-store/internal/handler"
	"arena-store/internal/repository"
	"arena-store/internal/router"
	"arena-store/internal/service"
	"arena-store/internal/shipping"
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
	logger.Info().Msg("starting arena-store API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	profileRepo := repository.NewProfileRepository(pool, logger)
	activityRepo := repository.NewActivityRepository(pool, logger)
	bannerRepo := repository.NewBannerRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)

	// Initialize coupon loader with S3 and local fallback
	fileLoader := coupon.NewFileLoader(logger)
	var s3Loader coupon.Loader

	if cfg.S3.Enabled {
		s3Loader, err = coupon.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Loader = nil
		}
	} else {
		logger.Info().Msg("using local file system for coupon files (S3 disabled)")
	}
	couponLoader := coupon.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)

	// Initialize coupon validator
	validatorConfig := coupon.DefaultValidatorConfig()
	validator, err := coupon.NewValidator(ctx, validatorConfig, couponLoader, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize coupon validator: %w", err)
	}
	defer validator.Close()

	// Session tokens and in-memory carts
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	cartStore := cart.NewStore()

	// Carrier and postal-lookup clients
	rateClient := shipping.NewRateClient(cfg.Carrier, logger)
	oauthClient := shipping.NewOAuthClient(cfg.Carrier, logger)
	postalLookup := shipping.NewPostalLookup(cfg.Lookup, logger)

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, logger)
	cartService := service.NewCartService(cartStore, productRepo, logger)
	checkoutService := service.NewCheckoutService(orderRepo, productRepo, activityRepo, cartStore, validator, logger)
	authService := service.NewAuthService(userRepo, profileRepo, tokens, logger)
	profileService := service.NewProfileService(profileRepo, logger)
	bannerService := service.NewBannerService(bannerRepo, logger)
	adminService := service.NewAdminService(profileRepo, activityRepo, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Product:  handler.NewProductHandler(catalogService, logger),
		Cart:     handler.NewCartHandler(cartService, validator, logger),
		Order:    handler.NewOrderHandler(checkoutService, logger),
		Auth:     handler.NewAuthHandler(authService, logger),
		Profile:  handler.NewProfileHandler(profileService, logger),
		Shipping: handler.NewShippingHandler(rateClient, oauthClient, postalLookup, catalogService, logger),
		Banner:   handler.NewBannerHandler(bannerService, logger),
		Admin:    handler.NewAdminHandler(adminService, logger),
	}

	// Initialize router
	mux := router.New(handlers, tokens, profileRepo, logger)

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

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
