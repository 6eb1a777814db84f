// Package main is the entry point for the classifieds API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/99minutos/classifieds-system/internal/api"
	"github.com/99minutos/classifieds-system/internal/core/service"
	"github.com/99minutos/classifieds-system/internal/infrastructure/db/memory"
	"github.com/99minutos/classifieds-system/internal/pkg/clock"
	"github.com/99minutos/classifieds-system/internal/pkg/config"
	"github.com/99minutos/classifieds-system/internal/pkg/metrics"
	"github.com/99minutos/classifieds-system/pkg/logger"
)

// @title Classifieds API
// @version 1.0.0
// @description REST API for buy/sell classified advertisements.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /login.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "classifieds-api",
	})

	// --- Metrics ---
	var registry *prometheus.Registry
	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(registry)
	} else {
		m = metrics.NewNop()
	}

	// --- Stores ---
	clk := clock.System
	creds := service.BcryptCredentials{Cost: cfg.Auth.BcryptCost}
	users := memory.NewUserStore(clk, creds.Match)
	ads := memory.NewAdvertisementStore(clk)
	tokens := memory.NewTokenStore(clk, cfg.Auth.TokenTTL)

	// --- Services ---
	authService := service.NewAuthService(users, tokens, m, log)
	userService := service.NewUserService(users, creds, m, log)
	adService := service.NewAdvertisementService(ads, m, log)

	e := api.NewRouter(api.Deps{
		Auth:           authService,
		Users:          userService,
		Advertisements: adService,
		Metrics:        m,
		Registry:       registry,
		Logger:         log,
		RequestTimeout: cfg.Server.RequestTimeout,
		Swagger:        cfg.SwaggerEnabled,
		StartedAt:      time.Now(),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting classifieds API")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
