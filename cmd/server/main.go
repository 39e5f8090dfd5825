package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hr-registry/internal/app"
	"hr-registry/internal/config"
	"hr-registry/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is for local development only; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := logging.New(cfg.App.AppName, cfg.App.Environment, cfg.App.LogLevel)
	run(cfg, logger)
}

func run(cfg config.Config, logger zerolog.Logger) {
	bootstrap, cleanup, err := app.Bootstrap(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to bootstrap app")
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Error().Err(err).Msg("cleanup error")
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid HTTP port")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()
	logger.Info().Str("addr", addr).Msg("server listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			logger.Error().Err(err).Msg("shutdown error")
		}
	}
}
