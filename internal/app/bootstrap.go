package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hr-registry/internal/config"
	"hr-registry/internal/database/migration"
	"hr-registry/internal/database/seeder"
	"hr-registry/internal/delivery/http/middleware"
	"hr-registry/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, applies pending migrations and seeders,
// and wires the HTTP surface. The returned cleanup closes the container.
func Bootstrap(cfg config.Config, logger zerolog.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	runner := migration.Runner{Dir: cfg.App.MigrationsDir}
	if err := runner.Run(ctx, container.DB.SQLDB()); err != nil {
		_ = container.Close()
		return nil, nil, fmt.Errorf("migrations failed: %w", err)
	}

	if err := seeder.RunAll(ctx, container.DB, logger); err != nil {
		_ = container.Close()
		return nil, nil, fmt.Errorf("seeding failed: %w", err)
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	accessLog := middleware.NewAccessLogMiddleware(logger)
	f.Use(accessLog.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	f.Use(errMw.Middleware())

	registry := routes.NewRegistry(cfg, container.DB, container.Cache, logger)
	registry.Register(f)

	app := &App{Fiber: f, Container: container}
	return app, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
