package routes

import (
	"hr-registry/internal/config"
	"hr-registry/internal/database"
	"hr-registry/internal/delivery/http/handler"
	v1 "hr-registry/internal/delivery/http/routes/v1"
	"hr-registry/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	logger zerolog.Logger
}

func NewRegistry(cfg config.Config, db database.DB, redisCache *cache.Redis, logger zerolog.Logger) *Registry {
	return &Registry{cfg: cfg, db: db, cache: redisCache, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(r.db, r.cache)
	health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.cache, r.logger)
}
