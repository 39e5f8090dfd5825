package app

import (
	"context"
	"time"

	"hr-registry/internal/config"
	"hr-registry/internal/database"
	dbpostgres "hr-registry/internal/database/postgres"
	"hr-registry/internal/infrastructure/cache"

	"github.com/rs/zerolog"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger zerolog.Logger
}

func NewContainer(cfg config.Config, logger zerolog.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
