package handler

import (
	"context"
	"time"

	"hr-registry/internal/database"
	"hr-registry/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    database.DB
	cache Pinger
}

type healthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
	Cache  string `json:"cache,omitempty"`
}

func NewHealthHandler(db database.DB, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	res := healthResponse{Status: "up", DB: "up"}

	if h.db == nil || h.db.Ping(ctx) != nil {
		res.Status = "degraded"
		res.DB = "down"
	}
	if h.cache != nil {
		res.Cache = "up"
		if h.cache.Ping(ctx) != nil {
			res.Cache = "down"
		}
	}

	status := fiber.StatusOK
	if res.DB == "down" {
		status = fiber.StatusServiceUnavailable
	}
	return response.JSON(c, status, res)
}
