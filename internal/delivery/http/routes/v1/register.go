package v1

import (
	"hr-registry/internal/config"
	"hr-registry/internal/database"
	"hr-registry/internal/delivery/http/handler"
	"hr-registry/internal/delivery/http/middleware"
	"hr-registry/internal/infrastructure/cache"
	"hr-registry/internal/pkg/jwt"
	"hr-registry/internal/repository"
	"hr-registry/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

// Register wires repositories, usecases and handlers for the v1 API.
func Register(r fiber.Router, cfg config.Config, db database.DB, redisCache *cache.Redis, logger zerolog.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authMw := middleware.NewAuthMiddleware(jwtSvc, cfg.Auth.Enabled)

	skillRepo := repository.NewPostgresSkillRepository(db)
	employeeRepo := repository.NewPostgresEmployeeRepository(db)
	employeeSkillRepo := repository.NewPostgresEmployeeSkillRepository(db)
	adminRepo := repository.NewPostgresAdminRepository(db)

	var taxonomyCache usecase.TaxonomyCache = usecase.NopTaxonomyCache{}
	if redisCache != nil {
		taxonomyCache = redisCache
	}

	skillUC := usecase.NewSkillUsecase(skillRepo, taxonomyCache, logger)
	employeeUC := usecase.NewEmployeeUsecase(employeeRepo, employeeSkillRepo, logger)
	authUC := usecase.NewAuthUsecase(adminRepo, jwtSvc, logger)

	authHandler := handler.NewAuthHandler(authUC)
	authHandler.RegisterRoutes(r.Group("/auth"))

	skillHandler := handler.NewSkillHandler(skillUC)
	skillHandler.RegisterRoutes(r, authMw.Middleware())

	employeeHandler := handler.NewEmployeeHandler(employeeUC)
	employeeHandler.RegisterRoutes(r)
}
