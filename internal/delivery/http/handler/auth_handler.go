package handler

import (
	"errors"

	"hr-registry/internal/delivery/http/middleware"
	"hr-registry/internal/pkg/response"
	"hr-registry/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.InvalidInput(nil, err)
	}

	token, err := h.uc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthorized, "Invalid credentials", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternal, nil, err)
	}

	return response.JSON(c, fiber.StatusOK, loginResponse{AccessToken: token})
}
