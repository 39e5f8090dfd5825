package middleware

import (
	"errors"
	"strings"

	"hr-registry/internal/pkg/jwt"
	"hr-registry/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxAdminIDKey = "admin_id"
	CtxEmailKey   = "email"
)

// AuthMiddleware protects administrative routes. With Enabled false it is a
// pass-through, keeping the approval endpoints open for deployments that sit
// behind their own gateway.
type AuthMiddleware struct {
	jwt     jwt.Service
	enabled bool
}

func NewAuthMiddleware(jwtSvc jwt.Service, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, enabled: enabled}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if !m.enabled {
			return c.Next()
		}

		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, response.CodeUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, response.CodeUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, response.CodeUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxAdminIDKey, claims.AdminID)
		c.Locals(CtxEmailKey, claims.Email)

		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
