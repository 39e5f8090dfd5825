package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type AccessLogMiddleware struct {
	logger zerolog.Logger
}

func NewAccessLogMiddleware(logger zerolog.Logger) *AccessLogMiddleware {
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		m.logger.Info().
			Str("rid", rid).
			Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Int("resp_bytes", c.Response().Header.ContentLength()).
			Msg("http access")

		return err
	}
}
