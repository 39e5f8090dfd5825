package middleware

import (
	"errors"

	"hr-registry/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

// AppError is the delivery-layer error carrier. Handlers translate usecase
// sentinels into one of these; the error middleware renders the structured
// body and hides anything with a 5xx status behind a generic message.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, code, message string, details map[string]string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Code: code, Message: message, Details: details, Cause: cause}
}

func NotFound(message string, cause error) *AppError {
	return NewAppError(fiber.StatusNotFound, response.CodeNotFound, message, nil, cause)
}

func BusinessRule(message string, cause error) *AppError {
	return NewAppError(fiber.StatusConflict, response.CodeBusinessRule, message, nil, cause)
}

func InvalidInput(details map[string]string, cause error) *AppError {
	return NewAppError(fiber.StatusBadRequest, response.CodeInvalidInput, response.MessageValidationFailed, details, cause)
}

type ErrorMiddleware struct {
	logger zerolog.Logger
}

func NewErrorMiddleware(logger zerolog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error().Interface("panic", r).Str("path", c.OriginalURL()).Msg("panic recovered")
				err = response.Error(c, fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternal, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, code, msg, details := m.normalize(c, err)
		return response.Error(c, status, code, msg, details)
	}
}

func (m *ErrorMiddleware) normalize(c fiber.Ctx, err error) (int, string, string, map[string]string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			// A carried cause means the layer that built the AppError already
			// logged the failure; logging here again would double the entry.
			if appErr.Cause == nil {
				m.logUnexpected(c, err)
			}
			return fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternal, nil
		}

		code := appErr.Code
		if code == "" {
			code = response.CodeForStatus(status)
		}
		return status, code, appErr.Message, appErr.Details
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code > 0 && fiberErr.Code < 500 {
		return fiberErr.Code, response.CodeForStatus(fiberErr.Code), fiberErr.Message, nil
	}

	m.logUnexpected(c, err)
	return fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternal, nil
}

func (m *ErrorMiddleware) logUnexpected(c fiber.Ctx, err error) {
	m.logger.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.OriginalURL()).
		Msg("unhandled request error")
}
