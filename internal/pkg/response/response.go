package response

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// Error codes surfaced to clients. Every failed request carries exactly one
// of these plus a fresh trace id.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeBusinessRule = "BUSINESS_RULE_VIOLATION"
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

const (
	MessageValidationFailed = "Validation failed"
	MessageInternal         = "An unexpected error occurred"
)

type ErrorBody struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	TraceID   string            `json:"traceId"`
	Timestamp time.Time         `json:"timestamp"`
}

// JSON writes a success payload as-is with the given status.
func JSON(c fiber.Ctx, status int, data any) error {
	return c.Status(normalizeStatus(status)).JSON(data)
}

// Error writes the structured error body, stamping trace id and timestamp.
func Error(c fiber.Ctx, status int, code, message string, details map[string]string) error {
	st := normalizeStatus(status)
	if code == "" {
		code = CodeForStatus(st)
	}
	body := ErrorBody{
		Code:      code,
		Message:   message,
		Details:   details,
		TraceID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
	}
	return c.Status(st).JSON(body)
}

func CodeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusConflict:
		return CodeBusinessRule
	case fiber.StatusBadRequest:
		return CodeInvalidInput
	case fiber.StatusUnauthorized:
		return CodeUnauthorized
	default:
		return CodeInternal
	}
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}
