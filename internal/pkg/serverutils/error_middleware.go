package serverutils

import (
	"errors"

	"welllog-ai-be/internal/pkg/apperrors"
	"welllog-ai-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps the error taxonomy onto HTTP statuses. Generation failures
// are upstream failures, hence 502.
func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindFormat, apperrors.KindInconsistentData, apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindGeneration:
		return fiber.StatusBadGateway
	case apperrors.KindStorage:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware converts tagged errors bubbling out of controllers
// into the wire error shape. Untagged errors are masked as internal.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		// Fiber's own errors (body too large, bad route) keep their status.
		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(ErrorResponse(string(apperrors.KindValidation), fe.Message))
		}

		kind := apperrors.KindOf(err)
		status := statusFor(kind)

		details := map[string]interface{}{
			"error":  err.Error(),
			"kind":   string(kind),
			"path":   ctx.Path(),
			"method": ctx.Method(),
		}
		if status >= 500 {
			log.Error("http", "request failed", details)
		} else {
			log.Warn("http", "request rejected", details)
		}

		// Surface the tagged message only; untagged internals stay opaque.
		message := "internal server error"
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			message = appErr.Message
		}
		return ctx.Status(status).JSON(ErrorResponse(string(kind), message))
	}
}
