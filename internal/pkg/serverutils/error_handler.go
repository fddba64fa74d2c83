package serverutils

import (
	"errors"

	"drivetube-be/internal/pkg/apperr"
	"drivetube-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func statusFromKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		return fiber.StatusBadRequest
	case apperr.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperr.KindForbidden:
		return fiber.StatusForbidden
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// {"error": message} wire format. Known taxonomy errors keep their message;
// everything else is flattened to a fixed 500 body so no internal detail
// leaks.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperr.AppError
		if errors.As(err, &appErr) {
			status := statusFromKind(appErr.Kind)
			if status == fiber.StatusInternalServerError {
				log.Error("http", "unhandled application error", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Error(),
				})
				return ctx.Status(status).JSON(fiber.Map{"error": apperr.MsgInternalError})
			}
			return ctx.Status(status).JSON(fiber.Map{"error": appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": apperr.MsgInternalError})
	}
}
