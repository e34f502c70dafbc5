package serverutils

import (
	"errors"

	"workflow-data-be/internal/pkg/apperror"
	"workflow-data-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps the error taxonomy to HTTP status codes in
// one place so controllers can simply return errors.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := statusFor(apperror.KindOf(err))
		if status == fiber.StatusInternalServerError {
			log.Error("http", "unhandled store failure", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			// Do not echo internal errors to clients.
			return ctx.Status(status).JSON(ErrorResponse(status, "internal server error"))
		}

		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation, apperror.KindConfiguration:
		return fiber.StatusUnprocessableEntity
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindDenied:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}
