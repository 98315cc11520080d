package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ai-facilitator-be/pkg/conversation"
)

// ErrorHandlerMiddleware converts errors escaping handlers into the standard
// envelope. Known conversation sentinels map to client-errors, everything
// else is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := err.Error()

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		case errors.Is(err, conversation.ErrBusy):
			code = fiber.StatusConflict
		case errors.Is(err, conversation.ErrWrongStage):
			code = fiber.StatusUnprocessableEntity
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
