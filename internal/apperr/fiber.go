package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewErrorHandler translates service errors into JSON responses. Not-found
// maps to 404, locked records to 409, fiber errors keep their code,
// everything else is logged and becomes a 500.
func NewErrorHandler(log *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": nf.Error(),
			})
		}

		var le *LockedError
		if errors.As(err, &le) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": le.Error(),
			})
		}

		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(fiber.Map{
				"error": e.Message,
			})
		}

		log.Errorw("unexpected error", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}
