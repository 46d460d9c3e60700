package handler

import (
	"go-stockdesk/internal/apperr"
	"go-stockdesk/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// fail maps a classified service error to its HTTP status. Unclassified
// failures are logged and surface as a generic 500.
func fail(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case apperr.NotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case apperr.Conflict:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case apperr.Unauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case apperr.Forbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.LogError("handler", c.Route().Path, err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
