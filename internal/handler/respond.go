package handler

import (
	"errors"

	"prison-visitor-backend/internal/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// respondError translates engine errors into HTTP responses. Taxonomy errors
// keep their code in the body so the frontend can distinguish "already
// checked in" from plain validation failures.
func respondError(c *fiber.Ctx, err error) error {
	var ae *apperror.Error
	if errors.As(err, &ae) {
		return c.Status(apperror.HTTPStatus(err)).JSON(fiber.Map{
			"error": ae.Message,
			"code":  ae.Code,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
}

// actorName is the logged-in staff username, for bannedBy/recordedBy fields.
func actorName(c *fiber.Ctx) string {
	if username, ok := c.Locals("username").(string); ok {
		return username
	}
	return ""
}
