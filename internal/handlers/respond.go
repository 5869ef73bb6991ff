package handlers

import (
	"github.com/gofiber/fiber/v2"

	"schoolpress/internal/httperr"
)

// respondError converts a service error into its HTTP status with the error
// text as the response message.
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(httperr.Status(err)).JSON(fiber.Map{"message": err.Error()})
}
