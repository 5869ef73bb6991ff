package middleware

import (
	"github.com/gofiber/fiber/v2"

	"schoolpress/internal/models"
	"schoolpress/internal/services"
)

// Auth validates the bearer token on a request and stores the decoded
// identity in the request context. A missing header is an authentication
// failure (401); a present but invalid, expired or mis-signed token is
// rejected as forbidden (403). No role check happens here.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}

		claims, err := services.ParseToken(secret, header)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

// RequireEditor allows only tutors and admins through. It runs after Auth
// and gates every article mutation, so a student token cannot create,
// update or delete articles no matter what the client renders.
func RequireEditor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if !models.CanEdit(role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
		}
		return c.Next()
	}
}
