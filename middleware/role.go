package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/utils"
)

// RequireRol allows the request through only when the token's rol claim
// matches. Must run after Protected().
func RequireRol(rol string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current, ok := c.Locals("rol").(string)
		if !ok || current != rol {
			return c.Status(fiber.StatusForbidden).JSON(utils.APIResponse{
				Message: "No tenés permisos para realizar esta acción",
			})
		}
		return c.Next()
	}
}
