package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/miscanchas/canchas-api/utils"
)

// Protected gates a route behind a bearer token. A request without the
// Authorization header gets 401; a malformed, tampered or expired token
// gets 403. Valid tokens leave id/email/rol in the request locals.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   utils.JWTSecret(),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusForbidden).JSON(utils.APIResponse{
					Message: "Token inválido o expirado",
				})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusForbidden).JSON(utils.APIResponse{
					Message: "Token inválido o expirado",
				})
			}

			if id, ok := claims["id"].(float64); ok {
				c.Locals("userID", uint(id))
			}
			if email, ok := claims["email"].(string); ok {
				c.Locals("email", email)
			}
			if rol, ok := claims["rol"].(string); ok {
				c.Locals("rol", rol)
			}

			return c.Next()
		},
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	// No header at all is "not logged in"; everything else means a token
	// was presented and failed verification.
	// gofiber/jwt/v3 has no exported sentinel for this; its own default
	// handler matches on the message the same way.
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.APIResponse{
			Message: "Necesitás estar logueado para ver esto",
		})
	}
	return c.Status(fiber.StatusForbidden).JSON(utils.APIResponse{
		Message: "Token inválido o expirado",
	})
}
