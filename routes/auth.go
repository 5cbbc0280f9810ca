package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/controllers"
)

// SetupAuthRoutes configures login and password recovery
func SetupAuthRoutes(app *fiber.App) {
	login := app.Group("/api/login")

	login.Post("/", controllers.Login)
	login.Post("/forgot-password", controllers.ForgotPassword)
	login.Post("/reset-password", controllers.ResetPassword)
}
