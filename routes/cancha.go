package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/controllers"
	"github.com/miscanchas/canchas-api/middleware"
)

// SetupCanchaRoutes configures all cancha related routes. Management is
// admin-only; reads stay public.
func SetupCanchaRoutes(app *fiber.App) {
	cancha := app.Group("/api/cancha")

	cancha.Get("/", controllers.GetAllCanchas)
	cancha.Get("/:id", controllers.GetCancha)
	cancha.Post("/", middleware.Protected(), middleware.RequireRol("admin"), controllers.CreateCancha)
	cancha.Put("/:id", middleware.Protected(), middleware.RequireRol("admin"), controllers.UpdateCancha)
	cancha.Patch("/:id", middleware.Protected(), middleware.RequireRol("admin"), controllers.UpdateCancha)
	cancha.Delete("/:id", middleware.Protected(), middleware.RequireRol("admin"), controllers.DeleteCancha)
}
