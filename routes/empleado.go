package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/controllers"
	"github.com/miscanchas/canchas-api/middleware"
)

// SetupEmpleadoRoutes configures all empleado related routes
func SetupEmpleadoRoutes(app *fiber.App) {
	empleado := app.Group("/api/empleado")

	empleado.Get("/", controllers.GetAllEmpleados)
	empleado.Get("/:id", controllers.GetEmpleado)
	empleado.Post("/", middleware.Protected(), middleware.RequireRol("admin"), controllers.CreateEmpleado)
	empleado.Put("/:id", middleware.Protected(), middleware.RequireRol("admin"), controllers.UpdateEmpleado)
	empleado.Patch("/:id", middleware.Protected(), middleware.RequireRol("admin"), controllers.UpdateEmpleado)
	empleado.Delete("/:id", middleware.Protected(), middleware.RequireRol("admin"), controllers.DeleteEmpleado)
}
