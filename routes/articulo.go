package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/controllers"
	"github.com/miscanchas/canchas-api/middleware"
)

// SetupArticuloRoutes configures all articulo related routes
func SetupArticuloRoutes(app *fiber.App) {
	articulo := app.Group("/api/articulo")

	articulo.Get("/", controllers.GetAllArticulos)
	articulo.Get("/:id", controllers.GetArticulo)
	articulo.Post("/", middleware.Protected(), middleware.RequireRol("admin"), controllers.CreateArticulo)
	articulo.Put("/:id", middleware.Protected(), middleware.RequireRol("admin"), controllers.UpdateArticulo)
	articulo.Patch("/:id", middleware.Protected(), middleware.RequireRol("admin"), controllers.UpdateArticulo)
	articulo.Delete("/:id", middleware.Protected(), middleware.RequireRol("admin"), controllers.DeleteArticulo)
}
