package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/controllers"
	"github.com/miscanchas/canchas-api/middleware"
)

// SetupReservaArticuloRoutes configures the reserva-articulo link routes
func SetupReservaArticuloRoutes(app *fiber.App) {
	link := app.Group("/api/reserva_articulo")

	link.Get("/", controllers.GetAllReservaArticulos)
	link.Post("/", middleware.Protected(), controllers.CreateReservaArticulo)
	link.Delete("/:id", middleware.Protected(), controllers.DeleteReservaArticulo)
}
