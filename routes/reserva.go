package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/controllers"
	"github.com/miscanchas/canchas-api/middleware"
)

// SetupReservaRoutes configures all reserva related routes. The dashboard
// route must register before "/:mail_cliente" or fiber would swallow it.
func SetupReservaRoutes(app *fiber.App) {
	reserva := app.Group("/api/reserva")

	reserva.Get("/", controllers.GetAllReservas)
	reserva.Get("/dashboard/stats", controllers.GetDashboardStats)
	reserva.Get("/cancha/:idCancha/fecha/:fecha", controllers.FindByCanchaFecha)
	reserva.Get("/:mail_cliente", controllers.FindByCliente)
	reserva.Post("/", middleware.Protected(), controllers.CreateReserva)
	reserva.Put("/:mail_cliente", middleware.Protected(), controllers.UpdateReserva)
	reserva.Patch("/:mail_cliente", middleware.Protected(), controllers.UpdateReserva)
	reserva.Delete("/:id", middleware.Protected(), controllers.DeleteReserva)
}
