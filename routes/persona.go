package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miscanchas/canchas-api/controllers"
	"github.com/miscanchas/canchas-api/middleware"
)

// SetupPersonaRoutes configures all persona related routes
func SetupPersonaRoutes(app *fiber.App) {
	persona := app.Group("/api/persona")

	persona.Post("/", controllers.RegisterPersona)
	persona.Get("/", controllers.GetAllPersonas)
	persona.Get("/:id/reporte", controllers.GetReporteUsuario)
	persona.Get("/:email", controllers.GetPersona)
	persona.Post("/foto", middleware.Protected(), controllers.UpdateProfilePicture)
	persona.Put("/:email", middleware.Protected(), controllers.UpdatePersona)
	persona.Patch("/:email", middleware.Protected(), controllers.UpdatePersona)
	persona.Delete("/:id", middleware.Protected(), controllers.DeletePersona)
}
