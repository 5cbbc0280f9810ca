package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/miscanchas/canchas-api/cron"
	"github.com/miscanchas/canchas-api/db"
	"github.com/miscanchas/canchas-api/middleware"
	"github.com/miscanchas/canchas-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()

	if os.Getenv("SYNC_SCHEMA") == "true" {
		db.Migrate()
	}

	middleware.InitRateLimiter()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(middleware.RateLimit())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API MisCanchas funcionando"})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupPersonaRoutes(app)
	routes.SetupCanchaRoutes(app)
	routes.SetupEmpleadoRoutes(app)
	routes.SetupArticuloRoutes(app)
	routes.SetupReservaRoutes(app)
	routes.SetupReservaArticuloRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
