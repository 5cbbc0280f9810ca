package db

import (
	"log"

	"github.com/miscanchas/canchas-api/models"
)

// Migrate runs AutoMigrate for every entity. Gated behind SYNC_SCHEMA so a
// production start never rewrites the schema by accident.
func Migrate() {
	err := DB.AutoMigrate(
		&models.Persona{},
		&models.Empleado{},
		&models.Cancha{},
		&models.Articulo{},
		&models.Reserva{},
		&models.ReservaArticulo{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("Migrations applied")
}
