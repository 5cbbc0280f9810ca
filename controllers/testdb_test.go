package controllers

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/miscanchas/canchas-api/db"
	"github.com/miscanchas/canchas-api/models"
)

// setupTestDB points the package-global handle at a fresh in-memory
// database for the duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	// One named in-memory DB per test; shared cache keeps it alive across
	// the pool's connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&models.Persona{},
		&models.Empleado{},
		&models.Cancha{},
		&models.Articulo{},
		&models.Reserva{},
		&models.ReservaArticulo{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	prev := db.DB
	db.DB = gdb
	t.Cleanup(func() { db.DB = prev })
}
