package models

import (
	"gorm.io/gorm"
)

// Articulo availability states. The join table in reserva_articulo.go is
// what flips an articulo between them.
const (
	ArticuloDisponible = "Disponible"
	ArticuloReservado  = "Reservado"
)

type Articulo struct {
	gorm.Model
	Nombre string `json:"nombre"`
	Estado string `json:"estado" gorm:"default:Disponible"`
}
