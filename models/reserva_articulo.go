package models

import (
	"gorm.io/gorm"
)

// ReservaArticulo links one articulo to one reserva. Its existence marks
// the articulo as reserved; deleting it releases the articulo.
type ReservaArticulo struct {
	gorm.Model
	IDReserva  uint `json:"idReserva"`
	IDArticulo uint `json:"idArticulo"`
}
