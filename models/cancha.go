package models

import (
	"gorm.io/gorm"
)

const CanchaDisponible = "disponible"

type Cancha struct {
	gorm.Model
	TipoCancha string `json:"tipoCancha"`
	Estado     string `json:"estado" gorm:"default:disponible"`
}
