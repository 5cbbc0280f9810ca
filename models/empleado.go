package models

import (
	"gorm.io/gorm"
)

type Empleado struct {
	gorm.Model
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	DNI      int    `json:"dni"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Cargo    string `json:"cargo"`
}
