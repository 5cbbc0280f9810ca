package models

import (
	"time"
)

const (
	RolCliente = "cliente"
	RolAdmin   = "admin"
)

// Persona is a customer or administrator account. Empleados live in their
// own table; a Persona is whoever can log in.
type Persona struct {
	ID                  uint       `json:"id" gorm:"primaryKey"`
	Name                string     `json:"name"`
	Lastname            string     `json:"lastname"`
	DNI                 int        `json:"dni"`
	Phone               string     `json:"phone"`
	Email               string     `json:"email" gorm:"unique"`
	Password            string     `json:"password,omitempty"`
	Rol                 string     `json:"rol" gorm:"default:cliente"`
	FotoPerfil          string     `json:"fotoPerfil,omitempty"`
	RecoverToken        *string    `json:"-"`
	RecoverTokenExpires *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
