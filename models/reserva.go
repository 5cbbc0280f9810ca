package models

import (
	"gorm.io/gorm"
)

// Reserva references cancha and empleado by plain id and the customer by
// email. Dates and times are stored as strings ("2006-01-02", "HH:MM"),
// so month ranges compare lexically on the ISO format.
type Reserva struct {
	gorm.Model
	FechaReserva string  `json:"fechaReserva"`
	HoraInicio   string  `json:"horaInicio"`
	HoraFin      string  `json:"horaFin"`
	TotalReserva float64 `json:"totalReserva"`
	MailCliente  string  `json:"mail_cliente"`
	IDCancha     uint    `json:"idCancha"`
	IDEmpleado   uint    `json:"idEmpleado"`
}
