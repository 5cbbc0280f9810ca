package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/miscanchas/canchas-api/db"
	"github.com/miscanchas/canchas-api/models"
	"github.com/miscanchas/canchas-api/utils"
)

// StartCronJobs schedules the daily reminder run at 09:00.
func StartCronJobs() {
	c := cron.New()
	_, err := c.AddFunc("0 9 * * *", sendReservaReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron scheduler started for reserva reminders")
}

// sendReservaReminders mails every client with a reserva dated tomorrow.
func sendReservaReminders() {
	manana := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var reservas []models.Reserva
	if err := db.DB.Where("fecha_reserva = ?", manana).Find(&reservas).Error; err != nil {
		log.Printf("Error fetching reservas for reminders: %v", err)
		return
	}

	var canchas []models.Cancha
	if err := db.DB.Find(&canchas).Error; err != nil {
		log.Printf("Error fetching canchas for reminders: %v", err)
		return
	}
	canchaNames := make(map[uint]string, len(canchas))
	for _, cancha := range canchas {
		canchaNames[cancha.ID] = cancha.TipoCancha
	}

	log.Printf("Found %d reservas for reminders", len(reservas))

	for _, reserva := range reservas {
		if err := sendReminderEmail(&reserva, canchaNames[reserva.IDCancha]); err != nil {
			log.Printf("Failed to send reminder for reserva %d: %v", reserva.ID, err)
			continue
		}
		log.Printf("Sent reminder for reserva %d to %s", reserva.ID, reserva.MailCliente)
	}
}

func sendReminderEmail(reserva *models.Reserva, cancha string) error {
	if cancha == "" {
		cancha = fmt.Sprintf("Cancha #%d", reserva.IDCancha)
	}

	subject := "Recordatorio: tu reserva es mañana"
	body := fmt.Sprintf(`
		<p>¡Hola!</p>
		<p>Te recordamos tu reserva de mañana:</p>
		<ul>
			<li><strong>Cancha:</strong> %s</li>
			<li><strong>Fecha:</strong> %s</li>
			<li><strong>Horario:</strong> %s a %s</li>
		</ul>
		<p>Si no podés venir, cancelá con anticipación así otro aprovecha el turno.</p>
		<p>MisCanchas ⚽</p>
	`, cancha, reserva.FechaReserva, reserva.HoraInicio, reserva.HoraFin)

	return utils.SendEmail(reserva.MailCliente, subject, body)
}
