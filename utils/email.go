package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendRecoverEmail mails the password-reset link for a recover token.
func SendRecoverEmail(to, token string) error {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:4200"
	}
	link := fmt.Sprintf("%s/reset-password?token=%s", frontend, token)

	body := fmt.Sprintf(`
		<p>Recibimos un pedido para restablecer tu contraseña.</p>
		<p><a href="%s">Hacé click acá para elegir una nueva</a></p>
		<p>El enlace vence en una hora. Si no fuiste vos, ignorá este correo.</p>
	`, link)

	return SendEmail(to, "Recuperar contraseña - MisCanchas", body)
}
