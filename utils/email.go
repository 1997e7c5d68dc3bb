package utils

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

var (
	mailOnce   sync.Once
	mailDialer *gomail.Dialer
	mailFrom   string
)

func initMailer() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	mailFrom = os.Getenv("EMAIL_USER")
	mailDialer = gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		mailFrom,
		os.Getenv("EMAIL_PASS"),
	)
}

// SendEmail delivers an HTML mail through the configured SMTP account.
// The dialer is built once, on first use.
func SendEmail(to, subject, body string) error {
	mailOnce.Do(initMailer)

	m := gomail.NewMessage()
	m.SetHeader("From", mailFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return mailDialer.DialAndSend(m)
}
