package mail_fx

import (
	"go.uber.org/fx"
	"log"
	"os"
	"strconv"

	"kosht/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USER"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "Donation portal",
		UseSSL:     port == 465,
		RequireTLS: true,

		AdminMail:  os.Getenv("ADMIN_MAIL"),
		AppName:    "Donation portal",
		AppBaseURL: os.Getenv("FRONTEND_URL"),
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}
