package service

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// NotifyService emails maintenance-job reports to the operator address.
// All of its configuration is optional; without it the report is only logged.
type NotifyService struct{}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

// SendJobReport delivers the report asynchronously so job runs never block
// on the mail provider.
func (s *NotifyService) SendJobReport(subject, body string) {
	to := os.Getenv("ADMIN_REPORT_EMAIL")
	if to == "" {
		log.Printf("Job report (no ADMIN_REPORT_EMAIL configured): %s", subject)
		return
	}
	go func() {
		if err := sendEmailWithSendGrid(to, "Operator", subject, body, ""); err != nil {
			log.Printf("WARNING: failed to send job report %q: %v", subject, err)
		}
	}()
}

func sendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL not set")
	}

	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "VillaStay"
	}

	if htmlContent == "" {
		htmlContent = plainTextContent
	}

	from := mail.NewEmail(fromName, fromEmail)
	recipient := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, recipient, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
