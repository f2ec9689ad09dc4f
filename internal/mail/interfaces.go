package mail

import "github.com/trinity-tools/trinity-mail/internal/config"

// Mailer defines the interface for sending emails
type Mailer interface {
	Send(msg Message) bool
	SendNotification(text string, priority string) bool
	SendReport(report Report) bool
}

// SMTPMailer implements Mailer using an authenticated STARTTLS session
type SMTPMailer struct {
	cfg config.ConfigProvider
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg config.ConfigProvider) Mailer {
	return &SMTPMailer{cfg: cfg}
}
