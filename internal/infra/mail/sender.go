package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendImportSummary mails the sales inbox after a bulk import finishes.
func (s *EmailSender) SendImportSummary(accepted, rejected int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Bulk lead import: %d saved, %d rejected", accepted, rejected))
	m.SetBody("text/plain", fmt.Sprintf(
		"A bulk CSV import just finished.\n\nLeads saved: %d\nRows rejected: %d\n",
		accepted, rejected,
	))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending import summary email: %w", err)
	}

	return nil
}
