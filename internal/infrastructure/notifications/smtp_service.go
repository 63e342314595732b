package notifications

import (
	"fmt"
	"net/smtp"

	"github.com/jallichakravarthi/mern-watchlist/domain"
)

// SMTPServiceImpl implements domain.NotificationService over plain
// SMTP with STARTTLS-capable PLAIN auth.
type SMTPServiceImpl struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPService creates a new SMTP notification service
func NewSMTPService(host, port, username, password, from string) domain.NotificationService {
	return &SMTPServiceImpl{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send implements domain.NotificationService
func (s *SMTPServiceImpl) Send(to, subject, body string) error {
	// If credentials are not configured, log instead of sending
	if s.host == "" || s.from == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	msg := []byte(
		fmt.Sprintf("From: \"Watchlist\" <%s>\r\n", s.from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
