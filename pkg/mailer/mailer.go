package mailer

import (
	"fmt"

	"monderh-backend/pkg/config"

	"gopkg.in/gomail.v2"
)

// Sender delivers notification emails. Every send is attempted exactly once;
// callers log failures and never surface them to the end user.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a Sender backed by the configured SMTP relay
func NewSMTPSender(cfg *config.Config) Sender {
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

func (s *smtpSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("unable to send mail to %s: %v", to, err)
	}
	return nil
}
