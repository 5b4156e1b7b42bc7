package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

var ErrDeliveryFailed = errors.New("delivery failed")

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(addr, from, username, password string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		host := addr
		if idx := strings.LastIndex(addr, ":"); idx >= 0 {
			host = addr[:idx]
		}
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{addr: addr, from: from, auth: auth}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	payload := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, msg.To, msg.Subject, msg.Body)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{msg.To}, []byte(payload)); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// LogMailer writes messages to the log instead of delivering them, for
// local development without an SMTP server.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	slog.Info("mail delivered to log", slog.String("to", msg.To), slog.String("subject", msg.Subject), slog.String("body", msg.Body))
	return nil
}
