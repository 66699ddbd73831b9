package notify

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Notifier delivers a message to a recipient. Delivery is best effort:
// callers log failures and move on, they never fail the request over it.
type Notifier interface {
	Send(recipient, subject, body string) error
}

// SMTPNotifier sends plain-text mail through a single SMTP relay.
type SMTPNotifier struct {
	Addr string // host:port of the relay
	From string
}

func NewSMTPNotifier(addr, from string) *SMTPNotifier {
	return &SMTPNotifier{Addr: addr, From: from}
}

func (n *SMTPNotifier) Send(recipient, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + n.From,
		"To: " + recipient,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")
	if err := smtp.SendMail(n.Addr, nil, n.From, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", recipient, err)
	}
	return nil
}

// LogNotifier writes the message to the log instead of delivering it.
// Used in development where no relay is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) Send(recipient, subject, body string) error {
	n.Logger.Info("notification",
		"recipient", recipient,
		"subject", subject,
		"body", body,
	)
	return nil
}
