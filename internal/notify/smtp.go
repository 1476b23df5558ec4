// Package notify delivers outbound email over SMTP.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/moneyhiver/hiver/internal/common"
	"github.com/moneyhiver/hiver/internal/interfaces"
	"github.com/moneyhiver/hiver/internal/models"
)

// SMTPNotifier sends mail through a single SMTP account.
type SMTPNotifier struct {
	host     string
	port     int
	address  string
	password string
	logger   *common.Logger

	// sendMail is swappable for tests
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier creates a notifier from the SMTP configuration.
func NewSMTPNotifier(cfg common.SMTPConfig, logger *common.Logger) *SMTPNotifier {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &SMTPNotifier{
		host:     cfg.Host,
		port:     cfg.Port,
		address:  cfg.Address,
		password: cfg.Password,
		logger:   logger,
		sendMail: smtp.SendMail,
	}
}

// Send delivers a message. Delivery runs in a goroutine so a slow SMTP
// server cannot outlive the caller's context.
func (n *SMTPNotifier) Send(ctx context.Context, msg models.Message) error {
	if n.address == "" || n.password == "" {
		return fmt.Errorf("smtp account is not configured")
	}

	body := formatMessage(n.address, msg)
	auth := smtp.PlainAuth("", n.address, n.password, n.host)
	addr := fmt.Sprintf("%s:%d", n.host, n.port)

	done := make(chan error, 1)
	go func() {
		done <- n.sendMail(addr, auth, n.address, []string{msg.To}, body)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail to %s: %w", msg.To, err)
		}
	}

	n.logger.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("Email sent")

	return nil
}

// formatMessage assembles RFC 5322 headers and body. Subjects are sent as
// raw UTF-8 (SMTPUTF8).
func formatMessage(from string, msg models.Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

var _ interfaces.Notifier = (*SMTPNotifier)(nil)
