package providers

import (
	"fmt"
	"net/smtp"
	"strings"

	"weatherreminder.app/config"
	"weatherreminder.app/errors"
)

// SMTPEmailProvider delivers report emails over SMTP with PLAIN auth. Reports
// are always text/plain UTF-8; there is no HTML path.
type SMTPEmailProvider struct {
	config *config.EmailConfig
}

// NewSMTPEmailProvider creates a new SMTP email provider
func NewSMTPEmailProvider(config *config.EmailConfig) *SMTPEmailProvider {
	return &SMTPEmailProvider{config: config}
}

// sanitizeHeader strips CR and LF so subscriber-controlled values cannot
// smuggle extra headers into the message
func sanitizeHeader(value string) string {
	value = strings.ReplaceAll(value, "\r", "")
	return strings.ReplaceAll(value, "\n", "")
}

// buildMessage assembles the RFC 5322 message for one recipient
func (p *SMTPEmailProvider) buildMessage(to, subject, body string) []byte {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", p.config.FromName, p.config.FromAddress)
	fmt.Fprintf(&msg, "To: %s\r\n", sanitizeHeader(to))
	fmt.Fprintf(&msg, "Subject: %s\r\n", sanitizeHeader(subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return []byte(msg.String())
}

// SendEmail sends one plain-text email through the configured SMTP relay
func (p *SMTPEmailProvider) SendEmail(to, subject, body string) error {
	if to == "" {
		return errors.NewValidationError("recipient email cannot be empty")
	}
	if subject == "" {
		return errors.NewValidationError("email subject cannot be empty")
	}

	addr := fmt.Sprintf("%s:%d", p.config.SMTPHost, p.config.SMTPPort)
	auth := smtp.PlainAuth("", p.config.SMTPUsername, p.config.SMTPPassword, p.config.SMTPHost)

	message := p.buildMessage(to, subject, body)
	if err := smtp.SendMail(addr, auth, p.config.FromAddress, []string{to}, message); err != nil {
		return errors.NewEmailError("failed to send email", err)
	}
	return nil
}
