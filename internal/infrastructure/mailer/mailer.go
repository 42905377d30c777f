package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"careercraft/internal/config"
)

// Mailer delivers verification codes to users.
type Mailer interface {
	SendOTP(email, code string) error
}

// SMTPMailer sends the OTP over plain SMTP with AUTH. When SMTP is not
// configured, or delivery fails, the code is logged to the console so
// that local development can proceed without a mail account.
type SMTPMailer struct {
	cfg    config.SMTPConfig
	logger *log.Logger
}

func NewSMTPMailer(cfg config.SMTPConfig, logger *log.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

func (m *SMTPMailer) configured() bool {
	return strings.TrimSpace(m.cfg.Host) != "" &&
		strings.TrimSpace(m.cfg.Username) != "" &&
		strings.TrimSpace(m.cfg.Password) != ""
}

func (m *SMTPMailer) SendOTP(email, code string) error {
	if !m.configured() {
		m.logToConsole("SMTP not configured", email, code)
		return nil
	}

	body := fmt.Sprintf(`Hello,

Your OTP verification code is: %s

This code will expire in 10 minutes.

If you didn't request this code, please ignore this email.

Best regards,
Your App Team`, code)

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + email,
		"Subject: Your OTP Verification Code",
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{email}, []byte(msg)); err != nil {
		if m.logger != nil {
			m.logger.Printf("[Mailer] send failed to=%s err=%v", email, err)
		}
		// The user should still be able to verify when mail is down.
		m.logToConsole("delivery failed", email, code)
		return nil
	}

	if m.logger != nil {
		m.logger.Printf("[Mailer] OTP sent to=%s", email)
	}
	return nil
}

func (m *SMTPMailer) logToConsole(reason, email, code string) {
	if m.logger == nil {
		return
	}
	m.logger.Printf("[Mailer] %s, showing OTP in console: email=%s otp=%s (expires in 10 minutes)", reason, email, code)
}

var _ Mailer = (*SMTPMailer)(nil)
