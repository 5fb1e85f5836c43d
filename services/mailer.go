package services

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Mailer delivers a single outbound notification. Fire-and-forget: one
// attempt, no retry, no queue. Booking state changes are never rolled back
// because a notification failed.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer sends plain-text mail using the mutable email-settings
// singleton. When the configuration is disabled it suppresses delivery and
// reports success; when enabled but incomplete it logs the message instead
// of attempting a connection.
type SMTPMailer struct {
	settings SettingsRepository
	log      *zap.Logger
}

func NewSMTPMailer(settings SettingsRepository, log *zap.Logger) *SMTPMailer {
	return &SMTPMailer{settings: settings, log: log}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	cfg, err := m.settings.Get(ctx)
	if err != nil {
		return err
	}

	if !cfg.Enabled {
		m.log.Debug("email disabled, suppressing delivery",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	authCfg, err := cfg.AuthConfig()
	if err != nil {
		return err
	}

	if cfg.Host == "" || cfg.Port == 0 || authCfg.User == "" || authCfg.Pass == "" {
		m.log.Info("smtp not configured, logging message instead",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	from := cfg.From
	if from == "" {
		from = authCfg.User
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	smtpAuth := smtp.PlainAuth("", authCfg.User, authCfg.Pass, cfg.Host)
	if err := smtp.SendMail(addr, smtpAuth, from, []string{to}, []byte(sb.String())); err != nil {
		m.log.Error("failed to send email", zap.String("to", to), zap.Error(err))
		return err
	}

	m.log.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

var _ Mailer = (*SMTPMailer)(nil)
