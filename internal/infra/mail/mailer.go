// Package mail provides transactional mail delivery for verification and
// password reset links.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/pkg/errors"

	"homeroom/config"
	"homeroom/internal/domain/service"
)

// smtpMailer delivers mail through a plain SMTP relay.
type smtpMailer struct {
	addr    string
	from    string
	auth    smtp.Auth
	baseURL string
}

// logMailer logs the mail instead of sending it. Used in development when no
// SMTP relay is configured.
type logMailer struct {
	logger  *slog.Logger
	baseURL string
}

// NewMailer builds a Mailer from config: SMTP when a host is configured,
// otherwise a log-only mailer.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return &logMailer{logger: logger, baseURL: baseURL(cfg)}
	}

	var auth smtp.Auth
	if cfg.Mail.Username != "" {
		auth = smtp.PlainAuth("", cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.Host)
	}

	return &smtpMailer{
		addr:    fmt.Sprintf("%s:%d", cfg.Mail.Host, cfg.Mail.Port),
		from:    cfg.Mail.From,
		auth:    auth,
		baseURL: baseURL(cfg),
	}
}

func baseURL(cfg *config.Config) string {
	if cfg.Mail != nil && cfg.Mail.LinkBaseURL != "" {
		return cfg.Mail.LinkBaseURL
	}

	return "http://localhost:3000"
}

func (m *smtpMailer) SendVerificationMail(ctx context.Context, to, name, token string) error {
	subject := "請驗證您的電子郵件"
	link := fmt.Sprintf("%s/verify-email?token=%s", m.baseURL, token)

	return m.send(to, subject, fmt.Sprintf("Hi %s,\r\n\r\n請點擊以下連結完成驗證（24 小時內有效）：\r\n%s\r\n", name, link))
}

func (m *smtpMailer) SendPasswordResetMail(ctx context.Context, to, name, token string) error {
	subject := "重設您的密碼"
	link := fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, token)

	return m.send(to, subject, fmt.Sprintf("Hi %s,\r\n\r\n請點擊以下連結重設密碼（1 小時內有效）：\r\n%s\r\n", name, link))
}

func (m *smtpMailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}

func (m *logMailer) SendVerificationMail(ctx context.Context, to, name, token string) error {
	m.logger.Info("Verification mail (log only)",
		slog.String("to", to),
		slog.String("link", fmt.Sprintf("%s/verify-email?token=%s", m.baseURL, token)))

	return nil
}

func (m *logMailer) SendPasswordResetMail(ctx context.Context, to, name, token string) error {
	m.logger.Info("Password reset mail (log only)",
		slog.String("to", to),
		slog.String("link", fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, token)))

	return nil
}
