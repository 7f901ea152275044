// Package mail delivers outbound account mail over SMTP. Messages are plain
// text; templates deliberately stay minimal since every secret lives in the
// client, never in a mail body.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/ndanilkin/go-vault-server/internal/config"
	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/service"
)

type smtpMailer struct {
	cfg    config.Mail
	logger *logger.Logger

	// sendFn is swappable for tests; defaults to smtp.SendMail.
	sendFn func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer returns an SMTP-backed Mailer, or a no-op implementation when
// mail is disabled in configuration.
func NewMailer(cfg config.Mail, logger *logger.Logger) service.Mailer {
	if !cfg.Enabled {
		return &nopMailer{}
	}
	return &smtpMailer{
		cfg:    cfg,
		logger: logger,
		sendFn: smtp.SendMail,
	}
}

func (m *smtpMailer) SendWelcome(ctx context.Context, address string) error {
	body := "Your account has been created.\r\n" +
		"If this was not you, contact your server administrator immediately.\r\n"
	return m.send(ctx, address, "Welcome", body)
}

func (m *smtpMailer) SendChangeEmail(ctx context.Context, address, token string) error {
	body := fmt.Sprintf("To finalize changing your account email address, enter the following code in the app:\r\n\r\n%s\r\n\r\n"+
		"If you did not request this change, you can ignore this message.\r\n", token)
	return m.send(ctx, address, "Your email change verification code", body)
}

func (m *smtpMailer) SendPasswordHint(ctx context.Context, address, hint string) error {
	var body string
	if hint == "" {
		body = "You (or someone) requested your master password hint, but none is set for this account.\r\n"
	} else {
		body = fmt.Sprintf("You (or someone) requested your master password hint.\r\n\r\nYour hint is: %s\r\n", hint)
	}
	return m.send(ctx, address, "Your master password hint", body)
}

func (m *smtpMailer) SendDeleteAccount(ctx context.Context, address, token string) error {
	body := fmt.Sprintf("To permanently delete your account, follow up in the app with this token:\r\n\r\n%s\r\n\r\n"+
		"If you did not request deletion, you can safely ignore this message.\r\n", token)
	return m.send(ctx, address, "Confirm account deletion", body)
}

func (m *smtpMailer) SendEmailTwoFactorActivation(ctx context.Context, address, token string) error {
	body := fmt.Sprintf("Your organization requires a second factor at login. Email verification has been "+
		"turned on for your account.\r\n\r\nYour first verification code is:\r\n\r\n%s\r\n", token)
	return m.send(ctx, address, "Email verification enabled", body)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	if err := m.sendFn(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp delivery failed: %w", err)
	}

	m.logger.Debug().Str("subject", subject).Msg("mail sent")
	return nil
}

// nopMailer satisfies service.Mailer when mail is disabled. Services gate
// mail-dependent flows on config.Mail.Enabled themselves, so these methods
// are never load-bearing.
type nopMailer struct{}

func (*nopMailer) SendWelcome(context.Context, string) error              { return nil }
func (*nopMailer) SendChangeEmail(context.Context, string, string) error  { return nil }
func (*nopMailer) SendPasswordHint(context.Context, string, string) error { return nil }
func (*nopMailer) SendDeleteAccount(context.Context, string, string) error {
	return nil
}
func (*nopMailer) SendEmailTwoFactorActivation(context.Context, string, string) error {
	return nil
}
