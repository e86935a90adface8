package mail

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/lms-api/internal/application/ports"
	"github.com/jhoicas/lms-api/pkg/config"
	"github.com/jhoicas/lms-api/pkg/logger"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

// SendFunc entrega un mensaje ya armado.
type SendFunc func(msg *gomail.Message) error

// SMTPMailer implementa ports.Mailer con gomail. Sin host configurado solo registra el envío.
type SMTPMailer struct {
	from     string
	fromName string
	app      string
	send     SendFunc
	log      *logger.Logger
}

// Option configura el mailer.
type Option func(*SMTPMailer)

// WithSender reemplaza el transporte (tests).
func WithSender(send SendFunc) Option {
	return func(m *SMTPMailer) { m.send = send }
}

// NewSMTPMailer construye el mailer. El puerto 465 usa TLS implícito (gomail lo activa solo).
func NewSMTPMailer(cfg config.MailConfig, appName string, log *logger.Logger, opts ...Option) *SMTPMailer {
	if log == nil {
		log = logger.Nop()
	}
	m := &SMTPMailer{
		from:     cfg.From,
		fromName: cfg.FromName,
		app:      appName,
		log:      log.Named("mailer"),
	}
	if cfg.Host != "" {
		dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
		m.send = func(msg *gomail.Message) error { return dialer.DialAndSend(msg) }
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func displayName(name, email string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return email
	}
	// cases.Caser no es seguro entre goroutines.
	return cases.Title(language.Und).String(name)
}

func (m *SMTPMailer) deliver(ctx context.Context, kind string, tpl template, to string, v view) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v.App = m.app
	v.Email = to
	subject, html, text, err := tpl.render(v)
	if err != nil {
		return fmt.Errorf("render %s: %w", kind, err)
	}
	if m.send == nil {
		m.log.Info().Str("kind", kind).Str("to", to).Str("subject", subject).Msg("correo (solo log)")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetAddressHeader("To", to, v.Name)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	if err := m.send(msg); err != nil {
		return fmt.Errorf("send %s to %s: %w", kind, to, err)
	}
	m.log.Debug().Str("kind", kind).Str("to", to).Msg("correo enviado")
	return nil
}

func (m *SMTPMailer) SendInvitation(ctx context.Context, in ports.Invitation) error {
	return m.deliver(ctx, "invitation", invitationTemplate, in.To, view{
		Name:      displayName(in.Name, in.To),
		Link:      in.LoginURL,
		InvitedBy: in.InvitedBy,
		Password:  in.Password,
	})
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, to, name string) error {
	return m.deliver(ctx, "welcome", welcomeTemplate, to, view{Name: displayName(name, to)})
}

func (m *SMTPMailer) SendVerification(ctx context.Context, to, name, link string) error {
	return m.deliver(ctx, "verification", verificationTemplate, to, view{Name: displayName(name, to), Link: link})
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, name, link string) error {
	return m.deliver(ctx, "reset", resetTemplate, to, view{Name: displayName(name, to), Link: link})
}
