package mail_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/lms-api/internal/application/ports"
	"github.com/jhoicas/lms-api/internal/infrastructure/mail"
	"github.com/jhoicas/lms-api/pkg/config"
)

var mailCfg = config.MailConfig{From: "noreply@lms.test", FromName: "LMS"}

func capture(sent *[]*gomail.Message) mail.Option {
	return mail.WithSender(func(msg *gomail.Message) error {
		*sent = append(*sent, msg)
		return nil
	})
}

func render(t *testing.T, msg *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestMailer_SinHostSoloRegistra(t *testing.T) {
	m := mail.NewSMTPMailer(mailCfg, "LMS", nil)
	assert.NoError(t, m.SendWelcome(context.Background(), "ana@lms.test", "ana"))
}

func TestMailer_Verificacion(t *testing.T) {
	var sent []*gomail.Message
	m := mail.NewSMTPMailer(mailCfg, "LMS", nil, capture(&sent))

	require.NoError(t, m.SendVerification(context.Background(), "ana@lms.test", "ana", "http://x.test/v/tok123"))
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"Verifica tu cuenta en LMS"}, sent[0].GetHeader("Subject"))
	body := render(t, sent[0])
	assert.Contains(t, body, "http://x.test/v/tok123")
	assert.Contains(t, body, "Hola Ana")
	assert.Contains(t, body, "text/html")
}

func TestMailer_InvitacionIncluyeCredenciales(t *testing.T) {
	var sent []*gomail.Message
	m := mail.NewSMTPMailer(mailCfg, "LMS", nil, capture(&sent))

	err := m.SendInvitation(context.Background(), ports.Invitation{
		To: "luis@lms.test", Name: "luis", InvitedBy: "Acme", Password: "Tmp1234", LoginURL: "http://x.test/login",
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)
	body := render(t, sent[0])
	assert.Contains(t, body, "Tmp1234")
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "http://x.test/login")
}

func TestMailer_ErrorDeTransporte(t *testing.T) {
	m := mail.NewSMTPMailer(mailCfg, "LMS", nil, mail.WithSender(func(*gomail.Message) error {
		return errors.New("smtp caído")
	}))
	err := m.SendPasswordReset(context.Background(), "ana@lms.test", "Ana", "http://x.test/r/tok")
	assert.ErrorContains(t, err, "smtp caído")
}

func TestMailer_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := mail.NewSMTPMailer(mailCfg, "LMS", nil)
	assert.ErrorIs(t, m.SendWelcome(ctx, "ana@lms.test", "Ana"), context.Canceled)
}
