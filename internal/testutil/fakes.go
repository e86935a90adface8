package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/lms-api/internal/application/ports"
)

var (
	_ ports.TokenStore = (*TokenStore)(nil)
	_ ports.Mailer     = (*Mailer)(nil)
)

// TokenStore implementación en memoria de ports.TokenStore (ignora ttl).
type TokenStore struct {
	mu       sync.Mutex
	revoked  map[string]bool
	consumed map[string]bool
}

func NewTokenStore() *TokenStore {
	return &TokenStore{revoked: map[string]bool{}, consumed: map[string]bool{}}
}

func (s *TokenStore) Revoke(_ context.Context, jti string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = true
	return nil
}

func (s *TokenStore) RevokeIfAbsent(_ context.Context, jti string, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revoked[jti] {
		return false, nil
	}
	s.revoked[jti] = true
	return true, nil
}

func (s *TokenStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked[jti], nil
}

func (s *TokenStore) Consume(_ context.Context, jti string, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consumed[jti] {
		return false, nil
	}
	s.consumed[jti] = true
	return true, nil
}

// SentMail correo registrado por el Mailer fake.
type SentMail struct {
	Kind string // invitation, welcome, verification, reset
	To   string
	Link string
}

// Mailer registra los correos enviados; si Err no es nil todos los envíos fallan con ese error.
type Mailer struct {
	mu   sync.Mutex
	Err  error
	Sent []SentMail
}

func NewMailer() *Mailer { return &Mailer{} }

func (m *Mailer) record(kind, to, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{Kind: kind, To: to, Link: link})
	return nil
}

func (m *Mailer) SendInvitation(_ context.Context, in ports.Invitation) error {
	return m.record("invitation", in.To, in.LoginURL)
}

func (m *Mailer) SendWelcome(_ context.Context, to, _ string) error {
	return m.record("welcome", to, "")
}

func (m *Mailer) SendVerification(_ context.Context, to, _, link string) error {
	return m.record("verification", to, link)
}

func (m *Mailer) SendPasswordReset(_ context.Context, to, _, link string) error {
	return m.record("reset", to, link)
}

// Last devuelve el último correo enviado o nil.
func (m *Mailer) Last() *SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return nil
	}
	last := m.Sent[len(m.Sent)-1]
	return &last
}
