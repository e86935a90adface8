package jwt

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// Usos de token; se firman con secretos distintos y además se marcan en el claim "use".
const (
	UseAccess       = "access"
	UseRefresh      = "refresh"
	UseVerification = "verification"
	UseReset        = "reset"
)

// ErrInvalidToken agrupa firma incorrecta, expiración, uso equivocado o claims incompletos.
var ErrInvalidToken = errors.New("jwt: token inválido o expirado")

// Payload identidad mínima embebida en todos los tokens.
type Payload struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	AccountType string `json:"accountType"`
}

// Claims incluye los claims estándar JWT más la identidad de la cuenta.
// RegisteredClaims.ID (jti) es único por emisión en refresh, verificación y reset.
type Claims struct {
	jwt.RegisteredClaims
	AccountID   string `json:"id"`
	Role        string `json:"role"`
	AccountType string `json:"accountType"`
	Use         string `json:"use"`
}

// Payload devuelve la identidad contenida en los claims.
func (c *Claims) Payload() Payload {
	return Payload{ID: c.AccountID, Role: c.Role, AccountType: c.AccountType}
}

// ExpiresIn devuelve el tiempo de vida restante del token respecto a now (nunca negativo).
func (c *Claims) ExpiresIn(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	d := c.ExpiresAt.Time.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// TokenPair par access/refresh entregado tras login o rotación.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Config secretos y expiraciones independientes por uso.
type Config struct {
	AccessSecret       string
	AccessTTL          time.Duration
	RefreshSecret      string
	RefreshTTL         time.Duration
	VerificationSecret string
	VerificationTTL    time.Duration
	ResetSecret        string
	ResetTTL           time.Duration
	Issuer             string
}

// Service emite y verifica los cuatro tipos de token. Es seguro para uso concurrente.
type Service struct {
	cfg Config
	now func() time.Time
}

// Option ajusta el servicio (tests).
type Option func(*Service)

// WithClock reemplaza el reloj usado para IssuedAt/ExpiresAt y la validación.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService valida que existan todos los secretos; sin ellos el proceso no debe arrancar.
func NewService(cfg Config, opts ...Option) (*Service, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" || cfg.VerificationSecret == "" || cfg.ResetSecret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 60 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 30 * 24 * time.Hour
	}
	if cfg.VerificationTTL <= 0 {
		cfg.VerificationTTL = 24 * time.Hour
	}
	if cfg.ResetTTL <= 0 {
		cfg.ResetTTL = 48 * time.Hour
	}
	s := &Service{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RefreshTTL expone la vida del refresh token (max-age de la cookie).
func (s *Service) RefreshTTL() time.Duration { return s.cfg.RefreshTTL }

// Issue genera el par access/refresh para la identidad dada.
func (s *Service) Issue(p Payload) (TokenPair, error) {
	access, err := s.sign(p, UseAccess, s.cfg.AccessSecret, s.cfg.AccessTTL, "")
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(p, UseRefresh, s.cfg.RefreshSecret, s.cfg.RefreshTTL, newJTI())
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueVerificationToken token de verificación de email (un solo uso, controlado por el TokenStore).
func (s *Service) IssueVerificationToken(p Payload) (string, error) {
	return s.sign(p, UseVerification, s.cfg.VerificationSecret, s.cfg.VerificationTTL, newJTI())
}

// IssueResetToken token de restablecimiento de contraseña.
func (s *Service) IssueResetToken(p Payload) (string, error) {
	return s.sign(p, UseReset, s.cfg.ResetSecret, s.cfg.ResetTTL, newJTI())
}

// VerifyAccess nunca entra en pánico: cualquier fallo se reporta como ErrInvalidToken.
func (s *Service) VerifyAccess(token string) (*Claims, error) {
	return s.parse(token, UseAccess, s.cfg.AccessSecret)
}

func (s *Service) VerifyRefresh(token string) (*Claims, error) {
	return s.parse(token, UseRefresh, s.cfg.RefreshSecret)
}

func (s *Service) VerifyVerificationToken(token string) (*Claims, error) {
	return s.parse(token, UseVerification, s.cfg.VerificationSecret)
}

func (s *Service) VerifyResetToken(token string) (*Claims, error) {
	return s.parse(token, UseReset, s.cfg.ResetSecret)
}

func (s *Service) sign(p Payload, use, secret string, ttl time.Duration, jti string) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   p.ID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AccountID:   p.ID,
		Role:        p.Role,
		AccountType: p.AccountType,
		Use:         use,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("firmar token %s: %w", use, err)
	}
	return signed, nil
}

func (s *Service) parse(tokenString, use, secret string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Use != use || claims.ID == "" && use != UseAccess {
		return nil, ErrInvalidToken
	}
	if claims.AccountID == "" || claims.Role == "" || claims.AccountType == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// newJTI identificador ULID aleatorio por emisión.
func newJTI() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
