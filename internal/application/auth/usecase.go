package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/internal/application/ports"
	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/internal/domain/repository"
	"github.com/jhoicas/lms-api/pkg/jwt"
	"github.com/jhoicas/lms-api/pkg/logger"
	"github.com/jhoicas/lms-api/pkg/metrics"
	"github.com/jhoicas/lms-api/pkg/password"
)

// Repositories cuentas por variante. El orden de prioridad del login es fijo:
// admin > company > employee > individual.
type Repositories struct {
	Admins      repository.AccountRepository
	Companies   repository.AccountRepository
	Employees   repository.AccountRepository
	Individuals repository.AccountRepository
}

// Config datos necesarios para armar los enlaces de los correos.
type Config struct {
	ServerURL string
}

// Session resultado de login o rotación.
type Session struct {
	Tokens  jwt.TokenPair
	Account *entity.Account
}

type variant struct {
	role string
	repo repository.AccountRepository
}

// AuthUseCase casos de uso de autenticación: login, rotación, logout, contraseñas y verificación.
type AuthUseCase struct {
	variants []variant
	tokens   *jwt.Service
	store    ports.TokenStore
	mailer   ports.Mailer
	cfg      Config
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(repos Repositories, tokens *jwt.Service, store ports.TokenStore, mailer ports.Mailer, cfg Config, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		variants: []variant{
			{role: entity.RoleAdmin, repo: repos.Admins},
			{role: entity.RoleCompany, repo: repos.Companies},
			{role: entity.RoleEmployee, repo: repos.Employees},
			{role: entity.RoleIndividual, repo: repos.Individuals},
		},
		tokens: tokens,
		store:  store,
		mailer: mailer,
		cfg:    cfg,
		log:    log.Named("auth"),
		now:    time.Now,
	}
}

func (uc *AuthUseCase) repoFor(role string) (repository.AccountRepository, error) {
	for _, v := range uc.variants {
		if v.role == role {
			return v.repo, nil
		}
	}
	return nil, fmt.Errorf("rol desconocido %q: %w", role, domain.ErrInvalidInput)
}

// Login resuelve email/password contra las cuatro tablas en orden de prioridad. La primera tabla
// con ese email decide: si el password no coincide se devuelve ErrInvalidCredentials sin seguir probando.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*Session, error) {
	email := entity.NormalizeEmail(in.Email)
	for _, v := range uc.variants {
		acc, err := v.repo.FindAccountByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			continue
		}
		return uc.authenticate(ctx, v.role, acc, in.Password)
	}
	metrics.Logins.WithLabelValues("none", "invalid_credentials").Inc()
	return nil, domain.ErrInvalidCredentials
}

// LoginAs login restringido a la tabla del rol indicado. Devuelve ErrNotFound si el email no existe en ella.
func (uc *AuthUseCase) LoginAs(ctx context.Context, role string, in dto.LoginRequest) (*Session, error) {
	repo, err := uc.repoFor(role)
	if err != nil {
		return nil, err
	}
	acc, err := repo.FindAccountByEmail(ctx, entity.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	return uc.authenticate(ctx, role, acc, in.Password)
}

func (uc *AuthUseCase) authenticate(ctx context.Context, role string, acc *entity.Account, plain string) (*Session, error) {
	if !password.Compare(plain, acc.PasswordHash) {
		metrics.Logins.WithLabelValues(role, "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}
	if acc.IsBlocked() {
		metrics.Logins.WithLabelValues(role, "blocked").Inc()
		return nil, domain.ErrAccountBlocked
	}
	repo, _ := uc.repoFor(role)
	now := uc.now()
	if err := repo.TouchLastLogin(ctx, acc.ID, now); err != nil {
		uc.log.Warn().Err(err).Str("account_id", acc.ID).Msg("no se pudo registrar lastLogin")
	} else {
		acc.LastLogin = &now
	}
	pair, err := uc.tokens.Issue(payloadOf(acc))
	if err != nil {
		return nil, err
	}
	metrics.Logins.WithLabelValues(role, "success").Inc()
	return &Session{Tokens: pair, Account: acc}, nil
}

// Refresh rota el par de tokens a partir de un refresh token válido: el jti presentado queda revocado
// y la identidad debe seguir existiendo (y no estar bloqueada) en su tabla.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	claims, err := uc.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	revoked, err := uc.store.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("consultar revocación: %w", err)
	}
	if revoked {
		return nil, domain.ErrTokenInvalid
	}
	repo, err := uc.repoFor(claims.Role)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	acc, err := repo.FindAccountByID(ctx, claims.AccountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrTokenInvalid
	}
	if acc.IsBlocked() {
		return nil, domain.ErrAccountBlocked
	}
	// Sólo el primer llamador que reclama el jti rota; los concurrentes reciben token inválido.
	claimed, err := uc.store.RevokeIfAbsent(ctx, claims.ID, claims.ExpiresIn(uc.now()))
	if err != nil {
		return nil, fmt.Errorf("revocar refresh token: %w", err)
	}
	if !claimed {
		return nil, domain.ErrTokenInvalid
	}
	pair, err := uc.tokens.Issue(payloadOf(acc))
	if err != nil {
		return nil, err
	}
	return &Session{Tokens: pair, Account: acc}, nil
}

// Logout revoca el refresh token si es válido. Un token inválido o ausente no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	claims, err := uc.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil
	}
	return uc.store.Revoke(ctx, claims.ID, claims.ExpiresIn(uc.now()))
}

// ChangePassword verifica la contraseña actual y persiste el nuevo hash.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, role, accountID string, in dto.ChangePasswordRequest) error {
	repo, err := uc.repoFor(role)
	if err != nil {
		return err
	}
	acc, err := repo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrNotFound
	}
	if !password.Compare(in.OldPassword, acc.PasswordHash) {
		return domain.ErrInvalidCredentials
	}
	hash, err := password.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	return repo.UpdatePassword(ctx, acc.ID, hash)
}

// SendVerification emite un token de verificación y lo envía por correo. Devuelve ErrConflict si ya está verificada.
func (uc *AuthUseCase) SendVerification(ctx context.Context, role, email string) error {
	repo, err := uc.repoFor(role)
	if err != nil {
		return err
	}
	acc, err := repo.FindAccountByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrNotFound
	}
	if acc.IsVerified {
		return domain.ErrConflict
	}
	token, err := uc.tokens.IssueVerificationToken(payloadOf(acc))
	if err != nil {
		return err
	}
	link := uc.link(role, "verify", token)
	if err := uc.mailer.SendVerification(ctx, acc.Email, acc.FullName, link); err != nil {
		uc.log.Warn().Err(err).Str("account_id", acc.ID).Msg("fallo al enviar correo de verificación")
	}
	return nil
}

// VerifyAccount consume el token de verificación (un solo uso) y marca la cuenta como verificada.
func (uc *AuthUseCase) VerifyAccount(ctx context.Context, role, token string) error {
	claims, err := uc.tokens.VerifyVerificationToken(token)
	if err != nil || claims.Role != role {
		return domain.ErrTokenInvalid
	}
	repo, err := uc.repoFor(role)
	if err != nil {
		return err
	}
	if err := uc.consume(ctx, claims); err != nil {
		return err
	}
	return repo.MarkVerified(ctx, claims.AccountID)
}

// ForgetPassword emite un token de reset y lo envía por correo.
func (uc *AuthUseCase) ForgetPassword(ctx context.Context, role, email string) error {
	repo, err := uc.repoFor(role)
	if err != nil {
		return err
	}
	acc, err := repo.FindAccountByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrNotFound
	}
	token, err := uc.tokens.IssueResetToken(payloadOf(acc))
	if err != nil {
		return err
	}
	link := uc.link(role, "reset-password", token)
	if err := uc.mailer.SendPasswordReset(ctx, acc.Email, acc.FullName, link); err != nil {
		uc.log.Warn().Err(err).Str("account_id", acc.ID).Msg("fallo al enviar correo de reset")
	}
	return nil
}

// ResetPassword consume el token de reset (un solo uso) y guarda la nueva contraseña.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, role, token, newPassword string) error {
	claims, err := uc.tokens.VerifyResetToken(token)
	if err != nil || claims.Role != role {
		return domain.ErrTokenInvalid
	}
	repo, err := uc.repoFor(role)
	if err != nil {
		return err
	}
	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := uc.consume(ctx, claims); err != nil {
		return err
	}
	return repo.UpdatePassword(ctx, claims.AccountID, hash)
}

func (uc *AuthUseCase) consume(ctx context.Context, claims *jwt.Claims) error {
	ok, err := uc.store.Consume(ctx, claims.ID, claims.ExpiresIn(uc.now()))
	if err != nil {
		return fmt.Errorf("consumir token: %w", err)
	}
	if !ok {
		return domain.ErrTokenConsumed
	}
	return nil
}

func (uc *AuthUseCase) link(role, action, token string) string {
	return fmt.Sprintf("%s/api/v1/%s/%s/%s", uc.cfg.ServerURL, RoutePrefix(role), action, token)
}

// RoutePrefix segmento de ruta de cada variante bajo /api/v1.
func RoutePrefix(role string) string {
	switch role {
	case entity.RoleAdmin:
		return "admin"
	case entity.RoleCompany:
		return "company"
	case entity.RoleEmployee:
		return "employee"
	default:
		return "individual"
	}
}

// IsTokenError indica si err proviene de un token inválido, expirado o ya consumido.
func IsTokenError(err error) bool {
	return errors.Is(err, domain.ErrTokenInvalid) || errors.Is(err, domain.ErrTokenConsumed)
}

func payloadOf(acc *entity.Account) jwt.Payload {
	return jwt.Payload{ID: acc.ID, Role: acc.Role, AccountType: acc.AccountType}
}

// ToAccountResponse vista común de una cuenta.
func ToAccountResponse(a *entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		FullName:    a.FullName,
		Phone:       a.Phone,
		Role:        a.Role,
		AccountType: a.AccountType,
		Status:      a.Status,
		IsVerified:  a.IsVerified,
		LastLogin:   a.LastLogin,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
