package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lms-api/internal/application/auth"
	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/pkg/jwt"
	"github.com/jhoicas/lms-api/pkg/logger"
	"github.com/jhoicas/lms-api/pkg/metrics"
)

// refresher rota un refresh token. Lo implementa *auth.AuthUseCase.
type refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*auth.Session, error)
}

// AuthConfig dependencias del middleware de autenticación.
type AuthConfig struct {
	Tokens    *jwt.Service
	Refresher refresher
	// Rotation habilita la rotación con la cookie de refresh cuando el access token no es válido.
	Rotation bool
	Cookie   CookieConfig
	Log      *logger.Logger
}

// bearerToken extrae el token de "Authorization: Bearer <token>"; vacío si no hay o el formato no coincide.
func bearerToken(c *fiber.Ctx) string {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func attachIdentity(c *fiber.Ctx, p jwt.Payload) {
	c.Locals(LocalAccountID, p.ID)
	c.Locals(LocalRole, p.Role)
	c.Locals(LocalAccountType, p.AccountType)
}

// AuthMiddleware valida el access token (Bearer) y, si no es válido y la rotación está activa,
// rota el par usando la cookie de refresh. El nuevo access token viaja en el header Authorization
// de la respuesta y el nuevo refresh token en la cookie.
func AuthMiddleware(cfg AuthConfig) fiber.Handler {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.Named("auth_middleware")

	return func(c *fiber.Ctx) error {
		access := bearerToken(c)
		refresh := c.Cookies(RefreshCookie)
		if access == "" && refresh == "" {
			return NewError(fiber.StatusUnauthorized, msgUnauthenticated)
		}

		if access != "" {
			if claims, err := cfg.Tokens.VerifyAccess(access); err == nil {
				attachIdentity(c, claims.Payload())
				return c.Next()
			}
		}

		if refresh == "" {
			return NewError(fiber.StatusUnauthorized, msgUnauthenticated)
		}
		if !cfg.Rotation {
			return NewError(fiber.StatusUnauthorized, msgTokenExpired)
		}

		session, err := cfg.Refresher.Refresh(c.UserContext(), refresh)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrAccountBlocked):
			metrics.RefreshRotations.WithLabelValues("middleware", "blocked").Inc()
			clearRefreshCookie(c, cfg.Cookie)
			return NewError(fiber.StatusForbidden, msgAccountLocked)
		case auth.IsTokenError(err):
			metrics.RefreshRotations.WithLabelValues("middleware", "rejected").Inc()
			clearRefreshCookie(c, cfg.Cookie)
			return NewError(fiber.StatusUnauthorized, msgTokenExpired)
		default:
			metrics.RefreshRotations.WithLabelValues("middleware", "error").Inc()
			return err
		}

		metrics.RefreshRotations.WithLabelValues("middleware", "success").Inc()
		log.Debug().Str("account_id", session.Account.ID).Msg("par de tokens rotado")
		c.Set(fiber.HeaderAuthorization, "Bearer "+session.Tokens.AccessToken)
		setRefreshCookie(c, cfg.Cookie, session.Tokens.RefreshToken)
		attachIdentity(c, jwt.Payload{
			ID:          session.Account.ID,
			Role:        session.Account.Role,
			AccountType: session.Account.AccountType,
		})
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir después de AuthMiddleware.
// Sin rol en el contexto responde 401; con un rol distinto, 403.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return NewError(fiber.StatusUnauthorized, msgUnauthenticated)
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return NewError(fiber.StatusForbidden, msgUnauthorized)
	}
}
