package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lms-api/internal/application/auth"
	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/pkg/metrics"
)

// ProfileFunc devuelve el perfil de una cuenta de la variante correspondiente.
type ProfileFunc func(ctx context.Context, id string) (interface{}, error)

// AuthHandler maneja login, rotación, logout, contraseñas y verificación de cuentas.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	res      *Responder
	cookie   CookieConfig
	profiles map[string]ProfileFunc
}

// NewAuthHandler construye el handler de auth. profiles resuelve el perfil de /auth/me por rol.
func NewAuthHandler(uc *auth.AuthUseCase, res *Responder, cookie CookieConfig, profiles map[string]ProfileFunc) *AuthHandler {
	return &AuthHandler{uc: uc, res: res, cookie: cookie, profiles: profiles}
}

func notFoundMessage(role string) string {
	switch role {
	case entity.RoleAdmin:
		return msgAdminMissing
	case entity.RoleCompany:
		return msgCompanyMissing
	case entity.RoleEmployee:
		return msgEmployeeMissing
	default:
		return msgIndividualMissing
	}
}

func (h *AuthHandler) loggedIn(c *fiber.Ctx, s *auth.Session) error {
	setRefreshCookie(c, h.cookie, s.Tokens.RefreshToken)
	return h.res.Send(c, fiber.StatusOK, msgLoggedIn, dto.LoginResponse{
		Account: auth.ToAccountResponse(s.Account),
		Token:   s.Tokens.AccessToken,
	})
}

// Login godoc
// @Summary      Login unificado (admin > company > employee > individual)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Failure      403   {object}  dto.Envelope
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	s, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return classify(err, "")
	}
	return h.loggedIn(c, s)
}

// LoginAs login restringido a la tabla de role.
// @Summary      Login por variante
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/v1/{variant}/login [post]
func (h *AuthHandler) LoginAs(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.LoginRequest
		if err := bind(c, &in); err != nil {
			return err
		}
		s, err := h.uc.LoginAs(c.UserContext(), role, in)
		if err != nil {
			return classify(err, notFoundMessage(role))
		}
		return h.loggedIn(c, s)
	}
}

// Refresh godoc
// @Summary      Rotar el par de tokens con la cookie de refresh
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.RefreshResponse}
// @Failure      401  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Router       /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token := c.Cookies(RefreshCookie)
	if token == "" {
		return NewError(fiber.StatusUnauthorized, msgUnauthenticated)
	}
	s, err := h.uc.Refresh(c.UserContext(), token)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrAccountBlocked):
		metrics.RefreshRotations.WithLabelValues("endpoint", "blocked").Inc()
		clearRefreshCookie(c, h.cookie)
		return NewError(fiber.StatusForbidden, msgAccountLocked)
	case auth.IsTokenError(err):
		metrics.RefreshRotations.WithLabelValues("endpoint", "rejected").Inc()
		clearRefreshCookie(c, h.cookie)
		return NewError(fiber.StatusUnauthorized, msgInvalidToken)
	default:
		metrics.RefreshRotations.WithLabelValues("endpoint", "error").Inc()
		return err
	}
	metrics.RefreshRotations.WithLabelValues("endpoint", "success").Inc()
	c.Set(fiber.HeaderAuthorization, "Bearer "+s.Tokens.AccessToken)
	setRefreshCookie(c, h.cookie, s.Tokens.RefreshToken)
	return h.res.Send(c, fiber.StatusOK, msgTokenRefreshed, dto.RefreshResponse{Token: s.Tokens.AccessToken})
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el refresh token y borra la cookie)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/auth/logout [post]
// @Router       /api/v1/employee/logout [get]
// @Router       /api/v1/individual/logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), c.Cookies(RefreshCookie)); err != nil {
		return err
	}
	clearRefreshCookie(c, h.cookie)
	return h.res.Send(c, fiber.StatusOK, msgLoggedOut, nil)
}

// Me godoc
// @Summary      Identidad del token y perfil de la cuenta
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.MeResponse}
// @Failure      401  {object}  dto.Envelope
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	role := GetRole(c)
	load, ok := h.profiles[role]
	if !ok {
		return NewError(fiber.StatusForbidden, msgUnauthorized)
	}
	profile, err := load(c.UserContext(), GetAccountID(c))
	if err != nil {
		return classify(err, notFoundMessage(role))
	}
	return h.res.Send(c, fiber.StatusOK, msgFetched, dto.MeResponse{
		ID:          GetAccountID(c),
		Role:        role,
		AccountType: GetAccountType(c),
		Profile:     profile,
	})
}

// ChangePassword godoc
// @Summary      Cambiar contraseña de la cuenta autenticada
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "oldPassword, newPassword"
// @Success      200   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Router       /api/v1/{variant}/change-password [patch]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	role := GetRole(c)
	if err := h.uc.ChangePassword(c.UserContext(), role, GetAccountID(c), in); err != nil {
		return classify(err, notFoundMessage(role))
	}
	return h.res.Send(c, fiber.StatusOK, msgPasswordChanged, nil)
}

// RequestVerification envía el correo de verificación.
// @Summary      Enviar correo de verificación
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmailRequest  true  "email"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/v1/{variant}/verify-account [patch]
func (h *AuthHandler) RequestVerification(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.EmailRequest
		if err := bind(c, &in); err != nil {
			return err
		}
		err := h.uc.SendVerification(c.UserContext(), role, in.Email)
		if errors.Is(err, domain.ErrConflict) {
			return NewError(fiber.StatusConflict, msgAlreadyVerified)
		}
		if err != nil {
			return classify(err, notFoundMessage(role))
		}
		return h.res.Send(c, fiber.StatusOK, msgVerificationOut, nil)
	}
}

// Verify consume el token de verificación.
// @Summary      Verificar cuenta
// @Tags         auth
// @Produce      json
// @Param        token  path  string  true  "token de verificación"
// @Success      200    {object}  dto.Envelope
// @Failure      400    {object}  dto.Envelope
// @Router       /api/v1/{variant}/verify/{token} [patch]
func (h *AuthHandler) Verify(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h.uc.VerifyAccount(c.UserContext(), role, c.Params("token")); err != nil {
			return classify(err, notFoundMessage(role))
		}
		return h.res.Send(c, fiber.StatusOK, msgVerified, nil)
	}
}

// ForgetPassword envía el correo de restablecimiento.
// @Summary      Solicitar restablecimiento de contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmailRequest  true  "email"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/v1/{variant}/forget-password [patch]
func (h *AuthHandler) ForgetPassword(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.EmailRequest
		if err := bind(c, &in); err != nil {
			return err
		}
		if err := h.uc.ForgetPassword(c.UserContext(), role, in.Email); err != nil {
			return classify(err, notFoundMessage(role))
		}
		return h.res.Send(c, fiber.StatusOK, msgResetRequested, nil)
	}
}

// ResetPassword consume el token de reset y guarda la nueva contraseña.
// @Summary      Restablecer contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path  string                     true  "token de reset"
// @Param        body   body  dto.ResetPasswordRequest  true  "password"
// @Success      200    {object}  dto.Envelope
// @Failure      400    {object}  dto.Envelope
// @Router       /api/v1/{variant}/reset-password/{token} [patch]
func (h *AuthHandler) ResetPassword(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.ResetPasswordRequest
		if err := bind(c, &in); err != nil {
			return err
		}
		if err := h.uc.ResetPassword(c.UserContext(), role, c.Params("token"), in.Password); err != nil {
			return classify(err, notFoundMessage(role))
		}
		return h.res.Send(c, fiber.StatusOK, msgResetDone, nil)
	}
}
