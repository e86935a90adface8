package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lms-api/internal/domain/entity"
	apphttp "github.com/jhoicas/lms-api/internal/interfaces/http"
	"github.com/jhoicas/lms-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinTokens_Retorna401(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	resp, env := s.do(t, request{method: http.MethodGet, path: "/api/v1/auth/me"})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "Unauthenticated", env.Message)
}

func TestAuthMiddleware_AccessValido_Pasa(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	ind := s.repos.SeedIndividual(t, "ana@lms.test", testutil.DefaultPassword)
	pair := pairFor(t, ind.ID, entity.RoleIndividual, 0)

	resp, env := s.do(t, request{method: http.MethodGet, path: "/api/v1/individual/me", access: pair.AccessToken})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "ana@lms.test")
	assert.Empty(t, resp.Header.Get(fiber.HeaderAuthorization))
}

func TestAuthMiddleware_AccessExpirado_RotaConCookie(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	ind := s.repos.SeedIndividual(t, "ana@lms.test", testutil.DefaultPassword)
	old := pairFor(t, ind.ID, entity.RoleIndividual, 2*time.Hour)

	resp, _ := s.do(t, request{method: http.MethodGet, path: "/api/v1/individual/me", access: old.AccessToken, refresh: old.RefreshToken})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	header := resp.Header.Get(fiber.HeaderAuthorization)
	require.True(t, strings.HasPrefix(header, "Bearer "))
	claims, err := s.tokens.VerifyAccess(strings.TrimPrefix(header, "Bearer "))
	require.NoError(t, err)
	assert.Equal(t, ind.ID, claims.AccountID)

	cookie := refreshCookie(resp)
	require.NotNil(t, cookie)
	assert.NotEqual(t, old.RefreshToken, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// el refresh anterior quedó revocado
	resp, env := s.do(t, request{method: http.MethodGet, path: "/api/v1/individual/me", access: old.AccessToken, refresh: old.RefreshToken})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token expired", env.Message)
}

func TestAuthMiddleware_SoloCookie_Rota(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	ind := s.repos.SeedIndividual(t, "ana@lms.test", testutil.DefaultPassword)
	pair := pairFor(t, ind.ID, entity.RoleIndividual, 0)

	resp, _ := s.do(t, request{method: http.MethodGet, path: "/api/v1/individual/me", refresh: pair.RefreshToken})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderAuthorization))
}

func TestAuthMiddleware_RotacionDeshabilitada_Retorna401(t *testing.T) {
	s := newTestServer(t, serverOptions{noRotation: true})
	ind := s.repos.SeedIndividual(t, "ana@lms.test", testutil.DefaultPassword)
	old := pairFor(t, ind.ID, entity.RoleIndividual, 2*time.Hour)

	resp, env := s.do(t, request{method: http.MethodGet, path: "/api/v1/individual/me", access: old.AccessToken, refresh: old.RefreshToken})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token expired", env.Message)
}

func TestAuthMiddleware_CuentaBloqueada_Retorna403YLimpiaCookie(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	ind := s.repos.SeedIndividual(t, "ana@lms.test", testutil.DefaultPassword)
	old := pairFor(t, ind.ID, entity.RoleIndividual, 2*time.Hour)
	require.NoError(t, s.repos.Individuals.UpdateStatus(context.Background(), ind.ID, entity.StatusBlocked))

	resp, env := s.do(t, request{method: http.MethodGet, path: "/api/v1/individual/me", access: old.AccessToken, refresh: old.RefreshToken})

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Account is locked", env.Message)
	cookie := refreshCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminEnRutaDeCompany_Retorna403(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	admin := s.repos.SeedAdmin(t, "admin@lms.test", testutil.DefaultPassword)
	pair := pairFor(t, admin.ID, entity.RoleAdmin, 0)

	resp, env := s.do(t, request{method: http.MethodGet, path: "/api/v1/company/profile", access: pair.AccessToken})

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Unauthorized", env.Message)
}

func TestRequireRole_SinRolEnContexto_Retorna401(t *testing.T) {
	res := apphttp.NewResponder(false, nil)
	app := apphttp.NewApp(apphttp.ServerConfig{}, res)
	app.Get("/protected", apphttp.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_VariosRolesPermitidos(t *testing.T) {
	res := apphttp.NewResponder(false, nil)
	app := apphttp.NewApp(apphttp.ServerConfig{}, res)
	app.Get("/protected",
		func(c *fiber.Ctx) error {
			c.Locals(apphttp.LocalRole, c.Get("X-Role"))
			return c.Next()
		},
		apphttp.RequireRole(entity.RoleAdmin, entity.RoleCompany),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	cases := map[string]int{
		entity.RoleAdmin:      fiber.StatusOK,
		entity.RoleCompany:    fiber.StatusOK,
		entity.RoleEmployee:   fiber.StatusForbidden,
		entity.RoleIndividual: fiber.StatusForbidden,
	}
	for role, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-Role", role)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, role)
	}
}
