package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Signup y validación
// ──────────────────────────────────────────────────────────────────────────────

func TestSignupIndividual_Retorna201ConSobre(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	resp, env := s.do(t, request{method: http.MethodPost, path: "/api/v1/individual/signup", body: map[string]string{
		"fullName": "Ana Pérez",
		"email":    "ana@lms.test",
		"password": testutil.DefaultPassword,
	}})

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, fiber.StatusCreated, env.StatusCode)
	assert.Equal(t, "Registered successfully", env.Message)
	assert.Equal(t, http.MethodPost, env.Request.Method)
	assert.Equal(t, "/api/v1/individual/signup", env.Request.URL)

	var out dto.IndividualResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "ana@lms.test", out.Email)
	assert.NotContains(t, string(env.Data), "password")
}

func TestSignupIndividual_EmailRepetido_Retorna400(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	s.repos.SeedIndividual(t, "ana@lms.test", testutil.DefaultPassword)

	resp, env := s.do(t, request{method: http.MethodPost, path: "/api/v1/individual/signup", body: map[string]string{
		"fullName": "Ana Pérez",
		"email":    "ana@lms.test",
		"password": testutil.DefaultPassword,
	}})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already in use", env.Message)
}

func TestSignupIndividual_Invalido_Retorna400ConErrores(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	resp, env := s.do(t, request{method: http.MethodPost, path: "/api/v1/individual/signup", body: map[string]string{
		"fullName": "An",
		"email":    "no-es-email",
		"password": "debil",
	}})

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation error", env.Message)

	var out dto.ValidationErrors
	require.NoError(t, json.Unmarshal(env.Data, &out))
	fields := make([]string, 0, len(out.Errors))
	for _, fe := range out.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"fullName", "email", "password"}, fields)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DevuelveTokenYCookie(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	company := s.repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)

	resp, env := s.do(t, request{method: http.MethodPost, path: "/api/v1/auth/login", body: dto.LoginRequest{
		Email: "acme@lms.test", Password: testutil.DefaultPassword,
	}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, company.ID, out.Account.ID)
	assert.Equal(t, entity.RoleCompany, out.Account.Role)

	claims, err := s.tokens.VerifyAccess(out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCompany, claims.Role)

	cookie := refreshCookie(resp)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	s.repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)

	resp, env := s.do(t, request{method: http.MethodPost, path: "/api/v1/auth/login", body: dto.LoginRequest{
		Email: "acme@lms.test", Password: "Otra@cl4ve",
	}})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Wrong credentials", env.Message)
	assert.Nil(t, refreshCookie(resp))
}

func TestLoginPorVariante_OtraTabla_Retorna404(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	s.repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)

	resp, env := s.do(t, request{method: http.MethodPost, path: "/api/v1/employee/login", body: dto.LoginRequest{
		Email: "acme@lms.test", Password: testutil.DefaultPassword,
	}})

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Employee not found", env.Message)
}

func TestRefreshYLogout_RevocanLaCookie(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	ind := s.repos.SeedIndividual(t, "ana@lms.test", testutil.DefaultPassword)
	pair := pairFor(t, ind.ID, entity.RoleIndividual, 0)

	resp, env := s.do(t, request{method: http.MethodPost, path: "/api/v1/auth/refresh", refresh: pair.RefreshToken})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), "token")
	rotated := refreshCookie(resp)
	require.NotNil(t, rotated)

	resp, env = s.do(t, request{method: http.MethodPost, path: "/api/v1/auth/refresh", refresh: pair.RefreshToken})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", env.Message)

	resp, _ = s.do(t, request{method: http.MethodPost, path: "/api/v1/auth/logout", refresh: rotated.Value})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, request{method: http.MethodPost, path: "/api/v1/auth/refresh", refresh: rotated.Value})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutPorGET_EmployeeEIndividual(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	company := s.repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)
	emp := s.repos.SeedEmployee(t, company.ID, "emp@acme.test", testutil.DefaultPassword)
	ind := s.repos.SeedIndividual(t, "ana@lms.test", testutil.DefaultPassword)

	cases := []struct {
		path string
		id   string
		role string
	}{
		{"/api/v1/employee/logout", emp.ID, entity.RoleEmployee},
		{"/api/v1/individual/logout", ind.ID, entity.RoleIndividual},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			pair := pairFor(t, tc.id, tc.role, 0)

			resp, env := s.do(t, request{method: http.MethodGet, path: tc.path, refresh: pair.RefreshToken})
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.True(t, env.Success)

			resp, _ = s.do(t, request{method: http.MethodPost, path: "/api/v1/auth/refresh", refresh: pair.RefreshToken})
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "el refresh token queda revocado")
		})
	}
}

func TestAuthMe_DevuelvePerfilDeLaVariante(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	company := s.repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)
	emp := s.repos.SeedEmployee(t, company.ID, "emp@lms.test", testutil.DefaultPassword)
	pair := pairFor(t, emp.ID, entity.RoleEmployee, 0)

	resp, env := s.do(t, request{method: http.MethodGet, path: "/api/v1/auth/me", access: pair.AccessToken})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.MeResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, emp.ID, out.ID)
	assert.Equal(t, entity.RoleEmployee, out.Role)
	assert.Contains(t, string(env.Data), company.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contraseñas
// ──────────────────────────────────────────────────────────────────────────────

func TestResetPassword_TokenReutilizado_Retorna400(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	s.repos.SeedIndividual(t, "ana@lms.test", testutil.DefaultPassword)

	resp, _ := s.do(t, request{method: http.MethodPatch, path: "/api/v1/individual/forget-password", body: map[string]string{"email": "ana@lms.test"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	sent := s.mailer.Last()
	require.NotNil(t, sent)
	require.Equal(t, "reset", sent.Kind)
	token := sent.Link[strings.LastIndex(sent.Link, "/")+1:]

	path := "/api/v1/individual/reset-password/" + token
	body := map[string]string{"password": "N3w@secret"}
	resp, env := s.do(t, request{method: http.MethodPatch, path: path, body: body})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Password reset successful", env.Message)

	resp, env = s.do(t, request{method: http.MethodPatch, path: path, body: body})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid token", env.Message)

	resp, _ = s.do(t, request{method: http.MethodPost, path: "/api/v1/individual/login", body: dto.LoginRequest{Email: "ana@lms.test", Password: "N3w@secret"}})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestChangePassword_OldIncorrecto_Retorna401(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	ind := s.repos.SeedIndividual(t, "ana@lms.test", testutil.DefaultPassword)
	pair := pairFor(t, ind.ID, entity.RoleIndividual, 0)

	resp, _ := s.do(t, request{method: http.MethodPatch, path: "/api/v1/individual/change-password", access: pair.AccessToken, body: dto.ChangePasswordRequest{
		OldPassword: "Otra@cl4ve", NewPassword: "N3w@secret",
	}})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, env := s.do(t, request{method: http.MethodPatch, path: "/api/v1/individual/change-password", access: pair.AccessToken, body: dto.ChangePasswordRequest{
		OldPassword: testutil.DefaultPassword, NewPassword: "N3w@secret",
	}})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Password Changed", env.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados y tenencia
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminListaIndividuals_PaginaPorDefecto(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	admin := s.repos.SeedAdmin(t, "admin@lms.test", testutil.DefaultPassword)
	for i := 0; i < 25; i++ {
		s.repos.SeedIndividual(t, fmt.Sprintf("ind%02d@lms.test", i), testutil.DefaultPassword)
	}
	pair := pairFor(t, admin.ID, entity.RoleAdmin, 0)

	resp, env := s.do(t, request{method: http.MethodGet, path: "/api/v1/admin/individuals", access: pair.AccessToken})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var page dto.PageResult[dto.IndividualResponse]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 1, page.Page)

	resp, env = s.do(t, request{method: http.MethodGet, path: "/api/v1/admin/individuals?page=3&pageSize=10", access: pair.AccessToken})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 5)
}

func TestCompany_NoVeEmpleadosDeOtraEmpresa(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	acme := s.repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)
	globex := s.repos.SeedCompany(t, "globex@lms.test", testutil.DefaultPassword)
	foreign := s.repos.SeedEmployee(t, globex.ID, "emp@globex.test", testutil.DefaultPassword)
	own := s.repos.SeedEmployee(t, acme.ID, "emp@acme.test", testutil.DefaultPassword)
	pair := pairFor(t, acme.ID, entity.RoleCompany, 0)

	resp, env := s.do(t, request{method: http.MethodGet, path: "/api/v1/company/employees/" + foreign.ID, access: pair.AccessToken})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Employee not found", env.Message)

	resp, _ = s.do(t, request{method: http.MethodPatch, path: "/api/v1/company/employees/" + foreign.ID + "/block", access: pair.AccessToken})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, env = s.do(t, request{method: http.MethodPatch, path: "/api/v1/company/employees/" + own.ID + "/block", access: pair.AccessToken})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Employee blocked successfully", env.Message)

	resp, env = s.do(t, request{method: http.MethodGet, path: "/api/v1/company/employees", access: pair.AccessToken})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var page dto.PageResult[dto.EmployeeResponse]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, own.ID, page.Items[0].ID)
}

func TestIDMalFormado_Retorna404ConMensajeDeLaVariante(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	admin := s.repos.SeedAdmin(t, "admin@lms.test", testutil.DefaultPassword)
	company := s.repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)
	adminPair := pairFor(t, admin.ID, entity.RoleAdmin, 0)
	companyPair := pairFor(t, company.ID, entity.RoleCompany, 0)

	resp, env := s.do(t, request{method: http.MethodGet, path: "/api/v1/admin/companies/abc", access: adminPair.AccessToken})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Company not found", env.Message)

	resp, env = s.do(t, request{method: http.MethodPatch, path: "/api/v1/company/employees/xyz/block", access: companyPair.AccessToken})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Employee not found", env.Message)

	resp, env = s.do(t, request{method: http.MethodPost, path: "/api/v1/admin/companies/abc/employees", access: adminPair.AccessToken,
		body: map[string]string{"fullName": "Emp Leado", "email": "emp@acme.test", "password": testutil.DefaultPassword}})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Company not found", env.Message)
}

func TestAdminEliminaCompany_ConEmpleados_Retorna409(t *testing.T) {
	s := newTestServer(t, serverOptions{})
	admin := s.repos.SeedAdmin(t, "admin@lms.test", testutil.DefaultPassword)
	acme := s.repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)
	empty := s.repos.SeedCompany(t, "empty@lms.test", testutil.DefaultPassword)
	emp := s.repos.SeedEmployee(t, acme.ID, "emp@acme.test", testutil.DefaultPassword)
	pair := pairFor(t, admin.ID, entity.RoleAdmin, 0)

	resp, _ := s.do(t, request{method: http.MethodDelete, path: "/api/v1/admin/companies/" + acme.ID, access: pair.AccessToken})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	got, _ := s.repos.Employees.GetByID(context.Background(), emp.ID, "")
	assert.NotNil(t, got, "los empleados no se borran en cascada")

	resp, env := s.do(t, request{method: http.MethodDelete, path: "/api/v1/admin/companies/" + empty.ID, access: pair.AccessToken})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Company deleted", env.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sobre, health y 404
// ──────────────────────────────────────────────────────────────────────────────

func TestSobre_IPSoloFueraDeProduccion(t *testing.T) {
	dev := newTestServer(t, serverOptions{})
	_, env := dev.do(t, request{method: http.MethodGet, path: "/api/v1/self"})
	assert.NotNil(t, env.Request.IP)

	prod := newTestServer(t, serverOptions{production: true})
	resp, env := prod.do(t, request{method: http.MethodGet, path: "/api/v1/self"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, env.Request.IP)
}

func TestHealth_ReportaAplicacionYSistema(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	resp, env := s.do(t, request{method: http.MethodGet, path: "/api/v1/health"})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Contains(t, out, "application")
	assert.Contains(t, out, "system")
	assert.Contains(t, string(out["application"]), `"environment":"test"`)
}

func TestRutaInexistente_Retorna404(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	resp, env := s.do(t, request{method: http.MethodGet, path: "/api/v1/nope"})

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "route not found", env.Message)
}
