package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lms-api/internal/application/auth"
	"github.com/jhoicas/lms-api/internal/application/usecase"
	apphttp "github.com/jhoicas/lms-api/internal/interfaces/http"
	"github.com/jhoicas/lms-api/internal/testutil"
	"github.com/jhoicas/lms-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type serverOptions struct {
	production  bool
	noRotation  bool
	maxPageSize int
}

type testServer struct {
	app    *fiber.App
	repos  testutil.Repos
	tokens *jwt.Service
	store  *testutil.TokenStore
	mailer *testutil.Mailer
}

func newTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()
	repos := testutil.NewRepos()
	tokens := testutil.TokenService(t)
	store := testutil.NewTokenStore()
	mailer := testutil.NewMailer()
	if opts.maxPageSize == 0 {
		opts.maxPageSize = 100
	}
	cfg := usecase.Config{ServerURL: "http://lms.test", MaxPageSize: opts.maxPageSize}

	authUC := auth.NewAuthUseCase(auth.Repositories{
		Admins:      repos.Admins,
		Companies:   repos.Companies,
		Employees:   repos.Employees,
		Individuals: repos.Individuals,
	}, tokens, store, mailer, auth.Config{ServerURL: cfg.ServerURL}, nil)

	res := apphttp.NewResponder(opts.production, nil)
	app := apphttp.NewApp(apphttp.ServerConfig{AppName: "lms-api-test"}, res)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		AdminUC:      usecase.NewAdminUseCase(repos.Admins),
		CompanyUC:    usecase.NewCompanyUseCase(repos.Companies, mailer, cfg, nil),
		EmployeeUC:   usecase.NewEmployeeUseCase(repos.Employees, repos.Companies, testutil.NewTxRunner(repos), mailer, cfg, nil),
		IndividualUC: usecase.NewIndividualUseCase(repos.Individuals, mailer, cfg, nil),
		Tokens:       tokens,
		Rotation:     !opts.noRotation,
		Cookie:       apphttp.CookieConfig{MaxAge: 30 * 24 * time.Hour},
		Responder:    res,
		Env:          "test",
	})
	return &testServer{app: app, repos: repos, tokens: tokens, store: store, mailer: mailer}
}

// envelope sobre común decodificado; data queda sin interpretar.
type envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Request    struct {
		IP     *string `json:"ip"`
		Method string  `json:"method"`
		URL    string  `json:"url"`
	} `json:"request"`
	Data json.RawMessage `json:"data"`
}

type request struct {
	method  string
	path    string
	body    interface{}
	access  string
	refresh string
}

func (s *testServer) do(t *testing.T, r request) (*http.Response, envelope) {
	t.Helper()
	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(r.method, r.path, body)
	if r.body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if r.access != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+r.access)
	}
	if r.refresh != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.RefreshCookie, Value: r.refresh})
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp, env
}

// pairFor emite un par de tokens para la cuenta; issuedAgo desplaza el reloj hacia atrás.
func pairFor(t *testing.T, id, role string, issuedAgo time.Duration) jwt.TokenPair {
	t.Helper()
	svc := testutil.TokenService(t, jwt.WithClock(func() time.Time { return time.Now().Add(-issuedAgo) }))
	pair, err := svc.Issue(jwt.Payload{ID: id, Role: role, AccountType: role})
	require.NoError(t, err)
	return pair
}

func refreshCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.RefreshCookie {
			return c
		}
	}
	return nil
}
