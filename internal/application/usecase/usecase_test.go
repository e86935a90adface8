package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/internal/application/usecase"
	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/internal/testutil"
	"github.com/jhoicas/lms-api/pkg/password"
)

var testCfg = usecase.Config{ServerURL: "http://lms.test", MaxPageSize: 100}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestIndividualSignup_HasheaPasswordYEnviaBienvenida(t *testing.T) {
	repos := testutil.NewRepos()
	mailer := testutil.NewMailer()
	uc := usecase.NewIndividualUseCase(repos.Individuals, mailer, testCfg, nil)

	out, err := uc.Signup(context.Background(), dto.IndividualSignupRequest{
		FullName: "Ana Pérez",
		Email:    " Ana@LMS.test",
		Password: testutil.DefaultPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@lms.test", out.Email)
	assert.Equal(t, entity.StatusActive, out.Status)

	acc, err := repos.Individuals.FindAccountByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, testutil.DefaultPassword, acc.PasswordHash)
	assert.True(t, password.Compare(testutil.DefaultPassword, acc.PasswordHash))

	require.NotNil(t, mailer.Last())
	assert.Equal(t, "welcome", mailer.Last().Kind)

	_, err = uc.Signup(context.Background(), dto.IndividualSignupRequest{FullName: "Otra", Email: "ana@lms.test", Password: testutil.DefaultPassword})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCompanySignup_FalloDeBienvenidaNoFalla(t *testing.T) {
	repos := testutil.NewRepos()
	mailer := testutil.NewMailer()
	mailer.Err = assert.AnError
	uc := usecase.NewCompanyUseCase(repos.Companies, mailer, testCfg, nil)

	out, err := uc.Signup(context.Background(), dto.CompanySignupRequest{
		FullName: "Acme", Email: "acme@lms.test", Phone: "3001234567", Password: testutil.DefaultPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PlanFree, out.Plan)
	assert.NotEmpty(t, out.CompanyCode)
}

func TestAdminSignup_Y_Update(t *testing.T) {
	repos := testutil.NewRepos()
	uc := usecase.NewAdminUseCase(repos.Admins)

	out, err := uc.Signup(context.Background(), dto.AdminSignupRequest{
		FullName: "Root", Email: "root@lms.test", Phone: "3001234567", Password: testutil.DefaultPassword,
	})
	require.NoError(t, err)

	addr := "Calle 1"
	updated, err := uc.Update(context.Background(), out.ID, dto.UpdateAdminRequest{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "Calle 1", updated.Address)
	assert.Equal(t, "Root", updated.FullName)

	_, err = uc.Profile(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Provisión con invitación
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyCreate_InvitacionFallidaConservaLaFila(t *testing.T) {
	repos := testutil.NewRepos()
	mailer := testutil.NewMailer()
	mailer.Err = assert.AnError
	uc := usecase.NewCompanyUseCase(repos.Companies, mailer, testCfg, nil)

	out, invited, err := uc.Create(context.Background(), dto.CreateCompanyRequest{
		FullName: "Acme", Email: "acme@lms.test", Phone: "3001234567", Password: testutil.DefaultPassword,
		Plan: entity.PlanBasic, MaxEmployees: 5,
	})
	require.NoError(t, err)
	assert.False(t, invited)

	stored, err := uc.Get(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanBasic, stored.Plan)
	assert.Equal(t, 5, stored.MaxEmployees)
}

func TestEmployeeCreate_RespetaCupoDelPlan(t *testing.T) {
	repos := testutil.NewRepos()
	mailer := testutil.NewMailer()
	company := repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)
	require.NoError(t, repos.Companies.UpdatePlan(context.Background(), company.ID, entity.PlanBasic, 1))
	tx := testutil.NewTxRunner(repos)
	uc := usecase.NewEmployeeUseCase(repos.Employees, repos.Companies, tx, mailer, testCfg, nil)

	out, invited, err := uc.Create(context.Background(), company.ID, dto.CreateEmployeeRequest{
		FullName: "Luis", Email: "luis@lms.test", Password: testutil.DefaultPassword,
	})
	require.NoError(t, err)
	assert.True(t, invited)
	assert.Equal(t, company.ID, out.CompanyID)
	assert.NotEmpty(t, out.EmpID)
	assert.Equal(t, "invitation", mailer.Last().Kind)
	assert.Equal(t, "http://lms.test/api/v1/employee/login", mailer.Last().Link)

	_, _, err = uc.Create(context.Background(), company.ID, dto.CreateEmployeeRequest{
		FullName: "Eva", Email: "eva@lms.test", Password: testutil.DefaultPassword,
	})
	assert.ErrorIs(t, err, domain.ErrEmployeeLimit)

	_, _, err = uc.Create(context.Background(), "no-existe", dto.CreateEmployeeRequest{Email: "x@lms.test", Password: testutil.DefaultPassword})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 3, tx.Calls)
}

func TestEmployeeCreate_ConcurrenteNoSuperaElCupo(t *testing.T) {
	repos := testutil.NewRepos()
	company := repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)
	require.NoError(t, repos.Companies.UpdatePlan(context.Background(), company.ID, entity.PlanBasic, 3))
	uc := usecase.NewEmployeeUseCase(repos.Employees, repos.Companies, testutil.NewTxRunner(repos), testutil.NewMailer(), testCfg, nil)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := uc.Create(context.Background(), company.ID, dto.CreateEmployeeRequest{
				FullName: fmt.Sprintf("Empleado %d", i),
				Email:    fmt.Sprintf("emp%d@lms.test", i),
				Password: testutil.DefaultPassword,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	var ok, limited int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrEmployeeLimit):
			limited++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 3, ok)
	assert.Equal(t, attempts-3, limited)

	total, err := repos.Employees.Count(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro por empresa y estados
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployee_OperacionesFiltranPorEmpresa(t *testing.T) {
	repos := testutil.NewRepos()
	acme := repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)
	other := repos.SeedCompany(t, "other@lms.test", testutil.DefaultPassword)
	emp := repos.SeedEmployee(t, acme.ID, "luis@lms.test", testutil.DefaultPassword)
	uc := usecase.NewEmployeeUseCase(repos.Employees, repos.Companies, nil, testutil.NewMailer(), testCfg, nil)
	ctx := context.Background()

	_, err := uc.Get(ctx, other.ID, emp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.ChangeStatus(ctx, other.ID, emp.ID, entity.StatusBlocked)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, other.ID, emp.ID), domain.ErrNotFound)

	got, err := uc.Get(ctx, "", emp.ID)
	require.NoError(t, err, "sin companyID se permite cualquier empresa")
	assert.Equal(t, emp.ID, got.ID)

	require.NoError(t, uc.Delete(ctx, acme.ID, emp.ID))
}

// Cualquier estado se persiste sin importar el anterior.
func TestChangeStatus_SinMaquinaDeEstados(t *testing.T) {
	repos := testutil.NewRepos()
	company := repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)
	uc := usecase.NewCompanyUseCase(repos.Companies, testutil.NewMailer(), testCfg, nil)

	sequence := []string{
		entity.StatusBlocked, entity.StatusBlocked, entity.StatusInactive,
		entity.StatusActive, entity.StatusBlocked, entity.StatusActive,
	}
	for _, status := range sequence {
		out, err := uc.ChangeStatus(context.Background(), company.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, out.Status)
	}

	_, err := uc.ChangeStatus(context.Background(), company.ID, "DELETED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyChangePlan_ConservaCupoSiNoViene(t *testing.T) {
	repos := testutil.NewRepos()
	company := repos.SeedCompany(t, "acme@lms.test", testutil.DefaultPassword)
	uc := usecase.NewCompanyUseCase(repos.Companies, testutil.NewMailer(), testCfg, nil)

	cupo := 20
	out, err := uc.ChangePlan(context.Background(), company.ID, dto.ChangePlanRequest{Plan: entity.PlanPremium, MaxEmployees: &cupo})
	require.NoError(t, err)
	assert.Equal(t, 20, out.MaxEmployees)

	out, err = uc.ChangePlan(context.Background(), company.ID, dto.ChangePlanRequest{Plan: entity.PlanEnterprise})
	require.NoError(t, err)
	assert.Equal(t, entity.PlanEnterprise, out.Plan)
	assert.Equal(t, 20, out.MaxEmployees)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestIndividualList_Paginacion(t *testing.T) {
	repos := testutil.NewRepos()
	for i := 0; i < 25; i++ {
		repos.SeedIndividual(t, fmt.Sprintf("user%02d@lms.test", i), testutil.DefaultPassword)
	}
	uc := usecase.NewIndividualUseCase(repos.Individuals, testutil.NewMailer(), testCfg, nil)

	res, err := uc.List(context.Background(), dto.PageQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, res.Items, 10)
	assert.Equal(t, 25, res.Total)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 10, res.PageSize)

	res, err = uc.List(context.Background(), dto.PageQuery{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, res.Items, 5)

	res, err = uc.List(context.Background(), dto.PageQuery{Page: 9, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
}
