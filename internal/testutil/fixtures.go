package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/pkg/jwt"
	"github.com/jhoicas/lms-api/pkg/password"
)

// DefaultPassword cumple la política de contraseñas fuertes.
const DefaultPassword = "Secr3t@pass"

// TokenConfig configuración de tokens para tests.
func TokenConfig() jwt.Config {
	return jwt.Config{
		AccessSecret:       "test-access-secret",
		AccessTTL:          time.Hour,
		RefreshSecret:      "test-refresh-secret",
		RefreshTTL:         30 * 24 * time.Hour,
		VerificationSecret: "test-verification-secret",
		VerificationTTL:    24 * time.Hour,
		ResetSecret:        "test-reset-secret",
		ResetTTL:           48 * time.Hour,
		Issuer:             "lms-api-test",
	}
}

// TokenService servicio de tokens para tests; opts permite fijar el reloj.
func TokenService(t testing.TB, opts ...jwt.Option) *jwt.Service {
	t.Helper()
	svc, err := jwt.NewService(TokenConfig(), opts...)
	require.NoError(t, err)
	return svc
}

// NewAccount cuenta ACTIVE con el rol dado y el password hasheado.
func NewAccount(t testing.TB, role, email, plain string) entity.Account {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)
	now := time.Now()
	return entity.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FullName:     "Test " + role,
		Phone:        "3001234567",
		Role:         role,
		AccountType:  role,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Repos agrupa los cuatro repositorios en memoria.
type Repos struct {
	Admins      *AdminRepo
	Companies   *CompanyRepo
	Employees   *EmployeeRepo
	Individuals *IndividualRepo
}

func NewRepos() Repos {
	companies, employees := NewCompanyRepo(), NewEmployeeRepo()
	companies.Employees = employees
	return Repos{
		Admins:      NewAdminRepo(),
		Companies:   companies,
		Employees:   employees,
		Individuals: NewIndividualRepo(),
	}
}

func (r Repos) SeedAdmin(t testing.TB, email, plain string) *entity.Admin {
	t.Helper()
	a := &entity.Admin{Account: NewAccount(t, entity.RoleAdmin, email, plain)}
	require.NoError(t, r.Admins.insert(a))
	return a
}

func (r Repos) SeedCompany(t testing.TB, email, plain string) *entity.Company {
	t.Helper()
	c := &entity.Company{
		Account:     NewAccount(t, entity.RoleCompany, email, plain),
		CompanyCode: "CMP-" + uuid.NewString()[:8],
		Plan:        entity.PlanFree,
	}
	require.NoError(t, r.Companies.insert(c))
	return c
}

func (r Repos) SeedEmployee(t testing.TB, companyID, email, plain string) *entity.Employee {
	t.Helper()
	e := &entity.Employee{Account: NewAccount(t, entity.RoleEmployee, email, plain), CompanyID: companyID}
	require.NoError(t, r.Employees.insert(e))
	return e
}

func (r Repos) SeedIndividual(t testing.TB, email, plain string) *entity.Individual {
	t.Helper()
	i := &entity.Individual{Account: NewAccount(t, entity.RoleIndividual, email, plain)}
	require.NoError(t, r.Individuals.insert(i))
	return i
}
