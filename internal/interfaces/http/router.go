package http

import (
	"context"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/lms-api/internal/application/auth"
	"github.com/jhoicas/lms-api/internal/application/usecase"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/pkg/jwt"
	"github.com/jhoicas/lms-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	AdminUC      *usecase.AdminUseCase
	CompanyUC    *usecase.CompanyUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	IndividualUC *usecase.IndividualUseCase
	Tokens       *jwt.Service
	Rotation     bool
	Cookie       CookieConfig
	Responder    *Responder
	Env          string
	Log          *logger.Logger
	// Metrics nil no expone /metrics.
	Metrics nethttp.Handler
}

// Router registra las rutas de la API bajo /api/v1 y el 404 final.
func Router(app *fiber.App, deps RouterDeps) {
	res := deps.Responder
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	v1 := app.Group("/api/v1")

	health := NewHealthHandler(res, deps.Env)
	v1.Get("/self", health.Self)
	v1.Get("/health", health.Health)

	protect := AuthMiddleware(AuthConfig{
		Tokens:    deps.Tokens,
		Refresher: deps.AuthUC,
		Rotation:  deps.Rotation,
		Cookie:    deps.Cookie,
		Log:       deps.Log,
	})

	adminH := NewAdminHandler(deps.AdminUC, res)
	companyH := NewCompanyHandler(deps.CompanyUC, res)
	employeeH := NewEmployeeHandler(deps.EmployeeUC, res)
	individualH := NewIndividualHandler(deps.IndividualUC, res)
	authH := NewAuthHandler(deps.AuthUC, res, deps.Cookie, map[string]ProfileFunc{
		entity.RoleAdmin: func(ctx context.Context, id string) (interface{}, error) {
			return deps.AdminUC.Profile(ctx, id)
		},
		entity.RoleCompany: func(ctx context.Context, id string) (interface{}, error) {
			return deps.CompanyUC.Get(ctx, id)
		},
		entity.RoleEmployee: func(ctx context.Context, id string) (interface{}, error) {
			return deps.EmployeeUC.Get(ctx, "", id)
		},
		entity.RoleIndividual: func(ctx context.Context, id string) (interface{}, error) {
			return deps.IndividualUC.Get(ctx, id)
		},
	})

	// Auth (unificado)
	authGroup := v1.Group("/auth")
	authGroup.Post("/login", authH.Login)
	authGroup.Post("/refresh", authH.Refresh)
	authGroup.Post("/logout", authH.Logout)
	authGroup.Get("/me", protect, authH.Me)

	// Rutas públicas de cada variante. Se registran antes que los grupos protegidos.
	groups := map[string]fiber.Router{}
	for _, role := range []string{entity.RoleAdmin, entity.RoleCompany, entity.RoleEmployee, entity.RoleIndividual} {
		g := v1.Group("/" + auth.RoutePrefix(role))
		g.Post("/login", authH.LoginAs(role))
		g.Post("/logout", authH.Logout)
		if role == entity.RoleEmployee || role == entity.RoleIndividual {
			// Clientes existentes de estas variantes cierran sesión con GET.
			g.Get("/logout", authH.Logout)
		}
		g.Patch("/verify-account", authH.RequestVerification(role))
		g.Patch("/verify/:token", authH.Verify(role))
		g.Patch("/forget-password", authH.ForgetPassword(role))
		g.Patch("/reset-password/:token", authH.ResetPassword(role))
		groups[role] = g
	}
	groups[entity.RoleAdmin].Post("/signup", adminH.Signup)
	groups[entity.RoleCompany].Post("/signup", companyH.Signup)
	groups[entity.RoleIndividual].Post("/signup", individualH.Signup)

	// Admin (protegido + rol ADMIN)
	admin := groups[entity.RoleAdmin].Group("", protect, RequireRole(entity.RoleAdmin))
	admin.Get("/me", adminH.Me)
	admin.Patch("/me", adminH.UpdateMe)
	admin.Patch("/me/change-password", authH.ChangePassword)

	admin.Post("/companies", companyH.Create)
	admin.Get("/companies", companyH.List)
	admin.Get("/companies/:companyId", companyH.GetByID)
	admin.Patch("/companies/:companyId", companyH.Update)
	admin.Delete("/companies/:companyId", companyH.Delete)
	admin.Patch("/companies/:companyId/change-status", companyH.ChangeStatus)
	admin.Patch("/companies/:companyId/change-plan", companyH.ChangePlan)
	admin.Get("/companies/:companyId/employees", employeeH.List(CompanyParam))
	admin.Post("/companies/:companyId/employees", employeeH.Create(CompanyParam))
	admin.Get("/companies/:companyId/employees/:employeeId", employeeH.GetByID(CompanyParam))

	admin.Get("/employees", employeeH.List(AnyCompany))
	admin.Get("/employees/:employeeId", employeeH.GetByID(AnyCompany))
	admin.Patch("/employees/:employeeId", employeeH.Update(AnyCompany))
	admin.Delete("/employees/:employeeId", employeeH.Delete(AnyCompany))
	admin.Patch("/employees/:employeeId/change-status", employeeH.ChangeStatus(AnyCompany))

	admin.Get("/individuals", individualH.List)
	admin.Get("/individuals/:individualId", individualH.GetByID)
	admin.Patch("/individuals/:individualId", individualH.Update)
	admin.Delete("/individuals/:individualId", individualH.Delete)
	admin.Patch("/individuals/:individualId/change-status", individualH.ChangeStatus)

	// Company (protegido + rol COMPANY); los empleados se filtran por la empresa autenticada.
	company := groups[entity.RoleCompany].Group("", protect, RequireRole(entity.RoleCompany))
	company.Get("/profile", companyH.Profile)
	company.Patch("/profile", companyH.UpdateProfile)
	company.Patch("/profile/change-password", authH.ChangePassword)
	company.Post("/employees", employeeH.Create(OwnCompany))
	company.Get("/employees", employeeH.List(OwnCompany))
	company.Get("/employees/:employeeId", employeeH.GetByID(OwnCompany))
	company.Patch("/employees/:employeeId", employeeH.Update(OwnCompany))
	company.Delete("/employees/:employeeId", employeeH.Delete(OwnCompany))
	company.Patch("/employees/:employeeId/block", employeeH.SetStatus(OwnCompany, entity.StatusBlocked))
	company.Patch("/employees/:employeeId/activate", employeeH.SetStatus(OwnCompany, entity.StatusActive))
	company.Patch("/employees/:employeeId/deactivate", employeeH.SetStatus(OwnCompany, entity.StatusInactive))
	company.Patch("/employees/:employeeId/change-status", employeeH.ChangeStatus(OwnCompany))

	// Employee (protegido + rol EMPLOYEE)
	employee := groups[entity.RoleEmployee].Group("", protect, RequireRole(entity.RoleEmployee))
	employee.Get("/me", employeeH.Me)
	employee.Patch("/me", employeeH.UpdateMe)
	employee.Patch("/change-password", authH.ChangePassword)

	// Individual (protegido + rol INDIVIDUAL)
	individual := groups[entity.RoleIndividual].Group("", protect, RequireRole(entity.RoleIndividual))
	individual.Get("/me", individualH.Me)
	individual.Patch("/me", individualH.UpdateMe)
	individual.Patch("/change-password", authH.ChangePassword)

	app.Use(res.NotFound)
}
