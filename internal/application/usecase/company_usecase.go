package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/internal/application/ports"
	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/internal/domain/repository"
	"github.com/jhoicas/lms-api/pkg/logger"
	"github.com/jhoicas/lms-api/pkg/password"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo   repository.CompanyRepository
	notify notifier
	cfg    Config
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia y el mailer.
func NewCompanyUseCase(repo repository.CompanyRepository, mailer ports.Mailer, cfg Config, log *logger.Logger) *CompanyUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CompanyUseCase{repo: repo, notify: notifier{mailer: mailer, log: log.Named("company")}, cfg: cfg}
}

// Signup auto-registro de empresa con plan FREE. La bienvenida se envía sin bloquear el alta.
func (uc *CompanyUseCase) Signup(ctx context.Context, in dto.CompanySignupRequest) (*dto.CompanyResponse, error) {
	company, err := uc.create(ctx, dto.CreateCompanyRequest{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
	})
	if err != nil {
		return nil, err
	}
	uc.notify.welcome(ctx, company.Email, company.FullName)
	return toCompanyResponse(company), nil
}

// Create alta de empresa por un admin. El bool indica si la invitación se envió; un fallo del correo
// no deshace el alta.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, bool, error) {
	company, err := uc.create(ctx, in)
	if err != nil {
		return nil, false, err
	}
	invited := uc.notify.invite(ctx, ports.Invitation{
		To:       company.Email,
		Name:     company.FullName,
		Password: in.Password,
		LoginURL: uc.cfg.ServerURL + "/api/v1/company/login",
	})
	return toCompanyResponse(company), invited, nil
}

func (uc *CompanyUseCase) create(ctx context.Context, in dto.CreateCompanyRequest) (*entity.Company, error) {
	if err := ensureEmailFree(ctx, uc.repo, in.Email); err != nil {
		return nil, err
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	plan := in.Plan
	if plan == "" {
		plan = entity.PlanFree
	}
	company := &entity.Company{
		Account:      newAccount(entity.RoleCompany, in.Email, in.FullName, in.Phone, hash, time.Now()),
		Username:     in.Username,
		CompanyCode:  shortCode("CMP"),
		Industry:     in.Industry,
		Description:  in.Description,
		Plan:         plan,
		MaxEmployees: in.MaxEmployees,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Get obtiene una empresa por ID.
func (uc *CompanyUseCase) Get(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.PageResult[dto.CompanyResponse], error) {
	q = normalizePage(q, uc.cfg.MaxPageSize)
	list, err := uc.repo.List(ctx, q.PageSize, q.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return dto.NewPageResult(items, total, q), nil
}

// Update aplica los campos presentes del perfil de la empresa.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	set(&company.FullName, in.FullName)
	set(&company.Phone, in.Phone)
	set(&company.Address, in.Address)
	set(&company.Website, in.Website)
	set(&company.Description, in.Description)
	set(&company.Username, in.Username)
	set(&company.Industry, in.Industry)
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina la empresa.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ChangeStatus persiste el estado sin importar el anterior.
func (uc *CompanyUseCase) ChangeStatus(ctx context.Context, id, status string) (*dto.CompanyResponse, error) {
	if err := validStatus(status); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// ChangePlan cambia el plan; si maxEmployees no viene se conserva el cupo actual.
func (uc *CompanyUseCase) ChangePlan(ctx context.Context, id string, in dto.ChangePlanRequest) (*dto.CompanyResponse, error) {
	company, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	maxEmployees := company.MaxEmployees
	if in.MaxEmployees != nil {
		maxEmployees = *in.MaxEmployees
	}
	if err := uc.repo.UpdatePlan(ctx, id, in.Plan, maxEmployees); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

func (uc *CompanyUseCase) find(ctx context.Context, id string) (*entity.Company, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}
