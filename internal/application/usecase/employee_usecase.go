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

// EmployeeUseCase gestión de empleados. companyID vacío = sin filtro de empresa (admin, perfil propio).
type EmployeeUseCase struct {
	repo      repository.EmployeeRepository
	companies repository.CompanyRepository
	tx        ports.ProvisioningTx
	notify    notifier
	cfg       Config
}

// NewEmployeeUseCase construye el caso de uso. Con tx nil el alta corre sin transacción.
func NewEmployeeUseCase(repo repository.EmployeeRepository, companies repository.CompanyRepository, tx ports.ProvisioningTx, mailer ports.Mailer, cfg Config, log *logger.Logger) *EmployeeUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &EmployeeUseCase{
		repo:      repo,
		companies: companies,
		tx:        tx,
		notify:    notifier{mailer: mailer, log: log.Named("employee")},
		cfg:       cfg,
	}
}

// Create provisiona un empleado en la empresa y le envía la invitación con la contraseña temporal.
// Devuelve domain.ErrEmployeeLimit si la empresa ya alcanzó su cupo.
func (uc *EmployeeUseCase) Create(ctx context.Context, companyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, bool, error) {
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, false, err
	}
	employee := &entity.Employee{
		Account:     newAccount(entity.RoleEmployee, in.Email, in.FullName, in.Phone, hash, time.Now()),
		CompanyID:   companyID,
		EmpID:       in.EmpID,
		Department:  in.Department,
		JobTitle:    in.JobTitle,
		Gender:      in.Gender,
		DateOfBirth: in.DateOfBirth,
	}
	if employee.EmpID == "" {
		employee.EmpID = shortCode("EMP")
	}
	if in.Status != "" {
		employee.Status = in.Status
	}

	var company *entity.Company
	err = uc.provision(ctx, companyID, func(companies repository.CompanyRepository, employees repository.EmployeeRepository) error {
		var err error
		company, err = companies.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrNotFound
		}
		current, err := employees.Count(ctx, companyID)
		if err != nil {
			return err
		}
		if !company.CanAddEmployee(current) {
			return domain.ErrEmployeeLimit
		}
		if err := ensureEmailFree(ctx, employees, employee.Email); err != nil {
			return err
		}
		return employees.Create(ctx, employee)
	})
	if err != nil {
		return nil, false, err
	}

	invited := uc.notify.invite(ctx, ports.Invitation{
		To:        employee.Email,
		Name:      employee.FullName,
		InvitedBy: company.FullName,
		Password:  in.Password,
		LoginURL:  uc.cfg.ServerURL + "/api/v1/employee/login",
	})
	return toEmployeeResponse(employee), invited, nil
}

func (uc *EmployeeUseCase) provision(ctx context.Context, companyID string, fn func(repository.CompanyRepository, repository.EmployeeRepository) error) error {
	if uc.tx == nil {
		return fn(uc.companies, uc.repo)
	}
	return uc.tx.WithCompanyLock(ctx, companyID, fn)
}

// Get obtiene un empleado filtrando por empresa.
func (uc *EmployeeUseCase) Get(ctx context.Context, companyID, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista empleados de una empresa (o de todas si companyID es vacío).
func (uc *EmployeeUseCase) List(ctx context.Context, companyID string, q dto.PageQuery) (*dto.PageResult[dto.EmployeeResponse], error) {
	q = normalizePage(q, uc.cfg.MaxPageSize)
	list, err := uc.repo.List(ctx, companyID, q.PageSize, q.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return dto.NewPageResult(items, total, q), nil
}

// Update aplica los campos presentes.
func (uc *EmployeeUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	set(&employee.FullName, in.FullName)
	set(&employee.Phone, in.Phone)
	set(&employee.Department, in.Department)
	set(&employee.JobTitle, in.JobTitle)
	set(&employee.Gender, in.Gender)
	set(&employee.Address, in.Address)
	set(&employee.Description, in.Description)
	if in.DateOfBirth != nil {
		employee.DateOfBirth = in.DateOfBirth
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina el empleado si pertenece a la empresa.
func (uc *EmployeeUseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.repo.Delete(ctx, id, companyID)
}

// ChangeStatus persiste el estado sin validar la transición.
func (uc *EmployeeUseCase) ChangeStatus(ctx context.Context, companyID, id, status string) (*dto.EmployeeResponse, error) {
	if err := validStatus(status); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(ctx, id, companyID, status); err != nil {
		return nil, err
	}
	return uc.Get(ctx, companyID, id)
}

func (uc *EmployeeUseCase) find(ctx context.Context, companyID, id string) (*entity.Employee, error) {
	employee, err := uc.repo.GetByID(ctx, id, companyID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return employee, nil
}
