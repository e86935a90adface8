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

// IndividualUseCase alta, perfil y administración de individuals.
type IndividualUseCase struct {
	repo   repository.IndividualRepository
	notify notifier
	cfg    Config
}

func NewIndividualUseCase(repo repository.IndividualRepository, mailer ports.Mailer, cfg Config, log *logger.Logger) *IndividualUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &IndividualUseCase{repo: repo, notify: notifier{mailer: mailer, log: log.Named("individual")}, cfg: cfg}
}

// Signup crea el individual y envía la bienvenida.
func (uc *IndividualUseCase) Signup(ctx context.Context, in dto.IndividualSignupRequest) (*dto.IndividualResponse, error) {
	if err := ensureEmailFree(ctx, uc.repo, in.Email); err != nil {
		return nil, err
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	individual := &entity.Individual{Account: newAccount(entity.RoleIndividual, in.Email, in.FullName, in.Phone, hash, time.Now())}
	if err := uc.repo.Create(ctx, individual); err != nil {
		return nil, err
	}
	uc.notify.welcome(ctx, individual.Email, individual.FullName)
	return toIndividualResponse(individual), nil
}

func (uc *IndividualUseCase) Get(ctx context.Context, id string) (*dto.IndividualResponse, error) {
	individual, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toIndividualResponse(individual), nil
}

func (uc *IndividualUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.PageResult[dto.IndividualResponse], error) {
	q = normalizePage(q, uc.cfg.MaxPageSize)
	list, err := uc.repo.List(ctx, q.PageSize, q.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndividualResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toIndividualResponse(i))
	}
	return dto.NewPageResult(items, total, q), nil
}

func (uc *IndividualUseCase) Update(ctx context.Context, id string, in dto.UpdateIndividualRequest) (*dto.IndividualResponse, error) {
	individual, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	set(&individual.FullName, in.FullName)
	set(&individual.Phone, in.Phone)
	set(&individual.JobTitle, in.JobTitle)
	set(&individual.Institute, in.Institute)
	set(&individual.Course, in.Course)
	set(&individual.Gender, in.Gender)
	set(&individual.Address, in.Address)
	set(&individual.Description, in.Description)
	if in.DateOfBirth != nil {
		individual.DateOfBirth = in.DateOfBirth
	}
	individual.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, individual); err != nil {
		return nil, err
	}
	return toIndividualResponse(individual), nil
}

func (uc *IndividualUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ChangeStatus persiste el estado sin validar la transición.
func (uc *IndividualUseCase) ChangeStatus(ctx context.Context, id, status string) (*dto.IndividualResponse, error) {
	if err := validStatus(status); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

func (uc *IndividualUseCase) find(ctx context.Context, id string) (*entity.Individual, error) {
	individual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if individual == nil {
		return nil, domain.ErrNotFound
	}
	return individual, nil
}
