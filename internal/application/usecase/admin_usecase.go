package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/internal/domain/repository"
	"github.com/jhoicas/lms-api/pkg/password"
)

// AdminUseCase alta y perfil de administradores.
type AdminUseCase struct {
	repo repository.AdminRepository
}

// NewAdminUseCase construye el caso de uso con el puerto de persistencia.
func NewAdminUseCase(repo repository.AdminRepository) *AdminUseCase {
	return &AdminUseCase{repo: repo}
}

// Signup crea un admin. Devuelve domain.ErrEmailAlreadyExists si el email ya existe.
func (uc *AdminUseCase) Signup(ctx context.Context, in dto.AdminSignupRequest) (*dto.AdminResponse, error) {
	if err := ensureEmailFree(ctx, uc.repo, in.Email); err != nil {
		return nil, err
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	admin := &entity.Admin{Account: newAccount(entity.RoleAdmin, in.Email, in.FullName, in.Phone, hash, time.Now())}
	if err := uc.repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}

// Profile perfil del admin autenticado.
func (uc *AdminUseCase) Profile(ctx context.Context, id string) (*dto.AdminResponse, error) {
	admin, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	return toAdminResponse(admin), nil
}

// Update aplica los campos presentes del perfil.
func (uc *AdminUseCase) Update(ctx context.Context, id string, in dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	admin, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	set(&admin.FullName, in.FullName)
	set(&admin.Phone, in.Phone)
	set(&admin.Address, in.Address)
	admin.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}
