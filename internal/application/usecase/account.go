package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/internal/application/ports"
	"github.com/jhoicas/lms-api/internal/domain"
	"github.com/jhoicas/lms-api/internal/domain/entity"
	"github.com/jhoicas/lms-api/internal/domain/repository"
	"github.com/jhoicas/lms-api/pkg/logger"
)

// Config parámetros compartidos por los casos de uso de cuentas.
type Config struct {
	ServerURL   string // base de los enlaces enviados por correo
	MaxPageSize int
}

// newAccount arma la parte común de una cuenta nueva, ACTIVE y sin verificar.
func newAccount(role, email, fullName, phone, passwordHash string, now time.Time) entity.Account {
	return entity.Account{
		ID:           uuid.New().String(),
		Email:        entity.NormalizeEmail(email),
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(fullName),
		Phone:        strings.TrimSpace(phone),
		Role:         role,
		AccountType:  role,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ensureEmailFree devuelve ErrEmailAlreadyExists si el email ya existe en la tabla de la variante.
// La constraint UNIQUE de la tabla sigue siendo la garantía final.
func ensureEmailFree(ctx context.Context, repo repository.AccountRepository, email string) error {
	existing, err := repo.FindAccountByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	return nil
}

func validStatus(status string) error {
	if !entity.IsValidStatus(status) {
		return domain.ErrInvalidInput
	}
	return nil
}

// shortCode código legible con prefijo (ej. CMP-7ZK3Q9TA) tomado de la parte aleatoria de un ULID.
func shortCode(prefix string) string {
	id := ulid.Make().String()
	return prefix + "-" + id[len(id)-8:]
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func normalizePage(q dto.PageQuery, maxPageSize int) dto.PageQuery {
	q.Normalize(maxPageSize)
	return q
}

// notifier envía correos sin propagar fallos: se registran y el llamador decide qué reportar.
type notifier struct {
	mailer ports.Mailer
	log    *logger.Logger
}

func (n notifier) invite(ctx context.Context, in ports.Invitation) bool {
	if err := n.mailer.SendInvitation(ctx, in); err != nil {
		n.log.Warn().Err(err).Str("to", in.To).Msg("fallo al enviar invitación")
		return false
	}
	return true
}

func (n notifier) welcome(ctx context.Context, to, name string) {
	if err := n.mailer.SendWelcome(ctx, to, name); err != nil {
		n.log.Warn().Err(err).Str("to", to).Msg("fallo al enviar bienvenida")
	}
}
