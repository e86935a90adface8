package ports

import (
	"context"

	"github.com/jhoicas/lms-api/internal/domain/repository"
)

// ProvisioningTx ejecuta fn en una transacción que bloquea la empresa companyID, pasando repositorios
// atados a esa tx. El conteo contra el cupo del plan y el alta del empleado ocurren bajo el mismo bloqueo.
// Devuelve domain.ErrNotFound si la empresa no existe.
type ProvisioningTx interface {
	WithCompanyLock(ctx context.Context, companyID string, fn func(
		companies repository.CompanyRepository,
		employees repository.EmployeeRepository,
	) error) error
}
