package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/internal/application/usecase"
	"github.com/jhoicas/lms-api/internal/domain/entity"
)

// EmployeeHandler maneja empleados. Las operaciones de gestión reciben un Scope que fija
// la empresa dueña: la cuenta autenticada (company), el parámetro :companyId o ninguna (admin).
type EmployeeHandler struct {
	uc  *usecase.EmployeeUseCase
	res *Responder
}

// NewEmployeeHandler construye el handler inyectando el caso de uso.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, res *Responder) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, res: res}
}

// Create godoc
// @Summary      Crear empleado; envía invitación con la contraseña temporal
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.Envelope{data=dto.EmployeeResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/v1/company/employees [post]
func (h *EmployeeHandler) Create(scope Scope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.CreateEmployeeRequest
		if err := bind(c, &in); err != nil {
			return err
		}
		out, invited, err := h.uc.Create(c.UserContext(), scope(c), in)
		if err != nil {
			return classify(err, msgCompanyMissing)
		}
		message := msgEmployeeCreated
		if !invited {
			message += msgInvitationFailed
		}
		return h.res.Send(c, fiber.StatusCreated, message, out)
	}
}

// List godoc
// @Summary      Listar empleados
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        page      query  int  false  "Página"  default(1)
// @Param        pageSize  query  int  false  "Tamaño"  default(10)
// @Success      200  {object}  dto.Envelope{data=dto.PageResult[dto.EmployeeResponse]}
// @Router       /api/v1/company/employees [get]
func (h *EmployeeHandler) List(scope Scope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := pageQuery(c)
		if err != nil {
			return err
		}
		out, err := h.uc.List(c.UserContext(), scope(c), q)
		if err != nil {
			return err
		}
		return h.res.Send(c, fiber.StatusOK, msgFetched, out)
	}
}

// GetByID godoc
// @Summary      Obtener empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.Envelope{data=dto.EmployeeResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/company/employees/{employeeId} [get]
func (h *EmployeeHandler) GetByID(scope Scope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.Get(c.UserContext(), scope(c), c.Params("employeeId"))
		if err != nil {
			return classify(err, msgEmployeeMissing)
		}
		return h.res.Send(c, fiber.StatusOK, msgFetched, out)
	}
}

// Update godoc
// @Summary      Actualizar empleado
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        employeeId  path  string                     true  "ID del empleado"
// @Param        body        body  dto.UpdateEmployeeRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Envelope{data=dto.EmployeeResponse}
// @Router       /api/v1/company/employees/{employeeId} [patch]
func (h *EmployeeHandler) Update(scope Scope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.UpdateEmployeeRequest
		if err := bind(c, &in); err != nil {
			return err
		}
		out, err := h.uc.Update(c.UserContext(), scope(c), c.Params("employeeId"), in)
		if err != nil {
			return classify(err, msgEmployeeMissing)
		}
		return h.res.Send(c, fiber.StatusOK, msgEmployeeUpdated, out)
	}
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/company/employees/{employeeId} [delete]
func (h *EmployeeHandler) Delete(scope Scope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h.uc.Delete(c.UserContext(), scope(c), c.Params("employeeId")); err != nil {
			return classify(err, msgEmployeeMissing)
		}
		return h.res.Send(c, fiber.StatusOK, msgEmployeeDeleted, nil)
	}
}

// ChangeStatus godoc
// @Summary      Cambiar estado de un empleado (sin máquina de estados)
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        employeeId  path  string                   true  "ID del empleado"
// @Param        body        body  dto.ChangeStatusRequest  true  "status"
// @Success      200  {object}  dto.Envelope{data=dto.EmployeeResponse}
// @Router       /api/v1/company/employees/{employeeId}/change-status [patch]
func (h *EmployeeHandler) ChangeStatus(scope Scope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.ChangeStatusRequest
		if err := bind(c, &in); err != nil {
			return err
		}
		return h.setStatus(c, scope(c), in.Status)
	}
}

// SetStatus fija un estado concreto (block, activate, deactivate).
// @Summary      Bloquear, activar o desactivar empleado
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.Envelope{data=dto.EmployeeResponse}
// @Router       /api/v1/company/employees/{employeeId}/block [patch]
func (h *EmployeeHandler) SetStatus(scope Scope, status string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return h.setStatus(c, scope(c), status)
	}
}

func (h *EmployeeHandler) setStatus(c *fiber.Ctx, companyID, status string) error {
	out, err := h.uc.ChangeStatus(c.UserContext(), companyID, c.Params("employeeId"), status)
	if err != nil {
		return classify(err, msgEmployeeMissing)
	}
	return h.res.Send(c, fiber.StatusOK, entity.StatusMessage("Employee", out.Status), out)
}

// Me godoc
// @Summary      Perfil del empleado autenticado
// @Tags         employee
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.EmployeeResponse}
// @Router       /api/v1/employee/me [get]
func (h *EmployeeHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), "", GetAccountID(c))
	if err != nil {
		return classify(err, msgEmployeeMissing)
	}
	return h.res.Send(c, fiber.StatusOK, msgFetched, out)
}

// UpdateMe godoc
// @Summary      Actualizar perfil del empleado autenticado
// @Tags         employee
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Envelope{data=dto.EmployeeResponse}
// @Router       /api/v1/employee/me [patch]
func (h *EmployeeHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), "", GetAccountID(c), in)
	if err != nil {
		return classify(err, msgEmployeeMissing)
	}
	return h.res.Send(c, fiber.StatusOK, msgEmployeeUpdated, out)
}
