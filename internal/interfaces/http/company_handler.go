package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/internal/application/usecase"
	"github.com/jhoicas/lms-api/internal/domain/entity"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company:
// auto-registro, perfil propio y administración por parte de un admin.
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	res *Responder
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, res *Responder) *CompanyHandler {
	return &CompanyHandler{uc: uc, res: res}
}

// Signup godoc
// @Summary      Registrar empresa
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompanySignupRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.Envelope{data=dto.CompanyResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/company/signup [post]
func (h *CompanyHandler) Signup(c *fiber.Ctx) error {
	var in dto.CompanySignupRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Signup(c.UserContext(), in)
	if err != nil {
		return classify(err, "")
	}
	return h.res.Send(c, fiber.StatusCreated, msgRegistered, out)
}

// Profile godoc
// @Summary      Perfil de la empresa autenticada
// @Tags         company
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.CompanyResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/company/profile [get]
func (h *CompanyHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetAccountID(c))
	if err != nil {
		return classify(err, msgCompanyMissing)
	}
	return h.res.Send(c, fiber.StatusOK, msgFetched, out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil de la empresa autenticada
// @Tags         company
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.CompanyResponse}
// @Router       /api/v1/company/profile [patch]
func (h *CompanyHandler) UpdateProfile(c *fiber.Ctx) error {
	return h.update(c, GetAccountID(c))
}

func (h *CompanyHandler) update(c *fiber.Ctx, id string) error {
	var in dto.UpdateCompanyRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return classify(err, msgCompanyMissing)
	}
	return h.res.Send(c, fiber.StatusOK, msgCompanyUpdated, out)
}

// Create godoc
// @Summary      Crear empresa (admin); envía invitación con la contraseña temporal
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.Envelope{data=dto.CompanyResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/admin/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, invited, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return classify(err, "")
	}
	message := msgCompanyCreated
	if !invited {
		message += msgInvitationFailed
	}
	return h.res.Send(c, fiber.StatusCreated, message, out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        page      query  int  false  "Página"   default(1)
// @Param        pageSize  query  int  false  "Tamaño"   default(10)
// @Success      200  {object}  dto.Envelope{data=dto.PageResult[dto.CompanyResponse]}
// @Router       /api/v1/admin/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	q, err := pageQuery(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return h.res.Send(c, fiber.StatusOK, msgFetched, out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope{data=dto.CompanyResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/admin/companies/{companyId} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("companyId"))
	if err != nil {
		return classify(err, msgCompanyMissing)
	}
	return h.res.Send(c, fiber.StatusOK, msgFetched, out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                    true  "ID de la empresa"
// @Param        body       body  dto.UpdateCompanyRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Envelope{data=dto.CompanyResponse}
// @Router       /api/v1/admin/companies/{companyId} [patch]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	return h.update(c, c.Params("companyId"))
}

// Delete godoc
// @Summary      Eliminar empresa
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/admin/companies/{companyId} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("companyId")); err != nil {
		return classify(err, msgCompanyMissing)
	}
	return h.res.Send(c, fiber.StatusOK, msgCompanyDeleted, nil)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de una empresa (sin máquina de estados)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                   true  "ID de la empresa"
// @Param        body       body  dto.ChangeStatusRequest  true  "status"
// @Success      200  {object}  dto.Envelope{data=dto.CompanyResponse}
// @Router       /api/v1/admin/companies/{companyId}/change-status [patch]
func (h *CompanyHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), c.Params("companyId"), in.Status)
	if err != nil {
		return classify(err, msgCompanyMissing)
	}
	return h.res.Send(c, fiber.StatusOK, entity.StatusMessage("Company", out.Status), out)
}

// ChangePlan godoc
// @Summary      Cambiar plan y cupo de empleados
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        companyId  path  string                 true  "ID de la empresa"
// @Param        body       body  dto.ChangePlanRequest  true  "plan, maxEmployees"
// @Success      200  {object}  dto.Envelope{data=dto.CompanyResponse}
// @Router       /api/v1/admin/companies/{companyId}/change-plan [patch]
func (h *CompanyHandler) ChangePlan(c *fiber.Ctx) error {
	var in dto.ChangePlanRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.ChangePlan(c.UserContext(), c.Params("companyId"), in)
	if err != nil {
		return classify(err, msgCompanyMissing)
	}
	return h.res.Send(c, fiber.StatusOK, msgCompanyUpdated, out)
}
