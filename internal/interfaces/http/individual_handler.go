package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/internal/application/usecase"
	"github.com/jhoicas/lms-api/internal/domain/entity"
)

// IndividualHandler maneja individuals: auto-registro, perfil propio y gestión por admin.
type IndividualHandler struct {
	uc  *usecase.IndividualUseCase
	res *Responder
}

// NewIndividualHandler construye el handler inyectando el caso de uso.
func NewIndividualHandler(uc *usecase.IndividualUseCase, res *Responder) *IndividualHandler {
	return &IndividualHandler{uc: uc, res: res}
}

// Signup godoc
// @Summary      Registrar individual
// @Tags         individual
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IndividualSignupRequest  true  "Datos del individual"
// @Success      201   {object}  dto.Envelope{data=dto.IndividualResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/individual/signup [post]
func (h *IndividualHandler) Signup(c *fiber.Ctx) error {
	var in dto.IndividualSignupRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Signup(c.UserContext(), in)
	if err != nil {
		return classify(err, "")
	}
	return h.res.Send(c, fiber.StatusCreated, msgRegistered, out)
}

// Me godoc
// @Summary      Perfil del individual autenticado
// @Tags         individual
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.IndividualResponse}
// @Router       /api/v1/individual/me [get]
func (h *IndividualHandler) Me(c *fiber.Ctx) error {
	return h.get(c, GetAccountID(c))
}

// UpdateMe godoc
// @Summary      Actualizar perfil del individual autenticado
// @Tags         individual
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateIndividualRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Envelope{data=dto.IndividualResponse}
// @Router       /api/v1/individual/me [patch]
func (h *IndividualHandler) UpdateMe(c *fiber.Ctx) error {
	return h.update(c, GetAccountID(c))
}

func (h *IndividualHandler) get(c *fiber.Ctx, id string) error {
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return classify(err, msgIndividualMissing)
	}
	return h.res.Send(c, fiber.StatusOK, msgFetched, out)
}

func (h *IndividualHandler) update(c *fiber.Ctx, id string) error {
	var in dto.UpdateIndividualRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return classify(err, msgIndividualMissing)
	}
	return h.res.Send(c, fiber.StatusOK, msgIndividualUpdated, out)
}

// List godoc
// @Summary      Listar individuals
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        page      query  int  false  "Página"  default(1)
// @Param        pageSize  query  int  false  "Tamaño"  default(10)
// @Success      200  {object}  dto.Envelope{data=dto.PageResult[dto.IndividualResponse]}
// @Router       /api/v1/admin/individuals [get]
func (h *IndividualHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener individual
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        individualId  path  string  true  "ID del individual"
// @Success      200  {object}  dto.Envelope{data=dto.IndividualResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/admin/individuals/{individualId} [get]
func (h *IndividualHandler) GetByID(c *fiber.Ctx) error {
	return h.get(c, c.Params("individualId"))
}

// Update godoc
// @Summary      Actualizar individual
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        individualId  path  string                       true  "ID del individual"
// @Param        body          body  dto.UpdateIndividualRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Envelope{data=dto.IndividualResponse}
// @Router       /api/v1/admin/individuals/{individualId} [patch]
func (h *IndividualHandler) Update(c *fiber.Ctx) error {
	return h.update(c, c.Params("individualId"))
}

// Delete godoc
// @Summary      Eliminar individual
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        individualId  path  string  true  "ID del individual"
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/admin/individuals/{individualId} [delete]
func (h *IndividualHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("individualId")); err != nil {
		return classify(err, msgIndividualMissing)
	}
	return h.res.Send(c, fiber.StatusOK, msgIndividualDeleted, nil)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de un individual
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        individualId  path  string                   true  "ID del individual"
// @Param        body          body  dto.ChangeStatusRequest  true  "status"
// @Success      200  {object}  dto.Envelope{data=dto.IndividualResponse}
// @Router       /api/v1/admin/individuals/{individualId}/change-status [patch]
func (h *IndividualHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), c.Params("individualId"), in.Status)
	if err != nil {
		return classify(err, msgIndividualMissing)
	}
	return h.res.Send(c, fiber.StatusOK, entity.StatusMessage("Individual", out.Status), out)
}
