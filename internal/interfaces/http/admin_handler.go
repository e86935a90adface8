package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/internal/application/usecase"
)

// AdminHandler maneja registro y perfil de admins.
type AdminHandler struct {
	uc  *usecase.AdminUseCase
	res *Responder
}

// NewAdminHandler construye el handler inyectando el caso de uso.
func NewAdminHandler(uc *usecase.AdminUseCase, res *Responder) *AdminHandler {
	return &AdminHandler{uc: uc, res: res}
}

// Signup godoc
// @Summary      Registrar admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminSignupRequest  true  "Datos del admin"
// @Success      201   {object}  dto.Envelope{data=dto.AdminResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/admin/signup [post]
func (h *AdminHandler) Signup(c *fiber.Ctx) error {
	var in dto.AdminSignupRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Signup(c.UserContext(), in)
	if err != nil {
		return classify(err, "")
	}
	return h.res.Send(c, fiber.StatusCreated, msgAdminCreated, out)
}

// Me godoc
// @Summary      Perfil del admin autenticado
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.AdminResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/admin/me [get]
func (h *AdminHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.UserContext(), GetAccountID(c))
	if err != nil {
		return classify(err, msgAdminMissing)
	}
	return h.res.Send(c, fiber.StatusOK, msgFetched, out)
}

// UpdateMe godoc
// @Summary      Actualizar perfil del admin autenticado
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateAdminRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.AdminResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/admin/me [patch]
func (h *AdminHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateAdminRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetAccountID(c), in)
	if err != nil {
		return classify(err, msgAdminMissing)
	}
	return h.res.Send(c, fiber.StatusOK, msgAdminUpdated, out)
}
