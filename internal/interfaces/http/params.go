package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lms-api/internal/application/dto"
)

// Scope resuelve la empresa dueña de los empleados para la petición. Vacío = todas (admin).
type Scope func(c *fiber.Ctx) string

// OwnCompany la empresa es la cuenta autenticada.
func OwnCompany(c *fiber.Ctx) string { return GetAccountID(c) }

// CompanyParam la empresa viene en el parámetro :companyId.
func CompanyParam(c *fiber.Ctx) string { return c.Params("companyId") }

// AnyCompany sin filtro de empresa.
func AnyCompany(*fiber.Ctx) string { return "" }

// pageQuery lee page y pageSize; los límites los aplica el caso de uso.
func pageQuery(c *fiber.Ctx) (dto.PageQuery, error) {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return q, NewError(fiber.StatusBadRequest, msgInvalidInput)
	}
	return q, nil
}
