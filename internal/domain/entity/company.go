package entity

// Planes de suscripción de una empresa.
const (
	PlanFree       = "FREE"
	PlanBasic      = "BASIC"
	PlanPremium    = "PREMIUM"
	PlanEnterprise = "ENTERPRISE"
)

// Company representa una organización/tenant; es dueña de cero o más Employees.
type Company struct {
	Account
	Username     string
	CompanyCode  string // código corto legible, único
	Industry     string
	Description  string
	Website      string
	Address      string
	Plan         string // ver constantes Plan*
	MaxEmployees int    // 0 = sin límite
}

// CanAddEmployee indica si la empresa admite un empleado más dado el total actual.
func (c *Company) CanAddEmployee(current int) bool {
	return c.MaxEmployees <= 0 || current < c.MaxEmployees
}
