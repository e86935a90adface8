package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Roles válidos. El rol coincide con el tipo de cuenta (tabla de origen).
const (
	RoleAdmin      = "ADMIN"
	RoleCompany    = "COMPANY"
	RoleEmployee   = "EMPLOYEE"
	RoleIndividual = "INDIVIDUAL"
)

// Tipos de cuenta; uno por tabla.
const (
	AccountTypeAdmin      = "ADMIN"
	AccountTypeCompany    = "COMPANY"
	AccountTypeEmployee   = "EMPLOYEE"
	AccountTypeIndividual = "INDIVIDUAL"
)

// Estados de cuenta. Cualquier transición entre ellos es válida.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusBlocked  = "BLOCKED"
)

// Account datos comunes a las cuatro variantes (admin, company, employee, individual).
type Account struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Phone        string
	Role         string
	AccountType  string
	Status       string
	IsVerified   bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBlocked indica si la cuenta tiene el acceso bloqueado.
func (a *Account) IsBlocked() bool {
	return a.Status == StatusBlocked
}

// IsValidStatus indica si s es uno de los estados conocidos.
func IsValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusBlocked
}

// StatusMessage mensaje legible del estado resultante; label es el nombre del recurso ("Company", "Employee").
func StatusMessage(label, status string) string {
	if status == StatusBlocked {
		return label + " blocked successfully"
	} else if status == StatusActive {
		return label + " activated successfully"
	} else if status == StatusInactive {
		return label + " deactivated successfully"
	}
	return label + " status updated successfully"
}

var lowerEmail = cases.Lower(language.Und)

// NormalizeEmail recorta espacios y pasa a minúsculas.
func NormalizeEmail(email string) string {
	return lowerEmail.String(strings.TrimSpace(email))
}
