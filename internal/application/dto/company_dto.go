package dto

import "time"

// CompanySignupRequest auto-registro de empresa.
type CompanySignupRequest struct {
	FullName string `json:"fullName" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10,max=15"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// CreateCompanyRequest alta de empresa por un admin (se envía invitación con la contraseña temporal).
type CreateCompanyRequest struct {
	FullName     string `json:"fullName" validate:"required,min=3"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=10,max=15"`
	Password     string `json:"password" validate:"required,strongpassword"`
	Username     string `json:"username" validate:"omitempty,min=3,max=50"`
	Industry     string `json:"industry" validate:"omitempty,max=100"`
	Description  string `json:"description" validate:"omitempty,max=1000"`
	Plan         string `json:"plan" validate:"omitempty,oneof=FREE BASIC PREMIUM ENTERPRISE"`
	MaxEmployees int    `json:"maxEmployees" validate:"min=0"`
}

// UpdateCompanyRequest campos opcionales del perfil de empresa.
type UpdateCompanyRequest struct {
	FullName    *string `json:"fullName" validate:"omitempty,min=3"`
	Phone       *string `json:"phone" validate:"omitempty,min=10,max=15"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Username    *string `json:"username" validate:"omitempty,min=3,max=50"`
	Industry    *string `json:"industry" validate:"omitempty,max=100"`
}

// ChangePlanRequest cambio de plan y cupo de empleados.
type ChangePlanRequest struct {
	Plan         string `json:"plan" validate:"required,oneof=FREE BASIC PREMIUM ENTERPRISE"`
	MaxEmployees *int   `json:"maxEmployees" validate:"omitempty,min=0"`
}

// CompanyResponse salida de una empresa (sin datos sensibles).
type CompanyResponse struct {
	ID           string     `json:"id"`
	CompanyCode  string     `json:"companyId"`
	FullName     string     `json:"fullName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Username     string     `json:"username"`
	Industry     string     `json:"industry"`
	Description  string     `json:"description"`
	Website      string     `json:"website"`
	Address      string     `json:"address"`
	Plan         string     `json:"plan"`
	MaxEmployees int        `json:"maxEmployees"`
	Role         string     `json:"role"`
	AccountType  string     `json:"accountType"`
	Status       string     `json:"status"`
	IsVerified   bool       `json:"isVerified"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
