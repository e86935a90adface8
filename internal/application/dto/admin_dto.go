package dto

import "time"

// AdminSignupRequest alta de administrador.
type AdminSignupRequest struct {
	FullName string `json:"fullName" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10,max=15"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// UpdateAdminRequest campos opcionales del perfil de admin.
type UpdateAdminRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=3"`
	Phone    *string `json:"phone" validate:"omitempty,min=10,max=15"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
}

// AdminResponse salida de un admin.
type AdminResponse struct {
	ID          string     `json:"id"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	Role        string     `json:"role"`
	AccountType string     `json:"accountType"`
	Status      string     `json:"status"`
	IsVerified  bool       `json:"isVerified"`
	LastLogin   *time.Time `json:"lastLogin"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
