package dto

import "time"

// LoginRequest entrada para login (unificado o por variante).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse vista común de cualquier cuenta (sin password).
type AccountResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Phone       string     `json:"phone"`
	Role        string     `json:"role"`
	AccountType string     `json:"accountType"`
	Status      string     `json:"status"`
	IsVerified  bool       `json:"isVerified"`
	LastLogin   *time.Time `json:"lastLogin"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// LoginResponse salida de login: perfil y access token. El refresh token viaja solo en la cookie.
type LoginResponse struct {
	Account AccountResponse `json:"account"`
	Token   string          `json:"token"`
}

// RefreshResponse salida de la rotación explícita.
type RefreshResponse struct {
	Token string `json:"token"`
}

// MeResponse identidad del token más el perfil de la variante resuelta.
type MeResponse struct {
	ID          string      `json:"id"`
	Role        string      `json:"role"`
	AccountType string      `json:"accountType"`
	Profile     interface{} `json:"profile"`
}

// EmailRequest entrada de los flujos que solo requieren email (verificación, olvido de contraseña).
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest nueva contraseña para el flujo de reset.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,strongpassword"`
}

// ChangePasswordRequest cambio de contraseña autenticado.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strongpassword"`
}
