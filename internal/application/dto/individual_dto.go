package dto

import "time"

// IndividualSignupRequest auto-registro de un individual.
type IndividualSignupRequest struct {
	FullName string `json:"fullName" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,min=10,max=15"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// UpdateIndividualRequest campos opcionales del perfil.
type UpdateIndividualRequest struct {
	FullName    *string    `json:"fullName" validate:"omitempty,min=3"`
	Phone       *string    `json:"phone" validate:"omitempty,min=10,max=15"`
	JobTitle    *string    `json:"jobTitle" validate:"omitempty,max=100"`
	Institute   *string    `json:"institute" validate:"omitempty,max=150"`
	Course      *string    `json:"course" validate:"omitempty,max=150"`
	Gender      *string    `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Address     *string    `json:"address" validate:"omitempty,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
}

// IndividualResponse salida de un individual.
type IndividualResponse struct {
	ID          string     `json:"id"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	JobTitle    string     `json:"jobTitle"`
	Institute   string     `json:"institute"`
	Course      string     `json:"course"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	Role        string     `json:"role"`
	AccountType string     `json:"accountType"`
	Status      string     `json:"status"`
	IsVerified  bool       `json:"isVerified"`
	LastLogin   *time.Time `json:"lastLogin"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
