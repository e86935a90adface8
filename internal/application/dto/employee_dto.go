package dto

import "time"

// CreateEmployeeRequest alta de empleado por su empresa o por un admin.
type CreateEmployeeRequest struct {
	FullName    string     `json:"fullName" validate:"required,min=3"`
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"required,strongpassword"`
	EmpID       string     `json:"empId" validate:"omitempty,max=50"`
	Phone       string     `json:"phone" validate:"omitempty,min=10,max=15"`
	Department  string     `json:"department" validate:"omitempty,max=100"`
	JobTitle    string     `json:"jobTitle" validate:"omitempty,max=100"`
	Gender      string     `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Status      string     `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE BLOCKED"`
}

// UpdateEmployeeRequest campos opcionales del empleado.
type UpdateEmployeeRequest struct {
	FullName    *string    `json:"fullName" validate:"omitempty,min=3"`
	Phone       *string    `json:"phone" validate:"omitempty,min=10,max=15"`
	Department  *string    `json:"department" validate:"omitempty,max=100"`
	JobTitle    *string    `json:"jobTitle" validate:"omitempty,max=100"`
	Gender      *string    `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Address     *string    `json:"address" validate:"omitempty,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"companyId"`
	EmpID       string     `json:"empId"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Department  string     `json:"department"`
	JobTitle    string     `json:"jobTitle"`
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
