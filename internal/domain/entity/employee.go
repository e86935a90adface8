package entity

import "time"

// Géneros admitidos en perfiles de employee e individual.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

// Employee pertenece exactamente a una Company (FK company_id).
type Employee struct {
	Account
	CompanyID   string
	EmpID       string
	Department  string
	JobTitle    string
	Gender      string
	DateOfBirth *time.Time
	Address     string
	Description string
}
