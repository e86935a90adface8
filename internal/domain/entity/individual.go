package entity

import "time"

// Individual estudiante independiente, sin empresa.
type Individual struct {
	Account
	JobTitle    string
	Institute   string
	Course      string
	Gender      string
	DateOfBirth *time.Time
	Address     string
	Description string
}
