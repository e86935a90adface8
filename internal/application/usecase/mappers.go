package usecase

import (
	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/internal/domain/entity"
)

func toAdminResponse(a *entity.Admin) *dto.AdminResponse {
	if a == nil {
		return nil
	}
	return &dto.AdminResponse{
		ID:          a.ID,
		FullName:    a.FullName,
		Email:       a.Email,
		Phone:       a.Phone,
		Address:     a.Address,
		Role:        a.Role,
		AccountType: a.AccountType,
		Status:      a.Status,
		IsVerified:  a.IsVerified,
		LastLogin:   a.LastLogin,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		CompanyCode:  c.CompanyCode,
		FullName:     c.FullName,
		Email:        c.Email,
		Phone:        c.Phone,
		Username:     c.Username,
		Industry:     c.Industry,
		Description:  c.Description,
		Website:      c.Website,
		Address:      c.Address,
		Plan:         c.Plan,
		MaxEmployees: c.MaxEmployees,
		Role:         c.Role,
		AccountType:  c.AccountType,
		Status:       c.Status,
		IsVerified:   c.IsVerified,
		LastLogin:    c.LastLogin,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		EmpID:       e.EmpID,
		FullName:    e.FullName,
		Email:       e.Email,
		Phone:       e.Phone,
		Department:  e.Department,
		JobTitle:    e.JobTitle,
		Gender:      e.Gender,
		DateOfBirth: e.DateOfBirth,
		Address:     e.Address,
		Description: e.Description,
		Role:        e.Role,
		AccountType: e.AccountType,
		Status:      e.Status,
		IsVerified:  e.IsVerified,
		LastLogin:   e.LastLogin,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toIndividualResponse(i *entity.Individual) *dto.IndividualResponse {
	if i == nil {
		return nil
	}
	return &dto.IndividualResponse{
		ID:          i.ID,
		FullName:    i.FullName,
		Email:       i.Email,
		Phone:       i.Phone,
		JobTitle:    i.JobTitle,
		Institute:   i.Institute,
		Course:      i.Course,
		Gender:      i.Gender,
		DateOfBirth: i.DateOfBirth,
		Address:     i.Address,
		Description: i.Description,
		Role:        i.Role,
		AccountType: i.AccountType,
		Status:      i.Status,
		IsVerified:  i.IsVerified,
		LastLogin:   i.LastLogin,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
