package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeRequestDTO struct {
	CompanyID    string          `json:"company_id" validate:"omitempty,uuid" example:"7a1e9c3b-4f26-48d5-9b0a-2c8e6d1f5a73"`
	EmployeeCode string          `json:"employee_code" validate:"omitempty,max=50" example:"EMP-001"`
	Cedula       string          `json:"cedula" validate:"required,cedula" example:"00112345678"`
	FullName     string          `json:"full_name" validate:"required,min=2,max=200" example:"Maria Polanco"`
	Email        string          `json:"email" validate:"omitempty,email" example:"maria@example.do"`
	Salary       decimal.Decimal `json:"salary" validate:"required" example:"30000"`
	BankName     string          `json:"bank_name" validate:"omitempty,max=100" example:"Banco Popular"`
	BankAccount  string          `json:"bank_account" validate:"omitempty,max=30" example:"789456123"`
	HireDate     *time.Time      `json:"hire_date,omitempty"`
}

type EmployeeUpdateRequestDTO struct {
	EmployeeCode string          `json:"employee_code" validate:"omitempty,max=50" example:"EMP-001"`
	FullName     string          `json:"full_name" validate:"required,min=2,max=200" example:"Maria Polanco"`
	Email        string          `json:"email" validate:"omitempty,email" example:"maria@example.do"`
	Salary       decimal.Decimal `json:"salary" validate:"required" example:"32000"`
	BankName     string          `json:"bank_name" validate:"omitempty,max=100" example:"Banco Popular"`
	BankAccount  string          `json:"bank_account" validate:"omitempty,max=30" example:"789456123"`
	HireDate     *time.Time      `json:"hire_date,omitempty"`
}

type EmployeeResponseDTO struct {
	ID               string          `json:"id" example:"4d2a8c1f-9e63-47b5-b8a2-1f6e0c3d7a92"`
	CompanyID        string          `json:"company_id" example:"7a1e9c3b-4f26-48d5-9b0a-2c8e6d1f5a73"`
	EmployeeCode     string          `json:"employee_code" example:"EMP-001"`
	Cedula           string          `json:"cedula" example:"00112345678"`
	FullName         string          `json:"full_name" example:"Maria Polanco"`
	Email            string          `json:"email" example:"maria@example.do"`
	Salary           decimal.Decimal `json:"salary" example:"30000"`
	AvailableBalance decimal.Decimal `json:"available_balance" example:"24000"`
	TotalWithdrawn   decimal.Decimal `json:"total_withdrawn" example:"6000"`
	BankName         string          `json:"bank_name" example:"Banco Popular"`
	BankAccount      string          `json:"bank_account" example:"789456123"`
	Status           string          `json:"status" example:"active"`
	HireDate         *time.Time      `json:"hire_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

type EmployeeStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=active suspended pending" example:"suspended"`
}
