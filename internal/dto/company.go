package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CompanyRequestDTO struct {
	Name                       string          `json:"name" validate:"required,min=2,max=200" example:"Grupo Martinez SRL"`
	RNC                        string          `json:"rnc" validate:"required,len=9,numeric" example:"131246791"`
	Email                      string          `json:"email" validate:"omitempty,email" example:"rrhh@grupomartinez.do"`
	Phone                      string          `json:"phone" validate:"omitempty,max=20" example:"8095551234"`
	Address                    string          `json:"address" validate:"omitempty,max=300"`
	CreditLimit                decimal.Decimal `json:"credit_limit" validate:"required" example:"500000"`
	WithdrawalLimitPerEmployee decimal.Decimal `json:"withdrawal_limit_per_employee" example:"10000"`
	AvailabilityPercentage     int             `json:"availability_percentage" validate:"min=0,max=100" example:"80"`
	CommissionFee              decimal.Decimal `json:"commission_fee" example:"75"`
	PaymentFrequency           string          `json:"payment_frequency" validate:"omitempty,oneof=weekly biweekly monthly" example:"biweekly"`
}

type CompanyResponseDTO struct {
	ID                         string          `json:"id" example:"7a1e9c3b-4f26-48d5-9b0a-2c8e6d1f5a73"`
	Name                       string          `json:"name" example:"Grupo Martinez SRL"`
	RNC                        string          `json:"rnc" example:"131246791"`
	Email                      string          `json:"email" example:"rrhh@grupomartinez.do"`
	Phone                      string          `json:"phone" example:"8095551234"`
	Address                    string          `json:"address"`
	CreditLimit                decimal.Decimal `json:"credit_limit" example:"500000"`
	CreditUsed                 decimal.Decimal `json:"credit_used" example:"12000"`
	WithdrawalLimitPerEmployee decimal.Decimal `json:"withdrawal_limit_per_employee" example:"10000"`
	AvailabilityPercentage     int             `json:"availability_percentage" example:"80"`
	CommissionFee              decimal.Decimal `json:"commission_fee" example:"75"`
	PaymentFrequency           string          `json:"payment_frequency" example:"biweekly"`
	Status                     string          `json:"status" example:"active"`
	CreatedAt                  time.Time       `json:"created_at"`
}

type CompanyStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=active suspended pending" example:"active"`
}
