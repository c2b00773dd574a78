package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalRequestDTO struct {
	Amount         decimal.Decimal `json:"amount" validate:"required" example:"2000"`
	IdempotencyKey string          `json:"idempotency_key" validate:"required,max=100" example:"b3f1c9d0-5a74-4c2e-9f6d-8e2b1a7c4d55"`
}

type BalanceSummaryResponseDTO struct {
	Salary                 decimal.Decimal `json:"salary" example:"30000"`
	AvailableBalance       decimal.Decimal `json:"available_balance" example:"24000"`
	EligibleAmount         decimal.Decimal `json:"eligible_amount" example:"24000"`
	TotalWithdrawn         decimal.Decimal `json:"total_withdrawn" example:"6000"`
	CommissionFee          decimal.Decimal `json:"commission_fee" example:"75"`
	MinimumWithdrawal      decimal.Decimal `json:"minimum_withdrawal" example:"500"`
	AvailabilityPercentage int             `json:"availability_percentage" example:"80"`
	PaymentFrequency       string          `json:"payment_frequency" example:"biweekly"`
}

type TransactionResponseDTO struct {
	ID          string          `json:"id" example:"9f3c1a7e-2b54-4d8c-a1e6-7c0d5b9f2e41"`
	EmployeeID  string          `json:"employee_id" example:"4d2a8c1f-9e63-47b5-b8a2-1f6e0c3d7a92"`
	Amount      decimal.Decimal `json:"amount" example:"2000"`
	Commission  decimal.Decimal `json:"commission" example:"75"`
	NetAmount   decimal.Decimal `json:"net_amount" example:"1925"`
	Status      string          `json:"status" example:"pending"`
	BankName    string          `json:"bank_name" example:"Banco Popular"`
	BankAccount string          `json:"bank_account" example:"789456123"`
	Notes       string          `json:"notes,omitempty"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at" example:"2025-03-09T16:09:57-04:00"`
}
