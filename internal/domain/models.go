package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

type CompanyStatus string

const (
	CompanyActive    CompanyStatus = "active"
	CompanySuspended CompanyStatus = "suspended"
	CompanyPending   CompanyStatus = "pending"
)

type EmployeeStatus string

const (
	EmployeeActive    EmployeeStatus = "active"
	EmployeeSuspended EmployeeStatus = "suspended"
	EmployeePending   EmployeeStatus = "pending"
)

type TransactionStatus string

const (
	// TransactionPending withdrawal accepted, payout not yet dispatched.
	TransactionPending TransactionStatus = "pending"
	// TransactionApproved cleared by back office, awaiting payout.
	TransactionApproved TransactionStatus = "approved"
	// TransactionCompleted funds transferred to the employee account.
	TransactionCompleted TransactionStatus = "completed"
	// TransactionRejected payout refused, balance restored.
	TransactionRejected TransactionStatus = "rejected"
)

type PaymentFrequency string

const (
	FrequencyWeekly   PaymentFrequency = "weekly"
	FrequencyBiweekly PaymentFrequency = "biweekly"
	FrequencyMonthly  PaymentFrequency = "monthly"
)

type Company struct {
	ID                         uuid.UUID        `db:"id"`
	Name                       string           `db:"name"`
	RNC                        string           `db:"rnc"`
	Email                      string           `db:"email"`
	Phone                      string           `db:"phone"`
	Address                    string           `db:"address"`
	CreditLimit                decimal.Decimal  `db:"credit_limit"`
	CreditUsed                 decimal.Decimal  `db:"credit_used"`
	WithdrawalLimitPerEmployee decimal.Decimal  `db:"withdrawal_limit_per_employee"`
	AvailabilityPercentage     int              `db:"availability_percentage"`
	CommissionFee              decimal.Decimal  `db:"commission_fee"`
	PaymentFrequency           PaymentFrequency `db:"payment_frequency"`
	Status                     CompanyStatus    `db:"status"`
	CreatedAt                  time.Time        `db:"created_at"`
	UpdatedAt                  time.Time        `db:"updated_at"`
}

type Employee struct {
	ID               uuid.UUID       `db:"id"`
	UserID           uuid.NullUUID   `db:"user_id"`
	CompanyID        uuid.UUID       `db:"company_id"`
	EmployeeCode     string          `db:"employee_code"`
	Cedula           string          `db:"cedula"`
	FullName         string          `db:"full_name"`
	Email            string          `db:"email"`
	Salary           decimal.Decimal `db:"salary"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	TotalWithdrawn   decimal.Decimal `db:"total_withdrawn"`
	BankName         string          `db:"bank_name"`
	BankAccount      string          `db:"bank_account"`
	Status           EmployeeStatus  `db:"status"`
	HireDate         *time.Time      `db:"hire_date"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type Transaction struct {
	ID             uuid.UUID         `db:"id"`
	EmployeeID     uuid.UUID         `db:"employee_id"`
	CompanyID      uuid.UUID         `db:"company_id"`
	Amount         decimal.Decimal   `db:"amount"`
	Commission     decimal.Decimal   `db:"commission"`
	NetAmount      decimal.Decimal   `db:"net_amount"`
	Status         TransactionStatus `db:"status"`
	IdempotencyKey string            `db:"idempotency_key"`
	BankName       string            `db:"bank_name"`
	BankAccount    string            `db:"bank_account"`
	Notes          string            `db:"notes"`
	ProcessedAt    *time.Time        `db:"processed_at"`
	CreatedAt      time.Time         `db:"created_at"`
	UpdatedAt      time.Time         `db:"updated_at"`
}

// Profile mirrors the identity-provider user record; the service only reads it.
type Profile struct {
	ID        uuid.UUID     `db:"id"`
	Email     string        `db:"email"`
	FullName  string        `db:"full_name"`
	Role      Role          `db:"role"`
	CompanyID uuid.NullUUID `db:"company_id"`
}

// BalanceSummary is the employee-facing view of what can be drawn right now.
type BalanceSummary struct {
	Salary                 decimal.Decimal
	AvailableBalance       decimal.Decimal
	EligibleAmount         decimal.Decimal
	TotalWithdrawn         decimal.Decimal
	CommissionFee          decimal.Decimal
	MinimumWithdrawal      decimal.Decimal
	AvailabilityPercentage int
	PaymentFrequency       PaymentFrequency
}
