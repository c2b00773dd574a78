package service

import (
	"github.com/shopspring/decimal"

	"github.com/nomipay/nomi/internal/handlers/authz"
	"github.com/nomipay/nomi/internal/handlers/companies"
	"github.com/nomipay/nomi/internal/handlers/employees"
	"github.com/nomipay/nomi/internal/handlers/transactions"
	"github.com/nomipay/nomi/internal/handlers/withdrawals"

	"github.com/nomipay/nomi/internal/payouts"
	"github.com/nomipay/nomi/internal/pg"
	"github.com/nomipay/nomi/internal/repo"
	"github.com/nomipay/nomi/internal/service/companyservice"
	"github.com/nomipay/nomi/internal/service/employeeservice"
	"github.com/nomipay/nomi/internal/service/identityservice"
	"github.com/nomipay/nomi/internal/service/withdrawalservice"
)

type Services struct {
	WithdrawalService  withdrawals.Service
	TransactionService transactions.Service
	CompanyService     companies.Service
	EmployeeService    employees.Service
	IdentityService    authz.ProfileService
	PayoutService      payouts.TransactionService
}

func New(repo *repo.Repositories, txManager pg.TXManager, minWithdrawal decimal.Decimal) *Services {
	withdrawalService := withdrawalservice.New(
		repo.EmployeeRepo, repo.CompanyRepo, repo.TransactionRepo, txManager, minWithdrawal)
	companyService := companyservice.New(repo.CompanyRepo)
	employeeService := employeeservice.New(repo.EmployeeRepo, repo.CompanyRepo)
	identityService := identityservice.New(repo.ProfileRepo)

	return &Services{
		WithdrawalService:  withdrawalService,
		TransactionService: withdrawalService,
		CompanyService:     companyService,
		EmployeeService:    employeeService,
		IdentityService:    identityService,
		PayoutService:      withdrawalService,
	}
}
