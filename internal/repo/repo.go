package repo

import (
	"github.com/nomipay/nomi/internal/pg"
	companyrepo "github.com/nomipay/nomi/internal/repo/company-repo"
	employeerepo "github.com/nomipay/nomi/internal/repo/employee-repo"
	profilerepo "github.com/nomipay/nomi/internal/repo/profile-repo"
	transactionrepo "github.com/nomipay/nomi/internal/repo/transaction-repo"
)

type Repositories struct {
	CompanyRepo     *companyrepo.Repository
	EmployeeRepo    *employeerepo.Repository
	TransactionRepo *transactionrepo.Repository
	ProfileRepo     *profilerepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		CompanyRepo:     companyrepo.New(conn),
		EmployeeRepo:    employeerepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		ProfileRepo:     profilerepo.New(conn),
	}
}
