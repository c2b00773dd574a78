package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/nomipay/nomi/docs"
	"github.com/nomipay/nomi/internal/handlers/authz"
	companieshandlers "github.com/nomipay/nomi/internal/handlers/companies"
	employeeshandlers "github.com/nomipay/nomi/internal/handlers/employees"
	transactionshandlers "github.com/nomipay/nomi/internal/handlers/transactions"
	withdrawalshandlers "github.com/nomipay/nomi/internal/handlers/withdrawals"
	"github.com/nomipay/nomi/internal/service"
	"github.com/nomipay/nomi/pkg/auth"
)

type WithdrawalHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type CompanyHandler interface {
	CreateCompany(w http.ResponseWriter, r *http.Request)
	GetCompany(w http.ResponseWriter, r *http.Request)
	ListCompanies(w http.ResponseWriter, r *http.Request)
	UpdateCompany(w http.ResponseWriter, r *http.Request)
	SetCompanyStatus(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	SetEmployeeStatus(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	ListCompanyTransactions(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WithdrawalHandler  WithdrawalHandler
	CompanyHandler     CompanyHandler
	EmployeeHandler    EmployeeHandler
	TransactionHandler TransactionHandler

	jwt      *auth.JWTService
	profiles authz.ProfileService
}

func New(s *service.Services, jwt *auth.JWTService) *Handlers {
	return &Handlers{
		WithdrawalHandler:  withdrawalshandlers.New(s.WithdrawalService),
		CompanyHandler:     companieshandlers.New(s.CompanyService),
		EmployeeHandler:    employeeshandlers.New(s.EmployeeService),
		TransactionHandler: transactionshandlers.New(s.TransactionService),
		jwt:                jwt,
		profiles:           s.IdentityService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Group(func(r chi.Router) {
		r.Use(h.jwt.Middleware, authz.Middleware(h.profiles))

		r.Route("/api/employee", func(r chi.Router) {
			r.Get("/balance", h.WithdrawalHandler.GetBalance)
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WithdrawalHandler.Withdraw)
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
			})
		})

		r.Route("/api/hr", func(r chi.Router) {
			r.Route("/employees", func(r chi.Router) {
				r.Post("/", h.EmployeeHandler.CreateEmployee)
				r.Get("/", h.EmployeeHandler.ListEmployees)
				r.Get("/{id}", h.EmployeeHandler.GetEmployee)
				r.Put("/{id}", h.EmployeeHandler.UpdateEmployee)
				r.Patch("/{id}/status", h.EmployeeHandler.SetEmployeeStatus)
			})
			r.Get("/transactions", h.TransactionHandler.ListCompanyTransactions)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Route("/companies", func(r chi.Router) {
				r.Post("/", h.CompanyHandler.CreateCompany)
				r.Get("/", h.CompanyHandler.ListCompanies)
				r.Get("/{id}", h.CompanyHandler.GetCompany)
				r.Put("/{id}", h.CompanyHandler.UpdateCompany)
				r.Patch("/{id}/status", h.CompanyHandler.SetCompanyStatus)
			})
			r.Patch("/transactions/{id}/status", h.TransactionHandler.UpdateStatus)
		})
	})

	return r
}
