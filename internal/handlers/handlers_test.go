package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/nomipay/nomi/docs"
	"github.com/nomipay/nomi/internal/handlers/authz"
	"github.com/nomipay/nomi/internal/handlers/companies"
	"github.com/nomipay/nomi/internal/handlers/employees"
	"github.com/nomipay/nomi/internal/handlers/transactions"
	"github.com/nomipay/nomi/internal/handlers/withdrawals"
	"github.com/nomipay/nomi/internal/service"
	"github.com/nomipay/nomi/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		WithdrawalService:  withdrawals.NewMockService(ctrl),
		TransactionService: transactions.NewMockService(ctrl),
		CompanyService:     companies.NewMockService(ctrl),
		EmployeeService:    employees.NewMockService(ctrl),
		IdentityService:    authz.NewMockProfileService(ctrl),
	}

	h := New(services, auth.NewJWTService("secret"))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)
	mockCompanyHandler := NewMockCompanyHandler(ctrl)
	mockEmployeeHandler := NewMockEmployeeHandler(ctrl)
	mockTransactionHandler := NewMockTransactionHandler(ctrl)

	mockWithdrawalHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockCompanyHandler.EXPECT().CreateCompany(gomock.Any(), gomock.Any()).AnyTimes()
	mockCompanyHandler.EXPECT().ListCompanies(gomock.Any(), gomock.Any()).AnyTimes()
	mockEmployeeHandler.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).AnyTimes()
	mockEmployeeHandler.EXPECT().ListEmployees(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().ListCompanyTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		WithdrawalHandler:  mockWithdrawalHandler,
		CompanyHandler:     mockCompanyHandler,
		EmployeeHandler:    mockEmployeeHandler,
		TransactionHandler: mockTransactionHandler,
		jwt:                auth.NewJWTService("secret"),
		profiles:           authz.NewMockProfileService(ctrl),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/employee/balance", http.StatusUnauthorized},
		{"POST", "/api/employee/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/employee/withdrawals", http.StatusUnauthorized},
		{"POST", "/api/hr/employees", http.StatusUnauthorized},
		{"GET", "/api/hr/employees", http.StatusUnauthorized},
		{"GET", "/api/hr/transactions", http.StatusUnauthorized},
		{"POST", "/api/admin/companies", http.StatusUnauthorized},
		{"GET", "/api/admin/companies", http.StatusUnauthorized},
		{"PATCH", "/api/admin/transactions/1/status", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
