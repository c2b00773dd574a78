package companies

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nomipay/nomi/internal/domain"
	"github.com/nomipay/nomi/internal/dto"
	"github.com/nomipay/nomi/internal/service/companyservice"
)

func NewMock(t *testing.T) (*CompanyHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validCompanyBody() []byte {
	body, _ := json.Marshal(dto.CompanyRequestDTO{
		Name:                       "Grupo Martinez SRL",
		RNC:                        "131246791",
		Email:                      "rrhh@grupomartinez.do",
		CreditLimit:                decimal.NewFromInt(500000),
		WithdrawalLimitPerEmployee: decimal.NewFromInt(10000),
		AvailabilityPercentage:     80,
		CommissionFee:              decimal.NewFromInt(75),
		PaymentFrequency:           "biweekly",
	})
	return body
}

func TestCreateCompanyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         []byte
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Company created",
			body: validCompanyBody(),
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, company *domain.Company) (*domain.Company, error) {
						created := *company
						created.ID = uuid.New()
						created.Status = domain.CompanyPending
						return &created, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed body",
			body:         []byte("{"),
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid RNC",
			body:         []byte(`{"name": "Grupo Martinez SRL", "rnc": "12AB", "credit_limit": 500000}`),
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: validCompanyBody(),
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/companies", bytes.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.CreateCompany(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetCompanyHandler(t *testing.T) {
	handler, service := NewMock(t)
	companyID := uuid.New()

	t.Run("Company returned", func(t *testing.T) {
		service.EXPECT().GetByID(gomock.Any(), companyID).Return(&domain.Company{
			ID:     companyID,
			Name:   "Grupo Martinez SRL",
			Status: domain.CompanyActive,
		}, nil)

		r := withURLParam(httptest.NewRequest(http.MethodGet, "/companies/"+companyID.String(), nil), "id", companyID.String())
		w := httptest.NewRecorder()
		handler.GetCompany(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.CompanyResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, companyID.String(), body.ID)
	})

	t.Run("Invalid id", func(t *testing.T) {
		r := withURLParam(httptest.NewRequest(http.MethodGet, "/companies/abc", nil), "id", "abc")
		w := httptest.NewRecorder()
		handler.GetCompany(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Company not found", func(t *testing.T) {
		service.EXPECT().GetByID(gomock.Any(), companyID).Return(nil, companyservice.ErrCompanyNotFound)

		r := withURLParam(httptest.NewRequest(http.MethodGet, "/companies/"+companyID.String(), nil), "id", companyID.String())
		w := httptest.NewRecorder()
		handler.GetCompany(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListCompaniesHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Companies returned", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), 20, 0).Return([]domain.Company{
			{ID: uuid.New(), Name: "Grupo Martinez SRL"},
			{ID: uuid.New(), Name: "Transporte Caribe"},
		}, nil)

		r := httptest.NewRequest(http.MethodGet, "/companies", nil)
		w := httptest.NewRecorder()
		handler.ListCompanies(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.CompanyResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body, 2)
	})
}

func TestSetCompanyStatusHandler(t *testing.T) {
	handler, service := NewMock(t)
	companyID := uuid.New()

	t.Run("Status changed", func(t *testing.T) {
		service.EXPECT().SetStatus(gomock.Any(), companyID, domain.CompanySuspended).Return(nil)

		body := []byte(`{"status": "suspended"}`)
		r := withURLParam(httptest.NewRequest(http.MethodPatch, "/companies/"+companyID.String()+"/status", bytes.NewReader(body)), "id", companyID.String())
		w := httptest.NewRecorder()
		handler.SetCompanyStatus(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Unknown status rejected", func(t *testing.T) {
		body := []byte(`{"status": "dormant"}`)
		r := withURLParam(httptest.NewRequest(http.MethodPatch, "/companies/"+companyID.String()+"/status", bytes.NewReader(body)), "id", companyID.String())
		w := httptest.NewRecorder()
		handler.SetCompanyStatus(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Company not found", func(t *testing.T) {
		service.EXPECT().SetStatus(gomock.Any(), companyID, domain.CompanyActive).Return(companyservice.ErrCompanyNotFound)

		body := []byte(`{"status": "active"}`)
		r := withURLParam(httptest.NewRequest(http.MethodPatch, "/companies/"+companyID.String()+"/status", bytes.NewReader(body)), "id", companyID.String())
		w := httptest.NewRecorder()
		handler.SetCompanyStatus(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
