package transactions

import (
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/nomipay/nomi/internal/handlers/authz"
	"github.com/nomipay/nomi/internal/service/withdrawalservice"
)

func NewMock(t *testing.T) (*TransactionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withProfile(r *http.Request, profile *domain.Profile) *http.Request {
	return r.WithContext(authz.WithProfile(r.Context(), profile))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListCompanyTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	companyID := uuid.New()

	hr := &domain.Profile{
		ID:        uuid.New(),
		Role:      domain.RoleHR,
		CompanyID: uuid.NullUUID{UUID: companyID, Valid: true},
	}

	t.Run("HR lists own company", func(t *testing.T) {
		service.EXPECT().ListByCompany(gomock.Any(), companyID, 20, 0).Return([]domain.Transaction{
			{ID: uuid.New(), CompanyID: companyID, Amount: decimal.NewFromInt(2000), Status: domain.TransactionPending},
		}, nil)

		r := withProfile(httptest.NewRequest(http.MethodGet, "/transactions", nil), hr)
		w := httptest.NewRecorder()
		handler.ListCompanyTransactions(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.TransactionResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body, 1)
	})

	t.Run("Admin picks company via query", func(t *testing.T) {
		service.EXPECT().ListByCompany(gomock.Any(), companyID, 20, 0).Return([]domain.Transaction{}, nil)

		admin := &domain.Profile{ID: uuid.New(), Role: domain.RoleAdmin}
		r := withProfile(httptest.NewRequest(http.MethodGet, "/transactions?company_id="+companyID.String(), nil), admin)
		w := httptest.NewRecorder()
		handler.ListCompanyTransactions(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing company scope", func(t *testing.T) {
		hrWithoutCompany := &domain.Profile{ID: uuid.New(), Role: domain.RoleHR}
		r := withProfile(httptest.NewRequest(http.MethodGet, "/transactions", nil), hrWithoutCompany)
		w := httptest.NewRecorder()
		handler.ListCompanyTransactions(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, service := NewMock(t)
	transactionID := uuid.New()

	statusBody := func(status, notes string) []byte {
		body, _ := json.Marshal(dto.TransactionStatusRequestDTO{Status: status, Notes: notes})
		return body
	}

	tests := []struct {
		name         string
		body         []byte
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Approve",
			body: statusBody("approved", ""),
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), transactionID).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Complete",
			body: statusBody("completed", ""),
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), transactionID).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Reject with note",
			body: statusBody("rejected", "account closed"),
			prepareMock: func() {
				service.EXPECT().Reject(gomock.Any(), transactionID, "account closed").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Pending is not a target status",
			body:         statusBody("pending", ""),
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Transaction not found",
			body: statusBody("approved", ""),
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), transactionID).
					Return(withdrawalservice.ErrTransactionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Transition not allowed",
			body: statusBody("completed", ""),
			prepareMock: func() {
				service.EXPECT().Complete(gomock.Any(), transactionID).
					Return(withdrawalservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPatch, "/transactions/"+transactionID.String()+"/status", bytes.NewReader(tt.body))
			r = withURLParam(r, "id", transactionID.String())
			w := httptest.NewRecorder()
			handler.UpdateStatus(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
