package withdrawals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nomipay/nomi/internal/domain"
	"github.com/nomipay/nomi/internal/dto"
	"github.com/nomipay/nomi/internal/service/withdrawalservice"
	"github.com/nomipay/nomi/pkg/auth"
)

func NewMock(t *testing.T) (*WithdrawalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceSummaryResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().GetBalanceSummary(gomock.Any(), userID).Return(&domain.BalanceSummary{
					Salary:                 decimal.NewFromInt(30000),
					AvailableBalance:       decimal.NewFromInt(24000),
					EligibleAmount:         decimal.NewFromInt(24000),
					TotalWithdrawn:         decimal.NewFromInt(6000),
					CommissionFee:          decimal.NewFromInt(75),
					MinimumWithdrawal:      decimal.NewFromInt(500),
					AvailabilityPercentage: 80,
					PaymentFrequency:       domain.FrequencyBiweekly,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceSummaryResponseDTO{
				Salary:                 decimal.NewFromInt(30000),
				AvailableBalance:       decimal.NewFromInt(24000),
				EligibleAmount:         decimal.NewFromInt(24000),
				TotalWithdrawn:         decimal.NewFromInt(6000),
				CommissionFee:          decimal.NewFromInt(75),
				MinimumWithdrawal:      decimal.NewFromInt(500),
				AvailabilityPercentage: 80,
				PaymentFrequency:       "biweekly",
			},
		},
		{
			name: "No employee record",
			prepareMock: func() {
				service.EXPECT().GetBalanceSummary(gomock.Any(), userID).
					Return(nil, withdrawalservice.ErrEmployeeNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetBalanceSummary(gomock.Any(), userID).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodGet, "/balance", nil, userID)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceSummaryResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.True(t, tt.expectedBody.AvailableBalance.Equal(body.AvailableBalance))
				assert.Equal(t, tt.expectedBody.PaymentFrequency, body.PaymentFrequency)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	amount := decimal.NewFromInt(2000)

	validBody, _ := json.Marshal(dto.WithdrawalRequestDTO{
		Amount:         amount,
		IdempotencyKey: "key-1",
	})

	tests := []struct {
		name         string
		body         []byte
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Withdrawal recorded",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), userID, gomock.Any(), "key-1").
					Return(&domain.Transaction{
						ID:        uuid.New(),
						Amount:    amount,
						NetAmount: decimal.NewFromInt(1925),
						Status:    domain.TransactionPending,
					}, nil)
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
			name:         "Missing idempotency key",
			body:         []byte(`{"amount": 2000}`),
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Below minimum",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), userID, gomock.Any(), "key-1").
					Return(nil, withdrawalservice.ErrBelowMinimum)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Insufficient balance",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), userID, gomock.Any(), "key-1").
					Return(nil, withdrawalservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Suspended company",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), userID, gomock.Any(), "key-1").
					Return(nil, withdrawalservice.ErrCompanyInactive)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Company credit exhausted",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), userID, gomock.Any(), "key-1").
					Return(nil, withdrawalservice.ErrCreditExhausted)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Idempotency key reused",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), userID, gomock.Any(), "key-1").
					Return(nil, withdrawalservice.ErrIdempotencyKeyReused)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), userID, gomock.Any(), "key-1").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/withdrawals", tt.body, userID)
			w := httptest.NewRecorder()
			handler.Withdraw(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetWithdrawalsHandler(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	t.Run("History returned", func(t *testing.T) {
		service.EXPECT().ListForUser(gomock.Any(), userID, 20, 0).Return([]domain.Transaction{
			{ID: uuid.New(), Amount: decimal.NewFromInt(2000), Status: domain.TransactionCompleted},
		}, nil)

		r := authedRequest(http.MethodGet, "/withdrawals", nil, userID)
		w := httptest.NewRecorder()
		handler.GetWithdrawals(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.TransactionResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body, 1)
	})

	t.Run("Empty history is an empty list", func(t *testing.T) {
		service.EXPECT().ListForUser(gomock.Any(), userID, 20, 0).Return([]domain.Transaction{}, nil)

		r := authedRequest(http.MethodGet, "/withdrawals", nil, userID)
		w := httptest.NewRecorder()
		handler.GetWithdrawals(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().ListForUser(gomock.Any(), userID, 20, 0).Return(nil, errors.New("error"))

		r := authedRequest(http.MethodGet, "/withdrawals", nil, userID)
		w := httptest.NewRecorder()
		handler.GetWithdrawals(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
