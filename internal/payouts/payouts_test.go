package payouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/nomipay/nomi/internal/config"
	"github.com/nomipay/nomi/internal/domain"
	"github.com/nomipay/nomi/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *MockTransactionService, *clients.MockHTTPClientI) {
	cfg := &config.Config{PayoutAddress: "http://localhost:8081", PayoutPollInterval: 5}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactions := NewMockTransactionService(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, transactions, client)
	return service, transactions, client
}

func pendingTransaction() domain.Transaction {
	return domain.Transaction{
		ID:          uuid.New(),
		EmployeeID:  uuid.New(),
		CompanyID:   uuid.New(),
		Amount:      decimal.NewFromInt(2000),
		Commission:  decimal.NewFromInt(75),
		NetAmount:   decimal.NewFromInt(1925),
		Status:      domain.TransactionPending,
		BankName:    "Banco Popular",
		BankAccount: "789456123",
	}
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processPending(t *testing.T) {
	tests := []struct {
		name             string
		mockFindPending  func(ctx context.Context, limit uint32) ([]domain.Transaction, error)
		mockAddTask      func(ctx context.Context, task Task) error
		transactionCount int
	}{
		{
			name: "successfully dispatches pending transactions",
			mockFindPending: func(ctx context.Context, limit uint32) ([]domain.Transaction, error) {
				return []domain.Transaction{pendingTransaction(), pendingTransaction()}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			transactionCount: 2,
		},
		{
			name: "fails when fetching pending transactions",
			mockFindPending: func(ctx context.Context, limit uint32) ([]domain.Transaction, error) {
				return nil, fmt.Errorf("failed to fetch pending transactions")
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			transactionCount: 0,
		},
		{
			name: "error in workerPool AddTask",
			mockFindPending: func(ctx context.Context, limit uint32) ([]domain.Transaction, error) {
				return []domain.Transaction{pendingTransaction()}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			transactionCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			transactions := NewMockTransactionService(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			transactions.EXPECT().
				FindPending(gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockFindPending).
				Times(1)
			for i := 0; i < tt.transactionCount; i++ {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					AnyTimes()
			}

			service := &Service{
				transactions: transactions,
				workerPool:   workerPool,
				limit:        2,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			service.processPending(context.Background())
		})
	}
}

func TestService_handleTransaction(t *testing.T) {
	transaction := pendingTransaction()

	responseBody := func(status, reason string) []byte {
		body, _ := json.Marshal(Response{
			TransactionID: transaction.ID.String(),
			Status:        status,
			Reason:        reason,
		})
		return body
	}

	tests := []struct {
		name        string
		httpStatus  int
		respBody    []byte
		prepareMock func(transactions *MockTransactionService)
		expectErr   bool
	}{
		{
			name:       "completed payout settles the transaction",
			httpStatus: http.StatusOK,
			respBody:   responseBody("completed", ""),
			prepareMock: func(transactions *MockTransactionService) {
				transactions.EXPECT().Complete(gomock.Any(), transaction.ID).Return(nil)
			},
		},
		{
			name:       "rejected payout refunds the transaction",
			httpStatus: http.StatusOK,
			respBody:   responseBody("rejected", "account closed"),
			prepareMock: func(transactions *MockTransactionService) {
				transactions.EXPECT().Reject(gomock.Any(), transaction.ID, "account closed").Return(nil)
			},
		},
		{
			name:        "processing payout is left pending",
			httpStatus:  http.StatusOK,
			respBody:    responseBody("processing", ""),
			prepareMock: func(transactions *MockTransactionService) {},
		},
		{
			name:        "unexpected status code",
			httpStatus:  http.StatusBadGateway,
			respBody:    nil,
			prepareMock: func(transactions *MockTransactionService) {},
			expectErr:   true,
		},
		{
			name:        "malformed response body",
			httpStatus:  http.StatusOK,
			respBody:    []byte("{"),
			prepareMock: func(transactions *MockTransactionService) {},
			expectErr:   true,
		},
		{
			name:       "settlement failure surfaces",
			httpStatus: http.StatusOK,
			respBody:   responseBody("completed", ""),
			prepareMock: func(transactions *MockTransactionService) {
				transactions.EXPECT().Complete(gomock.Any(), transaction.ID).
					Return(errors.New("transition not allowed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			transactions := NewMockTransactionService(ctrl)
			client := clients.NewMockHTTPClientI(ctrl)
			tt.prepareMock(transactions)

			client.EXPECT().
				Post("http://localhost:8081/api/payouts", gomock.Any(), gomock.Any()).
				Return(tt.httpStatus, tt.respBody, http.Header{}, nil)

			service := &Service{
				url:          "http://localhost:8081",
				transactions: transactions,
				client:       client,
			}

			err := service.handleTransaction(context.Background(), transaction)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_handleTransaction_mismatchedID(t *testing.T) {
	transaction := pendingTransaction()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactions := NewMockTransactionService(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)

	body, _ := json.Marshal(Response{TransactionID: uuid.NewString(), Status: "completed"})
	client.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(http.StatusOK, body, http.Header{}, nil)

	service := &Service{
		url:          "http://localhost:8081",
		transactions: transactions,
		client:       client,
	}

	assert.Error(t, service.handleTransaction(context.Background(), transaction))
}
