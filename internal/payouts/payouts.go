package payouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nomipay/nomi/internal/config"
	"github.com/nomipay/nomi/internal/domain"
	"github.com/nomipay/nomi/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingTransactions sync.Map

// TransactionService is the slice of the withdrawal service the dispatcher
// drives: fetching pending payouts and settling them.
type TransactionService interface {
	FindPending(ctx context.Context, limit uint32) ([]domain.Transaction, error)
	Complete(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID, note string) error
}

type Request struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	BankName      string          `json:"bank_name"`
	BankAccount   string          `json:"bank_account"`
}

type Response struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
}

type Service struct {
	url          string
	transactions TransactionService
	client       clients.HTTPClientI
	limit        uint32
	workerPool   WorkerPoolI
	pollInterval time.Duration
}

func New(cfg *config.Config, transactions TransactionService, client clients.HTTPClientI) *Service {
	return &Service{
		url:          cfg.PayoutAddress,
		transactions: transactions,
		client:       client,
		limit:        1000,
		workerPool:   NewWorkerPool(10),
		pollInterval: time.Duration(cfg.PayoutPollInterval) * time.Second,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payout dispatcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payout dispatcher")
			return
		case <-ticker.C:
			s.processPending(ctx)
		}
	}
}

func (s *Service) processPending(ctx context.Context) {
	transactions, err := s.transactions.FindPending(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch pending transactions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, transaction := range transactions {
		transaction := transaction

		if _, loaded := processingTransactions.LoadOrStore(transaction.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingTransactions.Delete(transaction.ID)
				return s.handleTransaction(ctx, transaction)
			})
			if err != nil {
				processingTransactions.Delete(transaction.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing pending transactions", zap.Error(err))
	}
}

func (s *Service) handleTransaction(ctx context.Context, transaction domain.Transaction) error {
	url := s.url + "/api/payouts"
	body, err := json.Marshal(Request{
		TransactionID: transaction.ID.String(),
		Amount:        transaction.NetAmount,
		BankName:      transaction.BankName,
		BankAccount:   transaction.BankAccount,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal payout request: %w", err)
	}

	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Post(url, body, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to dispatch transaction %s after %d retries: %w", transaction.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(transaction, respHeaders, attempt)
			case http.StatusOK:
				return s.processResult(ctx, transaction, respBody)
			default:
				zap.L().Error("Unexpected status code from payout provider",
					zap.Int("status", statusCode),
					zap.String("transactionID", transaction.ID.String()))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processResult(ctx context.Context, transaction domain.Transaction, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.TransactionID != transaction.ID.String() {
		return fmt.Errorf("transaction id mismatch: expected %s, got %s", transaction.ID, response.TransactionID)
	}

	switch response.Status {
	case "completed":
		if err := s.transactions.Complete(ctx, transaction.ID); err != nil {
			return fmt.Errorf("failed to complete transaction %s: %w", transaction.ID, err)
		}
		zap.L().Info("Payout completed", zap.String("transactionID", transaction.ID.String()))
	case "rejected":
		if err := s.transactions.Reject(ctx, transaction.ID, response.Reason); err != nil {
			return fmt.Errorf("failed to reject transaction %s: %w", transaction.ID, err)
		}
		zap.L().Info("Payout rejected, balance restored",
			zap.String("transactionID", transaction.ID.String()),
			zap.String("reason", response.Reason))
	case "processing":
		zap.L().Info("Payout still in flight", zap.String("transactionID", transaction.ID.String()))
	default:
		zap.L().Warn("Unrecognized payout status",
			zap.String("transactionID", transaction.ID.String()),
			zap.String("status", response.Status))
	}
	return nil
}

func (s *Service) handleRateLimit(transaction domain.Transaction, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("transactionID", transaction.ID.String()),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
