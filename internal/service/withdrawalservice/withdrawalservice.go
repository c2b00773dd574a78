package withdrawalservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nomipay/nomi/internal/domain"
	"github.com/nomipay/nomi/internal/pg"
	transactionrepo "github.com/nomipay/nomi/internal/repo/transaction-repo"
	"github.com/nomipay/nomi/internal/service/eligibility"
)

type EmployeeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Employee, error)
	DebitBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error)
	CreditBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}

type CompanyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	ReserveCredit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error)
	ReleaseCredit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
	FindPending(ctx context.Context, limit uint32) ([]domain.Transaction, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from []domain.TransactionStatus, to domain.TransactionStatus, note string) (bool, error)
}

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeInactive     = errors.New("employee is not active")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyInactive      = errors.New("company is not active")
	ErrBelowMinimum         = errors.New("amount is below the minimum withdrawal")
	ErrAboveWithdrawalLimit = errors.New("amount exceeds the per-employee withdrawal limit")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrBalanceConflict      = errors.New("balance changed, retry the request")
	ErrCreditExhausted      = errors.New("company credit limit exhausted")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidTransition    = errors.New("invalid transaction status transition")
	ErrIdempotencyKeyReused = errors.New("idempotency key already used by another withdrawal")
)

type Service struct {
	employeeRepo    EmployeeRepo
	companyRepo     CompanyRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	minWithdrawal   decimal.Decimal
}

func New(employeeRepo EmployeeRepo, companyRepo CompanyRepo, transactionRepo TransactionRepo, txManager pg.TXManager, minWithdrawal decimal.Decimal) *Service {
	return &Service{
		employeeRepo:    employeeRepo,
		companyRepo:     companyRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		minWithdrawal:   minWithdrawal,
	}
}

// GetBalanceSummary returns the withdrawable view for the employee behind the
// authenticated user: the running balance capped by the company policy.
func (s *Service) GetBalanceSummary(ctx context.Context, userID uuid.UUID) (*domain.BalanceSummary, error) {
	employee, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	company, err := s.companyRepo.GetByID(ctx, employee.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	return &domain.BalanceSummary{
		Salary:                 employee.Salary,
		AvailableBalance:       employee.AvailableBalance,
		EligibleAmount:         eligibility.Available(employee.Salary, company.AvailabilityPercentage, employee.AvailableBalance),
		TotalWithdrawn:         employee.TotalWithdrawn,
		CommissionFee:          company.CommissionFee,
		MinimumWithdrawal:      s.minWithdrawal,
		AvailabilityPercentage: company.AvailabilityPercentage,
		PaymentFrequency:       company.PaymentFrequency,
	}, nil
}

// RequestWithdrawal validates the request and commits the debit, the company
// credit reservation and the ledger entry as one database transaction. The
// debit itself is a conditional update, so a stale in-memory eligibility check
// can never double-spend: the losing request gets ErrBalanceConflict. A
// replayed idempotency key returns the original transaction without a second
// debit.
func (s *Service) RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, idempotencyKey string) (*domain.Transaction, error) {
	if amount.LessThan(s.minWithdrawal) {
		return nil, ErrBelowMinimum
	}

	employee, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	if employee.Status != domain.EmployeeActive {
		return nil, ErrEmployeeInactive
	}

	company, err := s.companyRepo.GetByID(ctx, employee.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.Status != domain.CompanyActive {
		return nil, ErrCompanyInactive
	}
	if company.WithdrawalLimitPerEmployee.IsPositive() && amount.GreaterThan(company.WithdrawalLimitPerEmployee) {
		return nil, ErrAboveWithdrawalLimit
	}

	eligible := eligibility.Available(employee.Salary, company.AvailabilityPercentage, employee.AvailableBalance)
	if amount.GreaterThan(eligible) {
		return nil, ErrInsufficientBalance
	}

	transaction := &domain.Transaction{
		EmployeeID:     employee.ID,
		CompanyID:      employee.CompanyID,
		Amount:         amount,
		Commission:     company.CommissionFee,
		NetAmount:      amount.Sub(company.CommissionFee),
		Status:         domain.TransactionPending,
		IdempotencyKey: idempotencyKey,
		BankName:       employee.BankName,
		BankAccount:    employee.BankAccount,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		debited, err := s.employeeRepo.DebitBalance(ctx, employee.ID, amount)
		if err != nil {
			return err
		}
		if !debited {
			return ErrBalanceConflict
		}

		reserved, err := s.companyRepo.ReserveCredit(ctx, company.ID, amount)
		if err != nil {
			return err
		}
		if !reserved {
			return ErrCreditExhausted
		}

		created, err := s.transactionRepo.Create(ctx, transaction)
		if err != nil {
			return err
		}
		transaction = created
		return nil
	})
	if err != nil {
		if errors.Is(err, transactionrepo.ErrDuplicateIdempotencyKey) {
			return s.replay(ctx, employee.ID, idempotencyKey)
		}
		zap.L().Error("withdrawal request failed",
			zap.String("employeeID", employee.ID.String()),
			zap.String("amount", amount.String()),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal accepted",
		zap.String("employeeID", employee.ID.String()),
		zap.String("transactionID", transaction.ID.String()),
		zap.String("amount", amount.String()))
	return transaction, nil
}

func (s *Service) replay(ctx context.Context, employeeID uuid.UUID, idempotencyKey string) (*domain.Transaction, error) {
	prior, err := s.transactionRepo.GetByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if prior == nil || prior.EmployeeID != employeeID {
		return nil, ErrIdempotencyKeyReused
	}
	zap.L().Info("withdrawal replayed", zap.String("transactionID", prior.ID.String()))
	return prior, nil
}

// ListForUser returns the withdrawal history for the employee behind the
// authenticated user, newest first.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	employee, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return []domain.Transaction{}, nil
	}
	return s.transactionRepo.ListByEmployee(ctx, employee.ID, limit, offset)
}

func (s *Service) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	return s.transactionRepo.ListByCompany(ctx, companyID, limit, offset)
}

func (s *Service) FindPending(ctx context.Context, limit uint32) ([]domain.Transaction, error) {
	return s.transactionRepo.FindPending(ctx, limit)
}

func (s *Service) Approve(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, []domain.TransactionStatus{domain.TransactionPending}, domain.TransactionApproved, "")
}

func (s *Service) Complete(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id,
		[]domain.TransactionStatus{domain.TransactionPending, domain.TransactionApproved},
		domain.TransactionCompleted, "")
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, from []domain.TransactionStatus, to domain.TransactionStatus, note string) error {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if transaction == nil {
		return ErrTransactionNotFound
	}

	moved, err := s.transactionRepo.TransitionStatus(ctx, id, from, to, note)
	if err != nil {
		return err
	}
	if !moved {
		return ErrInvalidTransition
	}
	return nil
}

// Reject annuls a withdrawal whose payout was refused: the status flip, the
// balance restore and the credit release commit or roll back together.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, note string) error {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if transaction == nil {
		return ErrTransactionNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		moved, err := s.transactionRepo.TransitionStatus(ctx, id,
			[]domain.TransactionStatus{domain.TransactionPending, domain.TransactionApproved},
			domain.TransactionRejected, note)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidTransition
		}

		if err := s.employeeRepo.CreditBalance(ctx, transaction.EmployeeID, transaction.Amount); err != nil {
			return err
		}
		return s.companyRepo.ReleaseCredit(ctx, transaction.CompanyID, transaction.Amount)
	})
	if err != nil && !errors.Is(err, ErrInvalidTransition) {
		zap.L().Error("failed to reject transaction", zap.String("transactionID", id.String()), zap.Error(err))
	}
	return err
}
