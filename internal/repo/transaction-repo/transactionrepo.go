package transactionrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/nomipay/nomi/internal/domain"
	"github.com/nomipay/nomi/internal/pg"
)

// ErrDuplicateIdempotencyKey marks a replayed withdrawal request; the caller
// resolves it by returning the transaction recorded for the original attempt.
var ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const transactionColumns = `id, employee_id, company_id, amount, commission, net_amount, status,
               idempotency_key, bank_name, bank_account, notes, processed_at, created_at, updated_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.CompanyID, &t.Amount, &t.Commission, &t.NetAmount, &t.Status,
		&t.IdempotencyKey, &t.BankName, &t.BankAccount, &t.Notes, &t.ProcessedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (employee_id, company_id, amount, commission, net_amount,
                                  status, idempotency_key, bank_name, bank_account, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + transactionColumns
	row := r.db.QueryRow(ctx, query,
		transaction.EmployeeID, transaction.CompanyID, transaction.Amount,
		transaction.Commission, transaction.NetAmount, transaction.Status,
		transaction.IdempotencyKey, transaction.BankName, transaction.BankAccount,
		transaction.Notes,
	)
	created, err := scanTransaction(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrDuplicateIdempotencyKey
		}
		zap.L().Error("can't create transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	transaction, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE idempotency_key = $1`
	transaction, err := scanTransaction(r.db.QueryRow(ctx, query, key))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get transaction by idempotency key", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE employee_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`
	return r.list(ctx, query, employeeID, limit, offset)
}

func (r *Repository) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE company_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`
	return r.list(ctx, query, companyID, limit, offset)
}

func (r *Repository) list(ctx context.Context, query string, scopeID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, scopeID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, nil
}

func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE status = 'pending'
        ORDER BY created_at ASC
        LIMIT $1`
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get transactions for processing", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row for processing", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, nil
}

// TransitionStatus moves a transaction along the settlement state machine.
// The current status is part of the predicate, so a concurrent transition
// loses cleanly with zero affected rows instead of overwriting.
func (r *Repository) TransitionStatus(ctx context.Context, id uuid.UUID, from []domain.TransactionStatus, to domain.TransactionStatus, note string) (bool, error) {
	fromStatuses := make([]string, len(from))
	for i, s := range from {
		fromStatuses[i] = string(s)
	}

	query := `
        UPDATE transactions
        SET status = $3,
            notes = COALESCE(NULLIF($4, ''), notes),
            processed_at = CASE WHEN $3 IN ('completed', 'rejected') THEN now() ELSE processed_at END,
            updated_at = now()
        WHERE id = $1 AND status = ANY($2)`
	tag, err := r.db.Exec(ctx, query, id, fromStatuses, to, note)
	if err != nil {
		zap.L().Error("failed to transition transaction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
