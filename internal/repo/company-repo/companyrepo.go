package companyrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nomipay/nomi/internal/domain"
	"github.com/nomipay/nomi/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const companyColumns = `id, name, rnc, email, phone, address, credit_limit, credit_used,
               withdrawal_limit_per_employee, availability_percentage, commission_fee,
               payment_frequency, status, created_at, updated_at`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.RNC, &c.Email, &c.Phone, &c.Address, &c.CreditLimit, &c.CreditUsed,
		&c.WithdrawalLimitPerEmployee, &c.AvailabilityPercentage, &c.CommissionFee,
		&c.PaymentFrequency, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	query := `
        INSERT INTO companies (name, rnc, email, phone, address, credit_limit,
                               withdrawal_limit_per_employee, availability_percentage,
                               commission_fee, payment_frequency, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + companyColumns
	row := r.db.QueryRow(ctx, query,
		company.Name, company.RNC, company.Email, company.Phone, company.Address,
		company.CreditLimit, company.WithdrawalLimitPerEmployee, company.AvailabilityPercentage,
		company.CommissionFee, company.PaymentFrequency, company.Status,
	)
	created, err := scanCompany(row)
	if err != nil {
		zap.L().Error("can't create company", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	company, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get company", zap.Error(err))
		return nil, err
	}
	return company, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	query := `
        SELECT ` + companyColumns + `
        FROM companies
        ORDER BY name ASC
        LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch companies", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			zap.L().Error("failed to scan company row", zap.Error(err))
			return nil, err
		}
		companies = append(companies, *company)
	}
	return companies, nil
}

func (r *Repository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	query := `
        UPDATE companies
        SET name = $2, rnc = $3, email = $4, phone = $5, address = $6,
            credit_limit = $7, withdrawal_limit_per_employee = $8,
            availability_percentage = $9, commission_fee = $10, payment_frequency = $11,
            updated_at = now()
        WHERE id = $1
        RETURNING ` + companyColumns
	row := r.db.QueryRow(ctx, query,
		company.ID, company.Name, company.RNC, company.Email, company.Phone, company.Address,
		company.CreditLimit, company.WithdrawalLimitPerEmployee, company.AvailabilityPercentage,
		company.CommissionFee, company.PaymentFrequency,
	)
	updated, err := scanCompany(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to update company", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status domain.CompanyStatus) (bool, error) {
	query := `
        UPDATE companies
        SET status = $2, updated_at = now()
        WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		zap.L().Error("failed to set company status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ReserveCredit raises credit_used only while it stays within the credit
// limit; a zero affected-row count means the platform exposure is exhausted.
func (r *Repository) ReserveCredit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error) {
	query := `
        UPDATE companies
        SET credit_used = credit_used + $2, updated_at = now()
        WHERE id = $1 AND credit_used + $2 <= credit_limit`
	tag, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		zap.L().Error("failed to reserve company credit", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ReleaseCredit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	query := `
        UPDATE companies
        SET credit_used = GREATEST(credit_used - $2, 0), updated_at = now()
        WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id, amount); err != nil {
		zap.L().Error("failed to release company credit", zap.Error(err))
		return err
	}
	return nil
}
