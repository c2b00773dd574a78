package employeerepo

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

const employeeColumns = `id, user_id, company_id, employee_code, cedula, full_name, email,
               salary, available_balance, total_withdrawn, bank_name, bank_account,
               status, hire_date, created_at, updated_at`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.CompanyID, &e.EmployeeCode, &e.Cedula, &e.FullName, &e.Email,
		&e.Salary, &e.AvailableBalance, &e.TotalWithdrawn, &e.BankName, &e.BankAccount,
		&e.Status, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	query := `
        INSERT INTO employees (user_id, company_id, employee_code, cedula, full_name, email,
                               salary, available_balance, total_withdrawn, bank_name, bank_account,
                               status, hire_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10, $11, $12)
        RETURNING ` + employeeColumns
	row := r.db.QueryRow(ctx, query,
		employee.UserID, employee.CompanyID, employee.EmployeeCode, employee.Cedula,
		employee.FullName, employee.Email, employee.Salary, employee.AvailableBalance,
		employee.BankName, employee.BankAccount, employee.Status, employee.HireDate,
	)
	created, err := scanEmployee(row)
	if err != nil {
		zap.L().Error("can't create employee", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	employee, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get employee", zap.Error(err))
		return nil, err
	}
	return employee, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1`
	employee, err := scanEmployee(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get employee by user id", zap.Error(err))
		return nil, err
	}
	return employee, nil
}

func (r *Repository) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]domain.Employee, error) {
	query := `
        SELECT ` + employeeColumns + `
        FROM employees
        WHERE company_id = $1
        ORDER BY full_name ASC
        LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch employees", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			zap.L().Error("failed to scan employee row", zap.Error(err))
			return nil, err
		}
		employees = append(employees, *employee)
	}
	return employees, nil
}

func (r *Repository) Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	query := `
        UPDATE employees
        SET employee_code = $2, full_name = $3, email = $4, salary = $5,
            bank_name = $6, bank_account = $7, hire_date = $8, updated_at = now()
        WHERE id = $1
        RETURNING ` + employeeColumns
	row := r.db.QueryRow(ctx, query,
		employee.ID, employee.EmployeeCode, employee.FullName, employee.Email,
		employee.Salary, employee.BankName, employee.BankAccount, employee.HireDate,
	)
	updated, err := scanEmployee(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to update employee", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) (bool, error) {
	query := `
        UPDATE employees
        SET status = $2, updated_at = now()
        WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		zap.L().Error("failed to set employee status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DebitBalance applies the withdrawal as a single conditional update: the
// balance and the policy cap are re-checked by the database itself, so two
// concurrent requests can never both pass an eligibility check against a
// stale balance. Returns false when the row no longer admits the amount.
func (r *Repository) DebitBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error) {
	query := `
        UPDATE employees e
        SET available_balance = e.available_balance - $2,
            total_withdrawn = e.total_withdrawn + $2,
            updated_at = now()
        FROM companies c
        WHERE e.id = $1
          AND c.id = e.company_id
          AND e.status = 'active'
          AND c.status = 'active'
          AND e.available_balance >= $2
          AND e.salary * c.availability_percentage / 100 >= $2`
	tag, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		zap.L().Error("failed to debit employee balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CreditBalance restores funds after a rejected payout. The total_withdrawn
// accumulator stays untouched: it tracks lifetime gross draws.
func (r *Repository) CreditBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	query := `
        UPDATE employees
        SET available_balance = available_balance + $2,
            updated_at = now()
        WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id, amount); err != nil {
		zap.L().Error("failed to credit employee balance", zap.Error(err))
		return err
	}
	return nil
}
