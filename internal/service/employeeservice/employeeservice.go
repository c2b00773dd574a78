package employeeservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nomipay/nomi/internal/domain"
)

type EmployeeRepo interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Employee, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) (bool, error)
}

type CompanyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCompanyNotFound  = errors.New("company not found")
)

var hundred = decimal.NewFromInt(100)

type Service struct {
	employeeRepo EmployeeRepo
	companyRepo  CompanyRepo
}

func New(employeeRepo EmployeeRepo, companyRepo CompanyRepo) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
	}
}

// Create onboards an employee with the full eligible amount already
// available: salary times the company availability percentage.
func (s *Service) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	company, err := s.companyRepo.GetByID(ctx, employee.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	employee.AvailableBalance = employee.Salary.
		Mul(decimal.NewFromInt(int64(company.AvailabilityPercentage))).
		Div(hundred)
	if employee.Status == "" {
		employee.Status = domain.EmployeeActive
	}

	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		zap.L().Error("can't create employee", zap.Error(err))
		return nil, err
	}
	zap.L().Info("employee created",
		zap.String("employeeID", created.ID.String()),
		zap.String("companyID", created.CompanyID.String()))
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *Service) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		zap.L().Error("failed to list employees", zap.Error(err))
		return nil, err
	}
	return employees, nil
}

// Update changes contact and payroll fields. A raised salary does not bump
// the available balance retroactively and a lowered one does not claw it
// back; the policy cap bounds future withdrawals either way.
func (s *Service) Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	updated, err := s.employeeRepo.Update(ctx, employee)
	if err != nil {
		zap.L().Error("failed to update employee", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrEmployeeNotFound
	}
	return updated, nil
}

func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.EmployeeStatus) error {
	ok, err := s.employeeRepo.SetStatus(ctx, id, status)
	if err != nil {
		zap.L().Error("failed to set employee status", zap.Error(err))
		return err
	}
	if !ok {
		return ErrEmployeeNotFound
	}
	zap.L().Info("employee status changed", zap.String("employeeID", id.String()), zap.String("status", string(status)))
	return nil
}
