package companyservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nomipay/nomi/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context, limit, offset int) ([]domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.CompanyStatus) (bool, error)
}

var ErrCompanyNotFound = errors.New("company not found")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Create registers a company in pending state; an admin activates it
// explicitly once onboarding paperwork clears.
func (s *Service) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if company.Status == "" {
		company.Status = domain.CompanyPending
	}
	if company.PaymentFrequency == "" {
		company.PaymentFrequency = domain.FrequencyBiweekly
	}

	created, err := s.repo.Create(ctx, company)
	if err != nil {
		zap.L().Error("can't create company", zap.Error(err))
		return nil, err
	}
	zap.L().Info("company created", zap.String("companyID", created.ID.String()), zap.String("name", created.Name))
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	companies, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		zap.L().Error("failed to list companies", zap.Error(err))
		return nil, err
	}
	return companies, nil
}

func (s *Service) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	updated, err := s.repo.Update(ctx, company)
	if err != nil {
		zap.L().Error("failed to update company", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrCompanyNotFound
	}
	return updated, nil
}

func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.CompanyStatus) error {
	ok, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		zap.L().Error("failed to set company status", zap.Error(err))
		return err
	}
	if !ok {
		return ErrCompanyNotFound
	}
	zap.L().Info("company status changed", zap.String("companyID", id.String()), zap.String("status", string(status)))
	return nil
}
