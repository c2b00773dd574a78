package companyservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nomipay/nomi/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name          string
		input         *domain.Company
		prepareMock   func(repo *MockRepo)
		expectedError error
		check         func(t *testing.T, company *domain.Company)
	}{
		{
			name: "Defaults applied on create",
			input: &domain.Company{
				Name:                   "Grupo Martinez",
				RNC:                    "131246791",
				CreditLimit:            decimal.NewFromInt(500000),
				AvailabilityPercentage: 80,
				CommissionFee:          decimal.NewFromInt(75),
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, company *domain.Company) (*domain.Company, error) {
						created := *company
						created.ID = uuid.New()
						return &created, nil
					})
			},
			check: func(t *testing.T, company *domain.Company) {
				assert.Equal(t, domain.CompanyPending, company.Status)
				assert.Equal(t, domain.FrequencyBiweekly, company.PaymentFrequency)
			},
		},
		{
			name: "Explicit status preserved",
			input: &domain.Company{
				Name:             "Activa SRL",
				Status:           domain.CompanyActive,
				PaymentFrequency: domain.FrequencyMonthly,
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, company *domain.Company) (*domain.Company, error) {
						return company, nil
					})
			},
			check: func(t *testing.T, company *domain.Company) {
				assert.Equal(t, domain.CompanyActive, company.Status)
				assert.Equal(t, domain.FrequencyMonthly, company.PaymentFrequency)
			},
		},
		{
			name:  "Repository error",
			input: &domain.Company{Name: "Fallida"},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			company, err := service.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				tt.check(t, company)
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	companyID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().GetByID(gomock.Any(), companyID).Return(&domain.Company{ID: companyID}, nil)

		company, err := service.GetByID(context.Background(), companyID)
		assert.NoError(t, err)
		assert.Equal(t, companyID, company.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().GetByID(gomock.Any(), companyID).Return(nil, nil)

		_, err := service.GetByID(context.Background(), companyID)
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestSetStatus(t *testing.T) {
	companyID := uuid.New()

	t.Run("Suspend company", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().SetStatus(gomock.Any(), companyID, domain.CompanySuspended).Return(true, nil)

		assert.NoError(t, service.SetStatus(context.Background(), companyID, domain.CompanySuspended))
	})

	t.Run("Unknown company", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().SetStatus(gomock.Any(), companyID, domain.CompanyActive).Return(false, nil)

		err := service.SetStatus(context.Background(), companyID, domain.CompanyActive)
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Unknown company", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := service.Update(context.Background(), &domain.Company{ID: uuid.New()})
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}
