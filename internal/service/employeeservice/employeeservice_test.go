package employeeservice

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

func NewMock(t *testing.T) (*Service, *MockEmployeeRepo, *MockCompanyRepo) {
	ctrl := gomock.NewController(t)
	employeeRepo := NewMockEmployeeRepo(ctrl)
	companyRepo := NewMockCompanyRepo(ctrl)
	service := New(employeeRepo, companyRepo)
	defer ctrl.Finish()
	return service, employeeRepo, companyRepo
}

func TestCreate(t *testing.T) {
	companyID := uuid.New()

	tests := []struct {
		name          string
		input         *domain.Employee
		prepareMock   func(employeeRepo *MockEmployeeRepo, companyRepo *MockCompanyRepo)
		expectedError error
		check         func(t *testing.T, employee *domain.Employee)
	}{
		{
			name: "Balance seeded from salary and availability",
			input: &domain.Employee{
				CompanyID: companyID,
				FullName:  "Maria Polanco",
				Cedula:    "00112345678",
				Salary:    decimal.NewFromInt(30000),
			},
			prepareMock: func(employeeRepo *MockEmployeeRepo, companyRepo *MockCompanyRepo) {
				companyRepo.EXPECT().GetByID(gomock.Any(), companyID).Return(&domain.Company{
					ID:                     companyID,
					AvailabilityPercentage: 80,
				}, nil)
				employeeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
						created := *employee
						created.ID = uuid.New()
						return &created, nil
					})
			},
			check: func(t *testing.T, employee *domain.Employee) {
				assert.True(t, decimal.NewFromInt(24000).Equal(employee.AvailableBalance))
				assert.Equal(t, domain.EmployeeActive, employee.Status)
			},
		},
		{
			name: "Unknown company",
			input: &domain.Employee{
				CompanyID: companyID,
				Salary:    decimal.NewFromInt(30000),
			},
			prepareMock: func(employeeRepo *MockEmployeeRepo, companyRepo *MockCompanyRepo) {
				companyRepo.EXPECT().GetByID(gomock.Any(), companyID).Return(nil, nil)
			},
			expectedError: ErrCompanyNotFound,
		},
		{
			name: "Repository error",
			input: &domain.Employee{
				CompanyID: companyID,
				Salary:    decimal.NewFromInt(30000),
			},
			prepareMock: func(employeeRepo *MockEmployeeRepo, companyRepo *MockCompanyRepo) {
				companyRepo.EXPECT().GetByID(gomock.Any(), companyID).Return(&domain.Company{
					ID:                     companyID,
					AvailabilityPercentage: 80,
				}, nil)
				employeeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, employeeRepo, companyRepo := NewMock(t)
			tt.prepareMock(employeeRepo, companyRepo)

			employee, err := service.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				tt.check(t, employee)
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	employeeID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		service, employeeRepo, _ := NewMock(t)
		employeeRepo.EXPECT().GetByID(gomock.Any(), employeeID).Return(&domain.Employee{ID: employeeID}, nil)

		employee, err := service.GetByID(context.Background(), employeeID)
		assert.NoError(t, err)
		assert.Equal(t, employeeID, employee.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		service, employeeRepo, _ := NewMock(t)
		employeeRepo.EXPECT().GetByID(gomock.Any(), employeeID).Return(nil, nil)

		_, err := service.GetByID(context.Background(), employeeID)
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Salary change leaves balance alone", func(t *testing.T) {
		service, employeeRepo, _ := NewMock(t)
		input := &domain.Employee{
			ID:               uuid.New(),
			Salary:           decimal.NewFromInt(45000),
			AvailableBalance: decimal.NewFromInt(24000),
		}
		employeeRepo.EXPECT().Update(gomock.Any(), input).Return(input, nil)

		updated, err := service.Update(context.Background(), input)
		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(24000).Equal(updated.AvailableBalance))
	})

	t.Run("Unknown employee", func(t *testing.T) {
		service, employeeRepo, _ := NewMock(t)
		employeeRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := service.Update(context.Background(), &domain.Employee{ID: uuid.New()})
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestSetStatus(t *testing.T) {
	employeeID := uuid.New()

	t.Run("Suspend employee", func(t *testing.T) {
		service, employeeRepo, _ := NewMock(t)
		employeeRepo.EXPECT().SetStatus(gomock.Any(), employeeID, domain.EmployeeSuspended).Return(true, nil)

		assert.NoError(t, service.SetStatus(context.Background(), employeeID, domain.EmployeeSuspended))
	})

	t.Run("Unknown employee", func(t *testing.T) {
		service, employeeRepo, _ := NewMock(t)
		employeeRepo.EXPECT().SetStatus(gomock.Any(), employeeID, domain.EmployeeActive).Return(false, nil)

		err := service.SetStatus(context.Background(), employeeID, domain.EmployeeActive)
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}
