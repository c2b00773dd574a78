package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nomipay/nomi/internal/pg"
	"github.com/nomipay/nomi/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)

	services := New(repos, txManager, decimal.NewFromInt(500))

	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.TransactionService)
	assert.NotNil(t, services.CompanyService)
	assert.NotNil(t, services.EmployeeService)
	assert.NotNil(t, services.IdentityService)
	assert.NotNil(t, services.PayoutService)
}
