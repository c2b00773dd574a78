package identityservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nomipay/nomi/internal/domain"
)

func TestGetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepo(ctrl)
		service := New(repo)

		repo.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.Profile{
			ID:   userID,
			Role: domain.RoleEmployee,
		}, nil)

		profile, err := service.GetProfile(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleEmployee, profile.Role)
	})

	t.Run("Not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepo(ctrl)
		service := New(repo)

		repo.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		_, err := service.GetProfile(context.Background(), userID)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("Repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepo(ctrl)
		service := New(repo)

		repo.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("db error"))

		_, err := service.GetProfile(context.Background(), userID)
		assert.Error(t, err)
	})
}
