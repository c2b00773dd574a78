package identityservice

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nomipay/nomi/internal/domain"
)

// Repo reads the profile records synced from the identity provider.
type Repo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

var ErrProfileNotFound = errors.New("profile not found")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}
