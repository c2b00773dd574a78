package profilerepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `
        SELECT id, email, full_name, role, company_id
        FROM profiles
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var profile domain.Profile
	err := row.Scan(&profile.ID, &profile.Email, &profile.FullName, &profile.Role, &profile.CompanyID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}
