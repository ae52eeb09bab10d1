package skillrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByID(ctx context.Context, id int64) (*domain.Skill, error) {
	query := `
        SELECT id, owner_id, title, hourly_rate, active, created_at
        FROM skills
        WHERE id = $1
    `
	var skill domain.Skill
	err := repo.db.QueryRow(ctx, query, id).Scan(&skill.ID, &skill.OwnerID, &skill.Title, &skill.HourlyRate, &skill.Active, &skill.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find skill", zap.Error(err))
		return nil, err
	}
	return &skill, nil
}
