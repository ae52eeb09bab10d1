package requestrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const requestColumns = `id, sender_id, receiver_id, skill_id, message, status, expires_at, created_at, updated_at`

func scanRequest(row pgx.Row) (*domain.SkillRequest, error) {
	var r domain.SkillRequest
	err := row.Scan(&r.ID, &r.SenderID, &r.ReceiverID, &r.SkillID, &r.Message, &r.Status, &r.ExpiresAt, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Repository) Save(ctx context.Context, req *domain.SkillRequest) (*domain.SkillRequest, error) {
	query := `
        INSERT INTO skill_requests (sender_id, receiver_id, skill_id, message, status, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + requestColumns
	row := r.db.QueryRow(ctx, query, req.SenderID, req.ReceiverID, req.SkillID, req.Message, req.Status, req.ExpiresAt)
	saved, err := scanRequest(row)
	if err != nil {
		zap.L().Error("can't save skill request", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.SkillRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM skill_requests
        WHERE id = $1
    `
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find skill request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// FindByIDForUpdate takes an exclusive row lock for the rest of the
// enclosing transaction so only one booking can be created against an
// accepted request.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.SkillRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM skill_requests
        WHERE id = $1
        FOR UPDATE
    `
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock skill request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// ExistsActive reports whether a PENDING or ACCEPTED request already
// exists for the same (sender, receiver, skill) triple.
func (r *Repository) ExistsActive(ctx context.Context, senderID, receiverID, skillID int64) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM skill_requests
            WHERE sender_id = $1 AND receiver_id = $2 AND skill_id = $3
              AND status IN ('PENDING', 'ACCEPTED')
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, senderID, receiverID, skillID).Scan(&exists); err != nil {
		zap.L().Error("can't check active skill request", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
        UPDATE skill_requests
        SET status = $1, updated_at = now()
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, status, id); err != nil {
			zap.L().Error("can't update skill request status", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) FindBySender(ctx context.Context, senderID int64) ([]domain.SkillRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM skill_requests
        WHERE sender_id = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, senderID)
}

func (r *Repository) FindByReceiver(ctx context.Context, receiverID int64) ([]domain.SkillRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM skill_requests
        WHERE receiver_id = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, receiverID)
}

// ExpirePending finalizes PENDING requests whose deadline has passed. The
// status predicate makes the sweep idempotent and safe against a
// concurrent accept/reject.
func (r *Repository) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE skill_requests
        SET status = 'EXPIRED', updated_at = now()
        WHERE status = 'PENDING' AND expires_at < $1
    `
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("can't expire pending skill requests", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...interface{}) ([]domain.SkillRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get skill requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.SkillRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan skill request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}
