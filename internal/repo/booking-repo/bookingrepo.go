package bookingrepo

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

const bookingColumns = `id, request_id, requester_id, provider_id, skill_id, start_time, end_time,
	duration_minutes, price_per_hour, total_amount, status, cancel_reason, cancelled_by,
	dispute_reason, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.RequestID, &b.RequesterID, &b.ProviderID, &b.SkillID, &b.StartTime, &b.EndTime,
		&b.DurationMinutes, &b.PricePerHour, &b.TotalAmount, &b.Status, &b.CancelReason, &b.CancelledBy,
		&b.DisputeReason, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Save(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query := `
        INSERT INTO bookings (request_id, requester_id, provider_id, skill_id, start_time, end_time,
            duration_minutes, price_per_hour, total_amount, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + bookingColumns
	row := r.db.QueryRow(ctx, query, b.RequestID, b.RequesterID, b.ProviderID, b.SkillID, b.StartTime, b.EndTime,
		b.DurationMinutes, b.PricePerHour, b.TotalAmount, b.Status)
	saved, err := scanBooking(row)
	if err != nil {
		zap.L().Error("can't save booking", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query := `
        UPDATE bookings
        SET status = $1, cancel_reason = $2, cancelled_by = $3, dispute_reason = $4, updated_at = now()
        WHERE id = $5
        RETURNING ` + bookingColumns
	var updated *domain.Booking
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, b.Status, b.CancelReason, b.CancelledBy, b.DisputeReason, b.ID)
		var err error
		updated, err = scanBooking(row)
		if err != nil {
			zap.L().Error("can't update booking", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindByIDAndProvider(ctx context.Context, id, providerID int64) (*domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE id = $1 AND provider_id = $2
    `
	return r.findOne(ctx, query, id, providerID)
}

func (r *Repository) FindByIDAndRequester(ctx context.Context, id, requesterID int64) (*domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE id = $1 AND requester_id = $2
    `
	return r.findOne(ctx, query, id, requesterID)
}

// ExistsOverlappingForProvider reports whether the provider already has a
// live booking whose slot touches the given one. Bounds are inclusive, so
// back-to-back slots conflict. CANCELLED and COMPLETED bookings never
// block a slot.
func (r *Repository) ExistsOverlappingForProvider(ctx context.Context, providerID int64, start, end time.Time) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM bookings
            WHERE provider_id = $1
              AND status NOT IN ('CANCELLED', 'COMPLETED')
              AND start_time <= $3 AND end_time >= $2
        )
    `
	return r.exists(ctx, query, providerID, start, end)
}

func (r *Repository) ExistsOverlappingForRequester(ctx context.Context, requesterID int64, start, end time.Time) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM bookings
            WHERE requester_id = $1
              AND status NOT IN ('CANCELLED', 'COMPLETED')
              AND start_time <= $3 AND end_time >= $2
        )
    `
	return r.exists(ctx, query, requesterID, start, end)
}

// HasRecentBooking reports whether the pair already created a booking
// after the given cutoff, regardless of its current status.
func (r *Repository) HasRecentBooking(ctx context.Context, requesterID, providerID int64, since time.Time) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM bookings
            WHERE requester_id = $1 AND provider_id = $2 AND created_at >= $3
        )
    `
	return r.exists(ctx, query, requesterID, providerID, since)
}

func (r *Repository) FindByRequester(ctx context.Context, requesterID int64) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE requester_id = $1
        ORDER BY start_time DESC
    `
	return r.findMany(ctx, query, requesterID)
}

func (r *Repository) FindByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE provider_id = $1
        ORDER BY start_time DESC
    `
	return r.findMany(ctx, query, providerID)
}

func (r *Repository) FindByRequesterAndStatus(ctx context.Context, requesterID int64, status string) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE requester_id = $1 AND status = $2
        ORDER BY start_time DESC
    `
	return r.findMany(ctx, query, requesterID, status)
}

func (r *Repository) FindByProviderAndStatus(ctx context.Context, providerID int64, status string) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE provider_id = $1 AND status = $2
        ORDER BY start_time DESC
    `
	return r.findMany(ctx, query, providerID, status)
}

func (r *Repository) FindBySkill(ctx context.Context, skillID int64) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE skill_id = $1
        ORDER BY start_time DESC
    `
	return r.findMany(ctx, query, skillID)
}

func (r *Repository) FindBySkillAndStatus(ctx context.Context, skillID int64, status string) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE skill_id = $1 AND status = $2
        ORDER BY start_time DESC
    `
	return r.findMany(ctx, query, skillID, status)
}

func (r *Repository) FindByStatus(ctx context.Context, status string) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE status = $1
        ORDER BY start_time DESC
    `
	return r.findMany(ctx, query, status)
}

func (r *Repository) FindUpcomingForProvider(ctx context.Context, providerID int64, now time.Time) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE provider_id = $1
          AND ((status = 'CONFIRMED' AND start_time > $2)
            OR (status = 'IN_PROGRESS' AND end_time > $2))
        ORDER BY start_time ASC
    `
	return r.findMany(ctx, query, providerID, now)
}

func (r *Repository) FindUpcomingForRequester(ctx context.Context, requesterID int64, now time.Time) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE requester_id = $1
          AND (status = 'PENDING'
            OR (status = 'CONFIRMED' AND start_time > $2)
            OR (status = 'IN_PROGRESS' AND end_time > $2))
        ORDER BY start_time ASC
    `
	return r.findMany(ctx, query, requesterID, now)
}

func (r *Repository) FindPastForProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE provider_id = $1 AND status IN ('COMPLETED', 'CANCELLED')
        ORDER BY updated_at DESC
    `
	return r.findMany(ctx, query, providerID)
}

func (r *Repository) FindPastForRequester(ctx context.Context, requesterID int64) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE requester_id = $1 AND status IN ('COMPLETED', 'CANCELLED')
        ORDER BY updated_at DESC
    `
	return r.findMany(ctx, query, requesterID)
}

func (r *Repository) FindProviderInRange(ctx context.Context, providerID int64, status string, start, end time.Time) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings
        WHERE provider_id = $1 AND status = $2 AND start_time BETWEEN $3 AND $4
        ORDER BY start_time ASC
    `
	return r.findMany(ctx, query, providerID, status, start, end)
}

func (r *Repository) findOne(ctx context.Context, query string, args ...interface{}) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find booking", zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (r *Repository) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		zap.L().Error("can't run booking exists check", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			zap.L().Error("can't scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}
