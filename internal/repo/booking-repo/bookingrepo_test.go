package bookingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()

	repo := New(mockDB, txManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB
}

var bookingRowColumns = []string{
	"id", "request_id", "requester_id", "provider_id", "skill_id", "start_time", "end_time",
	"duration_minutes", "price_per_hour", "total_amount", "status", "cancel_reason", "cancelled_by",
	"dispute_reason", "created_at", "updated_at",
}

func addBookingRow(rows *pgxmock.Rows, id int64, status string) *pgxmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, int64(7), int64(1), int64(2), int64(42), now.Add(24*time.Hour), now.Add(25*time.Hour),
		60, decimal.NewFromInt(40), decimal.NewFromInt(40), status, "", "",
		"", now, now,
	)
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(time.Hour)

	t.Run("Booking saved", func(t *testing.T) {
		rows := addBookingRow(pgxmock.NewRows(bookingRowColumns), 11, domain.BookingStatusPending)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
			WithArgs(int64(7), int64(1), int64(2), int64(42), start, end,
				60, decimal.NewFromInt(40), decimal.NewFromInt(40), domain.BookingStatusPending).
			WillReturnRows(rows)

		saved, err := repo.Save(context.Background(), &domain.Booking{
			RequestID:       7,
			RequesterID:     1,
			ProviderID:      2,
			SkillID:         42,
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: 60,
			PricePerHour:    decimal.NewFromInt(40),
			TotalAmount:     decimal.NewFromInt(40),
			Status:          domain.BookingStatusPending,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(11), saved.ID)
		assert.Equal(t, domain.BookingStatusPending, saved.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
			WithArgs(int64(0), int64(0), int64(0), int64(0), time.Time{}, time.Time{},
				0, decimal.Decimal{}, decimal.Decimal{}, "").
			WillReturnError(errors.New("database error"))

		saved, err := repo.Save(context.Background(), &domain.Booking{})
		assert.Error(t, err)
		assert.Nil(t, saved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Status written back", func(t *testing.T) {
		rows := addBookingRow(pgxmock.NewRows(bookingRowColumns), 11, domain.BookingStatusConfirmed)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings")).
			WithArgs(domain.BookingStatusConfirmed, "", "", "", int64(11)).
			WillReturnRows(rows)

		updated, err := repo.Update(context.Background(), &domain.Booking{ID: 11, Status: domain.BookingStatusConfirmed})
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings")).
			WithArgs("", "", "", "", int64(11)).
			WillReturnError(errors.New("database error"))

		updated, err := repo.Update(context.Background(), &domain.Booking{ID: 11})
		assert.Error(t, err)
		assert.Nil(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Booking found", func(t *testing.T) {
		rows := addBookingRow(pgxmock.NewRows(bookingRowColumns), 11, domain.BookingStatusInProgress)
		mock.ExpectQuery("SELECT").
			WithArgs(int64(11)).
			WillReturnRows(rows)

		booking, err := repo.FindByID(context.Background(), 11)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), booking.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Booking missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(int64(11)).
			WillReturnError(pgx.ErrNoRows)

		booking, err := repo.FindByID(context.Background(), 11)
		assert.NoError(t, err)
		assert.Nil(t, booking)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByIDAndProvider(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Scoped to provider", func(t *testing.T) {
		rows := addBookingRow(pgxmock.NewRows(bookingRowColumns), 11, domain.BookingStatusPending)
		mock.ExpectQuery("SELECT").
			WithArgs(int64(11), int64(2)).
			WillReturnRows(rows)

		booking, err := repo.FindByIDAndProvider(context.Background(), 11, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), booking.ProviderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Wrong provider", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(int64(11), int64(9)).
			WillReturnError(pgx.ErrNoRows)

		booking, err := repo.FindByIDAndProvider(context.Background(), 11, 9)
		assert.NoError(t, err)
		assert.Nil(t, booking)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_OverlapChecks(t *testing.T) {
	repo, mock := NewMock(t)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(time.Hour)

	t.Run("Provider slot taken", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"exists"}).AddRow(true)
		mock.ExpectQuery(regexp.QuoteMeta("start_time <= $3 AND end_time >= $2")).
			WithArgs(int64(2), start, end).
			WillReturnRows(rows)

		busy, err := repo.ExistsOverlappingForProvider(context.Background(), 2, start, end)
		assert.NoError(t, err)
		assert.True(t, busy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Requester slot free", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"exists"}).AddRow(false)
		mock.ExpectQuery(regexp.QuoteMeta("start_time <= $3 AND end_time >= $2")).
			WithArgs(int64(1), start, end).
			WillReturnRows(rows)

		busy, err := repo.ExistsOverlappingForRequester(context.Background(), 1, start, end)
		assert.NoError(t, err)
		assert.False(t, busy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(2), start, end).
			WillReturnError(errors.New("database error"))

		busy, err := repo.ExistsOverlappingForProvider(context.Background(), 2, start, end)
		assert.Error(t, err)
		assert.False(t, busy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_HasRecentBooking(t *testing.T) {
	repo, mock := NewMock(t)

	since := time.Now().Add(-time.Minute)

	t.Run("Pair inside cooldown window", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"exists"}).AddRow(true)
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(1), int64(2), since).
			WillReturnRows(rows)

		recent, err := repo.HasRecentBooking(context.Background(), 1, 2, since)
		assert.NoError(t, err)
		assert.True(t, recent)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Lists(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Requester bookings", func(t *testing.T) {
		rows := pgxmock.NewRows(bookingRowColumns)
		addBookingRow(rows, 12, domain.BookingStatusConfirmed)
		addBookingRow(rows, 11, domain.BookingStatusCompleted)

		mock.ExpectQuery("SELECT").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		bookings, err := repo.FindByRequester(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Provider bookings filtered by status", func(t *testing.T) {
		rows := pgxmock.NewRows(bookingRowColumns)
		addBookingRow(rows, 12, domain.BookingStatusConfirmed)

		mock.ExpectQuery("SELECT").
			WithArgs(int64(2), domain.BookingStatusConfirmed).
			WillReturnRows(rows)

		bookings, err := repo.FindByProviderAndStatus(context.Background(), 2, domain.BookingStatusConfirmed)
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Skill bookings filtered by status", func(t *testing.T) {
		rows := pgxmock.NewRows(bookingRowColumns)
		addBookingRow(rows, 12, domain.BookingStatusConfirmed)

		mock.ExpectQuery("SELECT").
			WithArgs(int64(42), domain.BookingStatusConfirmed).
			WillReturnRows(rows)

		bookings, err := repo.FindBySkillAndStatus(context.Background(), 42, domain.BookingStatusConfirmed)
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Upcoming for provider", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows(bookingRowColumns)
		addBookingRow(rows, 12, domain.BookingStatusConfirmed)

		mock.ExpectQuery("SELECT").
			WithArgs(int64(2), now).
			WillReturnRows(rows)

		bookings, err := repo.FindUpcomingForProvider(context.Background(), 2, now)
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Past for requester", func(t *testing.T) {
		rows := pgxmock.NewRows(bookingRowColumns)
		addBookingRow(rows, 11, domain.BookingStatusCompleted)

		mock.ExpectQuery("SELECT").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		bookings, err := repo.FindPastForRequester(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Provider schedule in range", func(t *testing.T) {
		start := time.Now()
		end := start.Add(7 * 24 * time.Hour)
		rows := pgxmock.NewRows(bookingRowColumns)
		addBookingRow(rows, 12, domain.BookingStatusConfirmed)

		mock.ExpectQuery("SELECT").
			WithArgs(int64(2), domain.BookingStatusConfirmed, start, end).
			WillReturnRows(rows)

		bookings, err := repo.FindProviderInRange(context.Background(), 2, domain.BookingStatusConfirmed, start, end)
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
