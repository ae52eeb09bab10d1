package requestrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
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

var requestRowColumns = []string{
	"id", "sender_id", "receiver_id", "skill_id", "message", "status", "expires_at", "created_at", "updated_at",
}

func addRequestRow(rows *pgxmock.Rows, id int64, status string) *pgxmock.Rows {
	now := time.Now()
	return rows.AddRow(id, int64(1), int64(2), int64(42), "hi", status, now.Add(48*time.Hour), now, now)
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	expiresAt := time.Now().Add(48 * time.Hour)

	t.Run("Request saved", func(t *testing.T) {
		rows := addRequestRow(pgxmock.NewRows(requestRowColumns), 7, domain.RequestStatusPending)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO skill_requests")).
			WithArgs(int64(1), int64(2), int64(42), "hi", domain.RequestStatusPending, expiresAt).
			WillReturnRows(rows)

		saved, err := repo.Save(context.Background(), &domain.SkillRequest{
			SenderID:   1,
			ReceiverID: 2,
			SkillID:    42,
			Message:    "hi",
			Status:     domain.RequestStatusPending,
			ExpiresAt:  expiresAt,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), saved.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO skill_requests")).
			WithArgs(int64(0), int64(0), int64(0), "", "", time.Time{}).
			WillReturnError(errors.New("database error"))

		saved, err := repo.Save(context.Background(), &domain.SkillRequest{})
		assert.Error(t, err)
		assert.Nil(t, saved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Request found", func(t *testing.T) {
		rows := addRequestRow(pgxmock.NewRows(requestRowColumns), 7, domain.RequestStatusAccepted)
		mock.ExpectQuery("SELECT").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		req, err := repo.FindByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusAccepted, req.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Request missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(int64(7)).
			WillReturnError(pgx.ErrNoRows)

		req, err := repo.FindByID(context.Background(), 7)
		assert.NoError(t, err)
		assert.Nil(t, req)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Row locked and returned", func(t *testing.T) {
		rows := addRequestRow(pgxmock.NewRows(requestRowColumns), 7, domain.RequestStatusAccepted)
		mock.ExpectQuery("FOR UPDATE").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		req, err := repo.FindByIDForUpdate(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), req.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ExistsActive(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name   string
		exists bool
	}{
		{name: "Active request present", exists: true},
		{name: "No active request", exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := pgxmock.NewRows([]string{"exists"}).AddRow(tt.exists)
			mock.ExpectQuery("SELECT EXISTS").
				WithArgs(int64(1), int64(2), int64(42)).
				WillReturnRows(rows)

			exists, err := repo.ExistsActive(context.Background(), 1, 2, 42)
			assert.NoError(t, err)
			assert.Equal(t, tt.exists, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Status updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE skill_requests")).
			WithArgs(domain.RequestStatusBooked, int64(7)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateStatus(context.Background(), 7, domain.RequestStatusBooked)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE skill_requests")).
			WithArgs(domain.RequestStatusBooked, int64(7)).
			WillReturnError(errors.New("database error"))

		err := repo.UpdateStatus(context.Background(), 7, domain.RequestStatusBooked)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ExpirePending(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	t.Run("Stale requests expired", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE skill_requests")).
			WithArgs(now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 3))

		count, err := repo.ExpirePending(context.Background(), now)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing to expire", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE skill_requests")).
			WithArgs(now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		count, err := repo.ExpirePending(context.Background(), now)
		assert.NoError(t, err)
		assert.Zero(t, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Lists(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Sender history", func(t *testing.T) {
		rows := pgxmock.NewRows(requestRowColumns)
		addRequestRow(rows, 8, domain.RequestStatusAccepted)
		addRequestRow(rows, 7, domain.RequestStatusPending)

		mock.ExpectQuery("SELECT").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		requests, err := repo.FindBySender(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, requests, 2)
		assert.Equal(t, int64(8), requests[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Receiver history empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(int64(2)).
			WillReturnRows(pgxmock.NewRows(requestRowColumns))

		requests, err := repo.FindByReceiver(context.Background(), 2)
		assert.NoError(t, err)
		assert.Empty(t, requests)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
