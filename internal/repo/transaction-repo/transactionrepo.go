package transactionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/pg"
	"go.uber.org/zap"
)

// ErrVersionConflict signals that a concurrent writer bumped the row's
// version between read and write. Callers retry or give up.
var ErrVersionConflict = errors.New("transaction version conflict")

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

const txColumns = `id, booking_id, payer_id, payee_id, amount, platform_fee, net_amount, currency,
	transaction_type, status, escrow, escrow_release_at, transaction_reference, payment_gateway,
	payment_method, failure_reason, retry_count, version, description, created_at, updated_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.BookingID, &t.PayerID, &t.PayeeID, &t.Amount, &t.PlatformFee, &t.NetAmount, &t.Currency,
		&t.Type, &t.Status, &t.Escrow, &t.EscrowReleaseAt, &t.Reference, &t.Gateway,
		&t.Method, &t.FailureReason, &t.RetryCount, &t.Version, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Save(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (booking_id, payer_id, payee_id, amount, platform_fee, net_amount,
            currency, transaction_type, status, escrow, escrow_release_at, transaction_reference,
            payment_gateway, payment_method, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING ` + txColumns
	var saved *domain.Transaction
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, t.BookingID, t.PayerID, t.PayeeID, t.Amount, t.PlatformFee, t.NetAmount,
			t.Currency, t.Type, t.Status, t.Escrow, t.EscrowReleaseAt, t.Reference,
			t.Gateway, t.Method, t.Description)
		var err error
		saved, err = scanTransaction(row)
		if err != nil {
			zap.L().Error("can't save transaction", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// UpdateStatus flips a transaction's status using optimistic concurrency:
// the write only lands when the version still matches the one the caller
// read, otherwise ErrVersionConflict is returned.
func (r *Repository) UpdateStatus(ctx context.Context, id, version int64, status string) error {
	query := `
        UPDATE transactions
        SET status = $1, version = version + 1, updated_at = now()
        WHERE id = $2 AND version = $3
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, status, id, version)
		if err != nil {
			zap.L().Error("can't update transaction status", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrVersionConflict
		}
		return nil
	})
}

func (r *Repository) FindPendingEscrowByBooking(ctx context.Context, bookingID int64) (*domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE booking_id = $1 AND transaction_type = 'ESCROW' AND status = 'PENDING'
    `
	t, err := scanTransaction(r.db.QueryRow(ctx, query, bookingID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pending escrow", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) ExistsPendingEscrowByBooking(ctx context.Context, bookingID int64) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM transactions
            WHERE booking_id = $1 AND transaction_type = 'ESCROW' AND status = 'PENDING'
        )
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, bookingID).Scan(&exists); err != nil {
		zap.L().Error("can't check pending escrow", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// CalculateBalance folds the user's full transaction history into the
// current wallet balance. The ledger is the single source of truth: a
// deposit credits, a withdrawal debits, an escrow debits the payer while
// it is PENDING and keeps debiting once SUCCESS (the money was spent), a
// RELEASE credits the payee its net amount, and a REFUNDED escrow stops
// debiting, which restores the payer exactly.
func (r *Repository) CalculateBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(
            CASE
                WHEN transaction_type = 'DEPOSIT'  AND payee_id = $1 AND status = 'SUCCESS' THEN amount
                WHEN transaction_type = 'WITHDRAW' AND payer_id = $1 AND status = 'SUCCESS' THEN -amount
                WHEN transaction_type = 'ESCROW'   AND payer_id = $1 AND status IN ('PENDING', 'SUCCESS') THEN -amount
                WHEN transaction_type = 'RELEASE'  AND payee_id = $1 AND status = 'SUCCESS' THEN net_amount
                ELSE 0
            END
        ), 0)
        FROM transactions
    `
	var balance decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		zap.L().Error("can't calculate wallet balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *Repository) FindByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE payer_id = $1 OR payee_id = $1
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, userID)
}

func (r *Repository) FindByPayerAndStatus(ctx context.Context, payerID int64, status string) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE payer_id = $1 AND status = $2
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, payerID, status)
}

func (r *Repository) FindByPayeeAndStatus(ctx context.Context, payeeID int64, status string) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE payee_id = $1 AND status = $2
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, payeeID, status)
}

func (r *Repository) FindByBooking(ctx context.Context, bookingID int64) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE booking_id = $1
        ORDER BY created_at ASC
    `
	return r.findMany(ctx, query, bookingID)
}

func (r *Repository) FindByTypeAndStatus(ctx context.Context, txType, status string) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE transaction_type = $1 AND status = $2
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, txType, status)
}

func (r *Repository) FindByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE transaction_reference = $1
    `
	t, err := scanTransaction(r.db.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction by reference", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE id = $1
    `
	t, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) FindBetween(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE created_at BETWEEN $1 AND $2
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, start, end)
}

func (r *Repository) FindAboveAmount(ctx context.Context, amount decimal.Decimal) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE amount > $1
        ORDER BY amount DESC
    `
	return r.findMany(ctx, query, amount)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}
