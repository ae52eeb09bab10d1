package walletservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/notifier"
	"github.com/skillswap/backend/internal/pg"
	transactionrepo "github.com/skillswap/backend/internal/repo/transaction-repo"
	"github.com/skillswap/backend/pkg/validate"
)

type TransactionRepo interface {
	Save(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id, version int64, status string) error
	FindPendingEscrowByBooking(ctx context.Context, bookingID int64) (*domain.Transaction, error)
	ExistsPendingEscrowByBooking(ctx context.Context, bookingID int64) (bool, error)
	CalculateBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)
	FindByPayerAndStatus(ctx context.Context, payerID int64, status string) ([]domain.Transaction, error)
	FindByPayeeAndStatus(ctx context.Context, payeeID int64, status string) ([]domain.Transaction, error)
	FindByBooking(ctx context.Context, bookingID int64) ([]domain.Transaction, error)
	FindByTypeAndStatus(ctx context.Context, txType, status string) ([]domain.Transaction, error)
	FindByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	FindByID(ctx context.Context, id int64) (*domain.Transaction, error)
	FindBetween(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)
	FindAboveAmount(ctx context.Context, amount decimal.Decimal) ([]domain.Transaction, error)
}

type BookingRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type Publisher interface {
	PublishTransaction(eventType string, t *domain.Transaction)
}

var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidDateRange    = errors.New("start date must be before end date")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrEscrowNotFound      = errors.New("no pending escrow found for booking")
	ErrAlreadyProcessed    = errors.New("transaction already processed")
	ErrInvalidEscrowState  = errors.New("booking is not in a state that allows this escrow operation")
	ErrTransactionFailed   = errors.New("transaction failed due to concurrent updates")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBookingNotFound     = errors.New("booking not found")
)

const (
	maxRetries   = 3
	retryBackoff = 50 * time.Millisecond
)

type Service struct {
	txRepo      TransactionRepo
	bookingRepo BookingRepo
	txManager   pg.TXManager
	publisher   Publisher

	// sleep is swapped for a no-op in tests to keep the retry path fast.
	sleep func(time.Duration)
}

func New(txRepo TransactionRepo, bookingRepo BookingRepo, txManager pg.TXManager, publisher Publisher) *Service {
	return &Service{
		txRepo:      txRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		publisher:   publisher,
		sleep:       time.Sleep,
	}
}

// withRetry reruns op after an optimistic-concurrency conflict, up to
// maxRetries attempts with a short fixed backoff. Business-rule errors
// are never retried.
func (s *Service) withRetry(op func() error) error {
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := op()
		if !errors.Is(err, transactionrepo.ErrVersionConflict) {
			return err
		}
		zap.L().Warn("optimistic conflict on transaction row", zap.Int("attempt", attempt))
		if attempt < maxRetries {
			s.sleep(retryBackoff)
		}
	}
	return ErrTransactionFailed
}

func (s *Service) Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	if !validate.IsPositiveAmount(amount) {
		return nil, ErrInvalidAmount
	}

	var saved *domain.Transaction
	err := s.withRetry(func() error {
		tx := &domain.Transaction{
			PayerID:   userID,
			PayeeID:   userID,
			Amount:    amount,
			NetAmount: amount,
			Currency:  domain.CurrencyINR,
			Type:      domain.TransactionTypeDeposit,
			Status:    domain.TransactionStatusSuccess,
			Gateway:   domain.GatewayInternal,
			Method:    domain.MethodWallet,
			Reference: uuid.NewString(),
		}
		var err error
		saved, err = s.txRepo.Save(ctx, tx)
		return err
	})
	if err != nil {
		zap.L().Error("deposit failed", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}

	s.publisher.PublishTransaction(notifier.DepositCompleted, saved)
	return saved, nil
}

func (s *Service) Withdraw(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	if !validate.IsPositiveAmount(amount) {
		return nil, ErrInvalidAmount
	}

	var saved *domain.Transaction
	err := s.withRetry(func() error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			balance, err := s.txRepo.CalculateBalance(ctx, userID)
			if err != nil {
				return err
			}
			if balance.LessThan(amount) {
				return ErrInsufficientBalance
			}
			tx := &domain.Transaction{
				PayerID:   userID,
				PayeeID:   userID,
				Amount:    amount,
				NetAmount: decimal.Zero,
				Currency:  domain.CurrencyINR,
				Type:      domain.TransactionTypeWithdraw,
				Status:    domain.TransactionStatusSuccess,
				Gateway:   domain.GatewayInternal,
				Method:    domain.MethodWallet,
				Reference: uuid.NewString(),
			}
			saved, err = s.txRepo.Save(ctx, tx)
			return err
		})
	})
	if err != nil {
		zap.L().Error("withdraw failed", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}

	s.publisher.PublishTransaction(notifier.WithdrawalCompleted, saved)
	return saved, nil
}

// CreateEscrow locks the booking's total against the payer's wallet. Only
// a CONFIRMED booking may carry an escrow, at most one PENDING escrow may
// exist per booking, and the payer's derived balance must cover the full
// amount (no partial locks).
func (s *Service) CreateEscrow(ctx context.Context, payerID int64, booking *domain.Booking, amount decimal.Decimal) (*domain.Transaction, error) {
	if booking.Status != domain.BookingStatusConfirmed {
		return nil, ErrInvalidEscrowState
	}

	var saved *domain.Transaction
	err := s.withRetry(func() error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			exists, err := s.txRepo.ExistsPendingEscrowByBooking(ctx, booking.ID)
			if err != nil {
				return err
			}
			if exists {
				return ErrAlreadyProcessed
			}

			balance, err := s.txRepo.CalculateBalance(ctx, payerID)
			if err != nil {
				return err
			}
			if balance.LessThan(amount) {
				return ErrInsufficientBalance
			}

			bookingID := booking.ID
			tx := &domain.Transaction{
				BookingID: &bookingID,
				PayerID:   payerID,
				PayeeID:   booking.ProviderID,
				Amount:    amount,
				NetAmount: decimal.Zero,
				Currency:  domain.CurrencyINR,
				Type:      domain.TransactionTypeEscrow,
				Status:    domain.TransactionStatusPending,
				Escrow:    true,
				Gateway:   domain.GatewayInternal,
				Method:    domain.MethodWallet,
				Reference: uuid.NewString(),
			}
			saved, err = s.txRepo.Save(ctx, tx)
			return err
		})
	})
	if err != nil {
		zap.L().Error("escrow creation failed", zap.Int64("bookingID", booking.ID), zap.Error(err))
		return nil, err
	}

	s.publisher.PublishTransaction(notifier.EscrowCreated, saved)
	return saved, nil
}

// ReleaseEscrow converts a completed booking's escrow lock into a credit
// for the provider: the ESCROW row flips to SUCCESS and a separate
// RELEASE row carries the payee's net amount, keeping the lock-then-pay
// history intact.
func (s *Service) ReleaseEscrow(ctx context.Context, bookingID int64) (*domain.Transaction, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != domain.BookingStatusCompleted {
		return nil, ErrInvalidEscrowState
	}

	var release *domain.Transaction
	err = s.withRetry(func() error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			escrow, err := s.txRepo.FindPendingEscrowByBooking(ctx, bookingID)
			if err != nil {
				return err
			}
			if escrow == nil {
				return ErrEscrowNotFound
			}

			if err := s.txRepo.UpdateStatus(ctx, escrow.ID, escrow.Version, domain.TransactionStatusSuccess); err != nil {
				return err
			}

			tx := &domain.Transaction{
				BookingID: &bookingID,
				PayerID:   escrow.PayerID,
				PayeeID:   escrow.PayeeID,
				Amount:    escrow.Amount,
				NetAmount: escrow.Amount,
				Currency:  escrow.Currency,
				Type:      domain.TransactionTypeRelease,
				Status:    domain.TransactionStatusSuccess,
				Gateway:   domain.GatewayInternal,
				Method:    domain.MethodWallet,
				Reference: uuid.NewString(),
			}
			release, err = s.txRepo.Save(ctx, tx)
			return err
		})
	})
	if err != nil {
		zap.L().Error("escrow release failed", zap.Int64("bookingID", bookingID), zap.Error(err))
		return nil, err
	}

	s.publisher.PublishTransaction(notifier.EscrowReleased, release)
	return release, nil
}

// Refund undoes a cancelled booking's escrow lock: the ESCROW row flips
// to REFUNDED, which restores the payer's derived balance exactly, and a
// REFUND row records the credit for the audit trail.
func (s *Service) Refund(ctx context.Context, bookingID int64) (*domain.Transaction, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != domain.BookingStatusCancelled {
		return nil, ErrInvalidEscrowState
	}

	var refund *domain.Transaction
	err = s.withRetry(func() error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			escrow, err := s.txRepo.FindPendingEscrowByBooking(ctx, bookingID)
			if err != nil {
				return err
			}
			if escrow == nil {
				return ErrEscrowNotFound
			}

			if err := s.txRepo.UpdateStatus(ctx, escrow.ID, escrow.Version, domain.TransactionStatusRefunded); err != nil {
				return err
			}

			tx := &domain.Transaction{
				BookingID: &bookingID,
				PayerID:   escrow.PayerID,
				PayeeID:   escrow.PayerID,
				Amount:    escrow.Amount,
				NetAmount: escrow.Amount,
				Currency:  escrow.Currency,
				Type:      domain.TransactionTypeRefund,
				Status:    domain.TransactionStatusSuccess,
				Gateway:   domain.GatewayInternal,
				Method:    domain.MethodWallet,
				Reference: uuid.NewString(),
			}
			refund, err = s.txRepo.Save(ctx, tx)
			return err
		})
	})
	if err != nil {
		zap.L().Error("escrow refund failed", zap.Int64("bookingID", bookingID), zap.Error(err))
		return nil, err
	}

	s.publisher.PublishTransaction(notifier.RefundIssued, refund)
	return refund, nil
}

func (s *Service) GetWalletBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	balance, err := s.txRepo.CalculateBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

// GetNetWalletFlow is the same fold as the balance: the ledger is
// append-only, so the net of all credit/debit effects is the balance.
func (s *Service) GetNetWalletFlow(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return s.GetWalletBalance(ctx, userID)
}

func (s *Service) GetUserTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	transactions, err := s.txRepo.FindByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch user transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetOutgoingTransactions(ctx context.Context, payerID int64, status string) ([]domain.Transaction, error) {
	transactions, err := s.txRepo.FindByPayerAndStatus(ctx, payerID, status)
	if err != nil {
		zap.L().Error("failed to fetch outgoing transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetIncomingTransactions(ctx context.Context, payeeID int64, status string) ([]domain.Transaction, error) {
	transactions, err := s.txRepo.FindByPayeeAndStatus(ctx, payeeID, status)
	if err != nil {
		zap.L().Error("failed to fetch incoming transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetTransactionsByBooking(ctx context.Context, bookingID int64) ([]domain.Transaction, error) {
	transactions, err := s.txRepo.FindByBooking(ctx, bookingID)
	if err != nil {
		zap.L().Error("failed to fetch booking transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetTransactionsByTypeAndStatus(ctx context.Context, txType, status string) ([]domain.Transaction, error) {
	transactions, err := s.txRepo.FindByTypeAndStatus(ctx, txType, status)
	if err != nil {
		zap.L().Error("failed to fetch transactions by type and status", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetTransactionByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	tx, err := s.txRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}

func (s *Service) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	tx, err := s.txRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}

func (s *Service) GetTransactionsBetween(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	if start.IsZero() || end.IsZero() || start.After(end) {
		return nil, ErrInvalidDateRange
	}
	transactions, err := s.txRepo.FindBetween(ctx, start, end)
	if err != nil {
		zap.L().Error("failed to fetch transactions between dates", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetTransactionsAbove(ctx context.Context, amount decimal.Decimal) ([]domain.Transaction, error) {
	if !validate.IsPositiveAmount(amount) {
		return nil, ErrInvalidAmount
	}
	transactions, err := s.txRepo.FindAboveAmount(ctx, amount)
	if err != nil {
		zap.L().Error("failed to fetch transactions above amount", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
