package bookingservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/dto"
	"github.com/skillswap/backend/internal/notifier"
	"github.com/skillswap/backend/internal/pg"
	"github.com/skillswap/backend/internal/service/walletservice"
	"github.com/skillswap/backend/pkg/validate"
)

type BookingRepo interface {
	Save(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindByIDAndProvider(ctx context.Context, id, providerID int64) (*domain.Booking, error)
	ExistsOverlappingForProvider(ctx context.Context, providerID int64, start, end time.Time) (bool, error)
	ExistsOverlappingForRequester(ctx context.Context, requesterID int64, start, end time.Time) (bool, error)
	HasRecentBooking(ctx context.Context, requesterID, providerID int64, since time.Time) (bool, error)
	FindByRequester(ctx context.Context, requesterID int64) ([]domain.Booking, error)
	FindByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error)
	FindByRequesterAndStatus(ctx context.Context, requesterID int64, status string) ([]domain.Booking, error)
	FindByProviderAndStatus(ctx context.Context, providerID int64, status string) ([]domain.Booking, error)
	FindBySkill(ctx context.Context, skillID int64) ([]domain.Booking, error)
	FindBySkillAndStatus(ctx context.Context, skillID int64, status string) ([]domain.Booking, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Booking, error)
	FindUpcomingForProvider(ctx context.Context, providerID int64, now time.Time) ([]domain.Booking, error)
	FindUpcomingForRequester(ctx context.Context, requesterID int64, now time.Time) ([]domain.Booking, error)
	FindPastForProvider(ctx context.Context, providerID int64) ([]domain.Booking, error)
	FindPastForRequester(ctx context.Context, requesterID int64) ([]domain.Booking, error)
	FindProviderInRange(ctx context.Context, providerID int64, status string, start, end time.Time) ([]domain.Booking, error)
}

type RequestRepo interface {
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.SkillRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type SkillRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Skill, error)
}

// EscrowService is the slice of the wallet service the booking state
// machine drives: lock on confirm, release on complete, refund on cancel.
type EscrowService interface {
	CreateEscrow(ctx context.Context, payerID int64, booking *domain.Booking, amount decimal.Decimal) (*domain.Transaction, error)
	ReleaseEscrow(ctx context.Context, bookingID int64) (*domain.Transaction, error)
	Refund(ctx context.Context, bookingID int64) (*domain.Transaction, error)
}

type Publisher interface {
	PublishBooking(eventType string, b *domain.Booking)
}

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrRequestNotFound     = errors.New("skill request not found")
	ErrSkillNotFound       = errors.New("skill not found")
	ErrNotRequestOwner     = errors.New("request does not belong to this user")
	ErrNotParticipant      = errors.New("user is not a party to this booking")
	ErrRequestNotAccepted  = errors.New("skill request is not in ACCEPTED status")
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrProviderUnavailable = errors.New("provider is not available in the requested slot")
	ErrRequesterBusy       = errors.New("you already have a booking in the requested slot")
	ErrBookingCooldown     = errors.New("a booking with this provider was created too recently")
	ErrInvalidTransition   = errors.New("transition not allowed from the current booking status")
	ErrReasonRequired      = errors.New("a non-blank reason is required")
)

// bookingCooldown throttles repeat bookings between the same pair to
// absorb accidental double submissions.
const bookingCooldown = 60 * time.Second

type Service struct {
	bookingRepo BookingRepo
	requestRepo RequestRepo
	skillRepo   SkillRepo
	escrow      EscrowService
	txManager   pg.TXManager
	publisher   Publisher
}

func New(bookingRepo BookingRepo, requestRepo RequestRepo, skillRepo SkillRepo, escrow EscrowService, txManager pg.TXManager, publisher Publisher) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		requestRepo: requestRepo,
		skillRepo:   skillRepo,
		escrow:      escrow,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// CreateBooking turns an ACCEPTED skill request into a PENDING booking.
// The request row is read under an exclusive lock so two concurrent
// creates against the same request cannot both succeed; the slot overlap
// and pair cooldown checks run inside the same transaction.
func (s *Service) CreateBooking(ctx context.Context, requesterID int64, in dto.CreateBookingRequestDTO) (*domain.Booking, error) {
	if !validate.IsValidTimeRange(in.StartTime, in.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	var booking *domain.Booking
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		request, err := s.requestRepo.FindByIDForUpdate(ctx, in.SkillRequestID)
		if err != nil {
			return err
		}
		if request == nil {
			return ErrRequestNotFound
		}
		if request.SenderID != requesterID {
			return ErrNotRequestOwner
		}
		if request.Status != domain.RequestStatusAccepted {
			return ErrRequestNotAccepted
		}

		providerID := request.ReceiverID

		recent, err := s.bookingRepo.HasRecentBooking(ctx, requesterID, providerID, time.Now().Add(-bookingCooldown))
		if err != nil {
			return err
		}
		if recent {
			return ErrBookingCooldown
		}

		busy, err := s.bookingRepo.ExistsOverlappingForProvider(ctx, providerID, in.StartTime, in.EndTime)
		if err != nil {
			return err
		}
		if busy {
			return ErrProviderUnavailable
		}
		busy, err = s.bookingRepo.ExistsOverlappingForRequester(ctx, requesterID, in.StartTime, in.EndTime)
		if err != nil {
			return err
		}
		if busy {
			return ErrRequesterBusy
		}

		skill, err := s.skillRepo.FindByID(ctx, request.SkillID)
		if err != nil {
			return err
		}
		if skill == nil {
			return ErrSkillNotFound
		}

		durationMinutes := int(in.EndTime.Sub(in.StartTime).Minutes())
		totalAmount := skill.HourlyRate.
			Mul(decimal.NewFromInt(int64(durationMinutes))).
			Div(decimal.NewFromInt(60)).
			Round(2)

		booking, err = s.bookingRepo.Save(ctx, &domain.Booking{
			RequestID:       request.ID,
			RequesterID:     requesterID,
			ProviderID:      providerID,
			SkillID:         skill.ID,
			StartTime:       in.StartTime,
			EndTime:         in.EndTime,
			DurationMinutes: durationMinutes,
			PricePerHour:    skill.HourlyRate,
			TotalAmount:     totalAmount,
			Status:          domain.BookingStatusPending,
		})
		if err != nil {
			return err
		}

		return s.requestRepo.UpdateStatus(ctx, request.ID, domain.RequestStatusBooked)
	})
	if err != nil {
		zap.L().Error("can't create booking", zap.Int64("requestID", in.SkillRequestID), zap.Error(err))
		return nil, err
	}

	s.publisher.PublishBooking(notifier.BookingCreated, booking)
	return booking, nil
}

// ConfirmBooking moves PENDING to CONFIRMED and then locks the escrow.
// The CONFIRMED status is committed before the escrow attempt: if the
// requester's wallet cannot cover the total, the booking stays CONFIRMED
// without a lock and the escrow error surfaces to the caller.
func (s *Service) ConfirmBooking(ctx context.Context, providerID, bookingID int64) (*domain.Booking, error) {
	booking, err := s.findForProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, ErrInvalidTransition
	}

	booking.Status = domain.BookingStatusConfirmed
	booking, err = s.bookingRepo.Update(ctx, booking)
	if err != nil {
		zap.L().Error("can't confirm booking", zap.Int64("bookingID", bookingID), zap.Error(err))
		return nil, err
	}

	if _, err := s.escrow.CreateEscrow(ctx, booking.RequesterID, booking, booking.TotalAmount); err != nil {
		zap.L().Warn("booking confirmed without escrow lock", zap.Int64("bookingID", bookingID), zap.Error(err))
		return booking, err
	}

	s.publisher.PublishBooking(notifier.BookingConfirmed, booking)
	return booking, nil
}

func (s *Service) StartBooking(ctx context.Context, providerID, bookingID int64) (*domain.Booking, error) {
	booking, err := s.findForProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusConfirmed {
		return nil, ErrInvalidTransition
	}

	booking.Status = domain.BookingStatusInProgress
	booking, err = s.bookingRepo.Update(ctx, booking)
	if err != nil {
		zap.L().Error("can't start booking", zap.Int64("bookingID", bookingID), zap.Error(err))
		return nil, err
	}

	s.publisher.PublishBooking(notifier.BookingStarted, booking)
	return booking, nil
}

// CompleteBooking flips IN_PROGRESS to COMPLETED, releases the escrow
// and closes the originating request, all in one transaction so an
// escrow-release failure rolls the completion back.
func (s *Service) CompleteBooking(ctx context.Context, providerID, bookingID int64) (*domain.Booking, error) {
	var booking *domain.Booking
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.findForProvider(ctx, bookingID, providerID)
		if err != nil {
			return err
		}
		if booking.Status != domain.BookingStatusInProgress {
			return ErrInvalidTransition
		}

		booking.Status = domain.BookingStatusCompleted
		booking, err = s.bookingRepo.Update(ctx, booking)
		if err != nil {
			return err
		}

		if _, err := s.escrow.ReleaseEscrow(ctx, bookingID); err != nil {
			return err
		}

		return s.requestRepo.UpdateStatus(ctx, booking.RequestID, domain.RequestStatusCompleted)
	})
	if err != nil {
		zap.L().Error("can't complete booking", zap.Int64("bookingID", bookingID), zap.Error(err))
		return nil, err
	}

	s.publisher.PublishBooking(notifier.BookingCompleted, booking)
	return booking, nil
}

// CancelBooking is open to either party from any non-terminal status.
// When the booking had reached CONFIRMED or IN_PROGRESS an escrow may be
// held, so the refund runs in the same transaction; a PENDING booking
// never locked money and skips the refund. The originating request
// unlocks back to ACCEPTED.
func (s *Service) CancelBooking(ctx context.Context, userID, bookingID int64, in dto.CancelBookingRequestDTO) (*domain.Booking, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, ErrReasonRequired
	}

	var booking *domain.Booking
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}

		var cancelledBy string
		switch userID {
		case booking.RequesterID:
			cancelledBy = domain.CancelledByUser
		case booking.ProviderID:
			cancelledBy = domain.CancelledByProvider
		default:
			return ErrNotParticipant
		}

		priorStatus := booking.Status
		switch priorStatus {
		case domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusInProgress:
		default:
			return ErrInvalidTransition
		}

		booking.Status = domain.BookingStatusCancelled
		booking.CancelReason = in.Reason
		booking.CancelledBy = cancelledBy
		booking, err = s.bookingRepo.Update(ctx, booking)
		if err != nil {
			return err
		}

		if priorStatus != domain.BookingStatusPending {
			// A CONFIRMED booking may have no escrow yet when the lock
			// failed on confirmation; cancelling must still go through.
			if _, err := s.escrow.Refund(ctx, bookingID); err != nil && !errors.Is(err, walletservice.ErrEscrowNotFound) {
				return err
			}
		}

		return s.requestRepo.UpdateStatus(ctx, booking.RequestID, domain.RequestStatusAccepted)
	})
	if err != nil {
		zap.L().Error("can't cancel booking", zap.Int64("bookingID", bookingID), zap.Error(err))
		return nil, err
	}

	s.publisher.PublishBooking(notifier.BookingCancelled, booking)
	return booking, nil
}

func (s *Service) RaiseDispute(ctx context.Context, userID, bookingID int64, in dto.DisputeBookingRequestDTO) (*domain.Booking, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, ErrReasonRequired
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if userID != booking.RequesterID && userID != booking.ProviderID {
		return nil, ErrNotParticipant
	}
	if booking.Status != domain.BookingStatusCompleted {
		return nil, ErrInvalidTransition
	}

	booking.Status = domain.BookingStatusDisputed
	booking.DisputeReason = in.Reason
	booking, err = s.bookingRepo.Update(ctx, booking)
	if err != nil {
		zap.L().Error("can't raise dispute", zap.Int64("bookingID", bookingID), zap.Error(err))
		return nil, err
	}

	s.publisher.PublishBooking(notifier.BookingDisputed, booking)
	return booking, nil
}

func (s *Service) GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if userID != booking.RequesterID && userID != booking.ProviderID {
		return nil, ErrNotParticipant
	}
	return booking, nil
}

func (s *Service) RequesterBookings(ctx context.Context, requesterID int64, status string) ([]domain.Booking, error) {
	if status != "" {
		return s.bookingRepo.FindByRequesterAndStatus(ctx, requesterID, status)
	}
	return s.bookingRepo.FindByRequester(ctx, requesterID)
}

func (s *Service) ProviderBookings(ctx context.Context, providerID int64, status string) ([]domain.Booking, error) {
	if status != "" {
		return s.bookingRepo.FindByProviderAndStatus(ctx, providerID, status)
	}
	return s.bookingRepo.FindByProvider(ctx, providerID)
}

func (s *Service) SkillBookings(ctx context.Context, skillID int64, status string) ([]domain.Booking, error) {
	if status != "" {
		return s.bookingRepo.FindBySkillAndStatus(ctx, skillID, status)
	}
	return s.bookingRepo.FindBySkill(ctx, skillID)
}

func (s *Service) BookingsByStatus(ctx context.Context, status string) ([]domain.Booking, error) {
	return s.bookingRepo.FindByStatus(ctx, status)
}

func (s *Service) UpcomingForProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	return s.bookingRepo.FindUpcomingForProvider(ctx, providerID, time.Now())
}

func (s *Service) UpcomingForRequester(ctx context.Context, requesterID int64) ([]domain.Booking, error) {
	return s.bookingRepo.FindUpcomingForRequester(ctx, requesterID, time.Now())
}

func (s *Service) PastForProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	return s.bookingRepo.FindPastForProvider(ctx, providerID)
}

func (s *Service) PastForRequester(ctx context.Context, requesterID int64) ([]domain.Booking, error) {
	return s.bookingRepo.FindPastForRequester(ctx, requesterID)
}

func (s *Service) ProviderSchedule(ctx context.Context, providerID int64, status string, start, end time.Time) ([]domain.Booking, error) {
	if !validate.IsValidTimeRange(start, end) {
		return nil, ErrInvalidTimeRange
	}
	return s.bookingRepo.FindProviderInRange(ctx, providerID, status, start, end)
}

func (s *Service) findForProvider(ctx context.Context, bookingID, providerID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindByIDAndProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}
