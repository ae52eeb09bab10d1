package bookingservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/dto"
	"github.com/skillswap/backend/internal/notifier"
	"github.com/skillswap/backend/internal/pg"
	"github.com/skillswap/backend/internal/service/walletservice"
)

type mocks struct {
	bookingRepo *MockBookingRepo
	requestRepo *MockRequestRepo
	skillRepo   *MockSkillRepo
	escrow      *MockEscrowService
	txManager   *pg.MockTXManager
	publisher   *MockPublisher
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		bookingRepo: NewMockBookingRepo(ctrl),
		requestRepo: NewMockRequestRepo(ctrl),
		skillRepo:   NewMockSkillRepo(ctrl),
		escrow:      NewMockEscrowService(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
		publisher:   NewMockPublisher(ctrl),
	}
	service := New(m.bookingRepo, m.requestRepo, m.skillRepo, m.escrow, m.txManager, m.publisher)
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestCreateBooking(t *testing.T) {
	service, m := NewMock(t)
	passthroughTx(m.txManager)

	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	end := start.Add(90 * time.Minute)
	in := dto.CreateBookingRequestDTO{SkillRequestID: 7, StartTime: start, EndTime: end}

	acceptedRequest := func() *domain.SkillRequest {
		return &domain.SkillRequest{
			ID:         7,
			SkillID:    3,
			SenderID:   1,
			ReceiverID: 2,
			Status:     domain.RequestStatusAccepted,
		}
	}
	skill := &domain.Skill{ID: 3, OwnerID: 2, HourlyRate: decimal.NewFromInt(40), Active: true}

	tests := []struct {
		name          string
		requesterID   int64
		in            dto.CreateBookingRequestDTO
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "End before start rejected",
			requesterID:   1,
			in:            dto.CreateBookingRequestDTO{SkillRequestID: 7, StartTime: end, EndTime: start},
			expectedError: ErrInvalidTimeRange,
		},
		{
			name:        "Request missing",
			requesterID: 1,
			in:          in,
			prepareMock: func() {
				m.requestRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(7)).Return(nil, nil)
			},
			expectedError: ErrRequestNotFound,
		},
		{
			name:        "Only the request sender may book",
			requesterID: 99,
			in:          in,
			prepareMock: func() {
				m.requestRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(7)).Return(acceptedRequest(), nil)
			},
			expectedError: ErrNotRequestOwner,
		},
		{
			name:        "Request still pending",
			requesterID: 1,
			in:          in,
			prepareMock: func() {
				request := acceptedRequest()
				request.Status = domain.RequestStatusPending
				m.requestRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(7)).Return(request, nil)
			},
			expectedError: ErrRequestNotAccepted,
		},
		{
			name:        "Pair cooldown still active",
			requesterID: 1,
			in:          in,
			prepareMock: func() {
				m.requestRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(7)).Return(acceptedRequest(), nil)
				m.bookingRepo.EXPECT().HasRecentBooking(gomock.Any(), int64(1), int64(2), gomock.Any()).Return(true, nil)
			},
			expectedError: ErrBookingCooldown,
		},
		{
			name:        "Provider slot taken",
			requesterID: 1,
			in:          in,
			prepareMock: func() {
				m.requestRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(7)).Return(acceptedRequest(), nil)
				m.bookingRepo.EXPECT().HasRecentBooking(gomock.Any(), int64(1), int64(2), gomock.Any()).Return(false, nil)
				m.bookingRepo.EXPECT().ExistsOverlappingForProvider(gomock.Any(), int64(2), start, end).Return(true, nil)
			},
			expectedError: ErrProviderUnavailable,
		},
		{
			name:        "Requester slot taken",
			requesterID: 1,
			in:          in,
			prepareMock: func() {
				m.requestRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(7)).Return(acceptedRequest(), nil)
				m.bookingRepo.EXPECT().HasRecentBooking(gomock.Any(), int64(1), int64(2), gomock.Any()).Return(false, nil)
				m.bookingRepo.EXPECT().ExistsOverlappingForProvider(gomock.Any(), int64(2), start, end).Return(false, nil)
				m.bookingRepo.EXPECT().ExistsOverlappingForRequester(gomock.Any(), int64(1), start, end).Return(true, nil)
			},
			expectedError: ErrRequesterBusy,
		},
		{
			name:        "Booking saved with price snapshot and request locked",
			requesterID: 1,
			in:          in,
			prepareMock: func() {
				m.requestRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(7)).Return(acceptedRequest(), nil)
				m.bookingRepo.EXPECT().HasRecentBooking(gomock.Any(), int64(1), int64(2), gomock.Any()).Return(false, nil)
				m.bookingRepo.EXPECT().ExistsOverlappingForProvider(gomock.Any(), int64(2), start, end).Return(false, nil)
				m.bookingRepo.EXPECT().ExistsOverlappingForRequester(gomock.Any(), int64(1), start, end).Return(false, nil)
				m.skillRepo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(skill, nil)
				m.bookingRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
						assert.Equal(t, int64(7), b.RequestID)
						assert.Equal(t, int64(2), b.ProviderID)
						assert.Equal(t, domain.BookingStatusPending, b.Status)
						assert.Equal(t, 90, b.DurationMinutes)
						// 90 minutes at 40/h
						assert.True(t, b.TotalAmount.Equal(decimal.NewFromInt(60)), b.TotalAmount.String())
						assert.True(t, b.PricePerHour.Equal(decimal.NewFromInt(40)))
						b.ID = 11
						return b, nil
					})
				m.requestRepo.EXPECT().UpdateStatus(gomock.Any(), int64(7), domain.RequestStatusBooked).Return(nil)
				m.publisher.EXPECT().PublishBooking(notifier.BookingCreated, gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			booking, err := service.CreateBooking(context.Background(), tt.requesterID, tt.in)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, booking)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(11), booking.ID)
			}
		})
	}
}

func TestConfirmBooking(t *testing.T) {
	service, m := NewMock(t)

	pendingBooking := func() *domain.Booking {
		return &domain.Booking{
			ID:          11,
			RequesterID: 1,
			ProviderID:  2,
			TotalAmount: decimal.NewFromInt(60),
			Status:      domain.BookingStatusPending,
		}
	}

	tests := []struct {
		name           string
		prepareMock    func()
		expectedError  error
		expectedStatus string
	}{
		{
			name: "Booking not found for this provider",
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByIDAndProvider(gomock.Any(), int64(11), int64(2)).Return(nil, nil)
			},
			expectedError: ErrBookingNotFound,
		},
		{
			name: "Already confirmed",
			prepareMock: func() {
				booking := pendingBooking()
				booking.Status = domain.BookingStatusConfirmed
				m.bookingRepo.EXPECT().FindByIDAndProvider(gomock.Any(), int64(11), int64(2)).Return(booking, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name: "Stays confirmed when escrow lock fails",
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByIDAndProvider(gomock.Any(), int64(11), int64(2)).Return(pendingBooking(), nil)
				m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
						assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
						return b, nil
					})
				m.escrow.EXPECT().CreateEscrow(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("insufficient balance"))
			},
			expectedError:  errors.New("insufficient balance"),
			expectedStatus: domain.BookingStatusConfirmed,
		},
		{
			name: "Confirmed and escrow locked",
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByIDAndProvider(gomock.Any(), int64(11), int64(2)).Return(pendingBooking(), nil)
				m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
						return b, nil
					})
				m.escrow.EXPECT().CreateEscrow(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, payerID int64, b *domain.Booking, amount decimal.Decimal) (*domain.Transaction, error) {
						assert.True(t, amount.Equal(decimal.NewFromInt(60)))
						return &domain.Transaction{ID: 1}, nil
					})
				m.publisher.EXPECT().PublishBooking(notifier.BookingConfirmed, gomock.Any())
			},
			expectedStatus: domain.BookingStatusConfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			booking, err := service.ConfirmBooking(context.Background(), 2, 11)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedStatus != "" {
				assert.NotNil(t, booking)
				assert.Equal(t, tt.expectedStatus, booking.Status)
			} else {
				assert.Nil(t, booking)
			}
		})
	}
}

func TestStartBooking(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		status        string
		expectedError error
	}{
		{name: "Pending cannot start", status: domain.BookingStatusPending, expectedError: ErrInvalidTransition},
		{name: "Completed cannot start", status: domain.BookingStatusCompleted, expectedError: ErrInvalidTransition},
		{name: "Confirmed starts", status: domain.BookingStatusConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &domain.Booking{ID: 11, RequesterID: 1, ProviderID: 2, Status: tt.status}
			m.bookingRepo.EXPECT().FindByIDAndProvider(gomock.Any(), int64(11), int64(2)).Return(booking, nil)
			if tt.expectedError == nil {
				m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
						return b, nil
					})
				m.publisher.EXPECT().PublishBooking(notifier.BookingStarted, gomock.Any())
			}

			got, err := service.StartBooking(context.Background(), 2, 11)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.BookingStatusInProgress, got.Status)
			}
		})
	}
}

func TestCompleteBooking(t *testing.T) {
	service, m := NewMock(t)
	passthroughTx(m.txManager)

	inProgress := func() *domain.Booking {
		return &domain.Booking{ID: 11, RequestID: 7, RequesterID: 1, ProviderID: 2, Status: domain.BookingStatusInProgress}
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Only an in-progress booking completes",
			prepareMock: func() {
				booking := inProgress()
				booking.Status = domain.BookingStatusConfirmed
				m.bookingRepo.EXPECT().FindByIDAndProvider(gomock.Any(), int64(11), int64(2)).Return(booking, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name: "Escrow release failure rolls completion back",
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByIDAndProvider(gomock.Any(), int64(11), int64(2)).Return(inProgress(), nil)
				m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
						return b, nil
					})
				m.escrow.EXPECT().ReleaseEscrow(gomock.Any(), int64(11)).Return(nil, errors.New("no pending escrow"))
			},
			expectedError: errors.New("no pending escrow"),
		},
		{
			name: "Completed, escrow released, request closed",
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByIDAndProvider(gomock.Any(), int64(11), int64(2)).Return(inProgress(), nil)
				m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
						assert.Equal(t, domain.BookingStatusCompleted, b.Status)
						return b, nil
					})
				m.escrow.EXPECT().ReleaseEscrow(gomock.Any(), int64(11)).Return(&domain.Transaction{ID: 2}, nil)
				m.requestRepo.EXPECT().UpdateStatus(gomock.Any(), int64(7), domain.RequestStatusCompleted).Return(nil)
				m.publisher.EXPECT().PublishBooking(notifier.BookingCompleted, gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			booking, err := service.CompleteBooking(context.Background(), 2, 11)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, booking)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.BookingStatusCompleted, booking.Status)
			}
		})
	}
}

func TestCancelBooking(t *testing.T) {
	service, m := NewMock(t)
	passthroughTx(m.txManager)

	booking := func(status string) *domain.Booking {
		return &domain.Booking{ID: 11, RequestID: 7, RequesterID: 1, ProviderID: 2, Status: status}
	}
	reason := dto.CancelBookingRequestDTO{Reason: "schedule conflict"}

	tests := []struct {
		name          string
		userID        int64
		in            dto.CancelBookingRequestDTO
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Blank reason rejected",
			userID:        1,
			in:            dto.CancelBookingRequestDTO{Reason: "   "},
			expectedError: ErrReasonRequired,
		},
		{
			name:   "Outsider cannot cancel",
			userID: 99,
			in:     reason,
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(booking(domain.BookingStatusConfirmed), nil)
			},
			expectedError: ErrNotParticipant,
		},
		{
			name:   "Completed booking cannot cancel",
			userID: 1,
			in:     reason,
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(booking(domain.BookingStatusCompleted), nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:   "Pending cancel skips refund",
			userID: 1,
			in:     reason,
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(booking(domain.BookingStatusPending), nil)
				m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
						assert.Equal(t, domain.BookingStatusCancelled, b.Status)
						assert.Equal(t, domain.CancelledByUser, b.CancelledBy)
						return b, nil
					})
				m.requestRepo.EXPECT().UpdateStatus(gomock.Any(), int64(7), domain.RequestStatusAccepted).Return(nil)
				m.publisher.EXPECT().PublishBooking(notifier.BookingCancelled, gomock.Any())
			},
		},
		{
			name:   "Confirmed cancel by provider refunds escrow",
			userID: 2,
			in:     reason,
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(booking(domain.BookingStatusConfirmed), nil)
				m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
						assert.Equal(t, domain.CancelledByProvider, b.CancelledBy)
						return b, nil
					})
				m.escrow.EXPECT().Refund(gomock.Any(), int64(11)).Return(&domain.Transaction{ID: 3}, nil)
				m.requestRepo.EXPECT().UpdateStatus(gomock.Any(), int64(7), domain.RequestStatusAccepted).Return(nil)
				m.publisher.EXPECT().PublishBooking(notifier.BookingCancelled, gomock.Any())
			},
		},
		{
			name:   "Confirmed cancel without escrow still cancels",
			userID: 1,
			in:     reason,
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(booking(domain.BookingStatusConfirmed), nil)
				m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
						assert.Equal(t, domain.BookingStatusCancelled, b.Status)
						return b, nil
					})
				m.escrow.EXPECT().Refund(gomock.Any(), int64(11)).Return(nil, walletservice.ErrEscrowNotFound)
				m.requestRepo.EXPECT().UpdateStatus(gomock.Any(), int64(7), domain.RequestStatusAccepted).Return(nil)
				m.publisher.EXPECT().PublishBooking(notifier.BookingCancelled, gomock.Any())
			},
		},
		{
			name:   "In-progress cancel refunds escrow",
			userID: 1,
			in:     reason,
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(booking(domain.BookingStatusInProgress), nil)
				m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
						return b, nil
					})
				m.escrow.EXPECT().Refund(gomock.Any(), int64(11)).Return(&domain.Transaction{ID: 3}, nil)
				m.requestRepo.EXPECT().UpdateStatus(gomock.Any(), int64(7), domain.RequestStatusAccepted).Return(nil)
				m.publisher.EXPECT().PublishBooking(notifier.BookingCancelled, gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			got, err := service.CancelBooking(context.Background(), tt.userID, 11, tt.in)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.BookingStatusCancelled, got.Status)
				assert.Equal(t, "schedule conflict", got.CancelReason)
			}
		})
	}
}

func TestRaiseDispute(t *testing.T) {
	service, m := NewMock(t)

	booking := func(status string) *domain.Booking {
		return &domain.Booking{ID: 11, RequesterID: 1, ProviderID: 2, Status: status}
	}
	in := dto.DisputeBookingRequestDTO{Reason: "session never happened"}

	tests := []struct {
		name          string
		userID        int64
		in            dto.DisputeBookingRequestDTO
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Blank reason rejected",
			userID:        1,
			in:            dto.DisputeBookingRequestDTO{},
			expectedError: ErrReasonRequired,
		},
		{
			name:   "Outsider cannot dispute",
			userID: 99,
			in:     in,
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(booking(domain.BookingStatusCompleted), nil)
			},
			expectedError: ErrNotParticipant,
		},
		{
			name:   "Only a completed booking can be disputed",
			userID: 1,
			in:     in,
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(booking(domain.BookingStatusInProgress), nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:   "Provider raises a dispute",
			userID: 2,
			in:     in,
			prepareMock: func() {
				m.bookingRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(booking(domain.BookingStatusCompleted), nil)
				m.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
						assert.Equal(t, domain.BookingStatusDisputed, b.Status)
						assert.Equal(t, "session never happened", b.DisputeReason)
						return b, nil
					})
				m.publisher.EXPECT().PublishBooking(notifier.BookingDisputed, gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			got, err := service.RaiseDispute(context.Background(), tt.userID, 11, tt.in)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.BookingStatusDisputed, got.Status)
			}
		})
	}
}

func TestGetBooking(t *testing.T) {
	service, m := NewMock(t)

	booking := &domain.Booking{ID: 11, RequesterID: 1, ProviderID: 2, Status: domain.BookingStatusConfirmed}

	t.Run("Participant reads the booking", func(t *testing.T) {
		m.bookingRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(booking, nil)
		got, err := service.GetBooking(context.Background(), 1, 11)
		assert.NoError(t, err)
		assert.Equal(t, booking, got)
	})

	t.Run("Outsider is rejected", func(t *testing.T) {
		m.bookingRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(booking, nil)
		got, err := service.GetBooking(context.Background(), 99, 11)
		assert.ErrorIs(t, err, ErrNotParticipant)
		assert.Nil(t, got)
	})

	t.Run("Missing booking", func(t *testing.T) {
		m.bookingRepo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(nil, nil)
		got, err := service.GetBooking(context.Background(), 1, 11)
		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.Nil(t, got)
	})
}

func TestBookingLists(t *testing.T) {
	service, m := NewMock(t)

	rows := []domain.Booking{{ID: 11}, {ID: 12}}

	t.Run("Requester list without filter", func(t *testing.T) {
		m.bookingRepo.EXPECT().FindByRequester(gomock.Any(), int64(1)).Return(rows, nil)
		got, err := service.RequesterBookings(context.Background(), 1, "")
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Requester list filtered by status", func(t *testing.T) {
		m.bookingRepo.EXPECT().FindByRequesterAndStatus(gomock.Any(), int64(1), domain.BookingStatusConfirmed).Return(rows[:1], nil)
		got, err := service.RequesterBookings(context.Background(), 1, domain.BookingStatusConfirmed)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Provider list filtered by status", func(t *testing.T) {
		m.bookingRepo.EXPECT().FindByProviderAndStatus(gomock.Any(), int64(2), domain.BookingStatusPending).Return(rows, nil)
		got, err := service.ProviderBookings(context.Background(), 2, domain.BookingStatusPending)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Skill list without filter", func(t *testing.T) {
		m.bookingRepo.EXPECT().FindBySkill(gomock.Any(), int64(42)).Return(rows, nil)
		got, err := service.SkillBookings(context.Background(), 42, "")
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Skill list filtered by status", func(t *testing.T) {
		m.bookingRepo.EXPECT().FindBySkillAndStatus(gomock.Any(), int64(42), domain.BookingStatusCompleted).Return(rows[:1], nil)
		got, err := service.SkillBookings(context.Background(), 42, domain.BookingStatusCompleted)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Upcoming for provider", func(t *testing.T) {
		m.bookingRepo.EXPECT().FindUpcomingForProvider(gomock.Any(), int64(2), gomock.Any()).Return(rows, nil)
		got, err := service.UpcomingForProvider(context.Background(), 2)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Past for requester", func(t *testing.T) {
		m.bookingRepo.EXPECT().FindPastForRequester(gomock.Any(), int64(1)).Return(rows, nil)
		got, err := service.PastForRequester(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Schedule rejects inverted range", func(t *testing.T) {
		end := time.Now()
		start := end.Add(time.Hour)
		got, err := service.ProviderSchedule(context.Background(), 2, "", start, end)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
		assert.Nil(t, got)
	})
}
