package requestservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/dto"
	"github.com/skillswap/backend/internal/notifier"
)

type RequestRepo interface {
	Save(ctx context.Context, req *domain.SkillRequest) (*domain.SkillRequest, error)
	FindByID(ctx context.Context, id int64) (*domain.SkillRequest, error)
	ExistsActive(ctx context.Context, senderID, receiverID, skillID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	FindBySender(ctx context.Context, senderID int64) ([]domain.SkillRequest, error)
	FindByReceiver(ctx context.Context, receiverID int64) ([]domain.SkillRequest, error)
	ExpirePending(ctx context.Context, now time.Time) (int64, error)
}

type SkillRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Skill, error)
}

type Publisher interface {
	PublishRequest(eventType string, r *domain.SkillRequest)
}

var (
	ErrRequestNotFound     = errors.New("skill request not found")
	ErrSkillNotFound       = errors.New("skill not found")
	ErrSelfRequest         = errors.New("cannot send a request for your own skill")
	ErrDuplicateRequest    = errors.New("an active request for this skill already exists")
	ErrRequestExpired      = errors.New("skill request has expired")
	ErrNotRequestOwner     = errors.New("request does not belong to this user")
	ErrOperationNotAllowed = errors.New("operation not allowed in the current request status")
)

// requestTTL bounds how long a PENDING request stays actionable.
const requestTTL = 48 * time.Hour

type Service struct {
	requestRepo RequestRepo
	skillRepo   SkillRepo
	publisher   Publisher
}

func New(requestRepo RequestRepo, skillRepo SkillRepo, publisher Publisher) *Service {
	return &Service{
		requestRepo: requestRepo,
		skillRepo:   skillRepo,
		publisher:   publisher,
	}
}

// SendRequest opens the gate for a future booking: the receiver is
// always the skill's owner, self-requests are rejected, and at most one
// active (PENDING or ACCEPTED) request may exist per
// sender/receiver/skill triple.
func (s *Service) SendRequest(ctx context.Context, senderID int64, in dto.SendSkillRequestDTO) (*domain.SkillRequest, error) {
	skill, err := s.skillRepo.FindByID(ctx, in.SkillID)
	if err != nil {
		return nil, err
	}
	if skill == nil || !skill.Active {
		return nil, ErrSkillNotFound
	}
	if skill.OwnerID == senderID {
		return nil, ErrSelfRequest
	}

	exists, err := s.requestRepo.ExistsActive(ctx, senderID, skill.OwnerID, skill.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		zap.L().Info("duplicate skill request rejected",
			zap.Int64("senderID", senderID), zap.Int64("skillID", skill.ID))
		return nil, ErrDuplicateRequest
	}

	request := &domain.SkillRequest{
		SenderID:   senderID,
		ReceiverID: skill.OwnerID,
		SkillID:    skill.ID,
		Message:    in.Message,
		Status:     domain.RequestStatusPending,
		ExpiresAt:  time.Now().Add(requestTTL),
	}
	saved, err := s.requestRepo.Save(ctx, request)
	if err != nil {
		zap.L().Error("can't save skill request", zap.Error(err))
		return nil, err
	}

	s.publisher.PublishRequest(notifier.RequestSent, saved)
	return saved, nil
}

// AcceptRequest moves a PENDING request to ACCEPTED. A request past its
// expiry is flipped to EXPIRED instead, lazily, even before the sweeper
// gets to it.
func (s *Service) AcceptRequest(ctx context.Context, receiverID, requestID int64) (*domain.SkillRequest, error) {
	request, err := s.findOwned(ctx, requestID, receiverID, false)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.RequestStatusPending {
		return nil, ErrOperationNotAllowed
	}
	if time.Now().After(request.ExpiresAt) {
		if err := s.requestRepo.UpdateStatus(ctx, request.ID, domain.RequestStatusExpired); err != nil {
			return nil, err
		}
		return nil, ErrRequestExpired
	}

	if err := s.requestRepo.UpdateStatus(ctx, request.ID, domain.RequestStatusAccepted); err != nil {
		zap.L().Error("can't accept skill request", zap.Int64("requestID", requestID), zap.Error(err))
		return nil, err
	}
	request.Status = domain.RequestStatusAccepted

	s.publisher.PublishRequest(notifier.RequestAccepted, request)
	return request, nil
}

func (s *Service) RejectRequest(ctx context.Context, receiverID, requestID int64) (*domain.SkillRequest, error) {
	request, err := s.findOwned(ctx, requestID, receiverID, false)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.RequestStatusPending {
		return nil, ErrOperationNotAllowed
	}

	if err := s.requestRepo.UpdateStatus(ctx, request.ID, domain.RequestStatusRejected); err != nil {
		zap.L().Error("can't reject skill request", zap.Int64("requestID", requestID), zap.Error(err))
		return nil, err
	}
	request.Status = domain.RequestStatusRejected

	s.publisher.PublishRequest(notifier.RequestRejected, request)
	return request, nil
}

// CancelRequest lets the sender withdraw a still-PENDING request. A
// BOOKED request is released through booking cancellation instead, which
// unlocks it back to ACCEPTED.
func (s *Service) CancelRequest(ctx context.Context, senderID, requestID int64) (*domain.SkillRequest, error) {
	request, err := s.findOwned(ctx, requestID, senderID, true)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.RequestStatusPending {
		return nil, ErrOperationNotAllowed
	}

	if err := s.requestRepo.UpdateStatus(ctx, request.ID, domain.RequestStatusCancelled); err != nil {
		zap.L().Error("can't cancel skill request", zap.Int64("requestID", requestID), zap.Error(err))
		return nil, err
	}
	request.Status = domain.RequestStatusCancelled

	s.publisher.PublishRequest(notifier.RequestCancelled, request)
	return request, nil
}

// MarkCompleted closes an ACCEPTED request without a booking. Either
// side of the request may call it.
func (s *Service) MarkCompleted(ctx context.Context, userID, requestID int64) (*domain.SkillRequest, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	if request.SenderID != userID && request.ReceiverID != userID {
		return nil, ErrNotRequestOwner
	}
	if request.Status != domain.RequestStatusAccepted {
		return nil, ErrOperationNotAllowed
	}

	if err := s.requestRepo.UpdateStatus(ctx, request.ID, domain.RequestStatusCompleted); err != nil {
		zap.L().Error("can't complete skill request", zap.Int64("requestID", requestID), zap.Error(err))
		return nil, err
	}
	request.Status = domain.RequestStatusCompleted
	return request, nil
}

func (s *Service) SentRequests(ctx context.Context, senderID int64) ([]domain.SkillRequest, error) {
	requests, err := s.requestRepo.FindBySender(ctx, senderID)
	if err != nil {
		zap.L().Error("failed to get sent requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) ReceivedRequests(ctx context.Context, receiverID int64) ([]domain.SkillRequest, error) {
	requests, err := s.requestRepo.FindByReceiver(ctx, receiverID)
	if err != nil {
		zap.L().Error("failed to get received requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// AutoExpireRequests sweeps PENDING requests whose expiry has passed.
// Returns the number of rows flipped to EXPIRED.
func (s *Service) AutoExpireRequests(ctx context.Context) (int64, error) {
	expired, err := s.requestRepo.ExpirePending(ctx, time.Now())
	if err != nil {
		zap.L().Error("failed to expire pending requests", zap.Error(err))
		return 0, err
	}
	if expired > 0 {
		zap.L().Info("expired stale skill requests", zap.Int64("count", expired))
	}
	return expired, nil
}

// findOwned loads a request and checks the caller sits on the expected
// side of it (sender when asSender, receiver otherwise).
func (s *Service) findOwned(ctx context.Context, requestID, userID int64, asSender bool) (*domain.SkillRequest, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	owner := request.ReceiverID
	if asSender {
		owner = request.SenderID
	}
	if owner != userID {
		return nil, ErrNotRequestOwner
	}
	return request, nil
}
