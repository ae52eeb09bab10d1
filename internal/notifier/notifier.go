package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/config"
	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/pkg/clients"
)

// Event types delivered to the mail gateway.
const (
	RequestSent      = "REQUEST_SENT"
	RequestAccepted  = "REQUEST_ACCEPTED"
	RequestRejected  = "REQUEST_REJECTED"
	RequestCancelled = "REQUEST_CANCELLED"

	BookingCreated   = "BOOKING_CREATED"
	BookingConfirmed = "BOOKING_CONFIRMED"
	BookingStarted   = "BOOKING_STARTED"
	BookingCompleted = "BOOKING_COMPLETED"
	BookingCancelled = "BOOKING_CANCELLED"
	BookingDisputed  = "BOOKING_DISPUTED"

	DepositCompleted    = "DEPOSIT_COMPLETED"
	WithdrawalCompleted = "WITHDRAWAL_COMPLETED"
	EscrowCreated       = "ESCROW_CREATED"
	EscrowReleased      = "ESCROW_RELEASED"
	RefundIssued        = "REFUND_ISSUED"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	queueSize     = 256
)

type Event struct {
	Type       string    `json:"type"`
	UserID     int64     `json:"user_id"`
	BookingID  *int64    `json:"booking_id,omitempty"`
	RequestID  *int64    `json:"request_id,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Service fans booking, request and wallet events out to the mail
// gateway. Publishing never blocks the caller: events go through a
// buffered queue and a worker pool, and are dropped with a warning when
// the queue is full.
type Service struct {
	url        string
	client     clients.HTTPClientI
	events     chan Event
	workerPool WorkerPoolI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.MailGatewayAddress,
		client:     client,
		events:     make(chan Event, queueSize),
		workerPool: NewWorkerPool(10),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Notifier service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping notifier")
			return
		case event := <-s.events:
			err := s.workerPool.AddTask(ctx, func() error {
				return s.deliver(ctx, event)
			})
			if err != nil {
				zap.L().Warn("Failed to enqueue notification", zap.String("type", event.Type), zap.Error(err))
			}
		}
	}
}

func (s *Service) PublishRequest(eventType string, r *domain.SkillRequest) {
	requestID := r.ID
	s.publish(Event{
		Type:       eventType,
		UserID:     r.ReceiverID,
		RequestID:  &requestID,
		OccurredAt: time.Now(),
	})
}

func (s *Service) PublishBooking(eventType string, b *domain.Booking) {
	bookingID := b.ID
	s.publish(Event{
		Type:       eventType,
		UserID:     b.ProviderID,
		BookingID:  &bookingID,
		Amount:     b.TotalAmount.String(),
		OccurredAt: time.Now(),
	})
}

func (s *Service) PublishTransaction(eventType string, t *domain.Transaction) {
	s.publish(Event{
		Type:       eventType,
		UserID:     t.PayeeID,
		BookingID:  t.BookingID,
		Amount:     t.Amount.String(),
		OccurredAt: time.Now(),
	})
}

func (s *Service) publish(event Event) {
	select {
	case s.events <- event:
	default:
		zap.L().Warn("Notification queue full, dropping event", zap.String("type", event.Type))
	}
}

func (s *Service) deliver(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	url := s.url + "/api/notifications"

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.client.Do(req)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to deliver %s event after %d retries: %w", event.Type, maxRetries, err)
			}

			statusCode := resp.StatusCode
			respHeaders := resp.Header
			if err := resp.Body.Close(); err != nil {
				zap.L().Warn("Failed to close gateway response body", zap.Error(err))
			}

			switch {
			case statusCode == http.StatusTooManyRequests:
				s.waitForRateLimit(event, respHeaders, attempt)
				continue
			case statusCode >= 200 && statusCode < 300:
				return nil
			default:
				zap.L().Error("Unexpected status code from mail gateway", zap.Int("status", statusCode), zap.String("type", event.Type))
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("mail gateway returned status %d for %s event", statusCode, event.Type)
			}
		}
	}
	return nil
}

func (s *Service) waitForRateLimit(event Event, respHeaders http.Header, attempt int) {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Mail gateway rate limit detected, retrying",
		zap.String("type", event.Type),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
}
