package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skillswap/backend/internal/config"
	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *clients.MockHTTPClientI) {
	cfg := &config.Config{MailGatewayAddress: "http://localhost:8082"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, client)
	return service, client
}

func gatewayResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}
}

func TestService_Start(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}

func TestService_PublishBooking(t *testing.T) {
	service, _ := NewMock(t)

	booking := &domain.Booking{
		ID:          11,
		ProviderID:  2,
		TotalAmount: decimal.RequireFromString("40"),
	}
	service.PublishBooking(BookingConfirmed, booking)

	select {
	case event := <-service.events:
		assert.Equal(t, BookingConfirmed, event.Type)
		assert.Equal(t, int64(2), event.UserID)
		require.NotNil(t, event.BookingID)
		assert.Equal(t, int64(11), *event.BookingID)
		assert.Equal(t, "40", event.Amount)
	default:
		t.Fatal("expected event to be enqueued")
	}
}

func TestService_PublishRequest(t *testing.T) {
	service, _ := NewMock(t)

	request := &domain.SkillRequest{ID: 7, SenderID: 1, ReceiverID: 2}
	service.PublishRequest(RequestAccepted, request)

	select {
	case event := <-service.events:
		assert.Equal(t, RequestAccepted, event.Type)
		assert.Equal(t, int64(2), event.UserID)
		require.NotNil(t, event.RequestID)
		assert.Equal(t, int64(7), *event.RequestID)
		assert.Nil(t, event.BookingID)
	default:
		t.Fatal("expected event to be enqueued")
	}
}

func TestService_PublishTransaction(t *testing.T) {
	service, _ := NewMock(t)

	bookingID := int64(11)
	tx := &domain.Transaction{
		PayeeID:   3,
		BookingID: &bookingID,
		Amount:    decimal.RequireFromString("60"),
	}
	service.PublishTransaction(EscrowReleased, tx)

	select {
	case event := <-service.events:
		assert.Equal(t, EscrowReleased, event.Type)
		assert.Equal(t, int64(3), event.UserID)
		require.NotNil(t, event.BookingID)
		assert.Equal(t, int64(11), *event.BookingID)
		assert.Equal(t, "60", event.Amount)
	default:
		t.Fatal("expected event to be enqueued")
	}
}

func TestService_publishFullQueue(t *testing.T) {
	service, _ := NewMock(t)
	service.events = make(chan Event, 1)

	service.publish(Event{Type: BookingCreated})
	// Queue is full now, the second event must be dropped without blocking.
	done := make(chan struct{})
	go func() {
		service.publish(Event{Type: BookingStarted})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full queue")
	}
	assert.Len(t, service.events, 1)
}

func TestService_run(t *testing.T) {
	tests := []struct {
		name        string
		mockAddTask func(ctx context.Context, task Task) error
	}{
		{
			name: "enqueues delivery task",
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
		},
		{
			name: "logs when worker pool rejects the task",
			mockAddTask: func(ctx context.Context, task Task) error {
				return errors.New("failed to add task to worker pool")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			workerPool := NewMockWorkerPoolI(ctrl)
			workerPool.EXPECT().
				AddTask(gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockAddTask).
				Times(1)
			workerPool.EXPECT().Close().Times(1)

			service := &Service{
				events:     make(chan Event, 1),
				workerPool: workerPool,
			}

			ctx, cancel := context.WithCancel(context.Background())
			go service.run(ctx)

			service.events <- Event{Type: BookingCreated, UserID: 1}
			time.Sleep(50 * time.Millisecond)
			cancel()
			time.Sleep(20 * time.Millisecond)
		})
	}
}

func TestService_deliver(t *testing.T) {
	event := Event{Type: BookingConfirmed, UserID: 2, OccurredAt: time.Now()}

	tests := []struct {
		name          string
		prepareMock   func(client *clients.MockHTTPClientI)
		ctx           func() context.Context
		expectedError string
	}{
		{
			name: "delivers on first attempt",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					assert.Equal(t, http.MethodPost, req.Method)
					assert.Equal(t, "http://localhost:8082/api/notifications", req.URL.String())
					assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

					body, err := io.ReadAll(req.Body)
					require.NoError(t, err)
					var got Event
					require.NoError(t, json.Unmarshal(body, &got))
					assert.Equal(t, BookingConfirmed, got.Type)
					return gatewayResponse(http.StatusOK), nil
				}).Times(1)
			},
			ctx: context.Background,
		},
		{
			name: "retries after server error",
			prepareMock: func(client *clients.MockHTTPClientI) {
				gomock.InOrder(
					client.EXPECT().Do(gomock.Any()).Return(gatewayResponse(http.StatusInternalServerError), nil),
					client.EXPECT().Do(gomock.Any()).Return(gatewayResponse(http.StatusAccepted), nil),
				)
			},
			ctx: context.Background,
		},
		{
			name: "honors the rate limit header",
			prepareMock: func(client *clients.MockHTTPClientI) {
				limited := gatewayResponse(http.StatusTooManyRequests)
				limited.Header.Set("Retry-After", "0")
				gomock.InOrder(
					client.EXPECT().Do(gomock.Any()).Return(limited, nil),
					client.EXPECT().Do(gomock.Any()).Return(gatewayResponse(http.StatusOK), nil),
				)
			},
			ctx: context.Background,
		},
		{
			name:        "stops on canceled context",
			prepareMock: func(client *clients.MockHTTPClientI) {},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			expectedError: context.Canceled.Error(),
		},
		{
			name: "gives up after exhausting retries",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused")).Times(3)
			},
			ctx:           context.Background,
			expectedError: "failed to deliver BOOKING_CONFIRMED event after 3 retries: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client := NewMock(t)
			tt.prepareMock(client)

			err := service.deliver(tt.ctx(), event)
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
