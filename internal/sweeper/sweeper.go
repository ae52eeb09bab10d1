package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type RequestExpirer interface {
	AutoExpireRequests(ctx context.Context) (int64, error)
}

const sweepInterval = time.Hour

// Service finalizes stale PENDING skill requests on a fixed schedule.
// The expiry itself only touches rows still PENDING, so racing a
// concurrent accept or reject is safe.
type Service struct {
	requests RequestExpirer
	interval time.Duration
}

func New(requests RequestExpirer) *Service {
	return &Service{
		requests: requests,
		interval: sweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Request expiry sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			if _, err := s.requests.AutoExpireRequests(ctx); err != nil {
				zap.L().Error("Request expiry sweep failed", zap.Error(err))
			}
		}
	}
}
