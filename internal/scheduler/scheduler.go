package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sessionCompleter interface {
	CompleteEnded(ctx context.Context) ([]*domain.Session, error)
}

// Scheduler периодически завершает сеансы, чьё время вышло;
// завершение массово отмечает no-show (см. SessionService).
type Scheduler struct {
	sessionService sessionCompleter
	interval       time.Duration
	logger         logger.Logger
}

func New(
	sessionService sessionCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sessionService: sessionService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.sessionService.CompleteEnded(ctx)
	if err != nil {
		s.logger.Error("failed to complete ended sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, session := range completed {
		s.logger.Info("session swept",
			logger.String("session_id", session.ID),
			logger.String("title", session.Title),
		)
	}
}
