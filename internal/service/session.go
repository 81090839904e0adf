package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SessionService struct {
	repo        ports.SessionRepo
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewSessionService(repo ports.SessionRepo, bookingRepo ports.BookingRepo, logger logger.Logger) *SessionService {
	return &SessionService{
		repo:        repo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

func (s *SessionService) Create(ctx context.Context, input domain.CreateSessionInput) (*domain.Session, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	// нулевая вместимость допустима: все записи уходят в лист ожидания
	if input.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, fmt.Errorf("%w: ends_at must be after starts_at", domain.ErrValidation)
	}
	if input.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}

	session := &domain.Session{
		ID:          uuid.New().String(),
		Title:       input.Title,
		ClassTypeID: input.ClassTypeID,
		LocationID:  input.LocationID,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Capacity:    input.Capacity,
		Status:      domain.SessionStatusScheduled,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return session, nil
}

func (s *SessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.repo.List(ctx)
}

func (s *SessionService) Start(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.repo.Start(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	s.logger.Info("session started",
		logger.String("session_id", id),
	)

	return session, nil
}

func (s *SessionService) Complete(ctx context.Context, id string) (*domain.Session, error) {
	session, noShows, err := s.repo.Complete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	s.logger.Info("session completed",
		logger.String("session_id", id),
		logger.Int("no_shows", len(noShows)),
	)

	return session, nil
}

// CompleteEnded завершает сеансы, чьё время вышло; вызывается планировщиком.
func (s *SessionService) CompleteEnded(ctx context.Context) ([]*domain.Session, error) {
	ids, err := s.repo.ListEnded(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list ended sessions: %w", err)
	}

	var completed []*domain.Session
	for _, id := range ids {
		session, noShows, err := s.repo.Complete(ctx, id)
		if err != nil {
			// сеанс могли завершить вручную между выборкой и завершением
			if errors.Is(err, domain.ErrSessionNotActive) {
				continue
			}
			s.logger.Error("failed to complete ended session",
				logger.String("session_id", id),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.logger.Info("ended session completed",
			logger.String("session_id", id),
			logger.Int("no_shows", len(noShows)),
		)
		completed = append(completed, session)
	}

	return completed, nil
}

func (s *SessionService) Roster(ctx context.Context, sessionID string) ([]*domain.BookingWithMember, error) {
	if _, err := s.repo.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}

	return s.bookingRepo.ListRoster(ctx, sessionID)
}

func (s *SessionService) Waitlist(ctx context.Context, sessionID string) ([]*domain.BookingWithMember, error) {
	if _, err := s.repo.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}

	return s.bookingRepo.ListWaitlist(ctx, sessionID)
}
