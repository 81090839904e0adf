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

const (
	DefaultCancellationWindow = 12 * time.Hour
)

// BookingPolicy — временные правила возврата кредита и окна отметки.
type BookingPolicy struct {
	CancellationWindow time.Duration
	CheckInLead        time.Duration
}

type BookingService struct {
	bookingRepo     ports.BookingRepo
	sessionRepo     ports.SessionRepo
	memberRepo      ports.MemberRepo
	entitlementRepo ports.EntitlementRepo
	notifier        ports.BookingNotifier
	tracker         ports.ActivityTracker
	policy          BookingPolicy
	logger          logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	sessionRepo ports.SessionRepo,
	memberRepo ports.MemberRepo,
	entitlementRepo ports.EntitlementRepo,
	notifier ports.BookingNotifier,
	tracker ports.ActivityTracker,
	policy BookingPolicy,
	logger logger.Logger,
) *BookingService {
	if policy.CancellationWindow == 0 {
		policy.CancellationWindow = DefaultCancellationWindow
	}
	if policy.CheckInLead == 0 {
		policy.CheckInLead = domain.DefaultCheckInLead
	}
	return &BookingService{
		bookingRepo:     bookingRepo,
		sessionRepo:     sessionRepo,
		memberRepo:      memberRepo,
		entitlementRepo: entitlementRepo,
		notifier:        notifier,
		tracker:         tracker,
		policy:          policy,
		logger:          logger,
	}
}

func (s *BookingService) Book(ctx context.Context, sessionID, memberID string) (*domain.Booking, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	now := time.Now().UTC()
	if session.Status != domain.SessionStatusScheduled {
		return nil, domain.ErrSessionNotScheduled
	}
	if !now.Before(session.StartsAt) {
		return nil, domain.ErrSessionStarted
	}

	source, err := s.resolveSource(ctx, memberID, session, now)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		MemberID:  memberID,
	}
	if source.ConsumesCredit() {
		id := source.ID
		booking.CreditSourceID = &id
	}

	// решение booked/waitlisted, счётчики и списание кредита —
	// одна транзакция под блокировкой сеанса
	booking, err = s.bookingRepo.Book(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("book session: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("session_id", sessionID),
		logger.String("member_id", memberID),
		logger.String("status", string(booking.Status)),
	)

	if booking.Status == domain.BookingStatusWaitlisted {
		go s.notifier.NotifyWaitlisted(context.WithoutCancel(ctx), member, session, *booking.WaitlistPosition)
	} else {
		go s.notifier.NotifyBooked(context.WithoutCancel(ctx), member, session)
	}

	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID, memberID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.MemberID != memberID {
		return nil, domain.ErrBookingNotFound
	}
	if !booking.Active() {
		return nil, domain.ErrBookingNotActive
	}

	session, err := s.sessionRepo.GetByID(ctx, booking.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	// кредит возвращается только до дедлайна отмены; само решение
	// принимает транзакция по строке, перечитанной под блокировкой
	refundBefore := session.StartsAt.Add(-s.policy.CancellationWindow)

	cancelled, freed, refunded, err := s.bookingRepo.Cancel(ctx, bookingID, memberID, refundBefore)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("session_id", session.ID),
		logger.String("member_id", memberID),
		logger.Any("credit_refunded", refunded),
	)

	if freed {
		// обрыв запроса после коммита не должен бросить лист ожидания
		s.promoteNext(context.WithoutCancel(ctx), session)
	}

	return cancelled, nil
}

func (s *BookingService) CheckIn(ctx context.Context, bookingID string, method domain.CheckInMethod) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.Status != domain.BookingStatusBooked {
		return nil, domain.ErrBookingNotBooked
	}

	session, err := s.sessionRepo.GetByID(ctx, booking.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if err = domain.ValidateCheckInWindow(time.Now().UTC(), session.StartsAt, session.EndsAt, s.policy.CheckInLead); err != nil {
		return nil, err
	}

	updated, err := s.bookingRepo.CheckIn(ctx, bookingID, method)
	if err != nil {
		return nil, fmt.Errorf("check in: %w", err)
	}

	s.logger.Info("member checked in",
		logger.String("booking_id", bookingID),
		logger.String("session_id", session.ID),
		logger.String("member_id", updated.MemberID),
		logger.String("method", string(method)),
	)

	// сигнал трекеру активности не блокирует и не откатывает отметку
	go s.tracker.TrackCheckIn(context.WithoutCancel(ctx), updated.MemberID, updated.SessionID, *updated.CheckedInAt)

	return updated, nil
}

func (s *BookingService) CheckInByLookup(ctx context.Context, sessionID, memberID string, method domain.CheckInMethod) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetActiveBySessionAndMember(ctx, sessionID, memberID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}

	return s.CheckIn(ctx, booking.ID, method)
}

func (s *BookingService) ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByMember(ctx, memberID)
}

// promoteNext — продвижение листа ожидания после освободившегося места.
// Ограниченный цикл: каждый непригодный кандидат навсегда удаляется из
// листа, так что итераций не больше текущей длины листа.
func (s *BookingService) promoteNext(ctx context.Context, session *domain.Session) {
	for {
		cand, err := s.bookingRepo.NextWaitlisted(ctx, session.ID)
		if errors.Is(err, domain.ErrBookingNotFound) {
			return
		}
		if err != nil {
			s.logger.Error("failed to fetch waitlist head",
				logger.String("session_id", session.ID),
				logger.String("error", err.Error()),
			)
			return
		}

		source, err := s.resolveSource(ctx, cand.MemberID, session, time.Now().UTC())
		if errors.Is(err, domain.ErrNoEntitlement) {
			s.dropCandidate(ctx, cand, session)
			continue
		}
		if err != nil {
			s.logger.Error("failed to resolve entitlement for promotion",
				logger.String("booking_id", cand.ID),
				logger.String("error", err.Error()),
			)
			return
		}

		var creditSourceID *string
		if source.ConsumesCredit() {
			id := source.ID
			creditSourceID = &id
		}

		promoted, err := s.bookingRepo.Promote(ctx, cand.ID, creditSourceID)
		switch {
		case errors.Is(err, domain.ErrSessionFull):
			// освободившееся место успел занять другой участник
			return
		case errors.Is(err, domain.ErrNoEntitlement):
			s.dropCandidate(ctx, cand, session)
			continue
		case errors.Is(err, domain.ErrBookingNotActive):
			continue
		case err != nil:
			s.logger.Error("failed to promote booking",
				logger.String("booking_id", cand.ID),
				logger.String("error", err.Error()),
			)
			return
		}

		s.logger.Info("booking promoted",
			logger.String("booking_id", promoted.ID),
			logger.String("session_id", session.ID),
			logger.String("member_id", promoted.MemberID),
		)

		member, err := s.memberRepo.GetByID(ctx, promoted.MemberID)
		if err != nil {
			s.logger.Error("failed to get member for promotion notification",
				logger.String("member_id", promoted.MemberID),
			)
			return
		}
		go s.notifier.NotifyPromoted(context.WithoutCancel(ctx), member, session)
		return
	}
}

func (s *BookingService) dropCandidate(ctx context.Context, cand *domain.Booking, session *domain.Session) {
	if err := s.bookingRepo.DropFromWaitlist(ctx, cand.ID); err != nil {
		s.logger.Error("failed to drop waitlist candidate",
			logger.String("booking_id", cand.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("waitlist candidate dropped",
		logger.String("booking_id", cand.ID),
		logger.String("session_id", session.ID),
		logger.String("member_id", cand.MemberID),
	)

	member, err := s.memberRepo.GetByID(ctx, cand.MemberID)
	if err != nil {
		s.logger.Error("failed to get member for drop notification",
			logger.String("member_id", cand.MemberID),
		)
		return
	}
	go s.notifier.NotifyCancelled(context.WithoutCancel(ctx), member, session)
}

func (s *BookingService) resolveSource(ctx context.Context, memberID string, session *domain.Session, now time.Time) (*domain.EntitlementSource, error) {
	sources, err := s.entitlementRepo.ListActiveByMember(ctx, memberID, now)
	if err != nil {
		return nil, fmt.Errorf("list entitlement sources: %w", err)
	}

	source := domain.ResolveSource(sources, session.ClassTypeID, session.LocationID, now)
	if source == nil {
		return nil, domain.ErrNoEntitlement
	}

	return source, nil
}
