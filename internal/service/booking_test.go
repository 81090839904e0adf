package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookingRepo     *mocks.MockBookingRepo
	sessionRepo     *mocks.MockSessionRepo
	memberRepo      *mocks.MockMemberRepo
	entitlementRepo *mocks.MockEntitlementRepo
	notifier        *mocks.MockBookingNotifier
	tracker         *mocks.MockActivityTracker
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo:     mocks.NewMockBookingRepo(t),
		sessionRepo:     mocks.NewMockSessionRepo(t),
		memberRepo:      mocks.NewMockMemberRepo(t),
		entitlementRepo: mocks.NewMockEntitlementRepo(t),
		notifier:        mocks.NewMockBookingNotifier(t),
		tracker:         mocks.NewMockActivityTracker(t),
	}
	svc := NewBookingService(
		m.bookingRepo, m.sessionRepo, m.memberRepo, m.entitlementRepo,
		m.notifier, m.tracker, BookingPolicy{}, newTestLogger(t),
	)
	return svc, m
}

func scheduledSession(startsIn time.Duration) *domain.Session {
	now := time.Now().UTC()
	return &domain.Session{
		ID:          "s1",
		Title:       "Morning Yoga",
		ClassTypeID: "yoga",
		LocationID:  "loc-1",
		StartsAt:    now.Add(startsIn),
		EndsAt:      now.Add(startsIn + time.Hour),
		Capacity:    10,
		Status:      domain.SessionStatusScheduled,
	}
}

func creditPack(id string, endsIn time.Duration) *domain.EntitlementSource {
	now := time.Now().UTC()
	return &domain.EntitlementSource{
		ID:               id,
		MemberID:         "m1",
		Kind:             domain.EntitlementKindCreditPack,
		CreditsRemaining: 5,
		StartsAt:         now.Add(-time.Hour),
		EndsAt:           now.Add(endsIn),
	}
}

func unlimited(id string) *domain.EntitlementSource {
	now := time.Now().UTC()
	return &domain.EntitlementSource{
		ID:       id,
		MemberID: "m1",
		Kind:     domain.EntitlementKindUnlimited,
		StartsAt: now.Add(-time.Hour),
		EndsAt:   now.Add(30 * 24 * time.Hour),
	}
}

func TestBookingService_Book_ConsumesCredit(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(24 * time.Hour)
	member := &domain.Member{ID: "m1", Name: "Alice"}
	pack := creditPack("e1", 7*24*time.Hour)

	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(member, nil)
	m.entitlementRepo.EXPECT().ListActiveByMember(mock.Anything, "m1", mock.Anything).
		Return([]*domain.EntitlementSource{pack}, nil)
	m.bookingRepo.EXPECT().Book(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			require.NotNil(t, b.CreditSourceID)
			assert.Equal(t, "e1", *b.CreditSourceID)
			b.Status = domain.BookingStatusBooked
			return b, nil
		})
	m.notifier.EXPECT().NotifyBooked(mock.Anything, member, session).Return()

	booking, err := svc.Book(context.Background(), "s1", "m1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusBooked, booking.Status)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_UnlimitedDoesNotConsumeCredit(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(24 * time.Hour)
	member := &domain.Member{ID: "m1", Name: "Alice"}

	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(member, nil)
	m.entitlementRepo.EXPECT().ListActiveByMember(mock.Anything, "m1", mock.Anything).
		Return([]*domain.EntitlementSource{unlimited("e1")}, nil)
	m.bookingRepo.EXPECT().Book(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			assert.Nil(t, b.CreditSourceID)
			b.Status = domain.BookingStatusBooked
			return b, nil
		})
	m.notifier.EXPECT().NotifyBooked(mock.Anything, member, session).Return()

	_, err := svc.Book(context.Background(), "s1", "m1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_Waitlisted(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(24 * time.Hour)
	member := &domain.Member{ID: "m1", Name: "Alice"}

	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(member, nil)
	m.entitlementRepo.EXPECT().ListActiveByMember(mock.Anything, "m1", mock.Anything).
		Return([]*domain.EntitlementSource{unlimited("e1")}, nil)
	m.bookingRepo.EXPECT().Book(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			pos := 3
			b.Status = domain.BookingStatusWaitlisted
			b.WaitlistPosition = &pos
			return b, nil
		})
	m.notifier.EXPECT().NotifyWaitlisted(mock.Anything, member, session, 3).Return()

	booking, err := svc.Book(context.Background(), "s1", "m1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusWaitlisted, booking.Status)
	require.NotNil(t, booking.WaitlistPosition)
	assert.Equal(t, 3, *booking.WaitlistPosition)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_NoEntitlement(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(24 * time.Hour)

	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(&domain.Member{ID: "m1"}, nil)
	m.entitlementRepo.EXPECT().ListActiveByMember(mock.Anything, "m1", mock.Anything).
		Return(nil, nil)

	_, err := svc.Book(context.Background(), "s1", "m1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoEntitlement)
}

func TestBookingService_Book_DrainedPackRejected(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(24 * time.Hour)
	drained := creditPack("e1", 7*24*time.Hour)
	drained.CreditsRemaining = 0

	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(&domain.Member{ID: "m1"}, nil)
	m.entitlementRepo.EXPECT().ListActiveByMember(mock.Anything, "m1", mock.Anything).
		Return([]*domain.EntitlementSource{drained}, nil)

	_, err := svc.Book(context.Background(), "s1", "m1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoEntitlement)
}

func TestBookingService_Book_SessionStarted(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(-time.Minute)

	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(&domain.Member{ID: "m1"}, nil)

	_, err := svc.Book(context.Background(), "s1", "m1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionStarted)
}

func TestBookingService_Book_SessionNotScheduled(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(24 * time.Hour)
	session.Status = domain.SessionStatusCancelled

	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(&domain.Member{ID: "m1"}, nil)

	_, err := svc.Book(context.Background(), "s1", "m1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotScheduled)
}

func TestBookingService_Book_SessionNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.sessionRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSessionNotFound)

	_, err := svc.Book(context.Background(), "missing", "m1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestBookingService_Cancel_RefundsBeforeDeadline(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(48 * time.Hour)
	creditID := "e1"
	booking := &domain.Booking{
		ID:             "b1",
		SessionID:      "s1",
		MemberID:       "m1",
		Status:         domain.BookingStatusBooked,
		CreditSourceID: &creditID,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "m1", session.StartsAt.Add(-12*time.Hour)).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}, true, true, nil)
	m.bookingRepo.EXPECT().NextWaitlisted(mock.Anything, "s1").Return(nil, domain.ErrBookingNotFound)

	cancelled, err := svc.Cancel(context.Background(), "b1", "m1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)
}

func TestBookingService_Cancel_NoRefundInsideWindow(t *testing.T) {
	svc, m := newBookingService(t)

	// до начала меньше 12 часов — дедлайн возврата уже позади
	session := scheduledSession(2 * time.Hour)
	creditID := "e1"
	booking := &domain.Booking{
		ID:             "b1",
		SessionID:      "s1",
		MemberID:       "m1",
		Status:         domain.BookingStatusBooked,
		CreditSourceID: &creditID,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "m1", session.StartsAt.Add(-12*time.Hour)).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}, true, false, nil)
	m.bookingRepo.EXPECT().NextWaitlisted(mock.Anything, "s1").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), "b1", "m1")

	require.NoError(t, err)
}

func TestBookingService_Cancel_WaitlistedDoesNotPromote(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(48 * time.Hour)
	pos := 2
	booking := &domain.Booking{
		ID:               "b1",
		SessionID:        "s1",
		MemberID:         "m1",
		Status:           domain.BookingStatusWaitlisted,
		WaitlistPosition: &pos,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "m1", mock.Anything).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}, false, false, nil)

	_, err := svc.Cancel(context.Background(), "b1", "m1")

	require.NoError(t, err)
}

func TestBookingService_Cancel_WrongMember(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID:        "b1",
		SessionID: "s1",
		MemberID:  "m1",
		Status:    domain.BookingStatusBooked,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.Cancel(context.Background(), "b1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID:        "b1",
		SessionID: "s1",
		MemberID:  "m1",
		Status:    domain.BookingStatusCancelled,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.Cancel(context.Background(), "b1", "m1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotActive)
}

func TestBookingService_Cancel_RefundDeadlineReachesTransaction(t *testing.T) {
	// между чтением брони и транзакцией отмены бронь могли продвинуть
	// с листа ожидания со списанием кредита; дедлайн возврата обязан
	// дойти до транзакции и при снимке "waitlisted"
	svc, m := newBookingService(t)

	session := scheduledSession(48 * time.Hour)
	pos := 1
	stale := &domain.Booking{
		ID:               "b1",
		SessionID:        "s1",
		MemberID:         "m1",
		Status:           domain.BookingStatusWaitlisted,
		WaitlistPosition: &pos,
	}
	creditID := "e1"

	var deadline time.Time
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(stale, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "m1", mock.Anything).
		Run(func(_ context.Context, _ string, _ string, refundBefore time.Time) {
			deadline = refundBefore
		}).
		Return(&domain.Booking{
			ID: "b1", Status: domain.BookingStatusCancelled, CreditSourceID: &creditID,
		}, true, true, nil)
	m.bookingRepo.EXPECT().NextWaitlisted(mock.Anything, "s1").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), "b1", "m1")

	require.NoError(t, err)
	assert.Equal(t, session.StartsAt.Add(-12*time.Hour), deadline)
}

func TestBookingService_Cancel_PromotionSurvivesRequestCancel(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(48 * time.Hour)
	booking := &domain.Booking{
		ID:        "b1",
		SessionID: "s1",
		MemberID:  "m1",
		Status:    domain.BookingStatusBooked,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "m1", mock.Anything).
		Run(func(_ context.Context, _ string, _ string, _ time.Time) {
			cancel() // клиент отвалился сразу после коммита отмены
		}).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}, true, false, nil)
	m.bookingRepo.EXPECT().NextWaitlisted(mock.Anything, "s1").
		RunAndReturn(func(ctx context.Context, _ string) (*domain.Booking, error) {
			assert.NoError(t, ctx.Err())
			return nil, domain.ErrBookingNotFound
		})

	_, err := svc.Cancel(ctx, "b1", "m1")

	require.NoError(t, err)
}

func TestBookingService_Cancel_PromotesWaitlistHead(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(48 * time.Hour)
	booking := &domain.Booking{
		ID:        "b1",
		SessionID: "s1",
		MemberID:  "m1",
		Status:    domain.BookingStatusBooked,
	}
	pos := 1
	candidate := &domain.Booking{
		ID:               "b2",
		SessionID:        "s1",
		MemberID:         "m2",
		Status:           domain.BookingStatusWaitlisted,
		WaitlistPosition: &pos,
	}
	promotedMember := &domain.Member{ID: "m2", Name: "Bob"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "m1", mock.Anything).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}, true, false, nil)

	m.bookingRepo.EXPECT().NextWaitlisted(mock.Anything, "s1").Return(candidate, nil)
	m.entitlementRepo.EXPECT().ListActiveByMember(mock.Anything, "m2", mock.Anything).
		Return([]*domain.EntitlementSource{unlimited("e2")}, nil)
	m.bookingRepo.EXPECT().Promote(mock.Anything, "b2", (*string)(nil)).
		Return(&domain.Booking{ID: "b2", SessionID: "s1", MemberID: "m2", Status: domain.BookingStatusBooked}, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m2").Return(promotedMember, nil)
	m.notifier.EXPECT().NotifyPromoted(mock.Anything, promotedMember, session).Return()

	_, err := svc.Cancel(context.Background(), "b1", "m1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_PromotionSkipsIneligibleCandidate(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(48 * time.Hour)
	booking := &domain.Booking{
		ID:        "b1",
		SessionID: "s1",
		MemberID:  "m1",
		Status:    domain.BookingStatusBooked,
	}
	pos1, pos2 := 1, 2
	broke := &domain.Booking{
		ID: "b2", SessionID: "s1", MemberID: "m2",
		Status: domain.BookingStatusWaitlisted, WaitlistPosition: &pos1,
	}
	eligible := &domain.Booking{
		ID: "b3", SessionID: "s1", MemberID: "m3",
		Status: domain.BookingStatusWaitlisted, WaitlistPosition: &pos2,
	}
	brokeMember := &domain.Member{ID: "m2", Name: "Bob"}
	eligibleMember := &domain.Member{ID: "m3", Name: "Carol"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "m1", mock.Anything).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}, true, false, nil)

	// у головы листа нет действующего абонемента — она выбывает
	m.bookingRepo.EXPECT().NextWaitlisted(mock.Anything, "s1").Return(broke, nil).Once()
	m.entitlementRepo.EXPECT().ListActiveByMember(mock.Anything, "m2", mock.Anything).
		Return(nil, nil)
	m.bookingRepo.EXPECT().DropFromWaitlist(mock.Anything, "b2").Return(nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m2").Return(brokeMember, nil)
	m.notifier.EXPECT().NotifyCancelled(mock.Anything, brokeMember, session).Return()

	// следующий кандидат проходит
	m.bookingRepo.EXPECT().NextWaitlisted(mock.Anything, "s1").Return(eligible, nil).Once()
	m.entitlementRepo.EXPECT().ListActiveByMember(mock.Anything, "m3", mock.Anything).
		Return([]*domain.EntitlementSource{creditPack("e3", 7*24*time.Hour)}, nil)
	m.bookingRepo.EXPECT().Promote(mock.Anything, "b3", mock.Anything).
		Return(&domain.Booking{ID: "b3", SessionID: "s1", MemberID: "m3", Status: domain.BookingStatusBooked}, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m3").Return(eligibleMember, nil)
	m.notifier.EXPECT().NotifyPromoted(mock.Anything, eligibleMember, session).Return()

	_, err := svc.Cancel(context.Background(), "b1", "m1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_PromotionStopsWhenSeatTaken(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(48 * time.Hour)
	booking := &domain.Booking{
		ID:        "b1",
		SessionID: "s1",
		MemberID:  "m1",
		Status:    domain.BookingStatusBooked,
	}
	pos := 1
	candidate := &domain.Booking{
		ID: "b2", SessionID: "s1", MemberID: "m2",
		Status: domain.BookingStatusWaitlisted, WaitlistPosition: &pos,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.bookingRepo.EXPECT().Cancel(mock.Anything, "b1", "m1", mock.Anything).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}, true, false, nil)
	m.bookingRepo.EXPECT().NextWaitlisted(mock.Anything, "s1").Return(candidate, nil)
	m.entitlementRepo.EXPECT().ListActiveByMember(mock.Anything, "m2", mock.Anything).
		Return([]*domain.EntitlementSource{unlimited("e2")}, nil)
	m.bookingRepo.EXPECT().Promote(mock.Anything, "b2", (*string)(nil)).
		Return(nil, domain.ErrSessionFull)

	_, err := svc.Cancel(context.Background(), "b1", "m1")

	require.NoError(t, err)
}

func TestBookingService_CheckIn_WithinWindow(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(15 * time.Minute)
	booking := &domain.Booking{
		ID:        "b1",
		SessionID: "s1",
		MemberID:  "m1",
		Status:    domain.BookingStatusBooked,
	}
	checkedInAt := time.Now().UTC()
	updated := &domain.Booking{
		ID:          "b1",
		SessionID:   "s1",
		MemberID:    "m1",
		Status:      domain.BookingStatusCheckedIn,
		CheckedInAt: &checkedInAt,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.bookingRepo.EXPECT().CheckIn(mock.Anything, "b1", domain.CheckInMethodQR).Return(updated, nil)
	m.tracker.EXPECT().TrackCheckIn(mock.Anything, "m1", "s1", checkedInAt).Return()

	result, err := svc.CheckIn(context.Background(), "b1", domain.CheckInMethodQR)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCheckedIn, result.Status)

	time.Sleep(50 * time.Millisecond) // goroutine tracker
}

func TestBookingService_CheckIn_TooEarly(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(2 * time.Hour)
	booking := &domain.Booking{
		ID:        "b1",
		SessionID: "s1",
		MemberID:  "m1",
		Status:    domain.BookingStatusBooked,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)

	_, err := svc.CheckIn(context.Background(), "b1", domain.CheckInMethodManual)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCheckInTooEarly)
}

func TestBookingService_CheckIn_TooLate(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(-2 * time.Hour) // сеанс уже закончился
	booking := &domain.Booking{
		ID:        "b1",
		SessionID: "s1",
		MemberID:  "m1",
		Status:    domain.BookingStatusBooked,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)

	_, err := svc.CheckIn(context.Background(), "b1", domain.CheckInMethodManual)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCheckInTooLate)
}

func TestBookingService_CheckIn_WaitlistedRejected(t *testing.T) {
	svc, m := newBookingService(t)

	pos := 1
	booking := &domain.Booking{
		ID:               "b1",
		SessionID:        "s1",
		MemberID:         "m1",
		Status:           domain.BookingStatusWaitlisted,
		WaitlistPosition: &pos,
	}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.CheckIn(context.Background(), "b1", domain.CheckInMethodManual)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotBooked)
}

func TestBookingService_CheckInByLookup(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(10 * time.Minute)
	booking := &domain.Booking{
		ID:        "b1",
		SessionID: "s1",
		MemberID:  "m1",
		Status:    domain.BookingStatusBooked,
	}
	checkedInAt := time.Now().UTC()
	updated := &domain.Booking{
		ID:          "b1",
		SessionID:   "s1",
		MemberID:    "m1",
		Status:      domain.BookingStatusCheckedIn,
		CheckedInAt: &checkedInAt,
	}

	m.bookingRepo.EXPECT().GetActiveBySessionAndMember(mock.Anything, "s1", "m1").Return(booking, nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.bookingRepo.EXPECT().CheckIn(mock.Anything, "b1", domain.CheckInMethodManual).Return(updated, nil)
	m.tracker.EXPECT().TrackCheckIn(mock.Anything, "m1", "s1", checkedInAt).Return()

	result, err := svc.CheckInByLookup(context.Background(), "s1", "m1", domain.CheckInMethodManual)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCheckedIn, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CheckInByLookup_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().GetActiveBySessionAndMember(mock.Anything, "s1", "m1").
		Return(nil, domain.ErrBookingNotFound)

	_, err := svc.CheckInByLookup(context.Background(), "s1", "m1", domain.CheckInMethodQR)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Book_PrefersSourceExpiringSoonest(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(24 * time.Hour)
	member := &domain.Member{ID: "m1", Name: "Alice"}
	longPack := creditPack("e-long", 60*24*time.Hour)
	shortPack := creditPack("e-short", 3*24*time.Hour)

	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(member, nil)
	m.entitlementRepo.EXPECT().ListActiveByMember(mock.Anything, "m1", mock.Anything).
		Return([]*domain.EntitlementSource{longPack, shortPack}, nil)
	m.bookingRepo.EXPECT().Book(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			require.NotNil(t, b.CreditSourceID)
			assert.Equal(t, "e-short", *b.CreditSourceID)
			b.Status = domain.BookingStatusBooked
			return b, nil
		})
	m.notifier.EXPECT().NotifyBooked(mock.Anything, member, session).Return()

	_, err := svc.Book(context.Background(), "s1", "m1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_RepoConflict(t *testing.T) {
	svc, m := newBookingService(t)

	session := scheduledSession(24 * time.Hour)

	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "m1").Return(&domain.Member{ID: "m1"}, nil)
	m.entitlementRepo.EXPECT().ListActiveByMember(mock.Anything, "m1", mock.Anything).
		Return([]*domain.EntitlementSource{unlimited("e1")}, nil)
	m.bookingRepo.EXPECT().Book(mock.Anything, mock.Anything).
		Return(nil, domain.ErrAlreadyBooked)

	_, err := svc.Book(context.Background(), "s1", "m1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}
