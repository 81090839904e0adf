package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Create(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewSessionService(repo, bookingRepo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	session, err := svc.Create(context.Background(), domain.CreateSessionInput{
		Title:       "Evening Pilates",
		ClassTypeID: "pilates",
		LocationID:  "loc-1",
		StartsAt:    time.Now().Add(24 * time.Hour),
		EndsAt:      time.Now().Add(25 * time.Hour),
		Capacity:    12,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, domain.SessionStatusScheduled, session.Status)
	assert.Equal(t, 12, session.Capacity)
}

func TestSessionService_Create_ZeroCapacity(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewSessionService(repo, bookingRepo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	// сеанс без мест: все записи сразу уходят в лист ожидания
	session, err := svc.Create(context.Background(), domain.CreateSessionInput{
		Title:       "Waitlist Only",
		ClassTypeID: "yoga",
		LocationID:  "loc-1",
		StartsAt:    time.Now().Add(24 * time.Hour),
		EndsAt:      time.Now().Add(25 * time.Hour),
		Capacity:    0,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, session.Capacity)
}

func TestSessionService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewSessionService(repo, bookingRepo, newTestLogger(t))

	cases := []struct {
		name  string
		input domain.CreateSessionInput
	}{
		{
			name: "empty title",
			input: domain.CreateSessionInput{
				StartsAt: time.Now().Add(time.Hour),
				EndsAt:   time.Now().Add(2 * time.Hour),
				Capacity: 10,
			},
		},
		{
			name: "negative capacity",
			input: domain.CreateSessionInput{
				Title:    "Yoga",
				StartsAt: time.Now().Add(time.Hour),
				EndsAt:   time.Now().Add(2 * time.Hour),
				Capacity: -1,
			},
		},
		{
			name: "ends before starts",
			input: domain.CreateSessionInput{
				Title:    "Yoga",
				StartsAt: time.Now().Add(2 * time.Hour),
				EndsAt:   time.Now().Add(time.Hour),
				Capacity: 10,
			},
		},
		{
			name: "starts in the past",
			input: domain.CreateSessionInput{
				Title:    "Yoga",
				StartsAt: time.Now().Add(-time.Hour),
				EndsAt:   time.Now().Add(time.Hour),
				Capacity: 10,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSessionService_Complete_MarksNoShows(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewSessionService(repo, bookingRepo, newTestLogger(t))

	completed := &domain.Session{ID: "s1", Status: domain.SessionStatusCompleted}
	noShows := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusNoShow},
		{ID: "b2", Status: domain.BookingStatusNoShow},
	}

	repo.EXPECT().Complete(mock.Anything, "s1").Return(completed, noShows, nil)

	session, err := svc.Complete(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusCompleted, session.Status)
}

func TestSessionService_Complete_NotActive(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewSessionService(repo, bookingRepo, newTestLogger(t))

	repo.EXPECT().Complete(mock.Anything, "s1").Return(nil, nil, domain.ErrSessionNotActive)

	_, err := svc.Complete(context.Background(), "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotActive)
}

func TestSessionService_CompleteEnded(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewSessionService(repo, bookingRepo, newTestLogger(t))

	repo.EXPECT().ListEnded(mock.Anything, mock.Anything).Return([]string{"s1", "s2"}, nil)
	repo.EXPECT().Complete(mock.Anything, "s1").
		Return(&domain.Session{ID: "s1", Status: domain.SessionStatusCompleted}, nil, nil)
	repo.EXPECT().Complete(mock.Anything, "s2").
		Return(&domain.Session{ID: "s2", Status: domain.SessionStatusCompleted}, nil, nil)

	completed, err := svc.CompleteEnded(context.Background())

	require.NoError(t, err)
	assert.Len(t, completed, 2)
}

func TestSessionService_CompleteEnded_SkipsAlreadyCompleted(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewSessionService(repo, bookingRepo, newTestLogger(t))

	repo.EXPECT().ListEnded(mock.Anything, mock.Anything).Return([]string{"s1", "s2"}, nil)
	// s1 завершили вручную между выборкой и завершением
	repo.EXPECT().Complete(mock.Anything, "s1").Return(nil, nil, domain.ErrSessionNotActive)
	repo.EXPECT().Complete(mock.Anything, "s2").
		Return(&domain.Session{ID: "s2", Status: domain.SessionStatusCompleted}, nil, nil)

	completed, err := svc.CompleteEnded(context.Background())

	require.NoError(t, err)
	assert.Len(t, completed, 1)
	assert.Equal(t, "s2", completed[0].ID)
}

func TestSessionService_CompleteEnded_ListError(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewSessionService(repo, bookingRepo, newTestLogger(t))

	repo.EXPECT().ListEnded(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.CompleteEnded(context.Background())

	require.Error(t, err)
}

func TestSessionService_Roster(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewSessionService(repo, bookingRepo, newTestLogger(t))

	roster := []*domain.BookingWithMember{
		{
			Booking: domain.Booking{ID: "b1", Status: domain.BookingStatusBooked},
			Member:  domain.Member{ID: "m1", Name: "Alice"},
		},
	}

	repo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1"}, nil)
	bookingRepo.EXPECT().ListRoster(mock.Anything, "s1").Return(roster, nil)

	result, err := svc.Roster(context.Background(), "s1")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Alice", result[0].Member.Name)
}

func TestSessionService_Roster_SessionNotFound(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewSessionService(repo, bookingRepo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSessionNotFound)

	_, err := svc.Roster(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_Waitlist(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewSessionService(repo, bookingRepo, newTestLogger(t))

	pos := 1
	waitlist := []*domain.BookingWithMember{
		{
			Booking: domain.Booking{ID: "b1", Status: domain.BookingStatusWaitlisted, WaitlistPosition: &pos},
			Member:  domain.Member{ID: "m1", Name: "Alice"},
		},
	}

	repo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1"}, nil)
	bookingRepo.EXPECT().ListWaitlist(mock.Anything, "s1").Return(waitlist, nil)

	result, err := svc.Waitlist(context.Background(), "s1")

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].WaitlistPosition)
	assert.Equal(t, 1, *result[0].WaitlistPosition)
}
