package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newMockBookingRepo(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, smock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBookingRepo(&dbpg.DB{Master: db}), smock
}

func bookingRow(id, sessionID, memberID string, status domain.BookingStatus, pos, creditSourceID driver.Value, at time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "session_id", "member_id", "status", "waitlist_position",
		"credit_source_id", "check_in_method", "booked_at", "cancelled_at",
		"checked_in_at", "promoted_at", "updated_at",
	}).AddRow(id, sessionID, memberID, string(status), pos, creditSourceID, nil, at, nil, nil, nil, at)
}

func TestBookingRepository_Cancel_CompactsWaitlistAfterMidListRemoval(t *testing.T) {
	repo, smock := newMockBookingRepo(t)

	now := time.Now().UTC()

	smock.ExpectBegin()
	smock.ExpectQuery(`SELECT session_id FROM bookings`).
		WithArgs("b2", "m2").
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}).AddRow("s1"))
	smock.ExpectQuery(`FOR UPDATE`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"booked_count", "waitlist_count"}).AddRow(5, 3))
	smock.ExpectQuery(`FROM bookings WHERE id`).
		WithArgs("b2").
		WillReturnRows(bookingRow("b2", "s1", "m2", domain.BookingStatusWaitlisted, 2, nil, now))
	// хвост листа сдвигается на освободившуюся позицию: {1,2,3} -> {1,2}
	smock.ExpectExec(`waitlist_position = waitlist_position - 1`).
		WithArgs("s1", domain.BookingStatusWaitlisted, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`UPDATE bookings`).
		WithArgs("b2", domain.BookingStatusCancelled, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`UPDATE sessions`).
		WithArgs("s1", 5, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`INSERT INTO booking_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectCommit()

	cancelled, freed, refunded, err := repo.Cancel(context.Background(), "b2", "m2", now.Add(time.Hour))

	require.NoError(t, err)
	assert.False(t, freed)
	assert.False(t, refunded)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)
	require.NoError(t, smock.ExpectationsWereMet())
}

func TestBookingRepository_Cancel_RefundsWithinDeadline(t *testing.T) {
	repo, smock := newMockBookingRepo(t)

	now := time.Now().UTC()

	smock.ExpectBegin()
	smock.ExpectQuery(`SELECT session_id FROM bookings`).
		WithArgs("b1", "m1").
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}).AddRow("s1"))
	smock.ExpectQuery(`FOR UPDATE`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"booked_count", "waitlist_count"}).AddRow(5, 0))
	smock.ExpectQuery(`FROM bookings WHERE id`).
		WithArgs("b1").
		WillReturnRows(bookingRow("b1", "s1", "m1", domain.BookingStatusBooked, nil, "e1", now))
	smock.ExpectExec(`UPDATE entitlement_sources`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`UPDATE bookings`).
		WithArgs("b1", domain.BookingStatusCancelled, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`UPDATE sessions`).
		WithArgs("s1", 4, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`INSERT INTO booking_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectCommit()

	_, freed, refunded, err := repo.Cancel(context.Background(), "b1", "m1", now.Add(time.Hour))

	require.NoError(t, err)
	assert.True(t, freed)
	assert.True(t, refunded)
	require.NoError(t, smock.ExpectationsWereMet())
}

func TestBookingRepository_Cancel_NoRefundPastDeadline(t *testing.T) {
	repo, smock := newMockBookingRepo(t)

	now := time.Now().UTC()

	smock.ExpectBegin()
	smock.ExpectQuery(`SELECT session_id FROM bookings`).
		WithArgs("b1", "m1").
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}).AddRow("s1"))
	smock.ExpectQuery(`FOR UPDATE`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"booked_count", "waitlist_count"}).AddRow(5, 0))
	smock.ExpectQuery(`FROM bookings WHERE id`).
		WithArgs("b1").
		WillReturnRows(bookingRow("b1", "s1", "m1", domain.BookingStatusBooked, nil, "e1", now))
	// дедлайн позади: обновления entitlement_sources быть не должно
	smock.ExpectExec(`UPDATE bookings`).
		WithArgs("b1", domain.BookingStatusCancelled, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`UPDATE sessions`).
		WithArgs("s1", 4, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`INSERT INTO booking_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectCommit()

	_, freed, refunded, err := repo.Cancel(context.Background(), "b1", "m1", now.Add(-time.Hour))

	require.NoError(t, err)
	assert.True(t, freed)
	assert.False(t, refunded)
	require.NoError(t, smock.ExpectationsWereMet())
}

func TestBookingRepository_Promote_SeatAlreadyRetaken(t *testing.T) {
	repo, smock := newMockBookingRepo(t)

	smock.ExpectBegin()
	smock.ExpectQuery(`SELECT session_id FROM bookings`).
		WithArgs("b2").
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}).AddRow("s1"))
	smock.ExpectQuery(`FOR UPDATE`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"capacity", "booked_count", "waitlist_count", "status"}).
			AddRow(10, 10, 2, string(domain.SessionStatusScheduled)))
	smock.ExpectRollback()

	_, err := repo.Promote(context.Background(), "b2", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionFull)
	require.NoError(t, smock.ExpectationsWereMet())
}

func TestBookingRepository_Book_ReusesCancelledRow(t *testing.T) {
	repo, smock := newMockBookingRepo(t)

	credit := "e1"
	b := &domain.Booking{ID: "b-new", SessionID: "s1", MemberID: "m1", CreditSourceID: &credit}
	starts := time.Now().UTC().Add(24 * time.Hour)

	smock.ExpectBegin()
	smock.ExpectQuery(`FOR UPDATE`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"capacity", "booked_count", "waitlist_count", "status", "starts_at"}).
			AddRow(10, 4, 0, string(domain.SessionStatusScheduled), starts))
	smock.ExpectQuery(`status <>`).
		WithArgs("s1", "m1", domain.BookingStatusCancelled).
		WillReturnError(sql.ErrNoRows)
	smock.ExpectQuery(`ORDER BY updated_at DESC`).
		WithArgs("s1", "m1", domain.BookingStatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("b-old"))
	smock.ExpectExec(`UPDATE entitlement_sources`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`check_in_method = NULL`).
		WithArgs("b-old", domain.BookingStatusBooked, nil, "e1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`UPDATE sessions`).
		WithArgs("s1", 5, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`INSERT INTO booking_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectCommit()

	got, err := repo.Book(context.Background(), b)

	require.NoError(t, err)
	// та же строка пары: история отмены остаётся в booking_events
	assert.Equal(t, "b-old", got.ID)
	assert.Equal(t, domain.BookingStatusBooked, got.Status)
	assert.Nil(t, got.CancelledAt)
	require.NoError(t, smock.ExpectationsWereMet())
}

func TestBookingRepository_Book_ZeroCapacityGoesToWaitlist(t *testing.T) {
	repo, smock := newMockBookingRepo(t)

	credit := "e1"
	b := &domain.Booking{ID: "b-new", SessionID: "s1", MemberID: "m1", CreditSourceID: &credit}
	starts := time.Now().UTC().Add(24 * time.Hour)

	smock.ExpectBegin()
	smock.ExpectQuery(`FOR UPDATE`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"capacity", "booked_count", "waitlist_count", "status", "starts_at"}).
			AddRow(0, 0, 0, string(domain.SessionStatusScheduled), starts))
	smock.ExpectQuery(`status <>`).
		WithArgs("s1", "m1", domain.BookingStatusCancelled).
		WillReturnError(sql.ErrNoRows)
	smock.ExpectQuery(`ORDER BY updated_at DESC`).
		WithArgs("s1", "m1", domain.BookingStatusCancelled).
		WillReturnError(sql.ErrNoRows)
	smock.ExpectExec(`INSERT INTO bookings`).
		WithArgs("b-new", "s1", "m1", domain.BookingStatusWaitlisted, 1, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`UPDATE sessions`).
		WithArgs("s1", 0, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectExec(`INSERT INTO booking_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	smock.ExpectCommit()

	got, err := repo.Book(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusWaitlisted, got.Status)
	require.NotNil(t, got.WaitlistPosition)
	assert.Equal(t, 1, *got.WaitlistPosition)
	// кредит в листе ожидания не списывается
	assert.Nil(t, got.CreditSourceID)
	require.NoError(t, smock.ExpectationsWereMet())
}
