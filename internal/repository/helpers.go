package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ClassBooker/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

const bookingColumns = `id, session_id, member_id, status, waitlist_position,
	credit_source_id, check_in_method, booked_at, cancelled_at, checked_in_at, promoted_at, updated_at`

const bookingColumnsQualified = `b.id, b.session_id, b.member_id, b.status, b.waitlist_position,
	b.credit_source_id, b.check_in_method, b.booked_at, b.cancelled_at, b.checked_in_at, b.promoted_at, b.updated_at`

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var method *string
	if err := row.Scan(
		&b.ID, &b.SessionID, &b.MemberID, &b.Status, &b.WaitlistPosition,
		&b.CreditSourceID, &method, &b.BookedAt, &b.CancelledAt,
		&b.CheckedInAt, &b.PromotedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if method != nil {
		m := domain.CheckInMethod(*method)
		b.CheckInMethod = &m
	}
	return &b, nil
}

func insertBookingEvent(ctx context.Context, tx *sql.Tx, b *domain.Booking, typ domain.BookingEventType) error {
	query := `INSERT INTO booking_events (id, booking_id, session_id, member_id, type, occurred_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := tx.ExecContext(
		ctx, query,
		uuid.New().String(), b.ID, b.SessionID, b.MemberID, typ, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert booking event: %w", err)
	}
	return nil
}

func updateSessionCounters(ctx context.Context, tx *sql.Tx, sessionID string, bookedCount, waitlistCount int) error {
	query := `UPDATE sessions
			  SET booked_count = $2, waitlist_count = $3, updated_at = now()
			  WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, sessionID, bookedCount, waitlistCount); err != nil {
		return fmt.Errorf("update session counters: %w", err)
	}
	return nil
}

func collectBookingsWithMembers(rows *sql.Rows) ([]*domain.BookingWithMember, error) {
	var res []*domain.BookingWithMember
	for rows.Next() {
		var e domain.BookingWithMember
		var method *string
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.MemberID, &e.Status, &e.WaitlistPosition,
			&e.CreditSourceID, &method, &e.BookedAt, &e.CancelledAt,
			&e.CheckedInAt, &e.PromotedAt, &e.UpdatedAt,
			&e.Member.ID, &e.Member.Name, &e.Member.TelegramChatID, &e.Member.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan roster entry: %w", err)
		}
		if method != nil {
			m := domain.CheckInMethod(*method)
			e.CheckInMethod = &m
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// compactWaitlist сдвигает позиции после удалённой, чтобы они
// оставались непрерывными 1..waitlist_count.
func compactWaitlist(ctx context.Context, tx *sql.Tx, sessionID string, removedPos int) error {
	query := `UPDATE bookings
			  SET waitlist_position = waitlist_position - 1, updated_at = now()
			  WHERE session_id = $1 AND status = $2 AND waitlist_position > $3`
	if _, err := tx.ExecContext(ctx, query, sessionID, domain.BookingStatusWaitlisted, removedPos); err != nil {
		return fmt.Errorf("compact waitlist: %w", err)
	}
	return nil
}
