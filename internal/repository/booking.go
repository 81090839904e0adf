package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// rosterStatuses — брони, занимающие (или занимавшие) место в сеансе.
var rosterStatuses = []domain.BookingStatus{
	domain.BookingStatusBooked,
	domain.BookingStatusCheckedIn,
	domain.BookingStatusNoShow,
}

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Book(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем строку сеанса — критическая секция на весь переход
	var capacity, bookedCount, waitlistCount int
	var status domain.SessionStatus
	var startsAt time.Time
	lockQuery := `SELECT capacity, booked_count, waitlist_count, status, starts_at
				  FROM sessions WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.SessionID).Scan(
		&capacity, &bookedCount, &waitlistCount, &status, &startsAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("lock session: %w", err)
	}

	now := time.Now().UTC()
	if status != domain.SessionStatusScheduled {
		return nil, domain.ErrSessionNotScheduled
	}
	if !now.Before(startsAt) {
		return nil, domain.ErrSessionStarted
	}

	// Активная бронь этой пары уже есть?
	var existingID string
	activeQuery := `SELECT id FROM bookings
					WHERE session_id = $1 AND member_id = $2 AND status <> $3
					LIMIT 1`
	err = tx.QueryRowContext(ctx, activeQuery, b.SessionID, b.MemberID, domain.BookingStatusCancelled).
		Scan(&existingID)
	if err == nil {
		return nil, domain.ErrAlreadyBooked
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check active booking: %w", err)
	}

	// Отменённая строка пары переоткрывается вместо вставки новой
	var reuseID string
	reuseQuery := `SELECT id FROM bookings
				   WHERE session_id = $1 AND member_id = $2 AND status = $3
				   ORDER BY updated_at DESC
				   LIMIT 1`
	err = tx.QueryRowContext(ctx, reuseQuery, b.SessionID, b.MemberID, domain.BookingStatusCancelled).
		Scan(&reuseID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find cancelled booking: %w", err)
	}

	if bookedCount < capacity {
		b.Status = domain.BookingStatusBooked
		b.WaitlistPosition = nil
		if b.CreditSourceID != nil {
			if err = deductCredit(ctx, tx, *b.CreditSourceID); err != nil {
				return nil, err
			}
		}
		bookedCount++
	} else {
		b.Status = domain.BookingStatusWaitlisted
		pos := waitlistCount + 1
		b.WaitlistPosition = &pos
		b.CreditSourceID = nil // в листе ожидания кредит не списывается
		waitlistCount++
	}
	b.BookedAt = now
	b.UpdatedAt = now
	b.CancelledAt, b.CheckedInAt, b.PromotedAt = nil, nil, nil
	b.CheckInMethod = nil

	if reuseID != "" {
		b.ID = reuseID
		reopenQuery := `UPDATE bookings
						SET status = $2, waitlist_position = $3, credit_source_id = $4,
							check_in_method = NULL, booked_at = $5, cancelled_at = NULL,
							checked_in_at = NULL, promoted_at = NULL, updated_at = $5
						WHERE id = $1`
		if _, err = tx.ExecContext(ctx, reopenQuery,
			b.ID, b.Status, b.WaitlistPosition, b.CreditSourceID, now,
		); err != nil {
			return nil, fmt.Errorf("reopen booking: %w", err)
		}
	} else {
		insertQuery := `INSERT INTO bookings (id, session_id, member_id, status, waitlist_position, credit_source_id, booked_at, updated_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
		if _, err = tx.ExecContext(ctx, insertQuery,
			b.ID, b.SessionID, b.MemberID, b.Status, b.WaitlistPosition, b.CreditSourceID, now,
		); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return nil, domain.ErrAlreadyBooked
			}
			return nil, fmt.Errorf("insert booking: %w", err)
		}
	}

	if err = updateSessionCounters(ctx, tx, b.SessionID, bookedCount, waitlistCount); err != nil {
		return nil, err
	}

	evt := domain.BookingEventBooked
	if b.Status == domain.BookingStatusWaitlisted {
		evt = domain.BookingEventWaitlisted
	}
	if err = insertBookingEvent(ctx, tx, b, evt); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) GetActiveBySessionAndMember(ctx context.Context, sessionID, memberID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE session_id = $1 AND member_id = $2 AND status = ANY($3)
			  ORDER BY updated_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, sessionID, memberID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("get active booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, bookingID, memberID string, refundBefore time.Time) (*domain.Booking, bool, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var sessionID string
	findQuery := `SELECT session_id FROM bookings WHERE id = $1 AND member_id = $2`
	if err = tx.QueryRowContext(ctx, findQuery, bookingID, memberID).Scan(&sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, false, domain.ErrBookingNotFound
		}
		return nil, false, false, fmt.Errorf("find booking: %w", err)
	}

	var bookedCount, waitlistCount int
	lockQuery := `SELECT booked_count, waitlist_count FROM sessions WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, sessionID).Scan(&bookedCount, &waitlistCount); err != nil {
		return nil, false, false, fmt.Errorf("lock session: %w", err)
	}

	// статус перечитывается под блокировкой
	b, err := scanBooking(tx.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, bookingID))
	if err != nil {
		return nil, false, false, fmt.Errorf("reread booking: %w", err)
	}
	if !b.Active() {
		return nil, false, false, domain.ErrBookingNotActive
	}

	now := time.Now().UTC()
	freed := b.Status == domain.BookingStatusBooked
	refunded := false
	if freed {
		bookedCount--
		// возврат решается по перечитанной строке: к этому моменту бронь
		// могли продвинуть с листа ожидания со списанием кредита
		if b.CreditSourceID != nil && now.Before(refundBefore) {
			if err = refundCredit(ctx, tx, *b.CreditSourceID); err != nil {
				return nil, false, false, err
			}
			refunded = true
		}
	} else {
		waitlistCount--
		if err = compactWaitlist(ctx, tx, sessionID, *b.WaitlistPosition); err != nil {
			return nil, false, false, err
		}
	}

	cancelQuery := `UPDATE bookings
					SET status = $2, waitlist_position = NULL, cancelled_at = $3, updated_at = $3
					WHERE id = $1`
	if _, err = tx.ExecContext(ctx, cancelQuery, bookingID, domain.BookingStatusCancelled, now); err != nil {
		return nil, false, false, fmt.Errorf("cancel booking: %w", err)
	}

	if err = updateSessionCounters(ctx, tx, sessionID, bookedCount, waitlistCount); err != nil {
		return nil, false, false, err
	}

	b.Status = domain.BookingStatusCancelled
	b.WaitlistPosition = nil
	b.CancelledAt = &now
	b.UpdatedAt = now
	if err = insertBookingEvent(ctx, tx, b, domain.BookingEventCancelled); err != nil {
		return nil, false, false, err
	}

	if err = tx.Commit(); err != nil {
		return nil, false, false, fmt.Errorf("commit cancel: %w", err)
	}

	return b, freed, refunded, nil
}

func (r *BookingRepository) CheckIn(ctx context.Context, bookingID string, method domain.CheckInMethod) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, checked_in_at = now(), check_in_method = $3, updated_at = now()
			  WHERE id = $1 AND status = $4
			  RETURNING ` + bookingColumns
	b, err := scanBooking(tx.QueryRowContext(ctx, query,
		bookingID, domain.BookingStatusCheckedIn, method, domain.BookingStatusBooked,
	))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("check in booking: %w", err)
		}
		// определяем причину: брони нет или статус не booked
		var status domain.BookingStatus
		scanErr := tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1`, bookingID).Scan(&status)
		if scanErr != nil {
			return nil, domain.ErrBookingNotFound
		}
		return nil, domain.ErrBookingNotBooked
	}

	if err = insertBookingEvent(ctx, tx, b, domain.BookingEventCheckedIn); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit check-in: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) NextWaitlisted(ctx context.Context, sessionID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE session_id = $1 AND status = $2
			  ORDER BY waitlist_position ASC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, sessionID, domain.BookingStatusWaitlisted)
	if err != nil {
		return nil, fmt.Errorf("next waitlisted: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) Promote(ctx context.Context, bookingID string, creditSourceID *string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var sessionID string
	if err = tx.QueryRowContext(ctx, `SELECT session_id FROM bookings WHERE id = $1`, bookingID).
		Scan(&sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	var capacity, bookedCount, waitlistCount int
	var status domain.SessionStatus
	lockQuery := `SELECT capacity, booked_count, waitlist_count, status
				  FROM sessions WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, sessionID).Scan(
		&capacity, &bookedCount, &waitlistCount, &status,
	); err != nil {
		return nil, fmt.Errorf("lock session: %w", err)
	}

	if status != domain.SessionStatusScheduled && status != domain.SessionStatusInProgress {
		return nil, domain.ErrSessionNotActive
	}
	if bookedCount >= capacity {
		// освободившееся место успел занять другой участник
		return nil, domain.ErrSessionFull
	}

	b, err := scanBooking(tx.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, bookingID))
	if err != nil {
		return nil, fmt.Errorf("reread booking: %w", err)
	}
	if b.Status != domain.BookingStatusWaitlisted {
		return nil, domain.ErrBookingNotActive
	}

	if creditSourceID != nil {
		if err = deductCredit(ctx, tx, *creditSourceID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	promoteQuery := `UPDATE bookings
					 SET status = $2, waitlist_position = NULL, credit_source_id = $3,
						 promoted_at = $4, updated_at = $4
					 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, promoteQuery,
		bookingID, domain.BookingStatusBooked, creditSourceID, now,
	); err != nil {
		return nil, fmt.Errorf("promote booking: %w", err)
	}

	if err = compactWaitlist(ctx, tx, sessionID, *b.WaitlistPosition); err != nil {
		return nil, err
	}
	if err = updateSessionCounters(ctx, tx, sessionID, bookedCount+1, waitlistCount-1); err != nil {
		return nil, err
	}

	b.Status = domain.BookingStatusBooked
	b.WaitlistPosition = nil
	b.CreditSourceID = creditSourceID
	b.PromotedAt = &now
	b.UpdatedAt = now
	if err = insertBookingEvent(ctx, tx, b, domain.BookingEventPromoted); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit promote: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) DropFromWaitlist(ctx context.Context, bookingID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var sessionID string
	if err = tx.QueryRowContext(ctx, `SELECT session_id FROM bookings WHERE id = $1`, bookingID).
		Scan(&sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("find booking: %w", err)
	}

	var bookedCount, waitlistCount int
	lockQuery := `SELECT booked_count, waitlist_count FROM sessions WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, sessionID).Scan(&bookedCount, &waitlistCount); err != nil {
		return fmt.Errorf("lock session: %w", err)
	}

	b, err := scanBooking(tx.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, bookingID))
	if err != nil {
		return fmt.Errorf("reread booking: %w", err)
	}
	if b.Status != domain.BookingStatusWaitlisted {
		return domain.ErrBookingNotActive
	}

	now := time.Now().UTC()
	dropQuery := `UPDATE bookings
				  SET status = $2, waitlist_position = NULL, cancelled_at = $3, updated_at = $3
				  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, dropQuery, bookingID, domain.BookingStatusCancelled, now); err != nil {
		return fmt.Errorf("drop from waitlist: %w", err)
	}

	if err = compactWaitlist(ctx, tx, sessionID, *b.WaitlistPosition); err != nil {
		return err
	}
	if err = updateSessionCounters(ctx, tx, sessionID, bookedCount, waitlistCount-1); err != nil {
		return err
	}

	b.Status = domain.BookingStatusCancelled
	if err = insertBookingEvent(ctx, tx, b, domain.BookingEventDropped); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit drop: %w", err)
	}

	return nil
}

func (r *BookingRepository) ListRoster(ctx context.Context, sessionID string) ([]*domain.BookingWithMember, error) {
	query := `SELECT ` + bookingColumnsQualified + `,
					 m.id, m.name, m.telegram_chat_id, m.created_at
			  FROM bookings b
			  JOIN members m ON m.id = b.member_id
			  WHERE b.session_id = $1 AND b.status = ANY($2)
			  ORDER BY b.booked_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, sessionID, pq.Array(rosterStatuses))
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	defer rows.Close()

	return collectBookingsWithMembers(rows)
}

func (r *BookingRepository) ListWaitlist(ctx context.Context, sessionID string) ([]*domain.BookingWithMember, error) {
	query := `SELECT ` + bookingColumnsQualified + `,
					 m.id, m.name, m.telegram_chat_id, m.created_at
			  FROM bookings b
			  JOIN members m ON m.id = b.member_id
			  WHERE b.session_id = $1 AND b.status = $2
			  ORDER BY b.waitlist_position`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, sessionID, domain.BookingStatusWaitlisted)
	if err != nil {
		return nil, fmt.Errorf("list waitlist: %w", err)
	}
	defer rows.Close()

	return collectBookingsWithMembers(rows)
}

func (r *BookingRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE member_id = $1
			  ORDER BY booked_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by member: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
