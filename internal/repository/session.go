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

// openSessionStatuses — сеансы, которые ещё могут менять состояние.
var openSessionStatuses = []domain.SessionStatus{
	domain.SessionStatusScheduled,
	domain.SessionStatusInProgress,
}

const sessionColumns = `id, title, class_type_id, location_id, starts_at, ends_at,
	capacity, booked_count, waitlist_count, status, created_at, updated_at`

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(
		&s.ID, &s.Title, &s.ClassTypeID, &s.LocationID, &s.StartsAt, &s.EndsAt,
		&s.Capacity, &s.BookedCount, &s.WaitlistCount, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, title, class_type_id, location_id, starts_at, ends_at, capacity, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Title, s.ClassTypeID, s.LocationID, s.StartsAt, s.EndsAt,
		s.Capacity, s.Status, now,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return s, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY starts_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *SessionRepository) Start(ctx context.Context, id string) (*domain.Session, error) {
	query := `UPDATE sessions
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING ` + sessionColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, domain.SessionStatusInProgress, domain.SessionStatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	s, err := scanSession(row)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		// сеанса нет либо статус уже не scheduled
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, domain.ErrSessionNotScheduled
	}

	return s, nil
}

// Complete переводит сеанс в completed и массово отмечает no-show
// для всех броней в статусе booked, в одной транзакции. Счётчики и
// кредиты не трогаются: место было потрачено.
func (r *SessionRepository) Complete(ctx context.Context, id string) (*domain.Session, []*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.SessionStatus
	lockQuery := `SELECT status FROM sessions WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrSessionNotFound
		}
		return nil, nil, fmt.Errorf("lock session: %w", err)
	}

	if status != domain.SessionStatusScheduled && status != domain.SessionStatusInProgress {
		return nil, nil, domain.ErrSessionNotActive
	}

	noShowQuery := `UPDATE bookings
					SET status = $2, updated_at = now()
					WHERE session_id = $1 AND status = $3
					RETURNING ` + bookingColumns
	rows, err := tx.QueryContext(ctx, noShowQuery, id, domain.BookingStatusNoShow, domain.BookingStatusBooked)
	if err != nil {
		return nil, nil, fmt.Errorf("mark no-shows: %w", err)
	}

	var noShows []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("scan no-show: %w", err)
		}
		noShows = append(noShows, b)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, nil, fmt.Errorf("no-show rows: %w", err)
	}
	rows.Close()

	for _, b := range noShows {
		if err = insertBookingEvent(ctx, tx, b, domain.BookingEventNoShow); err != nil {
			return nil, nil, err
		}
	}

	completeQuery := `UPDATE sessions
					  SET status = $2, updated_at = now()
					  WHERE id = $1
					  RETURNING ` + sessionColumns
	s, err := scanSession(tx.QueryRowContext(ctx, completeQuery, id, domain.SessionStatusCompleted))
	if err != nil {
		return nil, nil, fmt.Errorf("complete session: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit complete: %w", err)
	}

	return s, noShows, nil
}

func (r *SessionRepository) ListEnded(ctx context.Context, now time.Time) ([]string, error) {
	query := `SELECT id FROM sessions
			  WHERE ends_at < $1 AND status = ANY($2)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, now, pq.Array(openSessionStatuses))
	if err != nil {
		return nil, fmt.Errorf("list ended sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan session id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
