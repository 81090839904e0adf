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

const entitlementColumns = `id, member_id, kind, credits_remaining, credits_used,
	location_ids, class_type_ids, starts_at, ends_at, created_at`

type EntitlementRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEntitlementRepo(db *dbpg.DB) *EntitlementRepository {
	return &EntitlementRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanEntitlement(row rowScanner) (*domain.EntitlementSource, error) {
	var s domain.EntitlementSource
	if err := row.Scan(
		&s.ID, &s.MemberID, &s.Kind, &s.CreditsRemaining, &s.CreditsUsed,
		pq.Array(&s.LocationIDs), pq.Array(&s.ClassTypeIDs),
		&s.StartsAt, &s.EndsAt, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *EntitlementRepository) Create(ctx context.Context, s *domain.EntitlementSource) error {
	query := `INSERT INTO entitlement_sources (id, member_id, kind, credits_remaining, credits_used, location_ids, class_type_ids, starts_at, ends_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.MemberID, s.Kind, s.CreditsRemaining, s.CreditsUsed,
		pq.Array(s.LocationIDs), pq.Array(s.ClassTypeIDs),
		s.StartsAt, s.EndsAt, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert entitlement source: %w", err)
	}

	return nil
}

func (r *EntitlementRepository) GetByID(ctx context.Context, id string) (*domain.EntitlementSource, error) {
	query := `SELECT ` + entitlementColumns + ` FROM entitlement_sources WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get entitlement source: %w", err)
	}

	s, err := scanEntitlement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoEntitlement
		}
		return nil, fmt.Errorf("scan entitlement source: %w", err)
	}

	return s, nil
}

func (r *EntitlementRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.EntitlementSource, error) {
	query := `SELECT ` + entitlementColumns + `
			  FROM entitlement_sources
			  WHERE member_id = $1
			  ORDER BY ends_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("list entitlement sources: %w", err)
	}
	defer rows.Close()

	return collectEntitlements(rows)
}

// ListActiveByMember возвращает источники с открытым окном действия;
// пригодность по ограничениям и остатку кредитов решает domain.ResolveSource.
func (r *EntitlementRepository) ListActiveByMember(ctx context.Context, memberID string, now time.Time) ([]*domain.EntitlementSource, error) {
	query := `SELECT ` + entitlementColumns + `
			  FROM entitlement_sources
			  WHERE member_id = $1 AND starts_at <= $2 AND ends_at >= $2
			  ORDER BY ends_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, memberID, now)
	if err != nil {
		return nil, fmt.Errorf("list active entitlement sources: %w", err)
	}
	defer rows.Close()

	return collectEntitlements(rows)
}

func collectEntitlements(rows *sql.Rows) ([]*domain.EntitlementSource, error) {
	var res []*domain.EntitlementSource
	for rows.Next() {
		s, err := scanEntitlement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entitlement source: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}
