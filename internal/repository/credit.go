package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

// Кредитные операции выполняются только внутри транзакции брони,
// чтобы баланс и статус брони двигались вместе.

func deductCredit(ctx context.Context, tx *sql.Tx, sourceID string) error {
	query := `UPDATE entitlement_sources
			  SET credits_remaining = credits_remaining - 1, credits_used = credits_used + 1
			  WHERE id = $1 AND credits_remaining > 0`
	res, err := tx.ExecContext(ctx, query, sourceID)
	if err != nil {
		return fmt.Errorf("deduct credit: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deduct credit rows affected: %w", err)
	}
	if rows == 0 {
		// источник исчерпан между выбором и транзакцией
		return domain.ErrNoEntitlement
	}

	return nil
}

func refundCredit(ctx context.Context, tx *sql.Tx, sourceID string) error {
	query := `UPDATE entitlement_sources
			  SET credits_remaining = credits_remaining + 1, credits_used = credits_used - 1
			  WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, sourceID); err != nil {
		return fmt.Errorf("refund credit: %w", err)
	}
	return nil
}
