package ports

import (
	"context"
	"time"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

type EntitlementRepo interface {
	Create(ctx context.Context, s *domain.EntitlementSource) error
	GetByID(ctx context.Context, id string) (*domain.EntitlementSource, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.EntitlementSource, error)
	ListActiveByMember(ctx context.Context, memberID string, now time.Time) ([]*domain.EntitlementSource, error)
}
