package ports

import (
	"context"
	"time"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	Start(ctx context.Context, id string) (*domain.Session, error)
	Complete(ctx context.Context, id string) (*domain.Session, []*domain.Booking, error)
	ListEnded(ctx context.Context, now time.Time) ([]string, error)
}
