package ports

import (
	"context"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBooked(ctx context.Context, member *domain.Member, session *domain.Session)
	NotifyWaitlisted(ctx context.Context, member *domain.Member, session *domain.Session, position int)
	NotifyPromoted(ctx context.Context, member *domain.Member, session *domain.Session)
	NotifyCancelled(ctx context.Context, member *domain.Member, session *domain.Session)
}
