package ports

import (
	"context"
	"time"
)

// ActivityTracker — внешний трекер активности/стриков.
// Вызов best-effort: ошибки логируются и не влияют на отметку.
type ActivityTracker interface {
	TrackCheckIn(ctx context.Context, memberID, sessionID string, at time.Time)
}
