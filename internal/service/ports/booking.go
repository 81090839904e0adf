package ports

import (
	"context"
	"time"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

// BookingRepo выполняет каждый переход как одну транзакцию
// с блокировкой строки сеанса (см. internal/repository/booking.go).
type BookingRepo interface {
	// Book решает booked/waitlisted под блокировкой; CreditSourceID на входе —
	// источник для списания, на выходе остаётся только если кредит списан.
	Book(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetActiveBySessionAndMember(ctx context.Context, sessionID, memberID string) (*domain.Booking, error)
	// Cancel решает возврат кредита внутри транзакции по строке,
	// перечитанной под блокировкой: вернёт, если кредит был списан и
	// now < refundBefore. Возвращает отменённую бронь, признак
	// освободившегося места и признак возврата.
	Cancel(ctx context.Context, bookingID, memberID string, refundBefore time.Time) (*domain.Booking, bool, bool, error)
	CheckIn(ctx context.Context, bookingID string, method domain.CheckInMethod) (*domain.Booking, error)
	NextWaitlisted(ctx context.Context, sessionID string) (*domain.Booking, error)
	Promote(ctx context.Context, bookingID string, creditSourceID *string) (*domain.Booking, error)
	DropFromWaitlist(ctx context.Context, bookingID string) error
	ListRoster(ctx context.Context, sessionID string) ([]*domain.BookingWithMember, error)
	ListWaitlist(ctx context.Context, sessionID string) ([]*domain.BookingWithMember, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error)
}
