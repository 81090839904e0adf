package domain

import "time"

type BookingStatus string

const (
	BookingStatusBooked     BookingStatus = "booked"
	BookingStatusWaitlisted BookingStatus = "waitlisted"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusNoShow     BookingStatus = "no_show"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// ActiveStatuses — статусы, в которых бронь ещё может меняться.
var ActiveStatuses = []BookingStatus{BookingStatusBooked, BookingStatusWaitlisted}

type CheckInMethod string

const (
	CheckInMethodManual CheckInMethod = "manual"
	CheckInMethodQR     CheckInMethod = "qr"
)

type Booking struct {
	ID               string         `json:"id"`
	SessionID        string         `json:"session_id"`
	MemberID         string         `json:"member_id"`
	Status           BookingStatus  `json:"status"`
	WaitlistPosition *int           `json:"waitlist_position,omitempty"`
	CreditSourceID   *string        `json:"credit_source_id,omitempty"`
	CheckInMethod    *CheckInMethod `json:"check_in_method,omitempty"`
	BookedAt         time.Time      `json:"booked_at"`
	CancelledAt      *time.Time     `json:"cancelled_at,omitempty"`
	CheckedInAt      *time.Time     `json:"checked_in_at,omitempty"`
	PromotedAt       *time.Time     `json:"promoted_at,omitempty"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (b *Booking) Active() bool {
	return b.Status == BookingStatusBooked || b.Status == BookingStatusWaitlisted
}

type BookingWithMember struct {
	Booking
	Member Member `json:"member"`
}
