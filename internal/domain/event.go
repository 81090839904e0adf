package domain

import "time"

type BookingEventType string

const (
	BookingEventBooked     BookingEventType = "booked"
	BookingEventWaitlisted BookingEventType = "waitlisted"
	BookingEventCancelled  BookingEventType = "cancelled"
	BookingEventPromoted   BookingEventType = "promoted"
	BookingEventDropped    BookingEventType = "dropped"
	BookingEventCheckedIn  BookingEventType = "checked_in"
	BookingEventNoShow     BookingEventType = "no_show"
)

// BookingEvent — запись append-only журнала переходов брони.
// Текущая строка брони может быть переиспользована после отмены,
// история при этом сохраняется здесь.
type BookingEvent struct {
	ID         string           `json:"id"`
	BookingID  string           `json:"booking_id"`
	SessionID  string           `json:"session_id"`
	MemberID   string           `json:"member_id"`
	Type       BookingEventType `json:"type"`
	OccurredAt time.Time        `json:"occurred_at"`
}
