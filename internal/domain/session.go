package domain

import "time"

type SessionStatus string

const (
	SessionStatusScheduled  SessionStatus = "scheduled"
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusCancelled  SessionStatus = "cancelled"
)

type Session struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	ClassTypeID   string        `json:"class_type_id"`
	LocationID    string        `json:"location_id"`
	StartsAt      time.Time     `json:"starts_at"`
	EndsAt        time.Time     `json:"ends_at"`
	Capacity      int           `json:"capacity"`
	BookedCount   int           `json:"booked_count"`
	WaitlistCount int           `json:"waitlist_count"`
	Status        SessionStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Bookable пока сеанс запланирован и ещё не начался.
func (s *Session) Bookable(now time.Time) bool {
	return s.Status == SessionStatusScheduled && now.Before(s.StartsAt)
}

type CreateSessionInput struct {
	Title       string
	ClassTypeID string
	LocationID  string
	StartsAt    time.Time
	EndsAt      time.Time
	Capacity    int
}
