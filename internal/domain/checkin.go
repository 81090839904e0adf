package domain

import "time"

const DefaultCheckInLead = 30 * time.Minute

// ValidateCheckInWindow — чистая проверка окна отметки:
// starts_at − lead ≤ now ≤ ends_at.
func ValidateCheckInWindow(now, startsAt, endsAt time.Time, lead time.Duration) error {
	if now.Before(startsAt.Add(-lead)) {
		return ErrCheckInTooEarly
	}
	if now.After(endsAt) {
		return ErrCheckInTooLate
	}
	return nil
}
