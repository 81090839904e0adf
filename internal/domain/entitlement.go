package domain

import (
	"slices"
	"time"
)

type EntitlementKind string

const (
	EntitlementKindUnlimited  EntitlementKind = "unlimited"
	EntitlementKindCreditPack EntitlementKind = "credit_pack"
)

// EntitlementSource — абонемент или пакет занятий, дающий право на запись.
type EntitlementSource struct {
	ID               string          `json:"id"`
	MemberID         string          `json:"member_id"`
	Kind             EntitlementKind `json:"kind"`
	CreditsRemaining int             `json:"credits_remaining"`
	CreditsUsed      int             `json:"credits_used"`
	LocationIDs      []string        `json:"location_ids"`
	ClassTypeIDs     []string        `json:"class_type_ids"`
	StartsAt         time.Time       `json:"starts_at"`
	EndsAt           time.Time       `json:"ends_at"`
	CreatedAt        time.Time       `json:"created_at"`
}

// UsableFor проверяет активность источника и его ограничения.
// Пустой список ограничений означает "без ограничений".
func (s *EntitlementSource) UsableFor(classTypeID, locationID string, now time.Time) bool {
	if now.Before(s.StartsAt) || now.After(s.EndsAt) {
		return false
	}
	if s.Kind == EntitlementKindCreditPack && s.CreditsRemaining <= 0 {
		return false
	}
	if len(s.LocationIDs) > 0 && !slices.Contains(s.LocationIDs, locationID) {
		return false
	}
	if len(s.ClassTypeIDs) > 0 && !slices.Contains(s.ClassTypeIDs, classTypeID) {
		return false
	}
	return true
}

func (s *EntitlementSource) ConsumesCredit() bool {
	return s.Kind == EntitlementKindCreditPack
}

// ResolveSource выбирает пригодный источник; из нескольких берётся тот,
// чьё окно действия закончится раньше.
func ResolveSource(sources []*EntitlementSource, classTypeID, locationID string, now time.Time) *EntitlementSource {
	var best *EntitlementSource
	for _, src := range sources {
		if !src.UsableFor(classTypeID, locationID, now) {
			continue
		}
		if best == nil || src.EndsAt.Before(best.EndsAt) {
			best = src
		}
	}
	return best
}

type CreateEntitlementInput struct {
	Kind         EntitlementKind
	Credits      int
	LocationIDs  []string
	ClassTypeIDs []string
	StartsAt     time.Time
	EndsAt       time.Time
}
