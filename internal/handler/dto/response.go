package dto

import (
	"time"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

type SessionResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	ClassTypeID   string `json:"class_type_id"`
	LocationID    string `json:"location_id"`
	StartsAt      string `json:"starts_at"`
	EndsAt        string `json:"ends_at"`
	Capacity      int    `json:"capacity"`
	BookedCount   int    `json:"booked_count"`
	WaitlistCount int    `json:"waitlist_count"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	SessionID        string  `json:"session_id"`
	MemberID         string  `json:"member_id"`
	Status           string  `json:"status"`
	WaitlistPosition *int    `json:"waitlist_position,omitempty"`
	CreditSourceID   *string `json:"credit_source_id,omitempty"`
	CheckInMethod    *string `json:"check_in_method,omitempty"`
	BookedAt         string  `json:"booked_at"`
	CancelledAt      *string `json:"cancelled_at,omitempty"`
	CheckedInAt      *string `json:"checked_in_at,omitempty"`
	PromotedAt       *string `json:"promoted_at,omitempty"`
}

type RosterEntryResponse struct {
	BookingResponse
	Member MemberResponse `json:"member"`
}

type MemberResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type EntitlementResponse struct {
	ID               string   `json:"id"`
	MemberID         string   `json:"member_id"`
	Kind             string   `json:"kind"`
	CreditsRemaining int      `json:"credits_remaining"`
	CreditsUsed      int      `json:"credits_used"`
	LocationIDs      []string `json:"location_ids,omitempty"`
	ClassTypeIDs     []string `json:"class_type_ids,omitempty"`
	StartsAt         string   `json:"starts_at"`
	EndsAt           string   `json:"ends_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		Title:         s.Title,
		ClassTypeID:   s.ClassTypeID,
		LocationID:    s.LocationID,
		StartsAt:      s.StartsAt.Format(time.RFC3339),
		EndsAt:        s.EndsAt.Format(time.RFC3339),
		Capacity:      s.Capacity,
		BookedCount:   s.BookedCount,
		WaitlistCount: s.WaitlistCount,
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:               b.ID,
		SessionID:        b.SessionID,
		MemberID:         b.MemberID,
		Status:           string(b.Status),
		WaitlistPosition: b.WaitlistPosition,
		CreditSourceID:   b.CreditSourceID,
		BookedAt:         b.BookedAt.Format(time.RFC3339),
		CancelledAt:      formatTimePtr(b.CancelledAt),
		CheckedInAt:      formatTimePtr(b.CheckedInAt),
		PromotedAt:       formatTimePtr(b.PromotedAt),
	}
	if b.CheckInMethod != nil {
		m := string(*b.CheckInMethod)
		resp.CheckInMethod = &m
	}
	return resp
}

func ToRosterResponse(entries []*domain.BookingWithMember) []RosterEntryResponse {
	res := make([]RosterEntryResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, RosterEntryResponse{
			BookingResponse: ToBookingResponse(&e.Booking),
			Member:          ToMemberResponse(&e.Member),
		})
	}
	return res
}

func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		Name:           m.Name,
		TelegramChatID: m.TelegramChatID,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}

func ToEntitlementResponse(s *domain.EntitlementSource) EntitlementResponse {
	return EntitlementResponse{
		ID:               s.ID,
		MemberID:         s.MemberID,
		Kind:             string(s.Kind),
		CreditsRemaining: s.CreditsRemaining,
		CreditsUsed:      s.CreditsUsed,
		LocationIDs:      s.LocationIDs,
		ClassTypeIDs:     s.ClassTypeIDs,
		StartsAt:         s.StartsAt.Format(time.RFC3339),
		EndsAt:           s.EndsAt.Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
