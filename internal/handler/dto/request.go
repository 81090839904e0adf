package dto

type CreateSessionRequest struct {
	Title       string `json:"title" binding:"required"`
	ClassTypeID string `json:"class_type_id" binding:"required"`
	LocationID  string `json:"location_id" binding:"required"`
	StartsAt    string `json:"starts_at" binding:"required"`
	EndsAt      string `json:"ends_at" binding:"required"`
	Capacity    int    `json:"capacity" binding:"gte=0"`
}

type BookRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
}

type CancelRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
}

type CheckInRequest struct {
	Method string `json:"method" binding:"required,oneof=manual qr"`
}

type CheckInByLookupRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
	Method   string `json:"method" binding:"required,oneof=manual qr"`
}

type CreateMemberRequest struct {
	Name           string `json:"name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateEntitlementRequest struct {
	Kind         string   `json:"kind" binding:"required,oneof=unlimited credit_pack"`
	Credits      int      `json:"credits"`
	LocationIDs  []string `json:"location_ids"`
	ClassTypeIDs []string `json:"class_type_ids"`
	StartsAt     string   `json:"starts_at" binding:"required"`
	EndsAt       string   `json:"ends_at" binding:"required"`
}
