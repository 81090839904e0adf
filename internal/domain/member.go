package domain

import "time"

type Member struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateMemberInput struct {
	Name           string
	TelegramChatID *int64
}
