package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBooked(ctx context.Context, member *domain.Member, session *domain.Session) {
	text := fmt.Sprintf(
		"*Вы записаны!*\n\n"+"Занятие: %s\n"+"Начало (время указано в UTC): %s",
		session.Title, session.StartsAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, member.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyWaitlisted(ctx context.Context, member *domain.Member, session *domain.Session, position int) {
	text := fmt.Sprintf(
		"*Вы в листе ожидания*\n\n"+"Занятие: %s\n"+"Начало (время указано в UTC): %s\n"+"Ваша позиция: %d",
		session.Title, session.StartsAt.Format("02.01.2006 15:04"), position,
	)
	n.send(ctx, member.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPromoted(ctx context.Context, member *domain.Member, session *domain.Session) {
	text := fmt.Sprintf(
		"*Место освободилось — вы записаны!*\n\n"+"Занятие: %s\n"+"Начало (время указано в UTC): %s",
		session.Title, session.StartsAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, member.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCancelled(ctx context.Context, member *domain.Member, session *domain.Session) {
	text := fmt.Sprintf(
		"*Запись отменена*\n\n"+"Занятие: %s\n"+"Начало (время указано в UTC): %s",
		session.Title, session.StartsAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, member.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
