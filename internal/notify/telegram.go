package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error)
}

// TelegramNotifier posts directly through the Bot API. Channel ids are chat
// ids and user ids are Telegram user ids.
type TelegramNotifier struct {
	api telegramAPI
}

func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	if token == "" {
		return nil, errors.New("telegram token is empty")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	zap.L().Info("authorized on telegram", zap.String("bot", api.Self.UserName))
	return &TelegramNotifier{api: api}, nil
}

func (n *TelegramNotifier) Prompt(_ context.Context, channelID int64, text string) (int64, error) {
	msg, err := n.api.Send(tgbotapi.NewMessage(channelID, text))
	if err != nil {
		return 0, err
	}
	return int64(msg.MessageID), nil
}

func (n *TelegramNotifier) Notify(_ context.Context, channelID int64, text string) error {
	_, err := n.api.Send(tgbotapi.NewMessage(channelID, text))
	return err
}

func (n *TelegramNotifier) EditPrompt(_ context.Context, channelID, messageID int64, text string) error {
	_, err := n.api.Send(tgbotapi.NewEditMessageText(channelID, int(messageID), text))
	if err == nil {
		return nil
	}

	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case strings.Contains(apiErr.Message, "message is not modified"):
			return nil
		case strings.Contains(apiErr.Message, "message to edit not found"):
			return ErrPromptNotFound
		case apiErr.Code == http.StatusForbidden:
			return ErrForbidden
		}
	}
	return err
}

func (n *TelegramNotifier) DisplayName(_ context.Context, userID int64) (string, bool) {
	chat, err := n.api.GetChat(tgbotapi.ChatInfoConfig{ChatConfig: tgbotapi.ChatConfig{ChatID: userID}})
	if err != nil {
		zap.L().Warn("failed to resolve display name", zap.Int64("user_id", userID), zap.Error(err))
		return "", false
	}

	name := strings.TrimSpace(chat.FirstName + " " + chat.LastName)
	if name == "" && chat.UserName != "" {
		name = "@" + chat.UserName
	}
	return name, name != ""
}
