// Package notify is the port through which the ledger talks back to the chat
// platform: posting confirmation prompts, reminders and expiry edits, and
// resolving member display names.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/debtledger/internal/config"
)

//go:generate mockgen -source=notify.go -destination=mock_notify.go -package=notify

var (
	ErrPromptNotFound = errors.New("prompt message not found")
	ErrForbidden      = errors.New("not allowed to edit prompt")
)

type Notifier interface {
	// Prompt posts a confirmation prompt and returns the platform message id
	// that becomes the pending transaction's key.
	Prompt(ctx context.Context, channelID int64, text string) (int64, error)
	Notify(ctx context.Context, channelID int64, text string) error
	EditPrompt(ctx context.Context, channelID, messageID int64, text string) error
	DisplayName(ctx context.Context, userID int64) (string, bool)
}

const (
	KindLog      = "log"
	KindWebhook  = "webhook"
	KindTelegram = "telegram"
)

func New(cfg *config.Config) (Notifier, error) {
	switch cfg.Notifier {
	case KindLog, "":
		return NewLogNotifier(), nil
	case KindWebhook:
		return NewWebhookNotifier(cfg.GatewayAddress), nil
	case KindTelegram:
		n, err := NewTelegramNotifier(cfg.TelegramToken)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
	return nil, fmt.Errorf("unsupported notifier: %s", cfg.Notifier)
}
