package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/debtledger/pkg/clients"
)

// WebhookNotifier relays messages to a chat gateway over HTTP:
//
//	POST  {gateway}/api/channels/{channel}/prompts            -> {"message_id": n}
//	POST  {gateway}/api/channels/{channel}/messages
//	PATCH {gateway}/api/channels/{channel}/messages/{message}
//	GET   {gateway}/api/members/{user}                        -> {"display_name": "..."}
type WebhookNotifier struct {
	baseURL string
	client  *clients.HTTPClient
}

type webhookMessage struct {
	Text string `json:"text"`
}

type webhookPrompt struct {
	MessageID int64 `json:"message_id"`
}

type webhookMember struct {
	DisplayName string `json:"display_name"`
}

func NewWebhookNotifier(address string) *WebhookNotifier {
	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}
	return &WebhookNotifier{
		baseURL: strings.TrimRight(address, "/"),
		client:  clients.NewHTTPClient(),
	}
}

func (n *WebhookNotifier) SetClient(client clients.HTTPClientI) {
	n.client.SetClient(client)
}

func (n *WebhookNotifier) send(ctx context.Context, method, url, text string) (int, []byte, error) {
	var body []byte
	headers := http.Header{}
	if method != http.MethodGet {
		var err error
		body, err = json.Marshal(webhookMessage{Text: text})
		if err != nil {
			return 0, nil, err
		}
		headers.Set("Content-Type", "application/json")
	}
	return n.client.Send(ctx, method, url, headers, body)
}

func (n *WebhookNotifier) Prompt(ctx context.Context, channelID int64, text string) (int64, error) {
	url := fmt.Sprintf("%s/api/channels/%d/prompts", n.baseURL, channelID)
	status, body, err := n.send(ctx, http.MethodPost, url, text)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return 0, fmt.Errorf("gateway returned %d for prompt", status)
	}

	var prompt webhookPrompt
	if err := json.Unmarshal(body, &prompt); err != nil {
		return 0, fmt.Errorf("decode prompt response: %w", err)
	}
	if prompt.MessageID == 0 {
		return 0, fmt.Errorf("gateway returned no message id")
	}
	return prompt.MessageID, nil
}

func (n *WebhookNotifier) Notify(ctx context.Context, channelID int64, text string) error {
	url := fmt.Sprintf("%s/api/channels/%d/messages", n.baseURL, channelID)
	status, _, err := n.send(ctx, http.MethodPost, url, text)
	if err != nil {
		return err
	}
	if status/100 != 2 {
		return fmt.Errorf("gateway returned %d for message", status)
	}
	return nil
}

func (n *WebhookNotifier) EditPrompt(ctx context.Context, channelID, messageID int64, text string) error {
	url := fmt.Sprintf("%s/api/channels/%d/messages/%d", n.baseURL, channelID, messageID)
	status, _, err := n.send(ctx, http.MethodPatch, url, text)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusNotFound:
		return ErrPromptNotFound
	case status == http.StatusForbidden:
		return ErrForbidden
	case status/100 != 2:
		return fmt.Errorf("gateway returned %d for edit", status)
	}
	return nil
}

func (n *WebhookNotifier) DisplayName(ctx context.Context, userID int64) (string, bool) {
	url := fmt.Sprintf("%s/api/members/%d", n.baseURL, userID)
	status, body, err := n.send(ctx, http.MethodGet, url, "")
	if err != nil {
		zap.L().Warn("failed to resolve display name", zap.Int64("user_id", userID), zap.Error(err))
		return "", false
	}
	if status != http.StatusOK {
		return "", false
	}

	var member webhookMember
	if err := json.Unmarshal(body, &member); err != nil || member.DisplayName == "" {
		return "", false
	}
	return member.DisplayName, true
}
