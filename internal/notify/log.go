package notify

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// LogNotifier writes every message to the log. Prompt ids come from a
// monotonically increasing counter, so it can back a deployment with no chat
// gateway at all.
type LogNotifier struct {
	seq atomic.Int64
}

func NewLogNotifier() *LogNotifier {
	n := &LogNotifier{}
	n.seq.Store(time.Now().UnixMilli())
	return n
}

func (n *LogNotifier) Prompt(_ context.Context, channelID int64, text string) (int64, error) {
	id := n.seq.Add(1)
	zap.L().Info("prompt", zap.Int64("channel_id", channelID), zap.Int64("message_id", id), zap.String("text", text))
	return id, nil
}

func (n *LogNotifier) Notify(_ context.Context, channelID int64, text string) error {
	zap.L().Info("notify", zap.Int64("channel_id", channelID), zap.String("text", text))
	return nil
}

func (n *LogNotifier) EditPrompt(_ context.Context, channelID, messageID int64, text string) error {
	zap.L().Info("edit prompt", zap.Int64("channel_id", channelID), zap.Int64("message_id", messageID), zap.String("text", text))
	return nil
}

func (n *LogNotifier) DisplayName(context.Context, int64) (string, bool) {
	return "", false
}
