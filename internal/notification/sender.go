package notification

import (
	"context"

	"sos-escalation-backend/internal/database/models"
	"sos-escalation-backend/internal/logger"

	"github.com/google/uuid"
)

// Message is one rendered notification bound for one address on one channel
type Message struct {
	Recipient models.Recipient
	Channel   models.Channel
	Address   string
	Title     string
	Body      string
}

// Sender delivers messages over a single channel and returns the provider's message id
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// SenderFunc adapts a function to the Sender interface
type SenderFunc func(ctx context.Context, msg Message) (string, error)

// Send calls f
func (f SenderFunc) Send(ctx context.Context, msg Message) (string, error) {
	return f(ctx, msg)
}

// LogSender writes messages to the structured log instead of a provider.
// It backs every channel until a real SMS, voice, push or email provider is configured.
type LogSender struct{}

// NewLogSender creates a LogSender
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the message and returns a generated id
func (s *LogSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.NewString()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"provider_message_id": id,
		"channel":             msg.Channel,
		"recipient_id":        msg.Recipient.ID,
		"recipient_kind":      msg.Recipient.Kind,
		"address":             msg.Address,
		"title":               msg.Title,
	}).Info(msg.Body)
	return id, nil
}
