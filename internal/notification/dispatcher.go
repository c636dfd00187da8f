package notification

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"
	"sos-escalation-backend/internal/logger"
	"sos-escalation-backend/internal/metrics"

	"github.com/benbjohnson/clock"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

const maxErrorLength = 500

// Config controls delivery retries and per-channel throughput
type Config struct {
	MaxAttempts   int
	RetryInterval time.Duration
	RatePerSecond float64
	Burst         int
	Language      string
}

// Dispatcher sends one notification to one recipient over one channel and
// describes the outcome as a NotificationRecord. It never returns an error:
// every failure is reported through the record.
type Dispatcher struct {
	cfg      Config
	catalog  *Catalog
	clock    clock.Clock
	metrics  *metrics.Metrics
	senders  map[models.Channel]Sender
	limiters map[models.Channel]*rate.Limiter
}

// NewDispatcher wires senders by channel. Channels without a sender fail with
// ErrChannelNotConfigured.
func NewDispatcher(cfg Config, catalog *Catalog, clk clock.Clock, m *metrics.Metrics, senders map[models.Channel]Sender) *Dispatcher {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if clk == nil {
		clk = clock.New()
	}

	limiters := make(map[models.Channel]*rate.Limiter, len(senders))
	for channel := range senders {
		if cfg.RatePerSecond > 0 {
			burst := cfg.Burst
			if burst < 1 {
				burst = 1
			}
			limiters[channel] = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
		}
	}

	return &Dispatcher{
		cfg:      cfg,
		catalog:  catalog,
		clock:    clk,
		metrics:  m,
		senders:  senders,
		limiters: limiters,
	}
}

// NewLogDispatcher routes every channel to a LogSender
func NewLogDispatcher(cfg Config, catalog *Catalog, clk clock.Clock, m *metrics.Metrics) *Dispatcher {
	sender := NewLogSender()
	senders := make(map[models.Channel]Sender, len(models.AllChannels))
	for _, channel := range models.AllChannels {
		senders[channel] = sender
	}
	return NewDispatcher(cfg, catalog, clk, m, senders)
}

// Send renders template with data and delivers it, retrying transient failures
func (d *Dispatcher) Send(ctx context.Context, recipient models.Recipient, channel models.Channel, template models.NotificationTemplate, data map[string]interface{}) models.NotificationRecord {
	started := d.clock.Now()
	record := models.NotificationRecord{
		RecipientID:   recipient.ID,
		RecipientKind: recipient.Kind,
		RecipientName: recipient.Name,
		Channel:       channel,
		Template:      template,
		SentAt:        started.UTC(),
	}

	providerID, attempts, err := d.deliver(ctx, recipient, channel, template, data)
	record.Attempts = attempts
	record.ProviderMessageID = providerID
	if err != nil {
		record.Error = truncate(err.Error(), maxErrorLength)
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"recipient_id":   recipient.ID,
			"recipient_kind": recipient.Kind,
			"channel":        channel,
			"template":       template,
			"attempts":       attempts,
		}).WithError(err).Warn("Notification delivery failed")
	} else {
		record.Success = true
	}

	d.metrics.NotificationSent(recipient.Kind, channel, record.Success, d.clock.Since(started))
	return record
}

func (d *Dispatcher) deliver(ctx context.Context, recipient models.Recipient, channel models.Channel, template models.NotificationTemplate, data map[string]interface{}) (string, int, error) {
	if !channel.IsValid() {
		return "", 0, fmt.Errorf("unknown channel %q", channel)
	}
	sender, ok := d.senders[channel]
	if !ok {
		return "", 0, fmt.Errorf("%w: %s", apperrors.ErrChannelNotConfigured, channel)
	}
	address := addressFor(recipient, channel)
	if address == "" {
		return "", 0, fmt.Errorf("%w: %s", apperrors.ErrNoRecipientAddress, channel)
	}

	rendered, err := d.catalog.Render(template, data)
	if err != nil {
		return "", 0, err
	}

	msg := Message{
		Recipient: recipient,
		Channel:   channel,
		Address:   address,
		Title:     rendered.Title,
		Body:      rendered.Body,
	}

	var providerID string
	attempts := 0
	operation := func() error {
		if limiter, ok := d.limiters[channel]; ok {
			if err := limiter.Wait(ctx); err != nil {
				return backoff.Permanent(err)
			}
		}
		attempts++
		id, err := sender.Send(ctx, msg)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return backoff.Permanent(err)
			}
			return err
		}
		providerID = id
		return nil
	}

	if err := backoff.Retry(operation, d.retryPolicy(ctx)); err != nil {
		return "", attempts, err
	}
	return providerID, attempts, nil
}

func (d *Dispatcher) retryPolicy(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = d.cfg.RetryInterval
	if exp.InitialInterval <= 0 {
		exp.InitialInterval = 100 * time.Millisecond
	}
	exp.MaxInterval = 10 * exp.InitialInterval
	exp.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(d.cfg.MaxAttempts-1)), ctx)
}

func addressFor(recipient models.Recipient, channel models.Channel) string {
	switch channel {
	case models.ChannelSMS, models.ChannelCall:
		return recipient.Phone
	case models.ChannelEmail:
		return recipient.Email
	case models.ChannelPush:
		return recipient.ID
	}
	return ""
}

// truncate cuts s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
