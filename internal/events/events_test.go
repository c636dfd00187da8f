package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"sos-escalation-backend/internal/database/models"
	"sos-escalation-backend/internal/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisherPublish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &KafkaPublisher{writer: writer, metrics: metrics.New(prometheus.NewRegistry())}

	id := uuid.New()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	err := publisher.Publish(context.Background(), LifecycleEvent{
		Type:       TypeEscalated,
		SOSEventID: id,
		SubjectID:  "worker-1",
		Status:     models.SOSStatusActive,
		Tier:       models.TierSupervisor,
		OccurredAt: at,
	})
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, id.String(), string(msg.Key))
	assert.Equal(t, at, msg.Time)
	assert.Equal(t, "sos.escalated", string(msg.Headers[0].Value))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "supervisor", decoded["tier"])
	assert.Equal(t, "active", decoded["status"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisherWriteFailure(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker down")}
	publisher := &KafkaPublisher{writer: writer}

	err := publisher.Publish(context.Background(), LifecycleEvent{Type: TypeResolved, SOSEventID: uuid.New(), Tier: models.TierInitial})
	assert.ErrorContains(t, err, "broker down")
}

func TestKafkaPublisherInvalidTier(t *testing.T) {
	publisher := &KafkaPublisher{writer: &fakeWriter{}}

	err := publisher.Publish(context.Background(), LifecycleEvent{Type: TypeActivated, SOSEventID: uuid.New()})
	assert.Error(t, err)
}

func TestNewKafkaPublisher(t *testing.T) {
	publisher := NewKafkaPublisher([]string{"localhost:9092"}, "sos.lifecycle", nil)
	writer, ok := publisher.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "sos.lifecycle", writer.Topic)
	assert.NoError(t, publisher.Close())
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), LifecycleEvent{}))
	assert.NoError(t, p.Close())
}
