package notification

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"
	"sos-escalation-backend/internal/metrics"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []Message
	failures int
	err      error
}

func (s *recordingSender) Send(ctx context.Context, msg Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	if s.failures > 0 {
		s.failures--
		return "", s.err
	}
	return "msg-1", nil
}

func templateData() map[string]interface{} {
	return map[string]interface{}{
		"SubjectName": "worker-1",
		"SubjectRole": "worker",
		"Address":     "Main St 1",
		"Latitude":    1.5,
		"Longitude":   2.5,
		"EventID":     "evt-1",
		"Elapsed":     "2m0s",
	}
}

func contact() models.Recipient {
	return models.Recipient{
		ID:       "contact-1",
		Kind:     models.RecipientKindEmergencyContact,
		Name:     "Alice",
		Phone:    "+1-555-0001",
		Email:    "alice@example.com",
		Channels: []models.Channel{models.ChannelPush},
	}
}

type DispatcherTestSuite struct {
	suite.Suite
	catalog *Catalog
	clock   *clock.Mock
	sender  *recordingSender
	disp    *Dispatcher
}

func (suite *DispatcherTestSuite) SetupTest() {
	catalog, err := NewCatalog("en")
	suite.Require().NoError(err)
	suite.catalog = catalog
	suite.clock = clock.NewMock()
	suite.clock.Set(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	suite.sender = &recordingSender{err: errors.New("provider timeout")}

	suite.disp = NewDispatcher(Config{
		MaxAttempts:   3,
		RetryInterval: time.Millisecond,
		RatePerSecond: 1000,
		Burst:         100,
	}, suite.catalog, suite.clock, metrics.New(prometheus.NewRegistry()), map[models.Channel]Sender{
		models.ChannelPush: suite.sender,
		models.ChannelSMS:  suite.sender,
	})
}

func (suite *DispatcherTestSuite) TestSendSuccess() {
	record := suite.disp.Send(context.Background(), contact(), models.ChannelPush, models.TemplateSOSAlert, templateData())

	suite.True(record.Success)
	suite.Equal(1, record.Attempts)
	suite.Equal("msg-1", record.ProviderMessageID)
	suite.Equal("contact-1", record.RecipientID)
	suite.Equal(models.RecipientKindEmergencyContact, record.RecipientKind)
	suite.Equal(models.TemplateSOSAlert, record.Template)
	suite.Equal(suite.clock.Now().UTC(), record.SentAt)

	suite.Require().Len(suite.sender.messages, 1)
	msg := suite.sender.messages[0]
	suite.Equal("contact-1", msg.Address)
	suite.Equal("SOS alert", msg.Title)
	suite.Contains(msg.Body, "worker-1 (worker) needs help now")
	suite.Contains(msg.Body, "Main St 1")
}

func (suite *DispatcherTestSuite) TestSendRetriesTransientFailure() {
	suite.sender.failures = 2

	record := suite.disp.Send(context.Background(), contact(), models.ChannelSMS, models.TemplateSOSAlert, templateData())

	suite.True(record.Success)
	suite.Equal(3, record.Attempts)
	suite.Equal("+1-555-0001", suite.sender.messages[0].Address)
}

func (suite *DispatcherTestSuite) TestSendGivesUpAfterMaxAttempts() {
	suite.sender.failures = 10

	record := suite.disp.Send(context.Background(), contact(), models.ChannelPush, models.TemplateSOSAlert, templateData())

	suite.False(record.Success)
	suite.Equal(3, record.Attempts)
	suite.Contains(record.Error, "provider timeout")
}

func (suite *DispatcherTestSuite) TestSendUnconfiguredChannel() {
	record := suite.disp.Send(context.Background(), contact(), models.ChannelEmail, models.TemplateSOSAlert, templateData())

	suite.False(record.Success)
	suite.Equal(0, record.Attempts)
	suite.Contains(record.Error, apperrors.ErrChannelNotConfigured.Error())
	suite.Empty(suite.sender.messages)
}

func (suite *DispatcherTestSuite) TestSendMissingAddress() {
	recipient := contact()
	recipient.Phone = ""

	record := suite.disp.Send(context.Background(), recipient, models.ChannelSMS, models.TemplateSOSAlert, templateData())

	suite.False(record.Success)
	suite.Contains(record.Error, apperrors.ErrNoRecipientAddress.Error())
}

func (suite *DispatcherTestSuite) TestSendCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	suite.sender.failures = 10
	suite.sender.err = context.Canceled

	record := suite.disp.Send(ctx, contact(), models.ChannelPush, models.TemplateSOSAlert, templateData())

	suite.False(record.Success)
	suite.LessOrEqual(record.Attempts, 1)
}

func TestDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func TestCatalogRendersEveryTemplate(t *testing.T) {
	catalog, err := NewCatalog("en")
	require.NoError(t, err)

	templates := []models.NotificationTemplate{
		models.TemplateSOSAlert,
		models.TemplateSOSAlertSecondary,
		models.TemplateSupervisorEscalation,
		models.TemplateEmergencyServices,
		models.TemplateNoContactsFallback,
		models.TemplateEmergencySystemTest,
	}
	for _, tpl := range templates {
		rendered, err := catalog.Render(tpl, templateData())
		require.NoError(t, err, tpl)
		assert.NotEmpty(t, rendered.Title, tpl)
		assert.NotContains(t, rendered.Body, "<no value>", tpl)
	}
}

func TestCatalogLanguages(t *testing.T) {
	german, err := NewCatalog("de")
	require.NoError(t, err)
	rendered, err := german.Render(models.TemplateSOSAlert, templateData())
	require.NoError(t, err)
	assert.Equal(t, "SOS-Alarm", rendered.Title)

	french, err := NewCatalog("fr")
	require.NoError(t, err)
	rendered, err = french.Render(models.TemplateSOSAlert, templateData())
	require.NoError(t, err)
	assert.Equal(t, "SOS alert", rendered.Title)

	_, err = NewCatalog("not a language!")
	assert.True(t, apperrors.IsConfiguration(err))

	_, err = german.Render(models.NotificationTemplate("unknown"), nil)
	assert.Error(t, err)
}

func TestLogDispatcherCoversEveryChannel(t *testing.T) {
	catalog, err := NewCatalog("en")
	require.NoError(t, err)
	disp := NewLogDispatcher(Config{MaxAttempts: 1}, catalog, nil, nil)

	recipient := contact()
	for _, channel := range models.AllChannels {
		record := disp.Send(context.Background(), recipient, channel, models.TemplateEmergencySystemTest, templateData())
		assert.True(t, record.Success, channel)
		assert.NotEmpty(t, record.ProviderMessageID, channel)
	}
}

func TestSenderFunc(t *testing.T) {
	var got Message
	sender := SenderFunc(func(ctx context.Context, msg Message) (string, error) {
		got = msg
		return "fn-1", nil
	})

	id, err := sender.Send(context.Background(), Message{Address: "x"})
	require.NoError(t, err)
	assert.Equal(t, "fn-1", id)
	assert.Equal(t, "x", got.Address)
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	// "ü" is two bytes, so a cut at an odd byte would split one
	msg := strings.Repeat("ü", maxErrorLength)

	cut := truncate(msg, maxErrorLength-1)

	assert.True(t, utf8.ValidString(cut))
	assert.LessOrEqual(t, len(cut), maxErrorLength-1)
	assert.Equal(t, strings.Repeat("ü", (maxErrorLength-1)/2), cut)
	assert.Equal(t, "short", truncate("short", maxErrorLength))
}
