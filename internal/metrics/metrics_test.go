package metrics

import (
	"strings"
	"testing"
	"time"

	"sos-escalation-backend/internal/database/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ActivationRecorded(models.SubjectRoleWorker, "contacts")
	m.ActivationRecorded(models.SubjectRoleWorker, "contacts")
	m.LocationUnavailable()
	m.NotificationSent(models.RecipientKindAdmin, models.ChannelPush, false, time.Millisecond)
	m.EscalationApplied(models.TierSupervisor)
	m.ResolutionApplied(models.SOSStatusFalseAlarm)
	m.RescanCompleted()
	m.EventPublished("sos.activated", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.activationsTotal.WithLabelValues("worker", "contacts")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.locationFallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notificationsTotal.WithLabelValues("admin", "push", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.escalationsTotal.WithLabelValues("supervisor")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutionsTotal.WithLabelValues("false_alarm")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rescansTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsPublished.WithLabelValues("sos.activated", "true")))
}

func TestHTTPRequestExposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.HTTPRequest("POST", "/api/v1/sos", 201, 20*time.Millisecond)

	expected := `
# HELP sos_http_requests_total HTTP requests by method, route and status
# TYPE sos_http_requests_total counter
sos_http_requests_total{method="POST",route="/api/v1/sos",status="201"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "sos_http_requests_total"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ActivationRecorded(models.SubjectRoleClient, "admin_fallback")
		m.LocationUnavailable()
		m.NotificationSent(models.RecipientKindEmergencyContact, models.ChannelSMS, true, 0)
		m.EscalationApplied(models.TierEmergencyServices)
		m.ResolutionApplied(models.SOSStatusResolved)
		m.RescanCompleted()
		m.EventPublished("sos.resolved", false)
		m.HTTPRequest("GET", "/health", 200, 0)
	})
}
