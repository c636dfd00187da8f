package metrics

import (
	"strconv"
	"time"

	"sos-escalation-backend/internal/database/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sos"

// Metrics holds the Prometheus collectors for the escalation engine.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	activationsTotal     *prometheus.CounterVec
	locationFallbacks    prometheus.Counter
	notificationsTotal   *prometheus.CounterVec
	notificationDuration *prometheus.HistogramVec
	escalationsTotal     *prometheus.CounterVec
	resolutionsTotal     *prometheus.CounterVec
	rescansTotal         prometheus.Counter
	eventsPublished      *prometheus.CounterVec
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		activationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "activations_total",
				Help:      "SOS activations by subject role and contact path",
			},
			[]string{"subject_role", "path"},
		),
		locationFallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "location_unavailable_total",
				Help:      "Activations that fell back to the unavailable location sentinel",
			},
		),
		notificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Notification sends by recipient kind, channel and result",
			},
			[]string{"recipient_kind", "channel", "success"},
		),
		notificationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "notification_duration_seconds",
				Help:      "Time spent delivering one notification including retries",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"channel"},
		),
		escalationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "escalations_total",
				Help:      "Applied tier transitions by target tier",
			},
			[]string{"tier"},
		),
		resolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Applied resolutions by outcome",
			},
			[]string{"outcome"},
		),
		rescansTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rescans_total",
				Help:      "Completed rescan passes over active events",
			},
		),
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lifecycle_events_published_total",
				Help:      "Lifecycle events handed to the event stream by type and result",
			},
			[]string{"type", "success"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ActivationRecorded counts an activation; path is "contacts" or "admin_fallback"
func (m *Metrics) ActivationRecorded(role models.SubjectRole, path string) {
	if m == nil {
		return
	}
	m.activationsTotal.WithLabelValues(string(role), path).Inc()
}

// LocationUnavailable counts a sentinel location substitution
func (m *Metrics) LocationUnavailable() {
	if m == nil {
		return
	}
	m.locationFallbacks.Inc()
}

// NotificationSent records one dispatch outcome
func (m *Metrics) NotificationSent(kind models.RecipientKind, channel models.Channel, success bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.notificationsTotal.WithLabelValues(string(kind), string(channel), strconv.FormatBool(success)).Inc()
	m.notificationDuration.WithLabelValues(string(channel)).Observe(elapsed.Seconds())
}

// EscalationApplied counts a tier transition
func (m *Metrics) EscalationApplied(tier models.EscalationTier) {
	if m == nil {
		return
	}
	m.escalationsTotal.WithLabelValues(tier.String()).Inc()
}

// ResolutionApplied counts a resolution
func (m *Metrics) ResolutionApplied(outcome models.SOSStatus) {
	if m == nil {
		return
	}
	m.resolutionsTotal.WithLabelValues(string(outcome)).Inc()
}

// RescanCompleted counts a rescan pass
func (m *Metrics) RescanCompleted() {
	if m == nil {
		return
	}
	m.rescansTotal.Inc()
}

// EventPublished records a lifecycle event hand-off
func (m *Metrics) EventPublished(eventType string, success bool) {
	if m == nil {
		return
	}
	m.eventsPublished.WithLabelValues(eventType, strconv.FormatBool(success)).Inc()
}

// HTTPRequest records one served request
func (m *Metrics) HTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
