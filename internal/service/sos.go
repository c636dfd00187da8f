package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"sos-escalation-backend/internal/config"
	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"
	"sos-escalation-backend/internal/events"
	"sos-escalation-backend/internal/logger"
	"sos-escalation-backend/internal/metrics"
	"sos-escalation-backend/internal/repository"

	"github.com/benbjohnson/clock"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	maxTransitionAttempts = 3
	publishTimeout        = 5 * time.Second

	defaultLocationTimeout = 5 * time.Second

	emergencyServicesRecipientID = "emergency-services"
	administratorsRecipientID    = "administrators"
)

// EscalationPolicy is the escalation timeline and fan-out limits
type EscalationPolicy struct {
	SecondaryDelay         time.Duration
	SupervisorDelay        time.Duration
	EmergencyServicesDelay time.Duration
	LocationTimeout        time.Duration
	FanoutConcurrency      int
	EmergencyServicesPhone string
}

// PolicyFromConfig builds the policy from loaded configuration
func PolicyFromConfig(cfg *config.Config) EscalationPolicy {
	return EscalationPolicy{
		SecondaryDelay:         cfg.SecondaryDelay,
		SupervisorDelay:        cfg.SupervisorDelay,
		EmergencyServicesDelay: cfg.EmergencyServicesDelay,
		LocationTimeout:        cfg.LocationTimeout,
		FanoutConcurrency:      cfg.FanoutConcurrency,
		EmergencyServicesPhone: cfg.EmergencyServicesPhone,
	}
}

// SOSDependencies are the collaborators injected into SOSService
type SOSDependencies struct {
	Events     repository.SOSEventRepositoryInterface
	Contacts   repository.EmergencyContactRepositoryInterface
	Members    repository.MemberRepositoryInterface
	Locator    LocationProvider
	Dispatcher NotificationDispatcher
	Scheduler  EscalationScheduler
	Publisher  EventPublisher
	Clock      clock.Clock
	Metrics    *metrics.Metrics
	Validator  *validator.Validate
}

// SOSService drives an SOS event from activation to resolution.
// Every state change is a guarded write against the store, so timer callbacks,
// rescans and callers may race freely.
type SOSService struct {
	events     repository.SOSEventRepositoryInterface
	contacts   repository.EmergencyContactRepositoryInterface
	members    repository.MemberRepositoryInterface
	locator    LocationProvider
	dispatcher NotificationDispatcher
	scheduler  EscalationScheduler
	publisher  EventPublisher
	clock      clock.Clock
	metrics    *metrics.Metrics
	validator  *validator.Validate
	policy     EscalationPolicy
}

// NewSOSService creates a new SOS service
func NewSOSService(deps SOSDependencies, policy EscalationPolicy) *SOSService {
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	if deps.Validator == nil {
		deps.Validator = validator.New()
	}
	if deps.Publisher == nil {
		deps.Publisher = events.NopPublisher{}
	}
	if policy.FanoutConcurrency < 1 {
		policy.FanoutConcurrency = 1
	}
	if policy.LocationTimeout <= 0 {
		policy.LocationTimeout = defaultLocationTimeout
	}

	return &SOSService{
		events:     deps.Events,
		contacts:   deps.Contacts,
		members:    deps.Members,
		locator:    deps.Locator,
		dispatcher: deps.Dispatcher,
		scheduler:  deps.Scheduler,
		publisher:  deps.Publisher,
		clock:      deps.Clock,
		metrics:    deps.Metrics,
		validator:  deps.Validator,
		policy:     policy,
	}
}

// ActivateSOSRequest represents an emergency trigger from a subject's device
type ActivateSOSRequest struct {
	SubjectID   string             `json:"subject_id" validate:"required,max=100" example:"worker-42"`
	SubjectRole models.SubjectRole `json:"subject_role" validate:"required,oneof=worker client" example:"worker"`
	SubjectName string             `json:"subject_name" validate:"max=200" example:"Dana Miller"`
}

// ResolveSOSRequest closes an event with a terminal outcome
type ResolveSOSRequest struct {
	Outcome models.SOSStatus `json:"outcome" validate:"required,oneof=resolved false_alarm" example:"resolved"`
	Notes   string           `json:"notes" validate:"max=2000"`
}

// EscalateSOSRequest asks for a manual escalation to a named tier
type EscalateSOSRequest struct {
	Tier string `json:"tier" validate:"required,oneof=supervisor emergency_services" example:"supervisor"`
}

// EscalateSOSResponse reports whether a manual escalation applied
type EscalateSOSResponse struct {
	Applied bool                  `json:"applied"`
	Tier    models.EscalationTier `json:"tier" swaggertype:"string"`
}

// SOSEventResponse represents the response data for an SOS event
type SOSEventResponse struct {
	ID                uuid.UUID                   `json:"id"`
	SubjectID         string                      `json:"subject_id"`
	SubjectRole       models.SubjectRole          `json:"subject_role"`
	SubjectName       string                      `json:"subject_name,omitempty"`
	Status            models.SOSStatus            `json:"status"`
	Tier              models.EscalationTier       `json:"tier" swaggertype:"string"`
	Location          models.Location             `json:"location"`
	SecondaryNotified bool                        `json:"secondary_notified"`
	Notes             string                      `json:"notes,omitempty"`
	CreatedAt         time.Time                   `json:"created_at"`
	RespondedAt       *time.Time                  `json:"responded_at,omitempty"`
	ResolvedAt        *time.Time                  `json:"resolved_at,omitempty"`
	NotificationLog   []models.NotificationRecord `json:"notification_log"`
}

// SOSEventListResponse is a page of a subject's events, newest first
type SOSEventListResponse struct {
	Events []SOSEventResponse `json:"events"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// RescanSummary counts what one rescan pass changed
type RescanSummary struct {
	Scanned            int `json:"scanned"`
	SecondaryNotified  int `json:"secondary_notified"`
	EscalationsApplied int `json:"escalations_applied"`
}

// Activate records a new SOS event, notifies the first tier and schedules the
// rest of the escalation timeline. It returns the event id regardless of how
// notifications went; only a failure to persist the event is an error.
func (s *SOSService) Activate(ctx context.Context, req *ActivateSOSRequest) (uuid.UUID, error) {
	if err := s.validator.Struct(req); err != nil {
		return uuid.Nil, apperrors.NewValidationError("", err.Error())
	}

	// The caller hanging up must not abort an activation halfway.
	ctx = context.WithoutCancel(ctx)
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"subject_id":   req.SubjectID,
		"subject_role": req.SubjectRole,
	})

	location := s.locate(ctx, req.SubjectID)

	now := s.clock.Now().UTC()
	event := &models.SOSEvent{
		BaseModel:   models.BaseModel{CreatedAt: now, UpdatedAt: now},
		SubjectID:   req.SubjectID,
		SubjectRole: req.SubjectRole,
		SubjectName: req.SubjectName,
		Status:      models.SOSStatusActive,
		Tier:        models.TierInitial,
		Location:    location,
	}
	if err := s.events.Create(ctx, event); err != nil {
		log.WithError(err).Error("Failed to persist SOS event")
		return uuid.Nil, apperrors.NewPersistenceError("create", err)
	}

	log = log.WithField("sos_event_id", event.ID)
	log.Info("SOS activated")
	s.publish(ctx, events.TypeActivated, event)

	contacts, err := s.contacts.GetContactsFor(ctx, req.SubjectID)
	if err != nil {
		log.WithError(err).Warn("Emergency contact lookup failed")
		contacts = nil
	}

	scheduleSecondary := false
	if len(contacts) == 0 {
		s.metrics.ActivationRecorded(req.SubjectRole, "admin_fallback")
		log.WithError(apperrors.ErrNoContactsConfigured).Warn("Notifying administrators instead")
		s.notifyMembers(ctx, event, models.TemplateNoContactsFallback, models.MemberRoleAdmin)
		s.skipSecondary(ctx, event.ID)
	} else {
		s.metrics.ActivationRecorded(req.SubjectRole, "contacts")
		primary, secondary := splitByPriority(contacts)
		sent := s.notifyTier(ctx, event, primary, models.TemplateSOSAlert)
		log.WithField("notifications", sent).Info("Primary contacts notified")

		if len(secondary) > 0 {
			scheduleSecondary = true
		} else {
			s.skipSecondary(ctx, event.ID)
		}
	}

	s.scheduleTimeline(event, scheduleSecondary)
	return event.ID, nil
}

// Escalate moves an Active event up to target and notifies the tiers it passed.
// It returns false without error when the event is not Active or already at or
// above target.
func (s *SOSService) Escalate(ctx context.Context, id uuid.UUID, target models.EscalationTier) (bool, error) {
	if !target.IsValid() || target == models.TierInitial {
		return false, apperrors.NewValidationError("tier", apperrors.ErrInvalidTier.Error())
	}

	// Once the tier is applied the tier's notifications must be recorded even
	// if the caller goes away.
	ctx = context.WithoutCancel(ctx)
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"sos_event_id": id,
		"target_tier":  target,
	})

	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		state, err := s.events.GetState(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, apperrors.ErrSOSEventNotFound
			}
			log.WithError(err).Warn("Escalation guard read failed")
			return false, apperrors.NewPersistenceError("escalate", err)
		}
		if state.Status != models.SOSStatusActive || state.Tier >= target {
			return false, nil
		}

		applied, err := s.events.ApplyTierIfActive(ctx, id, state.Tier, target)
		if err != nil {
			log.WithError(err).Warn("Escalation did not apply")
			return false, apperrors.NewPersistenceError("escalate", err)
		}
		if !applied {
			continue
		}

		s.metrics.EscalationApplied(target)
		log.WithField("from_tier", state.Tier).Info("SOS escalated")

		event, err := s.events.GetByID(ctx, id)
		if err != nil {
			log.WithError(err).Error("Failed to load escalated event")
			return true, nil
		}
		s.publish(ctx, events.TypeEscalated, event)

		for tier := state.Tier + 1; tier <= target; tier++ {
			s.notifyEscalationTier(ctx, event, tier)
		}
		return true, nil
	}

	log.Warn("Escalation lost every compare-and-set attempt")
	return false, nil
}

// Resolve closes an event. Resolving an already terminal event is a no-op that
// returns the stored record unchanged.
func (s *SOSService) Resolve(ctx context.Context, id uuid.UUID, req *ResolveSOSRequest) (*SOSEventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("outcome", err.Error())
	}

	log := logger.WithContext(ctx).WithField("sos_event_id", id)

	applied, err := s.events.ResolveIfActive(ctx, id, req.Outcome, req.Notes, s.clock.Now().UTC())
	if err != nil {
		log.WithError(err).Warn("Resolution did not apply")
		return nil, apperrors.NewPersistenceError("resolve", err)
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSOSEventNotFound
		}
		return nil, fmt.Errorf("failed to load SOS event: %w", err)
	}

	if applied {
		cancelled := s.scheduler.CancelAll(id.String())
		s.metrics.ResolutionApplied(req.Outcome)
		log.WithFields(map[string]interface{}{
			"outcome":           req.Outcome,
			"cancelled_entries": cancelled,
		}).Info("SOS resolved")
		s.publish(ctx, events.TypeResolved, event)
	}

	return toSOSEventResponse(event), nil
}

// Acknowledge marks a notification as seen by its recipient. The first
// acknowledgment moves an Active event to Responding, which halts escalation.
func (s *SOSService) Acknowledge(ctx context.Context, id, notificationID uuid.UUID) (*SOSEventResponse, error) {
	// The acknowledgment and the Responding transition land together or the
	// escalation timeline keeps running.
	ctx = context.WithoutCancel(ctx)
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"sos_event_id":    id,
		"notification_id": notificationID,
	})

	now := s.clock.Now().UTC()
	if _, err := s.events.AcknowledgeNotification(ctx, id, notificationID, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, apperrors.NewPersistenceError("acknowledge", err)
	}

	responding, err := s.events.MarkResponding(ctx, id, now)
	if err != nil {
		log.WithError(err).Warn("Responding transition did not apply")
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load SOS event: %w", err)
	}

	if responding {
		s.scheduler.CancelAll(id.String())
		log.Info("SOS acknowledged, responder on the way")
		s.publish(ctx, events.TypeResponding, event)
	}

	return toSOSEventResponse(event), nil
}

// TestEmergencySystem sends a push test message to every active contact of the
// subject. Nothing is persisted. It returns false when there is nobody to test.
func (s *SOSService) TestEmergencySystem(ctx context.Context, subjectID string) (bool, error) {
	if subjectID == "" {
		return false, apperrors.NewValidationError("subject_id", "is required")
	}

	contacts, err := s.contacts.GetContactsFor(ctx, subjectID)
	if err != nil {
		return false, fmt.Errorf("failed to get emergency contacts: %w", err)
	}
	if len(contacts) == 0 {
		return false, nil
	}

	data := map[string]interface{}{"SubjectName": subjectID}

	var failed atomic.Int32
	var g errgroup.Group
	g.SetLimit(s.policy.FanoutConcurrency)
	for i := range contacts {
		recipient := contacts[i].Recipient()
		g.Go(func() error {
			record := s.dispatcher.Send(ctx, recipient, models.ChannelPush, models.TemplateEmergencySystemTest, data)
			if !record.Success {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"subject_id": subjectID,
		"contacts":   len(contacts),
		"failed":     failed.Load(),
	}).Info("Emergency system test sent")
	return true, nil
}

// GetEvent returns an event together with its notification log
func (s *SOSService) GetEvent(ctx context.Context, id uuid.UUID) (*SOSEventResponse, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSOSEventNotFound
		}
		return nil, fmt.Errorf("failed to get SOS event: %w", err)
	}
	return toSOSEventResponse(event), nil
}

// ListBySubject returns a subject's events, newest first
func (s *SOSService) ListBySubject(ctx context.Context, subjectID string, limit, offset int) (*SOSEventListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	list, total, err := s.events.GetBySubject(ctx, subjectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list SOS events: %w", err)
	}

	responses := make([]SOSEventResponse, len(list))
	for i := range list {
		responses[i] = *toSOSEventResponse(&list[i])
	}

	return &SOSEventListResponse{
		Events: responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// Rescan re-drives every Active event whose thresholds have passed. It recovers
// timelines lost to a restart and retries transitions that failed earlier; the
// guards make it safe to run next to live timers.
func (s *SOSService) Rescan(ctx context.Context) (*RescanSummary, error) {
	now := s.clock.Now().UTC()
	overdue, err := s.events.ListActiveCreatedBefore(ctx, now.Add(-s.policy.SecondaryDelay))
	if err != nil {
		return nil, apperrors.NewPersistenceError("rescan", err)
	}

	summary := &RescanSummary{Scanned: len(overdue)}
	for i := range overdue {
		event := &overdue[i]
		age := now.Sub(event.CreatedAt)
		log := logger.WithContext(ctx).WithField("sos_event_id", event.ID)

		if !event.SecondaryNotified {
			notified, err := s.notifySecondaries(ctx, event.ID)
			if err != nil {
				log.WithError(err).Warn("Rescan secondary fan-out failed")
			} else if notified {
				summary.SecondaryNotified++
			}
		}

		for _, step := range []struct {
			tier  models.EscalationTier
			delay time.Duration
		}{
			{models.TierSupervisor, s.policy.SupervisorDelay},
			{models.TierEmergencyServices, s.policy.EmergencyServicesDelay},
		} {
			if age < step.delay || event.Tier >= step.tier {
				continue
			}
			applied, err := s.Escalate(ctx, event.ID, step.tier)
			if err != nil {
				log.WithError(err).Warn("Rescan escalation failed")
				break
			}
			if applied {
				summary.EscalationsApplied++
			}
		}
	}

	s.metrics.RescanCompleted()
	if summary.SecondaryNotified > 0 || summary.EscalationsApplied > 0 {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"scanned":             summary.Scanned,
			"secondary_notified":  summary.SecondaryNotified,
			"escalations_applied": summary.EscalationsApplied,
		}).Info("Rescan re-drove overdue SOS events")
	}
	return summary, nil
}

// notifySecondaries sends the second contact wave. The store claim guarantees
// at most one caller sends it, and only while the event is still Active.
func (s *SOSService) notifySecondaries(ctx context.Context, id uuid.UUID) (bool, error) {
	claimed, err := s.events.ClaimSecondaryFanout(ctx, id)
	if err != nil {
		return false, apperrors.NewPersistenceError("claim secondary fan-out", err)
	}
	if !claimed {
		return false, nil
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to load SOS event: %w", err)
	}

	contacts, err := s.contacts.GetContactsFor(ctx, event.SubjectID)
	if err != nil {
		return false, fmt.Errorf("failed to get emergency contacts: %w", err)
	}
	_, secondary := splitByPriority(contacts)
	if len(secondary) == 0 {
		return false, nil
	}

	sent := s.notifyTier(ctx, event, secondary, models.TemplateSOSAlertSecondary)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"sos_event_id":  id,
		"notifications": sent,
	}).Info("Secondary contacts notified")
	return true, nil
}

// skipSecondary closes the secondary wave for events that have none
func (s *SOSService) skipSecondary(ctx context.Context, id uuid.UUID) {
	if _, err := s.events.ClaimSecondaryFanout(ctx, id); err != nil {
		logger.WithContext(ctx).WithField("sos_event_id", id).WithError(err).Warn("Failed to close secondary fan-out")
	}
}

func (s *SOSService) notifyEscalationTier(ctx context.Context, event *models.SOSEvent, tier models.EscalationTier) {
	switch tier {
	case models.TierSupervisor:
		s.notifyMembers(ctx, event, models.TemplateSupervisorEscalation, models.MemberRoleAdmin, models.MemberRoleSupervisor)
	case models.TierEmergencyServices:
		s.notifyTier(ctx, event, []models.Recipient{s.emergencyServices()}, models.TemplateEmergencyServices)
	}
}

func (s *SOSService) notifyMembers(ctx context.Context, event *models.SOSEvent, template models.NotificationTemplate, roles ...models.MemberRole) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"sos_event_id": event.ID,
		"template":     template,
	})

	members, err := s.members.GetActiveByRoles(ctx, roles...)
	if err != nil {
		log.WithError(err).Error("Failed to load staff recipients")
		return
	}
	if len(members) == 0 {
		log.WithError(apperrors.ErrNoAdministrators).Error("Nobody to notify for SOS event")
		s.recordUnreachable(ctx, event, template, apperrors.ErrNoAdministrators)
		return
	}

	recipients := make([]models.Recipient, len(members))
	for i := range members {
		recipients[i] = members[i].Recipient()
	}
	s.notifyTier(ctx, event, recipients, template)
}

// recordUnreachable appends a failed admin record so the log shows the tier was
// attempted with nobody to send to.
func (s *SOSService) recordUnreachable(ctx context.Context, event *models.SOSEvent, template models.NotificationTemplate, cause error) {
	record := models.NotificationRecord{
		RecipientID:   administratorsRecipientID,
		RecipientKind: models.RecipientKindAdmin,
		RecipientName: "Administrators",
		Channel:       models.ChannelPush,
		Template:      template,
		SentAt:        s.clock.Now().UTC(),
		Success:       false,
		Error:         cause.Error(),
	}
	if _, err := s.events.AppendNotification(ctx, event.ID, &record); err != nil {
		logger.WithContext(ctx).WithField("sos_event_id", event.ID).WithError(err).Error("Failed to append notification record")
	}
}

// emergencyServices is the stubbed dispatch target for the last tier
func (s *SOSService) emergencyServices() models.Recipient {
	return models.Recipient{
		ID:       emergencyServicesRecipientID,
		Kind:     models.RecipientKindEmergencyServices,
		Name:     "Emergency services",
		Phone:    s.policy.EmergencyServicesPhone,
		Channels: []models.Channel{models.ChannelCall},
	}
}

// notifyTier sends template to every (recipient, channel) pair and appends one
// record per pair, failed or not. Sends start in recipient order, run with
// bounded concurrency and are all awaited. It returns the number of records
// appended; records for an event resolved mid-flight are dropped.
func (s *SOSService) notifyTier(ctx context.Context, event *models.SOSEvent, recipients []models.Recipient, template models.NotificationTemplate) int {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"sos_event_id": event.ID,
		"template":     template,
	})
	data := s.templateData(event)

	var appended atomic.Int32
	var g errgroup.Group
	g.SetLimit(s.policy.FanoutConcurrency)

	for _, recipient := range recipients {
		for _, channel := range uniqueChannels(recipient.Channels) {
			g.Go(func() error {
				if s.isTerminal(ctx, event.ID) {
					return nil
				}

				record := s.dispatcher.Send(ctx, recipient, channel, template, data)
				ok, err := s.events.AppendNotification(ctx, event.ID, &record)
				switch {
				case err != nil:
					log.WithField("recipient_id", recipient.ID).WithError(err).Error("Failed to append notification record")
				case !ok:
					log.WithField("recipient_id", recipient.ID).Debug("SOS event resolved during fan-out, record dropped")
				default:
					appended.Add(1)
				}
				return nil
			})
		}
	}
	_ = g.Wait()

	return int(appended.Load())
}

func (s *SOSService) isTerminal(ctx context.Context, id uuid.UUID) bool {
	state, err := s.events.GetState(ctx, id)
	if err != nil {
		return false
	}
	return state.Status.IsTerminal()
}

// scheduleTimeline registers the guarded callbacks. Delays count from the
// event's creation, not from the end of the first fan-out.
func (s *SOSService) scheduleTimeline(event *models.SOSEvent, withSecondary bool) {
	key := event.ID.String()
	id := event.ID
	elapsed := s.clock.Since(event.CreatedAt)

	if withSecondary {
		s.scheduler.Schedule(key, remaining(s.policy.SecondaryDelay, elapsed), func(ctx context.Context) {
			if _, err := s.notifySecondaries(ctx, id); err != nil {
				logger.WithContext(ctx).WithField("sos_event_id", id).WithError(err).Warn("Scheduled secondary fan-out failed")
			}
		})
	}
	s.scheduler.Schedule(key, remaining(s.policy.SupervisorDelay, elapsed), s.escalationJob(id, models.TierSupervisor))
	s.scheduler.Schedule(key, remaining(s.policy.EmergencyServicesDelay, elapsed), s.escalationJob(id, models.TierEmergencyServices))
}

func (s *SOSService) escalationJob(id uuid.UUID, tier models.EscalationTier) func(ctx context.Context) {
	return func(ctx context.Context) {
		if _, err := s.Escalate(ctx, id, tier); err != nil {
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"sos_event_id": id,
				"target_tier":  tier,
			}).WithError(err).Warn("Scheduled escalation failed, rescan will retry")
		}
	}
}

// locate asks the provider for a fix, bounded by the policy timeout even when
// the provider ignores its context. Any failure degrades to the sentinel.
func (s *SOSService) locate(ctx context.Context, subjectID string) models.Location {
	err := apperrors.ErrLocationUnavailable
	if s.locator != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, s.policy.LocationTimeout)
		defer cancel()

		type result struct {
			location models.Location
			err      error
		}
		done := make(chan result, 1)
		go func() {
			location, err := s.locator.CurrentLocation(lookupCtx, subjectID)
			done <- result{location: location, err: err}
		}()

		select {
		case r := <-done:
			if r.err == nil {
				return r.location
			}
			err = errors.Join(apperrors.ErrLocationUnavailable, r.err)
		case <-lookupCtx.Done():
			err = errors.Join(apperrors.ErrLocationUnavailable, lookupCtx.Err())
		}
	}

	logger.WithContext(ctx).WithField("subject_id", subjectID).WithError(err).Warn("Using unavailable location")
	s.metrics.LocationUnavailable()
	return models.UnavailableLocation()
}

func (s *SOSService) publish(ctx context.Context, eventType events.Type, event *models.SOSEvent) {
	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	location := event.Location
	err := s.publisher.Publish(publishCtx, events.LifecycleEvent{
		Type:        eventType,
		SOSEventID:  event.ID,
		SubjectID:   event.SubjectID,
		SubjectRole: event.SubjectRole,
		Status:      event.Status,
		Tier:        event.Tier,
		Location:    &location,
		OccurredAt:  s.clock.Now().UTC(),
	})
	if err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"sos_event_id": event.ID,
			"type":         eventType,
		}).WithError(err).Warn("Failed to publish lifecycle event")
	}
}

func (s *SOSService) templateData(event *models.SOSEvent) map[string]interface{} {
	name := event.SubjectName
	if name == "" {
		name = event.SubjectID
	}
	return map[string]interface{}{
		"SubjectName": name,
		"SubjectRole": string(event.SubjectRole),
		"Address":     event.Location.Address,
		"Latitude":    fmt.Sprintf("%.5f", event.Location.Latitude),
		"Longitude":   fmt.Sprintf("%.5f", event.Location.Longitude),
		"EventID":     event.ID.String(),
		"Elapsed":     s.clock.Since(event.CreatedAt).Round(time.Second).String(),
	}
}

// splitByPriority separates flagged primaries from the rest, keeping store
// order. When nobody is flagged, the first contact stands in as primary.
func splitByPriority(contacts []models.EmergencyContact) (primary, secondary []models.Recipient) {
	for i := range contacts {
		if contacts[i].IsPrimary {
			primary = append(primary, contacts[i].Recipient())
		} else {
			secondary = append(secondary, contacts[i].Recipient())
		}
	}
	if len(primary) == 0 && len(secondary) > 0 {
		primary, secondary = secondary[:1], secondary[1:]
	}
	return primary, secondary
}

func uniqueChannels(channels []models.Channel) []models.Channel {
	seen := make(map[models.Channel]struct{}, len(channels))
	unique := make([]models.Channel, 0, len(channels))
	for _, channel := range channels {
		if _, ok := seen[channel]; ok {
			continue
		}
		seen[channel] = struct{}{}
		unique = append(unique, channel)
	}
	return unique
}

func remaining(delay, elapsed time.Duration) time.Duration {
	if elapsed >= delay {
		return 0
	}
	return delay - elapsed
}

func toSOSEventResponse(event *models.SOSEvent) *SOSEventResponse {
	log := event.NotificationLog
	if log == nil {
		log = []models.NotificationRecord{}
	}
	return &SOSEventResponse{
		ID:                event.ID,
		SubjectID:         event.SubjectID,
		SubjectRole:       event.SubjectRole,
		SubjectName:       event.SubjectName,
		Status:            event.Status,
		Tier:              event.Tier,
		Location:          event.Location,
		SecondaryNotified: event.SecondaryNotified,
		Notes:             event.Notes,
		CreatedAt:         event.CreatedAt,
		RespondedAt:       event.RespondedAt,
		ResolvedAt:        event.ResolvedAt,
		NotificationLog:   log,
	}
}
