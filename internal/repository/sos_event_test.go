package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"sos-escalation-backend/internal/database/models"
	"sos-escalation-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SOSEventRepositoryTestSuite tests the SOSEventRepository against in-memory SQLite
type SOSEventRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *SOSEventRepository
	factories *testutils.FactorySet
	ctx       context.Context
}

// SetupTest runs before each test
func (suite *SOSEventRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repo = NewSOSEventRepository(suite.db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *SOSEventRepositoryTestSuite) createEvent() *models.SOSEvent {
	event := suite.factories.SOSEvent.Create("worker-1")
	suite.Require().NoError(suite.repo.Create(suite.ctx, event))
	return event
}

// TestCreateAndGetByID tests creating an event and reading it back with its log
func (suite *SOSEventRepositoryTestSuite) TestCreateAndGetByID() {
	event := suite.factories.SOSEvent.Create("worker-1")
	event.ID = uuid.Nil

	err := suite.repo.Create(suite.ctx, event)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, event.ID)

	base := time.Now().UTC()
	second := testutils.NotificationRecord(models.RecipientKindEmergencyContact, base.Add(time.Second))
	first := testutils.NotificationRecord(models.RecipientKindEmergencyContact, base)
	_, err = suite.repo.AppendNotification(suite.ctx, event.ID, second)
	suite.Require().NoError(err)
	_, err = suite.repo.AppendNotification(suite.ctx, event.ID, first)
	suite.Require().NoError(err)

	found, err := suite.repo.GetByID(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Equal("worker-1", found.SubjectID)
	suite.Equal(models.TierInitial, found.Tier)
	suite.Equal("Alexanderplatz 1, Berlin", found.Location.Address)
	suite.Require().Len(found.NotificationLog, 2)
	suite.Equal(first.ID, found.NotificationLog[0].ID)
	suite.Equal(second.ID, found.NotificationLog[1].ID)
}

// TestGetByIDNotFound tests reading an unknown event
func (suite *SOSEventRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetState(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetState tests the guard view
func (suite *SOSEventRepositoryTestSuite) TestGetState() {
	event := suite.createEvent()

	state, err := suite.repo.GetState(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SOSStatusActive, state.Status)
	suite.Equal(models.TierInitial, state.Tier)
	suite.False(state.SecondaryNotified)
}

// TestApplyTierIfActive tests the compare-and-set tier transition
func (suite *SOSEventRepositoryTestSuite) TestApplyTierIfActive() {
	event := suite.createEvent()

	applied, err := suite.repo.ApplyTierIfActive(suite.ctx, event.ID, models.TierInitial, models.TierSupervisor)
	suite.NoError(err)
	suite.True(applied)

	// Stale expectation loses
	applied, err = suite.repo.ApplyTierIfActive(suite.ctx, event.ID, models.TierInitial, models.TierSupervisor)
	suite.NoError(err)
	suite.False(applied)

	applied, err = suite.repo.ApplyTierIfActive(suite.ctx, event.ID, models.TierSupervisor, models.TierEmergencyServices)
	suite.NoError(err)
	suite.True(applied)

	state, err := suite.repo.GetState(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TierEmergencyServices, state.Tier)
}

// TestApplyTierIfActiveRejectsDowngrade tests that tiers never decrease
func (suite *SOSEventRepositoryTestSuite) TestApplyTierIfActiveRejectsDowngrade() {
	event := suite.createEvent()

	applied, err := suite.repo.ApplyTierIfActive(suite.ctx, event.ID, models.TierSupervisor, models.TierInitial)
	suite.Error(err)
	suite.False(applied)

	applied, err = suite.repo.ApplyTierIfActive(suite.ctx, event.ID, models.TierInitial, models.TierInitial)
	suite.Error(err)
	suite.False(applied)
}

// TestApplyTierIfActiveFrozenAfterResolve tests that a terminal event keeps its tier
func (suite *SOSEventRepositoryTestSuite) TestApplyTierIfActiveFrozenAfterResolve() {
	event := suite.createEvent()

	resolved, err := suite.repo.ResolveIfActive(suite.ctx, event.ID, models.SOSStatusResolved, "safe", time.Now())
	suite.Require().NoError(err)
	suite.True(resolved)

	applied, err := suite.repo.ApplyTierIfActive(suite.ctx, event.ID, models.TierInitial, models.TierSupervisor)
	suite.NoError(err)
	suite.False(applied)

	state, err := suite.repo.GetState(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TierInitial, state.Tier)
}

// TestResolveIfActiveIsIdempotent tests that a second resolution changes nothing
func (suite *SOSEventRepositoryTestSuite) TestResolveIfActiveIsIdempotent() {
	event := suite.createEvent()
	firstAt := time.Now().UTC().Truncate(time.Millisecond)

	resolved, err := suite.repo.ResolveIfActive(suite.ctx, event.ID, models.SOSStatusResolved, "first", firstAt)
	suite.NoError(err)
	suite.True(resolved)

	resolved, err = suite.repo.ResolveIfActive(suite.ctx, event.ID, models.SOSStatusFalseAlarm, "second", firstAt.Add(time.Minute))
	suite.NoError(err)
	suite.False(resolved)

	found, err := suite.repo.GetByID(suite.ctx, event.ID)
	suite.Require().NoError(err)
	suite.Equal(models.SOSStatusResolved, found.Status)
	suite.Equal("first", found.Notes)
	suite.Require().NotNil(found.ResolvedAt)
	suite.True(firstAt.Equal(found.ResolvedAt.UTC()))
}

// TestResolveIfActiveRejectsNonOutcome tests that only terminal statuses are accepted
func (suite *SOSEventRepositoryTestSuite) TestResolveIfActiveRejectsNonOutcome() {
	event := suite.createEvent()

	resolved, err := suite.repo.ResolveIfActive(suite.ctx, event.ID, models.SOSStatusResponding, "", time.Now())
	suite.Error(err)
	suite.False(resolved)
}

// TestMarkResponding tests the Active to Responding transition
func (suite *SOSEventRepositoryTestSuite) TestMarkResponding() {
	event := suite.createEvent()

	moved, err := suite.repo.MarkResponding(suite.ctx, event.ID, time.Now())
	suite.NoError(err)
	suite.True(moved)

	moved, err = suite.repo.MarkResponding(suite.ctx, event.ID, time.Now())
	suite.NoError(err)
	suite.False(moved)

	// A responding event no longer escalates but can still be resolved
	applied, err := suite.repo.ApplyTierIfActive(suite.ctx, event.ID, models.TierInitial, models.TierSupervisor)
	suite.NoError(err)
	suite.False(applied)

	resolved, err := suite.repo.ResolveIfActive(suite.ctx, event.ID, models.SOSStatusResolved, "", time.Now())
	suite.NoError(err)
	suite.True(resolved)
}

// TestClaimSecondaryFanout tests that exactly one claim wins
func (suite *SOSEventRepositoryTestSuite) TestClaimSecondaryFanout() {
	event := suite.createEvent()

	claimed, err := suite.repo.ClaimSecondaryFanout(suite.ctx, event.ID)
	suite.NoError(err)
	suite.True(claimed)

	claimed, err = suite.repo.ClaimSecondaryFanout(suite.ctx, event.ID)
	suite.NoError(err)
	suite.False(claimed)
}

// TestClaimSecondaryFanoutAfterResolve tests that a resolved event cannot be claimed
func (suite *SOSEventRepositoryTestSuite) TestClaimSecondaryFanoutAfterResolve() {
	event := suite.createEvent()
	_, err := suite.repo.ResolveIfActive(suite.ctx, event.ID, models.SOSStatusFalseAlarm, "", time.Now())
	suite.Require().NoError(err)

	claimed, err := suite.repo.ClaimSecondaryFanout(suite.ctx, event.ID)
	suite.NoError(err)
	suite.False(claimed)
}

// TestAppendNotificationRejectedAfterResolve tests the guarded append
func (suite *SOSEventRepositoryTestSuite) TestAppendNotificationRejectedAfterResolve() {
	event := suite.createEvent()

	appended, err := suite.repo.AppendNotification(suite.ctx, event.ID, testutils.NotificationRecord(models.RecipientKindAdmin, time.Now()))
	suite.NoError(err)
	suite.True(appended)

	_, err = suite.repo.ResolveIfActive(suite.ctx, event.ID, models.SOSStatusResolved, "", time.Now())
	suite.Require().NoError(err)

	appended, err = suite.repo.AppendNotification(suite.ctx, event.ID, testutils.NotificationRecord(models.RecipientKindAdmin, time.Now()))
	suite.NoError(err)
	suite.False(appended)

	count, err := suite.repo.CountNotifications(suite.ctx, event.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestAppendNotificationUnknownEvent tests appending to a missing event
func (suite *SOSEventRepositoryTestSuite) TestAppendNotificationUnknownEvent() {
	appended, err := suite.repo.AppendNotification(suite.ctx, uuid.New(), testutils.NotificationRecord(models.RecipientKindAdmin, time.Now()))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.False(appended)
}

// TestEscalateResolveRace tests that concurrent escalation and resolution leave a consistent row
func (suite *SOSEventRepositoryTestSuite) TestEscalateResolveRace() {
	for i := 0; i < 20; i++ {
		event := suite.createEvent()

		var wg sync.WaitGroup
		var escalated, resolved bool
		wg.Add(2)
		go func() {
			defer wg.Done()
			escalated, _ = suite.repo.ApplyTierIfActive(suite.ctx, event.ID, models.TierInitial, models.TierSupervisor)
		}()
		go func() {
			defer wg.Done()
			resolved, _ = suite.repo.ResolveIfActive(suite.ctx, event.ID, models.SOSStatusResolved, "", time.Now())
		}()
		wg.Wait()

		suite.True(resolved)
		state, err := suite.repo.GetState(suite.ctx, event.ID)
		suite.Require().NoError(err)
		suite.Equal(models.SOSStatusResolved, state.Status)
		if escalated {
			suite.Equal(models.TierSupervisor, state.Tier)
		} else {
			suite.Equal(models.TierInitial, state.Tier)
		}

		// Whatever won, the tier is frozen from here on
		applied, err := suite.repo.ApplyTierIfActive(suite.ctx, event.ID, state.Tier, models.TierEmergencyServices)
		suite.NoError(err)
		suite.False(applied)
	}
}

// TestAcknowledgeNotification tests flagging a record once
func (suite *SOSEventRepositoryTestSuite) TestAcknowledgeNotification() {
	event := suite.createEvent()
	record := testutils.NotificationRecord(models.RecipientKindEmergencyContact, time.Now())
	_, err := suite.repo.AppendNotification(suite.ctx, event.ID, record)
	suite.Require().NoError(err)

	firstAt := time.Now().UTC().Truncate(time.Millisecond)
	acked, err := suite.repo.AcknowledgeNotification(suite.ctx, event.ID, record.ID, firstAt)
	suite.Require().NoError(err)
	suite.True(acked.Acknowledged)
	suite.Require().NotNil(acked.AcknowledgedAt)

	again, err := suite.repo.AcknowledgeNotification(suite.ctx, event.ID, record.ID, firstAt.Add(time.Hour))
	suite.Require().NoError(err)
	suite.True(firstAt.Equal(again.AcknowledgedAt.UTC()))
}

// TestAcknowledgeNotificationWrongEvent tests that records are scoped to their event
func (suite *SOSEventRepositoryTestSuite) TestAcknowledgeNotificationWrongEvent() {
	event := suite.createEvent()
	record := testutils.NotificationRecord(models.RecipientKindEmergencyContact, time.Now())
	_, err := suite.repo.AppendNotification(suite.ctx, event.ID, record)
	suite.Require().NoError(err)

	_, err = suite.repo.AcknowledgeNotification(suite.ctx, uuid.New(), record.ID, time.Now())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetBySubject tests pagination newest first
func (suite *SOSEventRepositoryTestSuite) TestGetBySubject() {
	older := suite.createEvent()
	newer := suite.createEvent()
	other := suite.factories.SOSEvent.Create("client-9")
	suite.Require().NoError(suite.repo.Create(suite.ctx, other))

	events, total, err := suite.repo.GetBySubject(suite.ctx, "worker-1", 1, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(events, 1)
	suite.Equal(newer.ID, events[0].ID)

	events, _, err = suite.repo.GetBySubject(suite.ctx, "worker-1", 1, 1)
	suite.NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal(older.ID, events[0].ID)
}

// TestListActiveCreatedBefore tests the rescan query
func (suite *SOSEventRepositoryTestSuite) TestListActiveCreatedBefore() {
	now := time.Now().UTC()
	old := suite.factories.SOSEvent.CreatedAt("worker-1", now.Add(-10*time.Minute))
	fresh := suite.factories.SOSEvent.CreatedAt("worker-2", now)
	resolved := suite.factories.SOSEvent.CreatedAt("worker-3", now.Add(-20*time.Minute))
	for _, e := range []*models.SOSEvent{old, fresh, resolved} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, e))
	}
	_, err := suite.repo.ResolveIfActive(suite.ctx, resolved.ID, models.SOSStatusResolved, "", now)
	suite.Require().NoError(err)

	events, err := suite.repo.ListActiveCreatedBefore(suite.ctx, now.Add(-time.Minute))
	suite.NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal(old.ID, events[0].ID)
}

func TestSOSEventRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SOSEventRepositoryTestSuite))
}
