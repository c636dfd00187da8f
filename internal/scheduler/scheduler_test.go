package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EscalationSchedulerTestSuite struct {
	suite.Suite
	clock     *clock.Mock
	scheduler *EscalationScheduler
}

func (suite *EscalationSchedulerTestSuite) SetupTest() {
	suite.clock = clock.NewMock()
	suite.scheduler = New(suite.clock)
}

func (suite *EscalationSchedulerTestSuite) TearDownTest() {
	suite.scheduler.Stop()
}

func (suite *EscalationSchedulerTestSuite) waitCompleted(n int64) {
	suite.Eventually(func() bool {
		return suite.scheduler.Completed() >= n
	}, time.Second, 5*time.Millisecond)
}

func (suite *EscalationSchedulerTestSuite) TestFiresAfterDelay() {
	var calls atomic.Int32
	entry := suite.scheduler.Schedule("sos-1", 2*time.Minute, func(ctx context.Context) {
		calls.Add(1)
	})

	suite.Equal(StateScheduled, entry.State())
	suite.Equal(1, suite.scheduler.Pending("sos-1"))

	suite.clock.Add(time.Minute)
	suite.Equal(int32(0), calls.Load())

	suite.clock.Add(time.Minute)
	suite.waitCompleted(1)

	suite.Equal(int32(1), calls.Load())
	suite.Equal(StateFired, entry.State())
	suite.Equal(0, suite.scheduler.Pending("sos-1"))
}

func (suite *EscalationSchedulerTestSuite) TestCancelBeforeFire() {
	var calls atomic.Int32
	entry := suite.scheduler.Schedule("sos-1", time.Minute, func(ctx context.Context) {
		calls.Add(1)
	})

	suite.True(suite.scheduler.Cancel(entry))
	suite.False(suite.scheduler.Cancel(entry))
	suite.Equal(StateCancelled, entry.State())

	suite.clock.Add(2 * time.Minute)
	time.Sleep(10 * time.Millisecond)

	suite.Equal(int32(0), calls.Load())
	suite.Equal(int64(0), suite.scheduler.Completed())
}

func (suite *EscalationSchedulerTestSuite) TestCancelAfterFireFails() {
	entry := suite.scheduler.Schedule("sos-1", time.Minute, func(ctx context.Context) {})

	suite.clock.Add(time.Minute)
	suite.waitCompleted(1)

	suite.False(suite.scheduler.Cancel(entry))
	suite.Equal(StateFired, entry.State())
}

func (suite *EscalationSchedulerTestSuite) TestCancelAllIsScopedToKey() {
	var first, second atomic.Int32
	suite.scheduler.Schedule("sos-1", time.Minute, func(ctx context.Context) { first.Add(1) })
	suite.scheduler.Schedule("sos-1", 2*time.Minute, func(ctx context.Context) { first.Add(1) })
	suite.scheduler.Schedule("sos-2", time.Minute, func(ctx context.Context) { second.Add(1) })

	suite.Equal(2, suite.scheduler.CancelAll("sos-1"))
	suite.Equal(0, suite.scheduler.Pending("sos-1"))
	suite.Equal(1, suite.scheduler.Pending("sos-2"))

	suite.clock.Add(3 * time.Minute)
	suite.waitCompleted(1)

	suite.Equal(int32(0), first.Load())
	suite.Equal(int32(1), second.Load())
}

func (suite *EscalationSchedulerTestSuite) TestFiresInDueOrder() {
	order := make(chan string, 3)
	suite.scheduler.Schedule("sos-1", 10*time.Minute, func(ctx context.Context) { order <- "emergency_services" })
	suite.scheduler.Schedule("sos-1", 2*time.Minute, func(ctx context.Context) { order <- "secondary" })
	suite.scheduler.Schedule("sos-1", 5*time.Minute, func(ctx context.Context) { order <- "supervisor" })

	suite.clock.Add(2 * time.Minute)
	suite.waitCompleted(1)
	suite.Equal("secondary", <-order)

	suite.clock.Add(3 * time.Minute)
	suite.waitCompleted(2)
	suite.Equal("supervisor", <-order)

	suite.clock.Add(5 * time.Minute)
	suite.waitCompleted(3)
	suite.Equal("emergency_services", <-order)
}

func (suite *EscalationSchedulerTestSuite) TestStopCancelsPending() {
	var calls atomic.Int32
	entry := suite.scheduler.Schedule("sos-1", time.Minute, func(ctx context.Context) { calls.Add(1) })

	suite.scheduler.Stop()
	suite.Equal(StateCancelled, entry.State())

	late := suite.scheduler.Schedule("sos-2", time.Minute, func(ctx context.Context) { calls.Add(1) })
	suite.Equal(StateCancelled, late.State())

	suite.clock.Add(time.Hour)
	time.Sleep(10 * time.Millisecond)
	suite.Equal(int32(0), calls.Load())
}

func (suite *EscalationSchedulerTestSuite) TestStopLetsRunningJobFinish() {
	started := make(chan struct{})
	release := make(chan struct{})
	var jobErr atomic.Value
	suite.scheduler.Schedule("sos-1", time.Minute, func(ctx context.Context) {
		close(started)
		<-release
		jobErr.Store(fmt.Sprint(ctx.Err()))
	})

	suite.clock.Add(time.Minute)
	<-started

	stopped := make(chan struct{})
	go func() {
		suite.scheduler.Stop()
		close(stopped)
	}()
	suite.Never(func() bool {
		select {
		case <-stopped:
			return true
		default:
			return false
		}
	}, 50*time.Millisecond, 5*time.Millisecond)

	close(release)
	<-stopped
	suite.Equal("<nil>", jobErr.Load())
	suite.Equal(int64(1), suite.scheduler.Completed())
}

func TestEscalationSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(EscalationSchedulerTestSuite))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "scheduled", StateScheduled.String())
	assert.Equal(t, "fired", StateFired.String())
	assert.Equal(t, "cancelled", StateCancelled.String())
}

func TestRealClockDefault(t *testing.T) {
	s := New(nil)
	defer s.Stop()

	done := make(chan struct{})
	s.Schedule("sos-1", time.Millisecond, func(ctx context.Context) { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not fire on the real clock")
	}
}

func TestRescanner(t *testing.T) {
	_, err := NewRescanner(0, func(ctx context.Context) {})
	assert.Error(t, err)

	r, err := NewRescanner(time.Minute, func(ctx context.Context) {})
	require.NoError(t, err)
	assert.Len(t, r.Entries(), 1)

	r.Start()
	r.Stop()
}
