package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Rescanner periodically re-drives work that in-memory timers may have lost,
// for example after a process restart.
type Rescanner struct {
	c        *cron.Cron
	interval time.Duration
}

// NewRescanner registers job to run every interval. Overlapping runs are skipped
// and panics are recovered and logged.
func NewRescanner(interval time.Duration, job Job) (*Rescanner, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("rescan interval must be positive, got %s", interval)
	}

	cronLogger := cron.PrintfLogger(logrus.StandardLogger())
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger),
		cron.SkipIfStillRunning(cronLogger),
	))

	if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		job(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("register rescan job: %w", err)
	}

	return &Rescanner{c: c, interval: interval}, nil
}

// Start begins running the job in the background
func (r *Rescanner) Start() {
	logrus.WithField("interval", r.interval.String()).Info("Escalation rescan started")
	r.c.Start()
}

// Stop halts the schedule and waits for a running pass to finish
func (r *Rescanner) Stop() {
	ctx := r.c.Stop()
	<-ctx.Done()
}

// Entries exposes the registered cron entries
func (r *Rescanner) Entries() []cron.Entry {
	return r.c.Entries()
}
