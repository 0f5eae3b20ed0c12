package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/CyberSolo/UDAM/internal/metrics"
)

// Scheduler periodically force-expires elapsed dispute and counter windows.
type Scheduler struct {
	cron    *cron.Cron
	engine  *Engine
	log     *slog.Logger
	sweepID cron.EntryID
}

// NewScheduler creates a Scheduler that sweeps expired windows every
// interval.
func NewScheduler(
	eng *Engine,
	sweepInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	id, err := c.AddFunc("@every "+sweepInterval.String(), s.runSweep)
	if err != nil {
		return nil, err
	}
	s.sweepID = id

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.syncNextRunTimestamp()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runSweep() {
	ctx := context.Background()
	s.log.Debug("scheduled window sweep starting")
	if _, err := s.engine.ExpireWindows(ctx); err != nil {
		s.log.Error("scheduled window sweep failed", "error", err)
	}
	s.syncNextRunTimestamp()
}

func (s *Scheduler) syncNextRunTimestamp() {
	if next := s.cron.Entry(s.sweepID).Next; !next.IsZero() {
		metrics.SchedulerNextSweepTimestamp.Set(float64(next.Unix()))
	}
}
