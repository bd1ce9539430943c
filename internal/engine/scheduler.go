package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs check cycles on a fixed interval. A cycle that is still
// running when the next tick fires causes that tick to be skipped.
type Scheduler struct {
	cron    *cron.Cron
	engine  *Engine
	log     *slog.Logger
	entryID cron.EntryID
}

// NewScheduler creates a new Scheduler that runs engine cycles every
// pollInterval.
func NewScheduler(
	eng *Engine,
	pollInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	id, err := c.AddFunc("@every "+pollInterval.String(), s.runCycle)
	if err != nil {
		return nil, err
	}
	s.entryID = id

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// RunNow starts a cycle in the background. It shares the overlap guard of
// scheduled ticks, so it is skipped while a cycle is running and the next
// tick is skipped while it runs.
func (s *Scheduler) RunNow() {
	go s.cron.Entry(s.entryID).WrappedJob.Run()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runCycle() {
	ctx := context.Background()
	s.log.Info("scheduled check cycle starting")
	if _, err := s.engine.RunAll(ctx); err != nil {
		s.log.Error("scheduled check cycle failed", "error", err)
	}
}
