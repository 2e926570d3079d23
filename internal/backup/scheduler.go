package backup

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

// Scheduler runs rotations on a cron schedule. robfig/cron starts a goroutine
// per trigger, so the scheduler serializes rotations itself: a tick that fires
// while the previous rotation is still in flight is skipped.
type Scheduler struct {
	rotator *Rotator
	cron    *cron.Cron
	log     *log.Logger

	mu sync.Mutex
}

// NewScheduler registers the rotation job on the given cron expression
// (standard 5-field format: minute hour dom month dow).
func NewScheduler(rotator *Rotator, spec string, logger *log.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = log.Default()
	}

	s := &Scheduler{
		rotator: rotator,
		cron:    cron.New(),
		log:     logger,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("failed to register backup schedule %q: %w", spec, err)
	}

	return s, nil
}

func (s *Scheduler) run() {
	if !s.mu.TryLock() {
		s.log.Warn("Previous backup rotation still running, skipping this run")
		return
	}
	defer s.mu.Unlock()

	s.log.Debug("Scheduled backup rotation triggered")
	if _, _, err := s.rotator.Rotate(); err != nil {
		// A failed rotation is not fatal; the next tick retries
		s.log.Error("Scheduled backup failed", "error", err)
	}
}

// Start begins the schedule and logs the next run time.
func (s *Scheduler) Start() {
	s.cron.Start()

	entries := s.cron.Entries()
	if len(entries) > 0 {
		s.log.Info("Backup scheduler started", "next_run", entries[0].Next.Format("2006-01-02 15:04:05"))
	}
}

// Stop halts the schedule and waits for a running rotation to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Backup scheduler stopped")
}
