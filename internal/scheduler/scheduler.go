package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Sweeper is anything that can drop expired entries and report how many went.
type Sweeper interface {
	Sweep() int
	Len() int
}

// Scheduler periodically sweeps idle lookup sessions.
type Scheduler struct {
	scheduler *gocron.Scheduler
	sweeper   Sweeper
	interval  time.Duration
	logger    *zap.Logger
}

// New creates a new Scheduler.
func New(sweeper Sweeper, interval time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		sweeper:   sweeper,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the sweep job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	_, err := s.scheduler.Every(interval).WaitForSchedule().Do(s.RunOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Info("session sweeper started", zap.Duration("interval", interval))
	return nil
}

// RunOnce performs a single sweep.
func (s *Scheduler) RunOnce() {
	removed := s.sweeper.Sweep()
	if removed > 0 {
		s.logger.Info("swept idle sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", s.sweeper.Len()))
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
