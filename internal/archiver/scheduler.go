package archiver

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the archiver on a cron schedule when archival is
// operated as a daemon instead of a one-shot command.
type Scheduler struct {
	archiver *Archiver
	schedule string
	logger   *logrus.Logger
	cron     *cron.Cron
	mu       sync.Mutex
	running  bool
}

// NewScheduler creates a scheduler for the given cron expression
func NewScheduler(archiver *Archiver, schedule string, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		archiver: archiver,
		schedule: schedule,
		logger:   logger,
	}
}

// Start registers the cron job and starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	s.cron = cron.New()
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.archiver.Run(context.Background()); err != nil {
			s.logger.WithError(err).Error("Scheduled archival run failed")
		}
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to schedule archival job")
		return err
	}

	s.cron.Start()
	s.running = true
	s.logger.WithField("schedule", s.schedule).Info("Archival scheduler started")
	return nil
}

// Stop stops the scheduler, waiting for a running job to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.cron == nil {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
	s.logger.Info("Archival scheduler stopped")
}
