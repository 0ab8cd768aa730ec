package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"rvpark-backend/internal/jobs"
	"rvpark-backend/internal/logger"
)

// Scheduler drives the recurring maintenance jobs off cron expressions
// from the config file. All schedules are evaluated in UTC.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	s := &Scheduler{
		// seconds field enabled so the half-hourly snapshot refresh
		// can be expressed precisely
		cron: cron.New(cron.WithLocation(time.UTC), cron.WithSeconds()),
		jobs: jobRunner,
	}
	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	entries := []struct {
		name string
		spec string
		fn   func()
	}{
		{"finalize_expired_rentals", cfg.FinalizeExpiredRentals, s.jobs.FinalizeExpiredRentals},
		{"refresh_spot_snapshots", cfg.RefreshSpotSnapshots, s.jobs.RefreshSpotSnapshots},
	}

	for _, e := range entries {
		if _, err := s.cron.AddFunc(e.spec, e.fn); err != nil {
			logger.Error("Failed to register job", "job", e.name, "spec", e.spec, "error", err)
			continue
		}
		logger.Info("Registered job", "job", e.name, "spec", e.spec)
	}
}

// Start begins running registered jobs on their schedules.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop halts the scheduler and waits for any in-flight job to finish.
func (s *Scheduler) Stop() {
	logger.Info("Stopping scheduler...")
	<-s.cron.Stop().Done()
	logger.Info("Scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
