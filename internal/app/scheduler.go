package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/stayontrack/stay-on-track-backend/internal/service"
)

// Every Monday at 06:00 local time, before the study day starts.
const weeklyRegenerationSpec = "0 6 * * 1"

// Scheduler runs the background planner jobs.
type Scheduler struct {
	plannerService *service.PlannerService
	logger         *zap.Logger
	cron           *cron.Cron
}

// NewScheduler creates a scheduler for the weekly regeneration job.
func NewScheduler(plannerService *service.PlannerService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		plannerService: plannerService,
		logger:         logger,
		cron:           cron.New(cron.WithLocation(time.Local)),
	}
}

// Start registers and launches the background jobs.
func (s *Scheduler) Start() error {
	s.logger.Info("Starting background scheduler")

	_, err := s.cron.AddFunc(weeklyRegenerationSpec, s.regenerateUpcomingWeeks)
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// regenerateUpcomingWeeks rebuilds the upcoming week for every user with a
// semester configured. Each user is processed independently; one failure
// never blocks the rest.
func (s *Scheduler) regenerateUpcomingWeeks() {
	s.logger.Info("Starting weekly plan regeneration")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := s.plannerService.RegenerateUpcomingWeekForAllUsers(ctx); err != nil {
		s.logger.Error("Weekly plan regeneration failed", zap.Error(err))
		return
	}

	s.logger.Info("Weekly plan regeneration completed successfully")
}
