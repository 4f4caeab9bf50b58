package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/stayontrack/stay-on-track-backend/internal/app"
	"github.com/stayontrack/stay-on-track-backend/internal/config"
	"github.com/stayontrack/stay-on-track-backend/internal/gemini"
	"github.com/stayontrack/stay-on-track-backend/internal/planner"
	"github.com/stayontrack/stay-on-track-backend/internal/repository"
	"github.com/stayontrack/stay-on-track-backend/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting planner backend",
		zap.String("environment", cfg.Environment),
		zap.Bool("gemini_enabled", cfg.GeminiAPIKey != ""))

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	weekRepo := repository.NewPlannerWeekRepository(pool)
	taskRepo := repository.NewPlannerTaskRepository(pool)
	deadlineRepo := repository.NewDeadlineRepository(pool)
	profileRepo := repository.NewFocusProfileRepository(pool)
	semesterRepo := repository.NewSemesterRepository(pool)

	var suggester planner.Suggester
	if cfg.GeminiAPIKey != "" {
		suggester = gemini.NewClient(cfg.GeminiAPIKey, logger)
	}
	pipeline := planner.New(suggester, logger)

	plannerService := service.NewPlannerService(
		weekRepo, taskRepo, deadlineRepo, profileRepo, semesterRepo, pipeline, logger)

	scheduler := app.NewScheduler(plannerService, logger)
	if err := scheduler.Start(); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	<-ctx.Done()
	logger.Info("Shutting down")
}
