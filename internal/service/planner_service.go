package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
	"github.com/stayontrack/stay-on-track-backend/internal/planner"
	"github.com/stayontrack/stay-on-track-backend/internal/repository"
)

const (
	// maxPlanWeeks caps semester generation; covers a full semester so all
	// assignments and exams are included.
	maxPlanWeeks = 12

	// defaultAvailableHours is used by the background regeneration job when a
	// user has no previous week to inherit the budget from.
	defaultAvailableHours = 10
)

// WeeklySummary aggregates the current week for the home screen.
type WeeklySummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Overdue   int `json:"overdue"`
}

// PlannerService generates and regenerates weekly schedules from deadlines.
type PlannerService struct {
	weekRepo     *repository.PlannerWeekRepository
	taskRepo     *repository.PlannerTaskRepository
	deadlineRepo *repository.DeadlineRepository
	profileRepo  *repository.FocusProfileRepository
	semesterRepo *repository.SemesterRepository
	pipeline     *planner.Pipeline
	logger       *zap.Logger
}

func NewPlannerService(
	weekRepo *repository.PlannerWeekRepository,
	taskRepo *repository.PlannerTaskRepository,
	deadlineRepo *repository.DeadlineRepository,
	profileRepo *repository.FocusProfileRepository,
	semesterRepo *repository.SemesterRepository,
	pipeline *planner.Pipeline,
	logger *zap.Logger,
) *PlannerService {
	return &PlannerService{
		weekRepo:     weekRepo,
		taskRepo:     taskRepo,
		deadlineRepo: deadlineRepo,
		profileRepo:  profileRepo,
		semesterRepo: semesterRepo,
		pipeline:     pipeline,
		logger:       logger,
	}
}

// GeneratePlan builds the planner for the whole semester, one week at a time
// in calendar order. Existing weeks are replaced, never merged. Called when
// the user completes setup or edits deadlines.
func (s *PlannerService) GeneratePlan(ctx context.Context, userID string, availableHours int) (*model.PlannerWeek, error) {
	today := planner.DateOf(time.Now())

	semesters, err := s.semesterRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load semesters: %w", err)
	}
	planStart, planEnd := planWindow(semesters, today)

	var last *model.PlannerWeek
	weekStart := planStart
	for weekCount := 0; !weekStart.After(planEnd) && weekCount < maxPlanWeeks; weekCount++ {
		week, err := s.regenerateWeek(ctx, userID, weekStart, availableHours, "")
		if err != nil {
			return nil, err
		}
		last = week
		weekStart = weekStart.AddDate(0, 0, 7)
	}

	if last != nil {
		s.logger.Info("Semester plan generated",
			zap.String("user_id", userID),
			zap.Time("plan_start", planStart),
			zap.Time("last_week", last.WeekStartDate))
	}
	return last, nil
}

// RegenerateNextWeek rebuilds only the upcoming week, carrying the user's
// check-in feedback into the suggestion request.
func (s *PlannerService) RegenerateNextWeek(ctx context.Context, userID string, availableHours int, feedback string) (*model.PlannerWeek, error) {
	nextMonday := planner.NextMonday(time.Now())
	return s.regenerateWeek(ctx, userID, nextMonday, availableHours, feedback)
}

// RegenerateUpcomingWeekForAllUsers is the Monday-morning background job.
// Failures are per-user: one broken account never blocks the rest.
func (s *PlannerService) RegenerateUpcomingWeekForAllUsers(ctx context.Context) error {
	userIDs, err := s.semesterRepo.ListUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	for _, userID := range userIDs {
		hours, err := s.inheritAvailableHours(ctx, userID)
		if err != nil {
			s.logger.Warn("Failed to read previous week, using default hours",
				zap.String("user_id", userID), zap.Error(err))
			hours = defaultAvailableHours
		}
		if _, err := s.RegenerateNextWeek(ctx, userID, hours, ""); err != nil {
			s.logger.Error("Failed to regenerate week for user",
				zap.String("user_id", userID), zap.Error(err))
		}
	}
	return nil
}

// TodaysTasks returns the sessions scheduled for today, for the home page.
func (s *PlannerService) TodaysTasks(ctx context.Context, userID string) ([]model.PlannerTask, error) {
	tasks, err := s.taskRepo.ListForDate(ctx, userID, planner.DateOf(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("load today's tasks: %w", err)
	}
	return tasks, nil
}

// GetWeeklySummary computes completed/total/overdue counts for the current week.
func (s *PlannerService) GetWeeklySummary(ctx context.Context, userID string) (*WeeklySummary, error) {
	today := planner.DateOf(time.Now())
	tasks, err := s.taskRepo.ListForWeekStarting(ctx, userID, planner.WeekStart(today))
	if err != nil {
		return nil, fmt.Errorf("load week tasks: %w", err)
	}
	return SummarizeWeek(tasks, today), nil
}

// SummarizeWeek counts completed and overdue tasks relative to today.
func SummarizeWeek(tasks []model.PlannerTask, today time.Time) *WeeklySummary {
	summary := &WeeklySummary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			summary.Completed++
			continue
		}
		if t.DueDate.Before(today) {
			summary.Overdue++
		}
	}
	return summary
}

// SetTaskCompletion toggles one task's completed flag.
func (s *PlannerService) SetTaskCompletion(ctx context.Context, taskID string, completed bool) (*model.PlannerTask, error) {
	task, err := s.taskRepo.SetCompleted(ctx, taskID, completed)
	if err != nil {
		return nil, fmt.Errorf("toggle task completion: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("task %s not found", taskID)
	}
	return task, nil
}

// WeekWithTasks loads a generated week and its tasks, e.g. for rendering.
func (s *PlannerService) WeekWithTasks(ctx context.Context, userID string, weekStart time.Time) (*model.PlannerWeek, []model.PlannerTask, error) {
	week, err := s.weekRepo.GetByStartDate(ctx, userID, planner.DateOf(weekStart))
	if err != nil {
		return nil, nil, fmt.Errorf("load week: %w", err)
	}
	if week == nil {
		return nil, nil, nil
	}
	tasks, err := s.taskRepo.ListByWeekID(ctx, week.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("load week tasks: %w", err)
	}
	return week, tasks, nil
}

// regenerateWeek replaces one week: delete the old instance and its tasks,
// create the new week record, run the pipeline, persist the accepted list.
// If persisting the tasks fails the fresh week record is removed again, so a
// failed run never leaves a half-written week.
func (s *PlannerService) regenerateWeek(ctx context.Context, userID string, weekStart time.Time, availableHours int, feedback string) (*model.PlannerWeek, error) {
	weekStart = planner.DateOf(weekStart)

	existing, err := s.weekRepo.GetByStartDate(ctx, userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("find existing week: %w", err)
	}
	if existing != nil {
		if err := s.taskRepo.DeleteByWeekID(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("clear existing week: %w", err)
		}
		if err := s.weekRepo.Delete(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("delete existing week: %w", err)
		}
	}

	week := &model.PlannerWeek{
		UserID:         userID,
		WeekStartDate:  weekStart,
		WeekEndDate:    weekStart.AddDate(0, 0, 6),
		AvailableHours: availableHours,
	}
	if err := s.weekRepo.Create(ctx, week); err != nil {
		return nil, fmt.Errorf("create week: %w", err)
	}

	in, err := s.buildInput(ctx, userID, *week, feedback)
	if err != nil {
		return nil, err
	}

	tasks := s.pipeline.BuildWeek(ctx, in)
	if err := s.taskRepo.CreateMany(ctx, tasks); err != nil {
		if delErr := s.weekRepo.Delete(ctx, week.ID); delErr != nil {
			s.logger.Error("Failed to roll back week after task write error",
				zap.String("week_id", week.ID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("persist week tasks: %w", err)
	}
	return week, nil
}

// buildInput assembles the pipeline's working set for one week.
func (s *PlannerService) buildInput(ctx context.Context, userID string, week model.PlannerWeek, feedback string) (planner.Input, error) {
	today := planner.DateOf(time.Now())

	deadlines, err := s.deadlineRepo.ListByUser(ctx, userID)
	if err != nil {
		return planner.Input{}, fmt.Errorf("load deadlines: %w", err)
	}

	profile, err := s.profileRepo.FirstByUser(ctx, userID)
	if err != nil {
		return planner.Input{}, fmt.Errorf("load focus profile: %w", err)
	}

	restDays := map[model.Weekday]bool{}
	semesters, err := s.semesterRepo.ListByUser(ctx, userID)
	if err != nil {
		return planner.Input{}, fmt.Errorf("load semesters: %w", err)
	}
	if len(semesters) > 0 {
		restDays = semesters[0].RestDaySet()
	}

	return planner.Input{
		Week:           week,
		Deadlines:      planner.RelevantDeadlines(deadlines, planner.DateOf(week.WeekStartDate), today),
		Profile:        profile,
		RestDays:       restDays,
		AvailableHours: week.AvailableHours,
		Feedback:       feedback,
		Today:          today,
	}, nil
}

// inheritAvailableHours reuses the hour budget of the user's current week.
func (s *PlannerService) inheritAvailableHours(ctx context.Context, userID string) (int, error) {
	week, err := s.weekRepo.GetByStartDate(ctx, userID, planner.WeekStart(time.Now()))
	if err != nil {
		return 0, err
	}
	if week == nil || week.AvailableHours <= 0 {
		return defaultAvailableHours, nil
	}
	return week.AvailableHours, nil
}

// planWindow derives the generation span from the semester setup, clamped so
// it always starts at the current week and reaches a reasonable horizon.
func planWindow(semesters []model.Semester, today time.Time) (time.Time, time.Time) {
	currentWeekStart := planner.WeekStart(today)

	if len(semesters) == 0 {
		return currentWeekStart, currentWeekStart.AddDate(0, 0, 7*maxPlanWeeks)
	}

	sem := semesters[0]
	planStart, okStart := ParseDate(sem.StartDate)
	planEnd, okEnd := ParseDate(sem.EndDate)
	if !okStart {
		planStart = currentWeekStart
	}
	if !okEnd {
		planEnd = planStart.AddDate(0, 4, 0)
	}
	if planEnd.Before(planStart) {
		planEnd = planStart.AddDate(0, 0, 14)
	}
	planStart = planner.WeekStart(planStart)
	// Always include the current week and at least four weeks ahead.
	if planEnd.Before(currentWeekStart.AddDate(0, 0, 7*4)) {
		planEnd = currentWeekStart.AddDate(0, 0, 7*maxPlanWeeks)
	}
	// Never plan for weeks that have already passed.
	if planStart.Before(currentWeekStart) {
		planStart = currentWeekStart
	}
	return planStart, planEnd
}

// ParseDate reads the leading ISO date out of a client-supplied string like
// "2026-01-12" or "2026-01-12T00:00:00Z". Anything else is rejected.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "-") || len(s) < 10 {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s[:10], time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
