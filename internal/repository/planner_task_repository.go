package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

type PlannerTaskRepository struct {
	pool *pgxpool.Pool
}

func NewPlannerTaskRepository(pool *pgxpool.Pool) *PlannerTaskRepository {
	return &PlannerTaskRepository{pool: pool}
}

const plannerTaskColumns = `
	id, planner_week_id, user_id, title, course, duration,
	due_date, scheduled_start, COALESCE(difficulty, ''), is_individual, status, completed, created_at
`

// CreateMany persists the accepted task list for a week inside one
// transaction, so a failed write never leaves a half-written week behind.
func (r *PlannerTaskRepository) CreateMany(ctx context.Context, tasks []model.PlannerTask) error {
	if len(tasks) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create tasks: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO planner_tasks (id, planner_week_id, user_id, title, course, duration,
			due_date, scheduled_start, difficulty, is_individual, status, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	now := time.Now()
	for i := range tasks {
		t := &tasks[i]
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		var scheduledStart *time.Time
		if !t.ScheduledStart.IsZero() {
			scheduledStart = &t.ScheduledStart
		}
		_, err := tx.Exec(ctx, query,
			t.ID,
			t.PlannerWeekID,
			t.UserID,
			t.Title,
			t.Course,
			t.Duration,
			t.DueDate,
			scheduledStart,
			nullIfEmpty(t.Difficulty),
			t.IsIndividual,
			t.Status,
			t.Completed,
			t.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("create planner task: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create tasks: %w", err)
	}
	return nil
}

// DeleteByWeekID removes every task of a week before regeneration.
func (r *PlannerTaskRepository) DeleteByWeekID(ctx context.Context, weekID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM planner_tasks WHERE planner_week_id = $1`, weekID)
	if err != nil {
		return fmt.Errorf("delete tasks by week: %w", err)
	}
	return nil
}

// ListForDate returns the user's tasks on one calendar date, by start time.
func (r *PlannerTaskRepository) ListForDate(ctx context.Context, userID string, date time.Time) ([]model.PlannerTask, error) {
	query := `
		SELECT ` + plannerTaskColumns + `
		FROM planner_tasks
		WHERE user_id = $1 AND due_date = $2
		ORDER BY scheduled_start NULLS LAST, created_at
	`
	return r.list(ctx, query, userID, date)
}

// ListForWeekStarting returns the tasks whose dates fall inside the 7-day
// span beginning at weekStart.
func (r *PlannerTaskRepository) ListForWeekStarting(ctx context.Context, userID string, weekStart time.Time) ([]model.PlannerTask, error) {
	query := `
		SELECT ` + plannerTaskColumns + `
		FROM planner_tasks
		WHERE user_id = $1 AND due_date >= $2 AND due_date < $3
		ORDER BY due_date, scheduled_start NULLS LAST
	`
	return r.list(ctx, query, userID, weekStart, weekStart.AddDate(0, 0, 7))
}

// ListByWeekID returns every task belonging to one planner week.
func (r *PlannerTaskRepository) ListByWeekID(ctx context.Context, weekID string) ([]model.PlannerTask, error) {
	query := `
		SELECT ` + plannerTaskColumns + `
		FROM planner_tasks
		WHERE planner_week_id = $1
		ORDER BY due_date, scheduled_start NULLS LAST
	`
	return r.list(ctx, query, weekID)
}

// SetCompleted toggles completion and returns the updated task, or nil when
// the task does not exist.
func (r *PlannerTaskRepository) SetCompleted(ctx context.Context, taskID string, completed bool) (*model.PlannerTask, error) {
	query := `
		UPDATE planner_tasks
		SET completed = $2
		WHERE id = $1
		RETURNING ` + plannerTaskColumns

	t, err := scanPlannerTask(r.pool.QueryRow(ctx, query, taskID, completed))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("set task completed: %w", err)
	}
	return t, nil
}

func (r *PlannerTaskRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.PlannerTask, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list planner tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.PlannerTask
	for rows.Next() {
		t, err := scanPlannerTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan planner task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate planner tasks: %w", err)
	}
	return tasks, nil
}

func scanPlannerTask(row pgx.Row) (*model.PlannerTask, error) {
	var t model.PlannerTask
	var scheduledStart *time.Time
	err := row.Scan(
		&t.ID,
		&t.PlannerWeekID,
		&t.UserID,
		&t.Title,
		&t.Course,
		&t.Duration,
		&t.DueDate,
		&scheduledStart,
		&t.Difficulty,
		&t.IsIndividual,
		&t.Status,
		&t.Completed,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if scheduledStart != nil {
		t.ScheduledStart = *scheduledStart
	}
	return &t, nil
}
