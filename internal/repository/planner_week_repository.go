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

type PlannerWeekRepository struct {
	pool *pgxpool.Pool
}

func NewPlannerWeekRepository(pool *pgxpool.Pool) *PlannerWeekRepository {
	return &PlannerWeekRepository{pool: pool}
}

// Create inserts a planner week, assigning its document id.
func (r *PlannerWeekRepository) Create(ctx context.Context, w *model.PlannerWeek) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO planner_weeks (id, user_id, week_start_date, week_end_date, available_hours, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		w.ID,
		w.UserID,
		w.WeekStartDate,
		w.WeekEndDate,
		w.AvailableHours,
		w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create planner week: %w", err)
	}
	return nil
}

// GetByStartDate returns the user's week starting on the given date, or nil.
func (r *PlannerWeekRepository) GetByStartDate(ctx context.Context, userID string, weekStart time.Time) (*model.PlannerWeek, error) {
	query := `
		SELECT id, user_id, week_start_date, week_end_date, available_hours, created_at
		FROM planner_weeks
		WHERE user_id = $1 AND week_start_date = $2
	`

	var w model.PlannerWeek
	err := r.pool.QueryRow(ctx, query, userID, weekStart).Scan(
		&w.ID,
		&w.UserID,
		&w.WeekStartDate,
		&w.WeekEndDate,
		&w.AvailableHours,
		&w.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get planner week by date: %w", err)
	}
	return &w, nil
}

// Delete removes a week record; its tasks are removed separately so the
// replace-not-merge order (tasks first, then the week) stays explicit.
func (r *PlannerWeekRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM planner_weeks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete planner week: %w", err)
	}
	return nil
}
