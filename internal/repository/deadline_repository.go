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

type DeadlineRepository struct {
	pool *pgxpool.Pool
}

func NewDeadlineRepository(pool *pgxpool.Pool) *DeadlineRepository {
	return &DeadlineRepository{pool: pool}
}

// Create inserts a deadline, assigning a document id when none is set.
func (r *DeadlineRepository) Create(ctx context.Context, d *model.Deadline) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO deadlines (id, user_id, title, course, due_date, type, difficulty, is_individual, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		d.ID,
		d.UserID,
		d.Title,
		d.Course,
		d.DueDate,
		d.Type,
		nullIfEmpty(d.Difficulty),
		d.IsIndividual,
		d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create deadline: %w", err)
	}
	return nil
}

// ListByUser returns every deadline the user has entered, soonest first.
func (r *DeadlineRepository) ListByUser(ctx context.Context, userID string) ([]model.Deadline, error) {
	query := `
		SELECT id, user_id, title, course, due_date, type, COALESCE(difficulty, ''), is_individual, created_at
		FROM deadlines
		WHERE user_id = $1
		ORDER BY due_date, created_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list deadlines: %w", err)
	}
	defer rows.Close()

	var deadlines []model.Deadline
	for rows.Next() {
		var d model.Deadline
		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.Title,
			&d.Course,
			&d.DueDate,
			&d.Type,
			&d.Difficulty,
			&d.IsIndividual,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan deadline: %w", err)
		}
		deadlines = append(deadlines, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deadlines: %w", err)
	}
	return deadlines, nil
}

// GetByID returns the deadline or nil when it does not exist.
func (r *DeadlineRepository) GetByID(ctx context.Context, id string) (*model.Deadline, error) {
	query := `
		SELECT id, user_id, title, course, due_date, type, COALESCE(difficulty, ''), is_individual, created_at
		FROM deadlines
		WHERE id = $1
	`

	var d model.Deadline
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID,
		&d.UserID,
		&d.Title,
		&d.Course,
		&d.DueDate,
		&d.Type,
		&d.Difficulty,
		&d.IsIndividual,
		&d.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get deadline by id: %w", err)
	}
	return &d, nil
}

// Delete removes a deadline.
func (r *DeadlineRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM deadlines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deadline: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
