package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

type SemesterRepository struct {
	pool *pgxpool.Pool
}

func NewSemesterRepository(pool *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{pool: pool}
}

// Create inserts a semester configuration.
func (r *SemesterRepository) Create(ctx context.Context, s *model.Semester) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO semesters (id, user_id, semester_name, start_date, end_date, study_mode, rest_days, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		s.ID,
		s.UserID,
		s.SemesterName,
		s.StartDate,
		s.EndDate,
		s.StudyMode,
		s.RestDays,
		s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create semester: %w", err)
	}
	return nil
}

// ListByUser returns the user's semesters, oldest first. The planner only
// consults the first one.
func (r *SemesterRepository) ListByUser(ctx context.Context, userID string) ([]model.Semester, error) {
	query := `
		SELECT id, user_id, semester_name, start_date, end_date, study_mode, rest_days, created_at
		FROM semesters
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list semesters: %w", err)
	}
	defer rows.Close()

	var semesters []model.Semester
	for rows.Next() {
		var s model.Semester
		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.SemesterName,
			&s.StartDate,
			&s.EndDate,
			&s.StudyMode,
			&s.RestDays,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan semester: %w", err)
		}
		semesters = append(semesters, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate semesters: %w", err)
	}
	return semesters, nil
}

// ListUserIDs returns every user that has a semester set up. Used by the
// weekly regeneration job.
func (r *SemesterRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT user_id FROM semesters`)
	if err != nil {
		return nil, fmt.Errorf("list semester users: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		userIDs = append(userIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate semester users: %w", err)
	}
	return userIDs, nil
}
