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

type FocusProfileRepository struct {
	pool *pgxpool.Pool
}

func NewFocusProfileRepository(pool *pgxpool.Pool) *FocusProfileRepository {
	return &FocusProfileRepository{pool: pool}
}

// Create inserts a focus profile.
func (r *FocusProfileRepository) Create(ctx context.Context, p *model.FocusProfile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO focus_profiles (id, user_id, peak_focus_times, low_energy_times, typical_study_duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.UserID,
		p.PeakFocusTimes,
		p.LowEnergyTimes,
		p.TypicalStudyDuration,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create focus profile: %w", err)
	}
	return nil
}

// FirstByUser returns the user's focus profile, or nil when none exists.
// At most one profile is consulted per user.
func (r *FocusProfileRepository) FirstByUser(ctx context.Context, userID string) (*model.FocusProfile, error) {
	query := `
		SELECT id, user_id, peak_focus_times, low_energy_times, typical_study_duration, created_at
		FROM focus_profiles
		WHERE user_id = $1
		ORDER BY created_at
		LIMIT 1
	`

	var p model.FocusProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.PeakFocusTimes,
		&p.LowEnergyTimes,
		&p.TypicalStudyDuration,
		&p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get focus profile: %w", err)
	}
	return &p, nil
}
