package model

import "time"

// PlannerWeek is one generated planning unit: a Monday-aligned 7-day span.
// Regeneration replaces the week and all of its tasks, never merges.
type PlannerWeek struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	WeekStartDate  time.Time `json:"week_start_date"`
	WeekEndDate    time.Time `json:"week_end_date"`
	AvailableHours int       `json:"available_hours"`
	CreatedAt      time.Time `json:"created_at"`
}
