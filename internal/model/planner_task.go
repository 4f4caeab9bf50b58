package model

import "time"

type TaskStatus string

const (
	TaskStatusOnTrack TaskStatus = "ON_TRACK"
	TaskStatusAtRisk  TaskStatus = "AT_RISK"
)

// PlannerTask is one placed study session inside a PlannerWeek.
// After generation completes, no two tasks on the same date overlap.
type PlannerTask struct {
	ID            string     `json:"id"`
	PlannerWeekID string     `json:"planner_week_id"`
	UserID        string     `json:"user_id"`
	Title         string     `json:"title"`
	Course        string     `json:"course"`
	Duration      string     `json:"duration"` // free text, normalized to minutes when needed
	DueDate       time.Time  `json:"due_date"`
	// ScheduledStart is zero when the suggestion carried no usable time;
	// such tasks are left alone by the time-based repair passes.
	ScheduledStart time.Time  `json:"scheduled_start_time"`
	Difficulty     string     `json:"difficulty,omitempty"`
	IsIndividual   *bool      `json:"is_individual,omitempty"`
	Status         TaskStatus `json:"status"`
	Completed      bool       `json:"completed"`
	CreatedAt      time.Time  `json:"created_at"`
}
