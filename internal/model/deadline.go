package model

import (
	"strings"
	"time"
)

// Deadline is a user-entered obligation with a due date (assignment, exam, lab...).
type Deadline struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Course       string    `json:"course"`
	DueDate      time.Time `json:"due_date"`
	Type         string    `json:"type"`                    // "assignment", "exam", "lab", "quiz"...
	Difficulty   string    `json:"difficulty,omitempty"`    // "Easy".."Hard", or "20%" weight for exams
	IsIndividual *bool     `json:"is_individual,omitempty"` // nil when not specified
	CreatedAt    time.Time `json:"created_at"`
}

// IsExam reports whether the deadline needs exam-style preparation.
func (d Deadline) IsExam() bool {
	t := strings.ToLower(d.Type)
	return strings.Contains(t, "exam") || strings.Contains(t, "midterm") ||
		strings.Contains(t, "final") || strings.Contains(t, "quiz")
}
