package model

import "time"

// Semester is the user's semester setup. Start/end dates are kept as the raw
// strings the client sent; the planner parses them tolerantly.
type Semester struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	SemesterName string    `json:"semester_name"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	StudyMode    string    `json:"study_mode"`
	RestDays     []string  `json:"rest_days"` // persisted as "1".."7" (Mon..Sun)
	CreatedAt    time.Time `json:"created_at"`
}

// RestDaySet converts the persisted rest-day list to a weekday set,
// skipping entries that do not parse.
func (s Semester) RestDaySet() map[Weekday]bool {
	set := make(map[Weekday]bool, len(s.RestDays))
	for _, raw := range s.RestDays {
		if w, ok := ParseWeekday(raw); ok {
			set[w] = true
		}
	}
	return set
}
