package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

// SuggestRequest carries everything the generative service needs to propose
// candidate sessions for one week.
type SuggestRequest struct {
	Deadlines            []model.Deadline
	WeekStart            time.Time
	AvailableHours       int
	Feedback             string
	PeakFocusTimes       []string
	LowEnergyTimes       []string
	RestDays             []string // "Mon".."Sun"
	TypicalStudyDuration string
}

// Suggester proposes raw candidate sessions in the pipe-delimited
// "title|course|duration|day|HH:MM" format. Any failure is treated as
// "no candidates"; the pipeline then falls back to deterministic placement.
type Suggester interface {
	SuggestWeek(ctx context.Context, req SuggestRequest) ([]string, error)
}

// FallbackCandidates deterministically places one candidate per deadline,
// round-robin over the available days, 09:00 start, two hours for exam-type
// deadlines and one hour otherwise. Output uses the same raw tuple shape as
// the generative service so a single normalization path handles both.
func FallbackCandidates(in Input) []string {
	if len(in.Deadlines) == 0 {
		return nil
	}
	weekStart := DateOf(in.Week.WeekStartDate)
	availableDays := AvailableDays(in.Week, DateOf(in.Today), in.RestDays)
	if len(availableDays) == 0 {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	dayIdx := 0
	for _, d := range in.Deadlines {
		title := taskTitleFor(d)
		duration := "1 hour"
		if d.IsExam() {
			duration = "2 hours"
		}
		date := availableDays[dayIdx%len(availableDays)]
		key := fmt.Sprintf("%s|%s|%s", title, d.Course, date.Format("2006-01-02"))
		dayIdx++
		if seen[key] {
			continue
		}
		seen[key] = true

		dayNumber := int(date.Sub(weekStart).Hours()/24) + 1
		out = append(out, fmt.Sprintf("%s|%s|%s|%d|09:00", title, d.Course, duration, dayNumber))
	}
	return out
}
