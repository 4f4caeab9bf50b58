package planner

import (
	"sort"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

// A Monday, so the test week is Monday-aligned without extra setup.
var testWeekStart = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

func testWeek() model.PlannerWeek {
	return model.PlannerWeek{
		ID:             "week-1",
		UserID:         "user-1",
		WeekStartDate:  testWeekStart,
		WeekEndDate:    testWeekStart.AddDate(0, 0, 6),
		AvailableHours: 10,
	}
}

func testInput(deadlines ...model.Deadline) Input {
	return Input{
		Week:           testWeek(),
		Deadlines:      deadlines,
		RestDays:       map[model.Weekday]bool{},
		AvailableHours: 10,
		Today:          testWeekStart,
	}
}

func at(dayOffset, hour, minute int) time.Time {
	d := testWeekStart.AddDate(0, 0, dayOffset)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
}

func taskAt(title, course, duration string, dayOffset, hour, minute int) model.PlannerTask {
	return model.PlannerTask{
		PlannerWeekID:  "week-1",
		UserID:         "user-1",
		Title:          title,
		Course:         course,
		Duration:       duration,
		DueDate:        testWeekStart.AddDate(0, 0, dayOffset),
		ScheduledStart: at(dayOffset, hour, minute),
		Status:         model.TaskStatusOnTrack,
	}
}

func deadlineDue(title, course, typ string, dayOffset int) model.Deadline {
	return model.Deadline{
		ID:      "dl-" + title,
		UserID:  "user-1",
		Title:   title,
		Course:  course,
		Type:    typ,
		DueDate: testWeekStart.AddDate(0, 0, dayOffset),
	}
}

func testPipeline(s Suggester) *Pipeline {
	return New(s, zap.NewNop())
}

// assertNoOverlaps checks the hard no-double-booking invariant: per day, in
// start order, every session begins at or after the previous one's
// (day-clamped) end.
func assertNoOverlaps(t *testing.T, tasks []model.PlannerTask) {
	t.Helper()
	dates, byDate := groupByDate(tasks)
	for _, date := range dates {
		var lastEnd time.Time
		var lastTitle string
		resolved := make([]model.PlannerTask, 0, len(byDate[date]))
		for _, i := range byDate[date] {
			if !tasks[i].ScheduledStart.IsZero() {
				resolved = append(resolved, tasks[i])
			}
		}
		ordered := append([]model.PlannerTask(nil), resolved...)
		sort.SliceStable(ordered, func(a, b int) bool {
			return ordered[a].ScheduledStart.Before(ordered[b].ScheduledStart)
		})
		for _, task := range ordered {
			if !lastEnd.IsZero() && task.ScheduledStart.Before(lastEnd) {
				t.Fatalf("overlap on %s: %q starts %s before %q ends %s",
					date.Format("2006-01-02"), task.Title, task.ScheduledStart.Format("15:04"),
					lastTitle, lastEnd.Format("15:04"))
			}
			minutes := ParseDurationMinutes(task.Duration)
			lastEnd = clampDayEnd(task.ScheduledStart.Add(time.Duration(minutes)*time.Minute), date)
			lastTitle = task.Title
		}
	}
}
