package planner

import (
	"time"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

// prepWindowWeeks is how far ahead of a deadline its preparation sessions
// may be scheduled.
const prepWindowWeeks = 12

// DateOf truncates a timestamp to its calendar date (midnight UTC).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	d := DateOf(t)
	for model.WeekdayOf(d) != model.Monday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// NextMonday returns t itself when t is a Monday, otherwise the following Monday.
func NextMonday(t time.Time) time.Time {
	d := DateOf(t)
	for model.WeekdayOf(d) != model.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func atTime(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// AvailableDays lists the days of the week that can hold sessions:
// not before today and not declared a rest day.
func AvailableDays(week model.PlannerWeek, today time.Time, restDays map[model.Weekday]bool) []time.Time {
	var out []time.Time
	for d := DateOf(week.WeekStartDate); !d.After(week.WeekEndDate); d = d.AddDate(0, 0, 1) {
		if d.Before(today) {
			continue
		}
		if restDays[model.WeekdayOf(d)] {
			continue
		}
		out = append(out, d)
	}
	return out
}

// RelevantDeadlines filters deadlines to the ones the given week should
// prepare for: the week must not be past the deadline week, must not be more
// than the prep window ahead of it, and must not itself be in the past.
func RelevantDeadlines(deadlines []model.Deadline, weekStart, today time.Time) []model.Deadline {
	currentWeekStart := WeekStart(today)
	var out []model.Deadline
	for _, d := range deadlines {
		if d.DueDate.IsZero() {
			continue
		}
		deadlineWeekStart := WeekStart(d.DueDate)
		if weekStart.After(deadlineWeekStart) {
			continue
		}
		if weekStart.Before(deadlineWeekStart.AddDate(0, 0, -7*prepWindowWeeks)) {
			continue
		}
		if weekStart.Before(currentWeekStart) {
			continue
		}
		out = append(out, d)
	}
	return out
}
