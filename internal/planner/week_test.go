package planner

import (
	"testing"
	"time"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

func TestWeekStart(t *testing.T) {
	wednesday := testWeekStart.AddDate(0, 0, 2)
	if got := WeekStart(wednesday); !got.Equal(testWeekStart) {
		t.Fatalf("WeekStart(wed) = %v, want %v", got, testWeekStart)
	}
	if got := WeekStart(testWeekStart); !got.Equal(testWeekStart) {
		t.Fatalf("WeekStart(mon) = %v, want %v", got, testWeekStart)
	}
}

func TestNextMonday(t *testing.T) {
	if got := NextMonday(testWeekStart); !got.Equal(testWeekStart) {
		t.Fatalf("NextMonday on a Monday should stay, got %v", got)
	}
	tuesday := testWeekStart.AddDate(0, 0, 1)
	want := testWeekStart.AddDate(0, 0, 7)
	if got := NextMonday(tuesday); !got.Equal(want) {
		t.Fatalf("NextMonday(tue) = %v, want %v", got, want)
	}
}

func TestAvailableDaysSkipsPastAndRestDays(t *testing.T) {
	week := testWeek()
	today := testWeekStart.AddDate(0, 0, 2) // Wednesday
	rest := map[model.Weekday]bool{model.Saturday: true, model.Sunday: true}

	days := AvailableDays(week, today, rest)
	if len(days) != 3 {
		t.Fatalf("expected Wed-Fri (3 days), got %d: %v", len(days), days)
	}
	for _, d := range days {
		if d.Before(today) {
			t.Fatalf("available day %v is in the past", d)
		}
		if wd := model.WeekdayOf(d); wd == model.Saturday || wd == model.Sunday {
			t.Fatalf("available day %v is a rest day", d)
		}
	}
}

func TestRelevantDeadlinesWindow(t *testing.T) {
	today := testWeekStart
	deadlines := []model.Deadline{
		deadlineDue("This week", "CS1", "assignment", 4),
		deadlineDue("Far future", "CS1", "assignment", 7*13), // beyond the prep window
		{ID: "past", Title: "Last week", Course: "CS1", Type: "assignment",
			DueDate: testWeekStart.AddDate(0, 0, -3)},
		{ID: "no-date", Title: "No due date", Course: "CS1", Type: "assignment"},
	}

	got := RelevantDeadlines(deadlines, testWeekStart, today)
	if len(got) != 1 || got[0].Title != "This week" {
		t.Fatalf("expected only the in-window deadline, got %v", got)
	}
}

func TestRelevantDeadlinesRejectsPastWeeks(t *testing.T) {
	today := testWeekStart.AddDate(0, 0, 14) // two weeks later
	deadlines := []model.Deadline{deadlineDue("Anything", "CS1", "exam", 4)}

	if got := RelevantDeadlines(deadlines, testWeekStart, today); len(got) != 0 {
		t.Fatalf("a week before the current week must have no relevant deadlines, got %v", got)
	}
}

func TestRelevantDeadlinesIncludesPrepWindow(t *testing.T) {
	// Due in 5 weeks: preparation may start now.
	deadlines := []model.Deadline{deadlineDue("Final exam", "CS1", "final", 7*5)}
	got := RelevantDeadlines(deadlines, testWeekStart, testWeekStart)
	if len(got) != 1 {
		t.Fatalf("deadline within the prep window should be relevant, got %v", got)
	}
}

func TestDateOfTruncates(t *testing.T) {
	ts := time.Date(2026, time.September, 9, 17, 45, 12, 0, time.UTC)
	want := time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC)
	if got := DateOf(ts); !got.Equal(want) {
		t.Fatalf("DateOf = %v, want %v", got, want)
	}
}
