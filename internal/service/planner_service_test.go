package service

import (
	"testing"
	"time"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

var testToday = time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC) // a Wednesday

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2026-01-12", time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), true},
		{"2026-01-12T00:00:00Z", time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), true},
		{" 2026-01-12 ", time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), true},
		{"January 12", time.Time{}, false},
		{"2026-1-2", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tc := range tests {
		got, ok := ParseDate(tc.in)
		if ok != tc.ok || !got.Equal(tc.want) {
			t.Errorf("ParseDate(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSummarizeWeek(t *testing.T) {
	tasks := []model.PlannerTask{
		{Title: "Done early", DueDate: testToday.AddDate(0, 0, -2), Completed: true},
		{Title: "Missed", DueDate: testToday.AddDate(0, 0, -1)},
		{Title: "Due today", DueDate: testToday},
		{Title: "Upcoming", DueDate: testToday.AddDate(0, 0, 2)},
	}

	got := SummarizeWeek(tasks, testToday)
	if got.Total != 4 || got.Completed != 1 || got.Overdue != 1 {
		t.Fatalf("summary = %+v, want total 4, completed 1, overdue 1", got)
	}
}

func TestSummarizeWeekEmpty(t *testing.T) {
	got := SummarizeWeek(nil, testToday)
	if got.Total != 0 || got.Completed != 0 || got.Overdue != 0 {
		t.Fatalf("empty week should summarize to zeros, got %+v", got)
	}
}

func TestPlanWindowNoSemester(t *testing.T) {
	start, end := planWindow(nil, testToday)
	monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	if !start.Equal(monday) {
		t.Fatalf("plan should start at the current week, got %v", start)
	}
	if !end.Equal(monday.AddDate(0, 0, 7*maxPlanWeeks)) {
		t.Fatalf("plan horizon = %v", end)
	}
}

func TestPlanWindowClampsToCurrentWeek(t *testing.T) {
	sem := model.Semester{StartDate: "2026-08-01", EndDate: "2026-12-18"}
	start, end := planWindow([]model.Semester{sem}, testToday)

	monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	if !start.Equal(monday) {
		t.Fatalf("past semester start must clamp to the current week, got %v", start)
	}
	if !end.Equal(time.Date(2026, time.December, 18, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("semester end should be honored, got %v", end)
	}
}

func TestPlanWindowUnparseableDates(t *testing.T) {
	sem := model.Semester{StartDate: "whenever", EndDate: "later"}
	start, end := planWindow([]model.Semester{sem}, testToday)

	monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	if !start.Equal(monday) {
		t.Fatalf("unparseable start should fall back to the current week, got %v", start)
	}
	if !end.After(start) {
		t.Fatalf("plan end %v should be after start %v", end, start)
	}
}

func TestPlanWindowEndBeforeStart(t *testing.T) {
	sem := model.Semester{StartDate: "2026-09-07", EndDate: "2026-09-01"}
	start, end := planWindow([]model.Semester{sem}, testToday)
	if end.Before(start) {
		t.Fatalf("plan end %v must not precede start %v", end, start)
	}
}

func TestPlanWindowEnsuresMinimumHorizon(t *testing.T) {
	// A semester ending this week still gets a full planning horizon so the
	// upcoming weeks are not left empty.
	sem := model.Semester{StartDate: "2026-09-07", EndDate: "2026-09-11"}
	start, end := planWindow([]model.Semester{sem}, testToday)
	if end.Before(start.AddDate(0, 0, 7*4)) {
		t.Fatalf("plan horizon too short: %v to %v", start, end)
	}
}
