package planner

import (
	"testing"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

func TestFallbackCandidatesRoundRobin(t *testing.T) {
	in := testInput(
		deadlineDue("Essay draft", "ENG210", "assignment", 4),
		deadlineDue("Midterm exam", "CS101", "midterm", 5),
		deadlineDue("Problem set", "MATH201", "homework", 6),
	)
	in.RestDays = restAllBut(model.Monday, model.Tuesday)

	got := FallbackCandidates(in)
	want := []string{
		"Work on Essay draft|ENG210|1 hour|1|09:00",
		"Prepare for Midterm exam|CS101|2 hours|2|09:00",
		"Work on Problem set|MATH201|1 hour|1|09:00",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidate %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFallbackCandidatesDedupes(t *testing.T) {
	in := testInput(
		deadlineDue("Essay draft", "ENG210", "assignment", 4),
		deadlineDue("Essay draft", "ENG210", "assignment", 5),
	)
	in.RestDays = restAllBut(model.Monday)

	got := FallbackCandidates(in)
	if len(got) != 1 {
		t.Fatalf("same title, course and date should collapse to one candidate, got %v", got)
	}
}

func TestFallbackCandidatesNoAvailableDays(t *testing.T) {
	in := testInput(deadlineDue("Essay draft", "ENG210", "assignment", 4))
	in.RestDays = restAllBut()

	if got := FallbackCandidates(in); got != nil {
		t.Fatalf("no available days means no candidates, got %v", got)
	}
}

func TestFallbackCandidatesNoDeadlines(t *testing.T) {
	if got := FallbackCandidates(testInput()); got != nil {
		t.Fatalf("no deadlines means no candidates, got %v", got)
	}
}

func TestFallbackCandidatesDayNumberTracksToday(t *testing.T) {
	in := testInput(deadlineDue("Essay draft", "ENG210", "assignment", 5))
	in.Today = testWeekStart.AddDate(0, 0, 3) // Thursday

	got := FallbackCandidates(in)
	if len(got) != 1 || got[0] != "Work on Essay draft|ENG210|1 hour|4|09:00" {
		t.Fatalf("first available day is Thursday (day 4), got %v", got)
	}
}
