package planner

import (
	"testing"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

func TestNormalizeParsesWellFormedTuple(t *testing.T) {
	in := testInput()
	got := Normalize([]string{"Read chapter 3|CS101|1 hour|3|14:30"}, in)

	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	task := got[0]
	if task.Title != "Read chapter 3" || task.Course != "CS101" || task.Duration != "1 hour" {
		t.Fatalf("fields not carried over: %+v", task)
	}
	if !task.DueDate.Equal(at(2, 0, 0)) {
		t.Fatalf("day 3 should land on Wednesday, got %v", task.DueDate)
	}
	if !task.ScheduledStart.Equal(at(2, 14, 30)) {
		t.Fatalf("start = %v, want Wed 14:30", task.ScheduledStart)
	}
	if task.PlannerWeekID != "week-1" || task.UserID != "user-1" {
		t.Fatalf("week/user not stamped: %+v", task)
	}
	if task.Status != model.TaskStatusOnTrack {
		t.Fatalf("new tasks start on track, got %q", task.Status)
	}
}

func TestNormalizeClampsDayAndClock(t *testing.T) {
	in := testInput()
	got := Normalize([]string{
		"A|CS101|1 hour|0|09:00",  // day below range clamps to Monday
		"B|CS101|1 hour|9|25:75",  // day above range clamps to Sunday, clock to 23:59
		"C|CS101|1 hour|2|-3:-10", // negative clock clamps to 00:00
	}, in)

	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got))
	}
	if !got[0].DueDate.Equal(at(0, 0, 0)) {
		t.Fatalf("day 0 should clamp to Monday, got %v", got[0].DueDate)
	}
	if !got[1].ScheduledStart.Equal(at(6, 23, 59)) {
		t.Fatalf("25:75 should clamp to Sunday 23:59, got %v", got[1].ScheduledStart)
	}
	if !got[2].ScheduledStart.Equal(at(1, 0, 0)) {
		t.Fatalf("negative clock should clamp to 00:00, got %v", got[2].ScheduledStart)
	}
}

func TestNormalizeDropsMalformedTuples(t *testing.T) {
	in := testInput()
	got := Normalize([]string{
		"too|few|fields",
		"A|CS101|1 hour|soon|09:00",
		"B|CS101|1 hour|2|morning",
		"C|CS101|1 hour|2|09:later",
	}, in)

	if len(got) != 0 {
		t.Fatalf("all tuples are malformed, got %d tasks: %v", len(got), got)
	}
}

func TestNormalizeDropsPastDays(t *testing.T) {
	in := testInput()
	in.Today = testWeekStart.AddDate(0, 0, 3) // Thursday

	got := Normalize([]string{
		"Old|CS101|1 hour|2|09:00", // Wednesday, already past
		"New|CS101|1 hour|5|09:00", // Saturday
	}, in)

	if len(got) != 1 || got[0].Title != "New" {
		t.Fatalf("past-day tuple should be dropped, got %v", got)
	}
}

func TestNormalizeDefaultsMissingClock(t *testing.T) {
	got := Normalize([]string{"A|CS101|1 hour|2"}, testInput())
	if len(got) != 1 || !got[0].ScheduledStart.Equal(at(1, 9, 0)) {
		t.Fatalf("missing clock should default to 09:00, got %v", got)
	}
}

func TestNormalizeDropsExactDuplicates(t *testing.T) {
	got := Normalize([]string{
		"A|CS101|1 hour|2|09:00",
		"A|CS101|1 hour|2|09:00",
		"A|CS101|1 hour|2|10:00", // different start, kept
	}, testInput())

	if len(got) != 2 {
		t.Fatalf("expected duplicate dropped, got %d tasks", len(got))
	}
}

func TestNormalizeAttachesDeadlineAttributes(t *testing.T) {
	yes := true
	essay := deadlineDue("Essay draft", "ENG210", "assignment", 4)
	essay.Difficulty = "hard"
	essay.IsIndividual = &yes
	exam := deadlineDue("Midterm exam", "CS101", "midterm", 5)
	exam.Difficulty = "30%"
	exam.IsIndividual = &yes

	got := Normalize([]string{
		"Work on Essay draft|ENG210|1 hour|2|09:00",
		"Prepare for Midterm exam|CS101|2 hours|3|09:00",
	}, testInput(essay, exam))

	if got[0].Difficulty != "hard" || got[0].IsIndividual == nil || !*got[0].IsIndividual {
		t.Fatalf("assignment attrs not attached: %+v", got[0])
	}
	if got[1].Difficulty != "30%" {
		t.Fatalf("exam weight not attached: %+v", got[1])
	}
	if got[1].IsIndividual != nil {
		t.Fatalf("exam sessions must not carry the individual flag")
	}
}

func TestNormalizeIgnoresAttrsOnCourseMismatch(t *testing.T) {
	yes := true
	d := deadlineDue("Essay draft", "ENG210", "assignment", 4)
	d.Difficulty = "hard"
	d.IsIndividual = &yes

	got := Normalize([]string{"Work on Essay draft|CS101|1 hour|2|09:00"}, testInput(d))
	if got[0].Difficulty != "" || got[0].IsIndividual != nil {
		t.Fatalf("mismatched course should attach nothing: %+v", got[0])
	}
}
