package planner

import (
	"testing"
	"time"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

func TestBalanceDaysSpreadsClusteredTasks(t *testing.T) {
	var tasks []model.PlannerTask
	for _, title := range []string{"A", "B", "C", "D", "E", "F"} {
		tasks = append(tasks, taskAt(title, "CS101", "1 hour", 0, 9, 0))
	}

	got := BalanceDays(tasks, testInput())

	perDay := map[time.Time]int{}
	for _, task := range got {
		perDay[DateOf(task.DueDate)]++
	}
	if perDay[at(0, 0, 0)] != 2 || perDay[at(1, 0, 0)] != 2 || perDay[at(2, 0, 0)] != 2 {
		t.Fatalf("six Monday tasks should spread 2/2/2 over Mon-Wed, got %v", perDay)
	}
	for day, n := range perDay {
		if n > maxTasksPerDay {
			t.Fatalf("day %v holds %d tasks, cap is %d", day, n, maxTasksPerDay)
		}
	}
}

func TestBalanceDaysMovedTasksGetProvisionalStarts(t *testing.T) {
	var tasks []model.PlannerTask
	for _, title := range []string{"A", "B", "C", "D", "E", "F"} {
		tasks = append(tasks, taskAt(title, "CS101", "1 hour", 0, 9, 0))
	}

	got := BalanceDays(tasks, testInput())

	starts := map[time.Time]bool{}
	for _, task := range got {
		starts[task.ScheduledStart] = true
	}
	// First task onto an empty day lands at 09:00, the second at 11:00.
	for _, want := range []time.Time{at(1, 9, 0), at(1, 11, 0), at(2, 9, 0), at(2, 11, 0)} {
		if !starts[want] {
			t.Fatalf("expected a moved task at %v, starts were %v", want, starts)
		}
	}
}

func TestBalanceDaysKeepsOverloadWhenNowhereToGo(t *testing.T) {
	var tasks []model.PlannerTask
	for _, title := range []string{"A", "B", "C", "D"} {
		tasks = append(tasks, taskAt(title, "CS101", "1 hour", 0, 9, 0))
	}
	in := testInput()
	in.RestDays = restAllBut(model.Monday)

	got := BalanceDays(tasks, in)
	if len(got) != 4 {
		t.Fatalf("overload is best-effort, no task may be dropped: got %d", len(got))
	}
	for _, task := range got {
		if !DateOf(task.DueDate).Equal(at(0, 0, 0)) {
			t.Fatalf("task %q left the only available day: %v", task.Title, task.DueDate)
		}
	}
}

func TestBalanceDaysUnderTargetIsNoOp(t *testing.T) {
	tasks := []model.PlannerTask{
		taskAt("A", "CS101", "1 hour", 0, 9, 0),
		taskAt("B", "CS101", "1 hour", 1, 9, 0),
	}

	got := BalanceDays(tasks, testInput())
	for i := range got {
		if !got[i].DueDate.Equal(tasks[i].DueDate) || !got[i].ScheduledStart.Equal(tasks[i].ScheduledStart) {
			t.Fatalf("balanced schedule should come back unchanged, task %q moved", got[i].Title)
		}
	}
}

func TestBalanceDaysProvisionalStartCappedAtTwenty(t *testing.T) {
	// Seven tasks with only two days available: destinations fill past the
	// 09:00 + 2h ladder, so late arrivals are capped at 20:00 rather than
	// spilling toward midnight.
	var tasks []model.PlannerTask
	for _, title := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		tasks = append(tasks, taskAt(title, "CS101", "1 hour", 0, 9, 0))
	}
	in := testInput()
	in.RestDays = restAllBut(model.Monday, model.Tuesday)

	got := BalanceDays(tasks, in)
	for _, task := range got {
		if h := task.ScheduledStart.Hour(); h > 20 {
			t.Fatalf("provisional start past 20:00 for %q: %v", task.Title, task.ScheduledStart)
		}
	}
}
