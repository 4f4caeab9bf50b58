package planner

import (
	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

// CorrectEnergyWindows moves sessions that start inside a declared low-energy
// hour to the earliest target hour of the same date. A soft pass: when the
// target set is empty (every preferred hour is also low-energy) sessions stay
// where they are.
func CorrectEnergyWindows(tasks []model.PlannerTask, windows FocusWindows) []model.PlannerTask {
	if len(tasks) == 0 || len(windows.Avoid) == 0 {
		return tasks
	}
	targetHour := windows.earliestTarget()
	if targetHour < 0 {
		return tasks
	}
	out := cloneTasks(tasks)
	for i := range out {
		t := &out[i]
		if t.ScheduledStart.IsZero() {
			continue
		}
		if windows.Avoid[t.ScheduledStart.Hour()] {
			t.ScheduledStart = atTime(t.DueDate, targetHour, 0)
		}
	}
	return out
}
