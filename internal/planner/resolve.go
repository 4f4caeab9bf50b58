package planner

import (
	"sort"
	"time"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

func cloneTasks(tasks []model.PlannerTask) []model.PlannerTask {
	return append([]model.PlannerTask(nil), tasks...)
}

// groupByDate buckets task indexes by calendar date, keeping first-seen date
// order stable.
func groupByDate(tasks []model.PlannerTask) ([]time.Time, map[time.Time][]int) {
	var dates []time.Time
	byDate := make(map[time.Time][]int)
	for i, t := range tasks {
		if t.DueDate.IsZero() {
			continue
		}
		d := DateOf(t.DueDate)
		if _, ok := byDate[d]; !ok {
			dates = append(dates, d)
		}
		byDate[d] = append(byDate[d], i)
	}
	return dates, byDate
}

// clampDayEnd keeps a session's running end time on its own calendar date:
// anything past 23:30 is treated as ending at 23:59.
func clampDayEnd(end, date time.Time) time.Time {
	if end.After(atTime(date, 23, 30)) {
		return atTime(date, 23, 59)
	}
	return end
}

// ResolveConflicts removes same-day overlaps by sweeping each date in start
// order and pushing any session that begins at or before the previous
// session's end to start exactly at that end. Sessions without a start time
// are left untouched. The pass is idempotent: a conflict-free schedule comes
// back unchanged.
func ResolveConflicts(tasks []model.PlannerTask) []model.PlannerTask {
	if len(tasks) == 0 {
		return tasks
	}
	out := cloneTasks(tasks)
	dates, byDate := groupByDate(out)
	for _, date := range dates {
		var timed []int
		for _, i := range byDate[date] {
			if !out[i].ScheduledStart.IsZero() {
				timed = append(timed, i)
			}
		}
		sort.SliceStable(timed, func(a, b int) bool {
			return out[timed[a]].ScheduledStart.Before(out[timed[b]].ScheduledStart)
		})
		var lastEnd time.Time
		for _, i := range timed {
			t := &out[i]
			if !lastEnd.IsZero() && !t.ScheduledStart.After(lastEnd) {
				t.ScheduledStart = lastEnd
			}
			minutes := ParseDurationMinutes(t.Duration)
			lastEnd = clampDayEnd(t.ScheduledStart.Add(time.Duration(minutes)*time.Minute), date)
		}
	}
	return out
}
