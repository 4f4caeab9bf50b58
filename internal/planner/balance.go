package planner

import (
	"time"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

// maxTasksPerDay is the hard cap on sessions placed on a single day. It is
// best-effort: an overloaded day keeps its tasks when no other day can take them.
const maxTasksPerDay = 3

// BalanceDays spreads sessions over the available days instead of letting
// them cluster on one or two. Days over the cap (or over the per-day target
// while other days sit underused) give up their last-placed session to the
// best destination day. Moved sessions get a provisional start of
// 09:00 + 2h x (tasks already on the destination); the later resolver and
// break passes settle the exact times.
func BalanceDays(tasks []model.PlannerTask, in Input) []model.PlannerTask {
	if len(tasks) == 0 {
		return tasks
	}
	availableDays := AvailableDays(in.Week, DateOf(in.Today), in.RestDays)
	if len(availableDays) == 0 {
		return tasks
	}

	out := cloneTasks(tasks)
	dates, byDate := groupByDate(out)

	total := len(out)
	targetDaysUsed := min(len(availableDays), max(2, (total+1)/2))
	targetPerDay := max(1, total/targetDaysUsed)

	for _, day := range dates {
		for len(byDate[day]) > maxTasksPerDay ||
			(len(byDate[day]) > targetPerDay && hasUnderusedDays(byDate, availableDays, targetPerDay)) {
			idxs := byDate[day]
			moveIdx := idxs[len(idxs)-1]
			target := bestDayToMoveTo(byDate, availableDays, day, targetPerDay)
			if target.IsZero() {
				break
			}
			byDate[day] = idxs[:len(idxs)-1]

			move := &out[moveIdx]
			move.DueDate = target
			hour := 9 + len(byDate[target])*2
			move.ScheduledStart = atTime(target, min(20, hour), 0)
			byDate[target] = append(byDate[target], moveIdx)
		}
	}
	return out
}

func hasUnderusedDays(byDate map[time.Time][]int, availableDays []time.Time, targetPerDay int) bool {
	for _, d := range availableDays {
		if len(byDate[d]) < targetPerDay {
			return true
		}
	}
	return false
}

// bestDayToMoveTo prefers a day with spare capacity under the per-day target,
// then any day still under the hard cap.
func bestDayToMoveTo(byDate map[time.Time][]int, availableDays []time.Time, exclude time.Time, targetPerDay int) time.Time {
	for _, d := range availableDays {
		if d.Equal(exclude) {
			continue
		}
		if n := len(byDate[d]); n < maxTasksPerDay && n < targetPerDay {
			return d
		}
	}
	for _, d := range availableDays {
		if d.Equal(exclude) {
			continue
		}
		if len(byDate[d]) < maxTasksPerDay {
			return d
		}
	}
	return time.Time{}
}
