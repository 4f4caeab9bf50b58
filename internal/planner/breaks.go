package planner

import (
	"sort"
	"strings"
	"time"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

// minSessionGap is the smallest gap treated as a real pause; anything shorter
// counts as back-to-back.
const minSessionGap = 5 * time.Minute

// breakLengthFor picks the forced break length from the user's typical
// session length: short-session users get the longest breaks. Users who
// prefer 2+ hour blocks get no forced breaks at all.
func breakLengthFor(typicalMinutes int) (time.Duration, bool) {
	if typicalMinutes >= 120 {
		return 0, false
	}
	switch {
	case typicalMinutes <= 60:
		return 15 * time.Minute, true
	case typicalMinutes <= 90:
		return 10 * time.Minute, true
	default:
		return 5 * time.Minute, true
	}
}

// InsertBreaks pushes back-to-back same-day sessions apart by the break
// length derived from the user's typical study duration. Running end times
// are clamped at the day boundary the same way the conflict resolver does.
func InsertBreaks(tasks []model.PlannerTask, typicalDuration string) []model.PlannerTask {
	if len(tasks) == 0 || strings.TrimSpace(typicalDuration) == "" {
		return tasks
	}
	breakLen, ok := breakLengthFor(ParseDurationMinutes(typicalDuration))
	if !ok {
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
			if !lastEnd.IsZero() && t.ScheduledStart.Sub(lastEnd) < minSessionGap {
				t.ScheduledStart = lastEnd.Add(breakLen)
			}
			minutes := ParseDurationMinutes(t.Duration)
			lastEnd = clampDayEnd(t.ScheduledStart.Add(time.Duration(minutes)*time.Minute), date)
		}
	}
	return out
}
