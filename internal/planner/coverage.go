package planner

import (
	"time"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

// EnsureCoverage appends a synthesized session for every relevant deadline
// that no existing session prepares for, so each deadline shows up in the
// week at least once. Synthesized sessions are placed round-robin over the
// available days at two-hour increments from 09:00, wrapping to the next day
// once 21:00 is reached, then overlaps are resolved again.
func EnsureCoverage(tasks []model.PlannerTask, in Input) []model.PlannerTask {
	if len(in.Deadlines) == 0 {
		return tasks
	}
	out := cloneTasks(tasks)
	today := DateOf(in.Today)
	availableDays := AvailableDays(in.Week, today, in.RestDays)
	if len(availableDays) == 0 {
		availableDays = []time.Time{today}
	}
	nextHour := make(map[time.Time]int, len(availableDays))
	for _, d := range availableDays {
		nextHour[d] = 9
	}

	dayIdx := 0
	for _, d := range in.Deadlines {
		covered := false
		for _, t := range out {
			if taskCoversDeadline(t, d) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}

		duration := "1 hour"
		if d.IsExam() {
			duration = "2 hours"
		}
		date := availableDays[dayIdx%len(availableDays)]
		hour := nextHour[date]
		if hour >= 21 {
			dayIdx++
			date = availableDays[dayIdx%len(availableDays)]
			hour = 9
		}

		difficulty, isIndividual := deadlineAttrs(&d)
		out = append(out, model.PlannerTask{
			PlannerWeekID:  in.Week.ID,
			UserID:         in.Week.UserID,
			Title:          taskTitleFor(d),
			Course:         d.Course,
			Duration:       duration,
			DueDate:        date,
			ScheduledStart: atTime(date, clampInt(hour, 0, 22), 0),
			Difficulty:     difficulty,
			IsIndividual:   isIndividual,
			Status:         model.TaskStatusOnTrack,
		})
		nextHour[date] = hour + 2
	}
	return ResolveConflicts(out)
}
