package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

// Normalize turns raw pipe-delimited suggestions ("title|course|duration|day|HH:MM")
// into well-formed tasks for the week. Day is clamped to 1-7 and the start
// clock to a valid time; tuples landing outside the week, in the past, or with
// unparseable numeric fields are dropped. Exact duplicates (same title,
// course, date and start) are dropped, not merged.
func Normalize(raw []string, in Input) []model.PlannerTask {
	weekStart := DateOf(in.Week.WeekStartDate)
	weekEnd := DateOf(in.Week.WeekEndDate)
	today := DateOf(in.Today)

	var tasks []model.PlannerTask
	seen := make(map[string]bool)
	for _, s := range raw {
		parts := strings.Split(s, "|")
		if len(parts) < 4 {
			continue
		}
		title, course, duration := parts[0], parts[1], parts[2]

		day, err := strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil {
			continue
		}
		dayIdx := day - 1
		if dayIdx < 0 {
			dayIdx = 0
		}
		if dayIdx > 6 {
			dayIdx = 6
		}
		date := weekStart.AddDate(0, 0, dayIdx)
		if date.After(weekEnd) || date.Before(today) {
			continue
		}

		hour, minute := 9, 0
		if len(parts) >= 5 {
			hm := strings.Split(strings.TrimSpace(parts[4]), ":")
			hour, err = strconv.Atoi(strings.TrimSpace(hm[0]))
			if err != nil {
				continue
			}
			if len(hm) >= 2 {
				minute, err = strconv.Atoi(strings.TrimSpace(hm[1]))
				if err != nil {
					continue
				}
			}
		}
		hour = clampInt(hour, 0, 23)
		minute = clampInt(minute, 0, 59)

		key := fmt.Sprintf("%s|%s|%s|%d:%d", title, course, date.Format("2006-01-02"), hour, minute)
		if seen[key] {
			continue
		}
		seen[key] = true

		difficulty, isIndividual := deadlineAttrs(findMatchingDeadline(title, course, in.Deadlines))
		tasks = append(tasks, model.PlannerTask{
			PlannerWeekID:  in.Week.ID,
			UserID:         in.Week.UserID,
			Title:          title,
			Course:         course,
			Duration:       duration,
			DueDate:        date,
			ScheduledStart: atTime(date, hour, minute),
			Difficulty:     difficulty,
			IsIndividual:   isIndividual,
			Status:         model.TaskStatusOnTrack,
		})
	}
	return tasks
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
