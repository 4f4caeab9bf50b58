package planner

import (
	"strings"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

// titlePrefixLen is how many leading characters of a deadline title count as
// a recognizable stem when session titles add their own wording around it.
const titlePrefixLen = 10

func foldTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func courseEqual(a, b string) bool {
	return foldTitle(a) == foldTitle(b)
}

// taskTitleFor builds the session title synthesized for an uncovered deadline.
func taskTitleFor(d model.Deadline) string {
	if d.IsExam() {
		return "Prepare for " + d.Title
	}
	return "Work on " + d.Title
}

func titlePrefix(title string) string {
	if len(title) > titlePrefixLen {
		return title[:titlePrefixLen]
	}
	return title
}

// findMatchingDeadline locates the deadline a suggested session refers to, so
// its difficulty and individual/group flag can be carried over. Matching is
// containment on folded titles within the same course; synthesized
// "Prepare for ..."/"Work on ..." titles also match on the deadline's stem.
func findMatchingDeadline(taskTitle, course string, deadlines []model.Deadline) *model.Deadline {
	taskLower := foldTitle(taskTitle)
	courseLower := foldTitle(course)
	for i := range deadlines {
		d := &deadlines[i]
		if foldTitle(d.Course) != courseLower {
			continue
		}
		dTitle := foldTitle(d.Title)
		if dTitle == "" {
			return d
		}
		if strings.Contains(taskLower, dTitle) || strings.Contains(dTitle, taskLower) {
			return d
		}
		if (strings.Contains(taskLower, "prepare for ") || strings.Contains(taskLower, "work on ")) &&
			strings.Contains(taskLower, titlePrefix(dTitle)) {
			return d
		}
	}
	return nil
}

// taskCoversDeadline reports whether an existing session already prepares for
// the deadline: same course and overlapping titles (either containment
// direction, or the deadline's stem appearing in the session title).
func taskCoversDeadline(task model.PlannerTask, d model.Deadline) bool {
	if !courseEqual(task.Course, d.Course) {
		return false
	}
	tTitle := foldTitle(task.Title)
	dTitle := foldTitle(d.Title)
	if strings.Contains(tTitle, dTitle) || strings.Contains(dTitle, tTitle) {
		return true
	}
	return len(dTitle) > 3 && strings.Contains(tTitle, titlePrefix(dTitle))
}

// deadlineAttrs extracts the difficulty/individual markers a session inherits
// from its deadline. Exam deadlines only carry a weight-style difficulty
// (a percentage); their individual flag is never copied.
func deadlineAttrs(d *model.Deadline) (difficulty string, isIndividual *bool) {
	if d == nil {
		return "", nil
	}
	if d.IsExam() {
		if strings.Contains(d.Difficulty, "%") {
			return d.Difficulty, nil
		}
		return "", nil
	}
	return d.Difficulty, d.IsIndividual
}
