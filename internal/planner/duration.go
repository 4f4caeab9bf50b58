package planner

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	durationHoursRE   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hours?|h)`)
	durationMinutesRE = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|min|m)`)
)

// ParseDurationMinutes converts a free-text duration like "2 hours",
// "45 minutes" or "1 hour 30 minutes" to minutes. Hour and minute parts are
// summed when both appear. Unparseable input defaults to 60.
func ParseDurationMinutes(duration string) int {
	if strings.TrimSpace(duration) == "" {
		return 60
	}
	minutes := 0
	if m := durationHoursRE.FindStringSubmatch(duration); m != nil {
		if hours, err := strconv.ParseFloat(m[1], 64); err == nil {
			minutes += int(hours * 60)
		}
	}
	if m := durationMinutesRE.FindStringSubmatch(duration); m != nil {
		if mins, err := strconv.Atoi(m[1]); err == nil {
			minutes += mins
		}
	}
	if minutes <= 0 {
		return 60
	}
	return minutes
}
