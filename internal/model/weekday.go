package model

import (
	"strconv"
	"strings"
	"time"
)

// Weekday is the 1-7 (Monday-Sunday) day numbering used across the planner
// and in persisted rest-day lists.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayAbbrevs = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayOf converts a calendar date to the planner's Monday-first numbering.
func WeekdayOf(t time.Time) Weekday {
	wd := int(t.Weekday()) // time.Sunday == 0
	if wd == 0 {
		wd = 7
	}
	return Weekday(wd)
}

// ParseWeekday parses the persisted "1".."7" representation.
func ParseWeekday(s string) (Weekday, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	w := Weekday(n)
	return w, w.Valid()
}

func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// Abbrev returns the short day name shown to users ("Mon".."Sun").
func (w Weekday) Abbrev() string {
	if !w.Valid() {
		return ""
	}
	return weekdayAbbrevs[w-1]
}

func (w Weekday) String() string {
	if !w.Valid() {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayAbbrevs[w-1]
}
