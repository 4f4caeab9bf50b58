package planner

import (
	"sort"
	"strings"
)

// HourRange is a half-open [Start, End) band of clock hours. End <= Start
// means the band wraps past midnight.
type HourRange struct {
	Start int
	End   int
}

// Hours expands the range into concrete clock hours, wrapping at midnight.
func (r HourRange) Hours() []int {
	var out []int
	h := r.Start
	for {
		out = append(out, h)
		h = (h + 1) % 24
		if h == r.End {
			return out
		}
	}
}

// timeBands maps the fixed focus-profile label wording to hour bands. Labels
// are matched on the two clock markers they contain, so punctuation and dash
// style do not matter.
var timeBands = []struct {
	from, to string
	band     HourRange
}{
	{"6am", "9am", HourRange{6, 9}},
	{"9am", "12pm", HourRange{9, 12}},
	{"12pm", "5pm", HourRange{12, 17}},
	{"5pm", "9pm", HourRange{17, 21}},
	{"9pm", "1am", HourRange{21, 1}},
	{"1am", "6am", HourRange{1, 6}},
}

// ParseTimeLabel resolves one profile label like "Evening (5pm-9pm)" to its
// hour band.
func ParseTimeLabel(label string) (HourRange, bool) {
	for _, b := range timeBands {
		if strings.Contains(label, b.from) && strings.Contains(label, b.to) {
			return b.band, true
		}
	}
	return HourRange{}, false
}

func hoursOfLabels(labels []string) map[int]bool {
	hours := make(map[int]bool)
	for _, label := range labels {
		if band, ok := ParseTimeLabel(label); ok {
			for _, h := range band.Hours() {
				hours[h] = true
			}
		}
	}
	return hours
}

// Default hours considered schedulable when the user named low-energy windows
// but no peak-focus preference.
var defaultTargetHours = []int{9, 10, 11, 14, 15, 16, 17, 18, 19, 20}

// FocusWindows holds the focus profile resolved to concrete clock hours.
// Labels are parsed once here instead of being re-matched on every pass.
type FocusWindows struct {
	Avoid  map[int]bool
	Target map[int]bool
}

// NewFocusWindows resolves the profile's labels. Target hours are the peak
// hours (or the default set when no peak preference exists) minus any hour
// that is also low-energy.
func NewFocusWindows(peakFocus, lowEnergy []string) FocusWindows {
	avoid := hoursOfLabels(lowEnergy)
	target := make(map[int]bool)
	if len(peakFocus) > 0 {
		target = hoursOfLabels(peakFocus)
	} else {
		for _, h := range defaultTargetHours {
			target[h] = true
		}
	}
	for h := range avoid {
		delete(target, h)
	}
	return FocusWindows{Avoid: avoid, Target: target}
}

// earliestTarget returns the smallest target hour, or -1 when the target set
// is empty.
func (w FocusWindows) earliestTarget() int {
	if len(w.Target) == 0 {
		return -1
	}
	hours := make([]int, 0, len(w.Target))
	for h := range w.Target {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours[0]
}
