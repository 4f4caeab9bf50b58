package gemini

import (
	"strconv"
	"strings"
	"time"

	"github.com/stayontrack/stay-on-track-backend/internal/planner"
)

// buildPrompt writes the scheduling instructions for the model. The wording
// leans hard on the same rules the repair passes enforce afterwards, so that
// most suggestions already come back valid.
func buildPrompt(req planner.SuggestRequest) string {
	var b strings.Builder
	b.WriteString("You are a study planner AI. Create a WEEKLY STUDY SCHEDULE with SPECIFIC TIME SLOTS for each task. ")
	b.WriteString("Each task MUST have a concrete time (e.g. Monday 3:00 PM, Tuesday 8:00 PM). ")
	b.WriteString("Spread tasks across the week. CRITICAL: Limit to at most 3 sessions per day - never schedule more than 3 study sessions on any single day. Distribute workload evenly. ")
	b.WriteString("CRITICAL: Sessions must NEVER overlap - each session needs a unique time slot. Stagger sessions (e.g. 9am, 11:30am, 2pm, 7pm) so no two sessions on the same day overlap. ")
	b.WriteString("When a deadline is within 1 week, schedule 2+ sessions per day for that item to allow adequate preparation, but still respect rest and focus preferences. ")
	if !req.WeekStart.IsZero() {
		b.WriteString("Generate ONLY for this week starting " + req.WeekStart.Format("2006-01-02") + ". ")
		b.WriteString("Today is " + time.Now().Format("2006-01-02") + " - do NOT schedule any task for dates before today. ")
	}
	b.WriteString("Total study hours to schedule this week: " + strconv.Itoa(req.AvailableHours) + ". ")
	if strings.TrimSpace(req.TypicalStudyDuration) != "" {
		b.WriteString("IMPORTANT: User's typical study session is " + req.TypicalStudyDuration + ". ")
		b.WriteString("Keep each session at most this length. INSERT 15-30 minute breaks between consecutive sessions on the same day - do NOT schedule back-to-back without gaps. ")
		b.WriteString("Example: if sessions are 1hr each, use 9am-10am, 10:30am-11:30am, 2pm-3pm - never 9am-10am, 10am-11am. ")
	}
	if len(req.PeakFocusTimes) > 0 {
		b.WriteString("CRITICAL: Schedule study sessions during these times: " + strings.Join(req.PeakFocusTimes, ", ") + ". ")
		b.WriteString("Place as many sessions as possible in these windows. Map to concrete times (e.g. Morning 9am-12pm means 9:00, 10:00, 11:00; Evening 5pm-9pm means 17:00, 18:00, 19:00, 20:00). ")
	}
	if len(req.LowEnergyTimes) > 0 {
		b.WriteString("CRITICAL: NEVER schedule during: " + strings.Join(req.LowEnergyTimes, ", ") + ". ")
		b.WriteString("Leave these time windows empty - move any sessions to peak focus times instead. ")
	}
	if len(req.RestDays) > 0 {
		b.WriteString("DO NOT schedule on: " + strings.Join(req.RestDays, ", ") + ". ")
	}
	if strings.TrimSpace(req.Feedback) != "" {
		b.WriteString("User feedback: " + req.Feedback + ". ")
	}
	if len(req.Deadlines) > 0 {
		b.WriteString("Create study tasks for ALL of these items - you MUST include at least one task for EACH item. Do not skip any: ")
		for _, d := range req.Deadlines {
			due := "?"
			if !d.DueDate.IsZero() {
				due = d.DueDate.Format("2006-01-02")
			}
			b.WriteString(d.Course + " " + d.Title + " (" + d.Type + ") due " + due + "; ")
		}
		b.WriteString("Prioritize items due soonest. Never schedule tasks for deadlines that have already passed. Never schedule any task for a date before today. ")
	}
	b.WriteString(`Return ONLY a JSON array. Each object: day (1=Mon..7=Sun), startTime (HH:mm 24h), duration (e.g. "2 hours"), title, course. `)
	b.WriteString(`Spread across days. Example: [{"day":1,"startTime":"15:00","duration":"2 hours","title":"Review Chapter 5","course":"CS1234"},{"day":1,"startTime":"19:00","duration":"1 hour","title":"Practice problems","course":"CS1234"}]`)
	return b.String()
}
