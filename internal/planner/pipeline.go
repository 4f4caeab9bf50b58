package planner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
)

// Input is the immutable working set for one week's generation. Deadlines are
// expected to be pre-filtered to the relevant set (see RelevantDeadlines).
type Input struct {
	Week           model.PlannerWeek
	Deadlines      []model.Deadline
	Profile        *model.FocusProfile
	RestDays       map[model.Weekday]bool
	AvailableHours int
	Feedback       string
	Today          time.Time
}

// Pipeline builds a week's schedule by collecting candidate sessions and
// running them through an ordered sequence of repair passes. Each pass takes
// a snapshot and returns a new list; nothing is shared between runs.
type Pipeline struct {
	suggester Suggester
	logger    *zap.Logger
}

// New creates a pipeline. The suggester may be nil, in which case every week
// is built by the deterministic fallback placer.
func New(suggester Suggester, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		suggester: suggester,
		logger:    logger,
	}
}

// BuildWeek produces the final task list for the week. The result always
// satisfies the hard constraints (no same-day overlaps, no past dates,
// everything within week bounds); day spread, peak-hour placement and breaks
// are best-effort. An empty result is a valid week, not an error.
func (p *Pipeline) BuildWeek(ctx context.Context, in Input) []model.PlannerTask {
	tasks := Normalize(p.collect(ctx, in), in)
	fromSuggester := len(tasks) > 0

	if !fromSuggester && len(in.Deadlines) > 0 {
		tasks = Normalize(FallbackCandidates(in), in)
	}
	if len(tasks) == 0 {
		p.logger.Info("Week generated empty",
			zap.String("user_id", in.Week.UserID),
			zap.Time("week_start", in.Week.WeekStartDate))
		return tasks
	}

	tasks = ResolveConflicts(tasks)
	if fromSuggester {
		// The fallback already places one session per deadline, so coverage
		// only needs enforcing on generated candidates.
		tasks = EnsureCoverage(tasks, in)
	}
	tasks = BalanceDays(tasks, in)
	if in.Profile != nil {
		windows := NewFocusWindows(in.Profile.PeakFocusTimes, in.Profile.LowEnergyTimes)
		tasks = CorrectEnergyWindows(tasks, windows)
		tasks = InsertBreaks(tasks, in.Profile.TypicalStudyDuration)
	}
	tasks = ResolveConflicts(tasks)

	p.logger.Info("Week generated",
		zap.String("user_id", in.Week.UserID),
		zap.Time("week_start", in.Week.WeekStartDate),
		zap.Int("tasks", len(tasks)),
		zap.Bool("from_suggester", fromSuggester))
	return tasks
}

// collect asks the generative service for candidates. Failures degrade to an
// empty result; they never abort the week.
func (p *Pipeline) collect(ctx context.Context, in Input) []string {
	if p.suggester == nil {
		return nil
	}
	var restDays []string
	for w := model.Monday; w <= model.Sunday; w++ {
		if in.RestDays[w] {
			restDays = append(restDays, w.Abbrev())
		}
	}
	req := SuggestRequest{
		Deadlines:      in.Deadlines,
		WeekStart:      DateOf(in.Week.WeekStartDate),
		AvailableHours: in.AvailableHours,
		Feedback:       in.Feedback,
		RestDays:       restDays,
	}
	if in.Profile != nil {
		req.PeakFocusTimes = in.Profile.PeakFocusTimes
		req.LowEnergyTimes = in.Profile.LowEnergyTimes
		req.TypicalStudyDuration = in.Profile.TypicalStudyDuration
	}
	suggestions, err := p.suggester.SuggestWeek(ctx, req)
	if err != nil {
		p.logger.Warn("Suggestion service failed, using fallback placement",
			zap.String("user_id", in.Week.UserID),
			zap.Error(err))
		return nil
	}
	return suggestions
}
