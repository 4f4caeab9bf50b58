package model

import "time"

// FocusProfile stores the user's energy pattern from onboarding.
// Time labels use the fixed wording offered by the app, e.g. "Morning (9am-12pm)".
type FocusProfile struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	PeakFocusTimes        []string  `json:"peak_focus_times"`
	LowEnergyTimes        []string  `json:"low_energy_times"`
	TypicalStudyDuration  string    `json:"typical_study_duration"` // free text, e.g. "1 hour", "45 minutes"
	CreatedAt             time.Time `json:"created_at"`
}
