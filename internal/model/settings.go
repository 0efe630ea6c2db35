package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeOfDay     = errors.New("model: invalid time of day")
	ErrInvalidSessionLength = errors.New("model: invalid session length")
	ErrInvalidBreakLength   = errors.New("model: invalid break length")
)

type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayNight     TimeOfDay = "night"
)

func (t TimeOfDay) IsValid() bool {
	switch t {
	case TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening, TimeOfDayNight:
		return true
	default:
		return false
	}
}

// Settings holds the user-facing configuration. The configured session
// length is authoritative for every session started after a change.
type Settings struct {
	DailySessionBudgetHours float64   `json:"dailySessionBudgetHours"`
	PreferredTimeOfDay      TimeOfDay `json:"preferredTimeOfDay"`
	SessionLengthMinutes    int       `json:"sessionLengthMinutes"`
	BreakLengthMinutes      int       `json:"breakLengthMinutes"`
	Onboarded               bool      `json:"onboarded"`
}

func DefaultSettings() Settings {
	return Settings{
		DailySessionBudgetHours: 4,
		PreferredTimeOfDay:      TimeOfDayMorning,
		SessionLengthMinutes:    25,
		BreakLengthMinutes:      5,
		Onboarded:               false,
	}
}

func (s Settings) Validate() error {
	if !s.PreferredTimeOfDay.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s.PreferredTimeOfDay)
	}
	if s.SessionLengthMinutes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSessionLength, s.SessionLengthMinutes)
	}
	if s.BreakLengthMinutes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBreakLength, s.BreakLengthMinutes)
	}
	if s.DailySessionBudgetHours < 0 {
		return errors.New("model: daily session budget must not be negative")
	}
	return nil
}
