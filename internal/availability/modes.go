// internal/availability/modes.go

package availability

import (
	"fmt"
	"time"
)

// Mode is a user's declared reachability state
type Mode string

const (
	ModeOnline    Mode = "green"  // available now
	ModeDelayed   Mode = "yellow" // reachable with an advisory delay
	ModeCapped    Mode = "orange" // reachable until a contact quota is hit
	ModeScheduled Mode = "blue"   // reachable from a future date
	ModeLocked    Mode = "red"    // never reachable
	ModePaused    Mode = "gray"   // never reachable
	ModeTimed     Mode = "brown"  // reachable after a time-of-day threshold
)

// NeutralColor is used when no mode is set (invisible/default state)
const NeutralColor = "#E5E7EB"

var modeColors = map[Mode]string{
	ModeOnline:    "#10B981",
	ModeDelayed:   "#FBBF24",
	ModeCapped:    "#F97316",
	ModeScheduled: "#0066FF",
	ModeLocked:    "#DC2626",
	ModePaused:    "#9CA3AF",
	ModeTimed:     "#92400E",
}

// Color returns the fixed display color for a mode
func (m Mode) Color() string {
	if color, ok := modeColors[m]; ok {
		return color
	}
	return NeutralColor
}

// Valid reports whether the mode is one of the enumerated variants
func (m Mode) Valid() bool {
	_, ok := modeColors[m]
	return ok
}

// ScheduledParams gate messaging until an opening date
type ScheduledParams struct {
	OpenDate time.Time `json:"open_date"`
}

// DelayedParams describe an advisory response delay; they never block
type DelayedParams struct {
	LaterMinutes   int        `json:"later_minutes"`
	LaterStartTime *time.Time `json:"later_start_time,omitempty"`
}

// CappedParams gate messaging on a contact quota
type CappedParams struct {
	MaxContact      int `json:"max_contact"`
	CurrentContacts int `json:"current_contacts"`
}

// TimedParams gate messaging until a time of day
type TimedParams struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Settings is the mode parameter bundle. Exactly the variant matching
// Mode may be non-nil; constructors enforce this so invalid combinations
// (a capped user with a timed hour) cannot be represented.
type Settings struct {
	Mode      Mode             `json:"mode"`
	Scheduled *ScheduledParams `json:"scheduled,omitempty"`
	Delayed   *DelayedParams   `json:"delayed,omitempty"`
	Capped    *CappedParams    `json:"capped,omitempty"`
	Timed     *TimedParams     `json:"timed,omitempty"`
}

// NewOnline returns green-mode settings
func NewOnline() *Settings {
	return &Settings{Mode: ModeOnline}
}

// NewLocked returns red-mode settings
func NewLocked() *Settings {
	return &Settings{Mode: ModeLocked}
}

// NewPaused returns gray-mode settings
func NewPaused() *Settings {
	return &Settings{Mode: ModePaused}
}

// NewScheduled returns blue-mode settings opening on the given date
func NewScheduled(openDate time.Time) *Settings {
	return &Settings{Mode: ModeScheduled, Scheduled: &ScheduledParams{OpenDate: openDate}}
}

// NewDelayed returns yellow-mode settings with an advisory delay
func NewDelayed(laterMinutes int, startTime *time.Time) *Settings {
	return &Settings{Mode: ModeDelayed, Delayed: &DelayedParams{
		LaterMinutes:   laterMinutes,
		LaterStartTime: startTime,
	}}
}

// NewCapped returns orange-mode settings with a contact quota
func NewCapped(maxContact, currentContacts int) (*Settings, error) {
	if maxContact < 0 || currentContacts < 0 {
		return nil, fmt.Errorf("contact counts cannot be negative")
	}
	return &Settings{Mode: ModeCapped, Capped: &CappedParams{
		MaxContact:      maxContact,
		CurrentContacts: currentContacts,
	}}, nil
}

// NewTimed returns brown-mode settings opening at the given time of day
func NewTimed(hour, minute int) (*Settings, error) {
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("hour must be between 0 and 23")
	}
	if minute < 0 || minute > 59 {
		return nil, fmt.Errorf("minute must be between 0 and 59")
	}
	return &Settings{Mode: ModeTimed, Timed: &TimedParams{Hour: hour, Minute: minute}}, nil
}

// Validate checks that the variant set matches the declared mode.
// Used on snapshots loaded from persistence, where construction is bypassed.
func (s *Settings) Validate() error {
	if s == nil {
		return nil
	}
	if !s.Mode.Valid() {
		return fmt.Errorf("unknown availability mode: %q", s.Mode)
	}

	switch s.Mode {
	case ModeScheduled:
		if s.Scheduled == nil {
			return fmt.Errorf("scheduled mode requires an open date")
		}
	case ModeCapped:
		if s.Capped == nil {
			return fmt.Errorf("capped mode requires contact quota parameters")
		}
	case ModeTimed:
		if s.Timed == nil {
			return fmt.Errorf("timed mode requires a time threshold")
		}
	}

	for _, check := range []struct {
		mode Mode
		set  bool
	}{
		{ModeScheduled, s.Scheduled != nil},
		{ModeDelayed, s.Delayed != nil},
		{ModeCapped, s.Capped != nil},
		{ModeTimed, s.Timed != nil},
	} {
		if check.set && s.Mode != check.mode {
			return fmt.Errorf("%s parameters set on %s mode", check.mode, s.Mode)
		}
	}

	return nil
}
