// internal/availability/evaluator.go
// Pure reachability decision over a user's declared mode

package availability

import (
	"fmt"
	"time"
)

// Verdict is the result of a reachability evaluation
type Verdict struct {
	Available  bool   `json:"available"`
	Reason     string `json:"reason"`
	ModeColor  string `json:"mode_color"`
	StatusText string `json:"status_text"`
}

// NotFound is the verdict for an unknown user. Resolution of ids to
// settings happens at the caller, so the "user absent" rule lives there.
func NotFound() Verdict {
	return Verdict{
		Available:  false,
		Reason:     "User not found",
		ModeColor:  "#9CA3AF",
		StatusText: "Offline",
	}
}

// Evaluate maps mode settings and the current time to a reachability
// verdict. Pure and deterministic given now. Rules are checked in fixed
// precedence order; the first match wins.
func Evaluate(s *Settings, now time.Time) Verdict {
	// No mode declared: invisible/neutral default, always reachable
	if s == nil || s.Mode == "" {
		return Verdict{
			Available:  true,
			Reason:     "User can receive messages",
			ModeColor:  NeutralColor,
			StatusText: "",
		}
	}

	if s.Mode == ModeLocked {
		return Verdict{
			Available:  false,
			Reason:     "User is locked",
			ModeColor:  s.Mode.Color(),
			StatusText: "Locked",
		}
	}

	if s.Mode == ModePaused {
		return Verdict{
			Available:  false,
			Reason:     "User is paused",
			ModeColor:  s.Mode.Color(),
			StatusText: "Paused",
		}
	}

	// Scheduled: blocked while the open date is in the future. Compared at
	// day granularity; time of day on the open date is ignored.
	if s.Mode == ModeScheduled && s.Scheduled != nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		open := s.Scheduled.OpenDate
		openDay := time.Date(open.Year(), open.Month(), open.Day(), 0, 0, 0, 0, now.Location())

		if openDay.After(today) {
			date := openDay.Format("Jan 2, 2006")
			return Verdict{
				Available:  false,
				Reason:     fmt.Sprintf("Available from %s", date),
				ModeColor:  s.Mode.Color(),
				StatusText: fmt.Sprintf("Active from %s", date),
			}
		}
	}

	// Timed: blocked while the current hour is before the threshold hour.
	// Only the hour boundary is compared; the threshold minutes appear in
	// the displayed time but do not participate in the check.
	if s.Mode == ModeTimed && s.Timed != nil {
		if now.Hour() < s.Timed.Hour {
			at := time.Date(now.Year(), now.Month(), now.Day(), s.Timed.Hour, s.Timed.Minute, 0, 0, now.Location())
			clock := at.Format("3:04 PM")
			return Verdict{
				Available:  false,
				Reason:     fmt.Sprintf("Available at %s", clock),
				ModeColor:  s.Mode.Color(),
				StatusText: fmt.Sprintf("Until %s", clock),
			}
		}
	}

	// Capped: blocked once the contact quota is reached
	if s.Mode == ModeCapped && s.Capped != nil {
		if s.Capped.CurrentContacts >= s.Capped.MaxContact {
			return Verdict{
				Available:  false,
				Reason:     "Max contacts reached",
				ModeColor:  s.Mode.Color(),
				StatusText: "Max contacts reached",
			}
		}
	}

	// Online, delayed, or any gated mode that passed its check
	statusText := "Active"
	if s.Mode == ModeOnline {
		statusText = "Online now"
	}

	return Verdict{
		Available:  true,
		Reason:     "Available now",
		ModeColor:  s.Mode.Color(),
		StatusText: statusText,
	}
}
