// internal/chat/timer.go
// Response-window state machine evaluation
//
// The window is always recomputed from the absolute TimerStarted
// timestamp and the supplied wall-clock time, so evaluation survives
// the presentation layer being suspended and resumed without drift.

package chat

import "time"

// evaluateWindow maps a conversation's timer fields and the current time
// to a window state and remaining time. Pure; the prompt-once flag is
// layered on by the store.
func evaluateWindow(c *Conversation, duration time.Duration, now time.Time) WindowStatus {
	status := WindowStatus{DurationMS: duration.Milliseconds()}

	// No window has been opened: show the full duration, paused
	if c == nil || c.TimerStarted == nil {
		status.State = WindowIdle
		status.Remaining = duration
		status.RemainingMS = duration.Milliseconds()
		return status
	}

	// The current window's outcome was recorded: show zero regardless
	// of actual elapsed time
	if c.Rated {
		status.State = WindowRated
		return status
	}

	elapsed := now.Sub(*c.TimerStarted)
	if elapsed >= duration {
		status.State = WindowExpiredUnrated
		return status
	}

	status.State = WindowRunning
	status.Remaining = duration - elapsed
	status.RemainingMS = status.Remaining.Milliseconds()
	return status
}

// windowLapsed reports whether a new send should open a fresh window:
// never opened, already rated, or the previous window ran out.
func windowLapsed(c *Conversation, duration time.Duration, now time.Time) bool {
	if c.TimerStarted == nil || c.Rated {
		return true
	}
	return now.Sub(*c.TimerStarted) >= duration
}
