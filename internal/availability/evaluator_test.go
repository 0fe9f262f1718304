// internal/availability/evaluator_test.go

package availability

import (
	"testing"
	"time"
)

// Fixed reference time: 2025-06-15 14:30 local.
var testNow = time.Date(2025, time.June, 15, 14, 30, 0, 0, time.Local)

func mustCapped(t *testing.T, max, current int) *Settings {
	t.Helper()
	s, err := NewCapped(max, current)
	if err != nil {
		t.Fatalf("NewCapped(%d, %d): %v", max, current, err)
	}
	return s
}

func mustTimed(t *testing.T, hour, minute int) *Settings {
	t.Helper()
	s, err := NewTimed(hour, minute)
	if err != nil {
		t.Fatalf("NewTimed(%d, %d): %v", hour, minute, err)
	}
	return s
}

func TestEvaluateNoMode(t *testing.T) {
	for _, s := range []*Settings{nil, {}} {
		v := Evaluate(s, testNow)
		if !v.Available {
			t.Errorf("Evaluate(%v) available = false, want true", s)
		}
		if v.Reason != "User can receive messages" {
			t.Errorf("reason = %q", v.Reason)
		}
		if v.ModeColor != NeutralColor {
			t.Errorf("color = %q, want neutral %q", v.ModeColor, NeutralColor)
		}
		if v.StatusText != "" {
			t.Errorf("status = %q, want empty", v.StatusText)
		}
	}
}

func TestEvaluatePrecedence(t *testing.T) {
	tests := []struct {
		name          string
		settings      *Settings
		wantAvailable bool
		wantReason    string
		wantColor     string
		wantStatus    string
	}{
		{
			name:          "online",
			settings:      NewOnline(),
			wantAvailable: true,
			wantReason:    "Available now",
			wantColor:     "#10B981",
			wantStatus:    "Online now",
		},
		{
			name:          "locked",
			settings:      NewLocked(),
			wantAvailable: false,
			wantReason:    "User is locked",
			wantColor:     "#DC2626",
			wantStatus:    "Locked",
		},
		{
			name:          "paused",
			settings:      NewPaused(),
			wantAvailable: false,
			wantReason:    "User is paused",
			wantColor:     "#9CA3AF",
			wantStatus:    "Paused",
		},
		{
			name:          "scheduled future",
			settings:      NewScheduled(time.Date(2025, time.June, 20, 0, 0, 0, 0, time.Local)),
			wantAvailable: false,
			wantReason:    "Available from Jun 20, 2025",
			wantColor:     "#0066FF",
			wantStatus:    "Active from Jun 20, 2025",
		},
		{
			name:          "scheduled today",
			settings:      NewScheduled(time.Date(2025, time.June, 15, 23, 59, 0, 0, time.Local)),
			wantAvailable: true,
			wantReason:    "Available now",
			wantColor:     "#0066FF",
			wantStatus:    "Active",
		},
		{
			name:          "scheduled past",
			settings:      NewScheduled(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local)),
			wantAvailable: true,
			wantReason:    "Available now",
			wantColor:     "#0066FF",
			wantStatus:    "Active",
		},
		{
			name:          "timed before threshold hour",
			settings:      mustTimed(t, 21, 0),
			wantAvailable: false,
			wantReason:    "Available at 9:00 PM",
			wantColor:     "#92400E",
			wantStatus:    "Until 9:00 PM",
		},
		{
			name:          "timed same hour",
			settings:      mustTimed(t, 14, 45),
			wantAvailable: true,
			wantReason:    "Available now",
			wantColor:     "#92400E",
			wantStatus:    "Active",
		},
		{
			name:          "timed minutes display only",
			settings:      mustTimed(t, 16, 45),
			wantAvailable: false,
			wantReason:    "Available at 4:45 PM",
			wantColor:     "#92400E",
			wantStatus:    "Until 4:45 PM",
		},
		{
			name:          "capped at quota",
			settings:      mustCapped(t, 3, 3),
			wantAvailable: false,
			wantReason:    "Max contacts reached",
			wantColor:     "#F97316",
			wantStatus:    "Max contacts reached",
		},
		{
			name:          "capped over quota",
			settings:      mustCapped(t, 3, 5),
			wantAvailable: false,
			wantReason:    "Max contacts reached",
			wantColor:     "#F97316",
			wantStatus:    "Max contacts reached",
		},
		{
			name:          "capped under quota",
			settings:      mustCapped(t, 3, 2),
			wantAvailable: true,
			wantReason:    "Available now",
			wantColor:     "#F97316",
			wantStatus:    "Active",
		},
		{
			name:          "delayed is reachable",
			settings:      NewDelayed(45, nil),
			wantAvailable: true,
			wantReason:    "Available now",
			wantColor:     "#FBBF24",
			wantStatus:    "Active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Evaluate(tt.settings, testNow)
			if v.Available != tt.wantAvailable {
				t.Errorf("available = %v, want %v", v.Available, tt.wantAvailable)
			}
			if v.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", v.Reason, tt.wantReason)
			}
			if v.ModeColor != tt.wantColor {
				t.Errorf("color = %q, want %q", v.ModeColor, tt.wantColor)
			}
			if v.StatusText != tt.wantStatus {
				t.Errorf("status = %q, want %q", v.StatusText, tt.wantStatus)
			}
		})
	}
}

// A locked user stays locked even with a scheduled date that already
// passed attached to the settings. Mode checks run in fixed order.
func TestEvaluateLockedWinsOverScheduled(t *testing.T) {
	s := &Settings{
		Mode:      ModeLocked,
		Scheduled: &ScheduledParams{OpenDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)},
	}

	v := Evaluate(s, testNow)
	if v.Available {
		t.Fatal("locked user reported available")
	}
	if v.Reason != "User is locked" {
		t.Errorf("reason = %q, want locked reason", v.Reason)
	}
}

func TestEvaluateTimedHourBoundary(t *testing.T) {
	// At 14:30, a 14:45 threshold has already opened: only the hour is
	// compared.
	s := mustTimed(t, 14, 45)
	if v := Evaluate(s, testNow); !v.Available {
		t.Errorf("threshold in same hour should be open, got %+v", v)
	}

	// At 14:30, a 15:00 threshold is still closed.
	s = mustTimed(t, 15, 0)
	if v := Evaluate(s, testNow); v.Available {
		t.Errorf("threshold next hour should be closed, got %+v", v)
	}
}

func TestNotFound(t *testing.T) {
	v := NotFound()
	if v.Available {
		t.Error("unknown user reported available")
	}
	if v.Reason != "User not found" {
		t.Errorf("reason = %q", v.Reason)
	}
	if v.ModeColor != "#9CA3AF" {
		t.Errorf("color = %q", v.ModeColor)
	}
	if v.StatusText != "Offline" {
		t.Errorf("status = %q", v.StatusText)
	}
}

func TestNewCappedRejectsNegative(t *testing.T) {
	if _, err := NewCapped(-1, 0); err == nil {
		t.Error("NewCapped(-1, 0) accepted negative max")
	}
	if _, err := NewCapped(3, -1); err == nil {
		t.Error("NewCapped(3, -1) accepted negative current")
	}
}

func TestNewTimedRejectsOutOfRange(t *testing.T) {
	tests := []struct{ hour, minute int }{
		{-1, 0},
		{24, 0},
		{12, -1},
		{12, 60},
	}
	for _, tt := range tests {
		if _, err := NewTimed(tt.hour, tt.minute); err == nil {
			t.Errorf("NewTimed(%d, %d) accepted out-of-range value", tt.hour, tt.minute)
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	ok := NewScheduled(testNow)
	if err := ok.Validate(); err != nil {
		t.Errorf("valid scheduled settings rejected: %v", err)
	}

	mismatched := &Settings{Mode: ModeScheduled}
	if err := mismatched.Validate(); err == nil {
		t.Error("scheduled settings without params accepted")
	}

	unknown := &Settings{Mode: Mode("purple")}
	if err := unknown.Validate(); err == nil {
		t.Error("unknown mode accepted")
	}
}
