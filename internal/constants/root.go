package constants

import "time"

// NotificationStyle selects how a reminder-due event is rendered.
type NotificationStyle string

// Priority represents the urgency of a todo item.
type Priority string

// RepeatOption represents the recurrence pattern of a todo item.
type RepeatOption string

const (
	AppName           = "bea-apa"
	Version           = "v3.0.0"
	DefaultConfigPath = "~/.config/bea-apa/settings.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is the standard wall-clock format used throughout the application (HH:MM)
	ClockFormat = "15:04"

	// Instance coordination
	InstanceSocketName  = "bea-apa.sock"
	InstanceLockName    = "bea-apa.lock"
	TrayLockName        = "bea-apa-tray.lock"
	RaiseMessage        = "raise"
	InstanceDialTimeout = 500 * time.Millisecond

	// Notify constants
	NotificationDurationMs = 10000
	TrayAppIdentifier      = "com.nisu0001.bea-apa"

	// Notification styles
	StyleLegacy    NotificationStyle = "Legacy"
	StyleStandard  NotificationStyle = "Standard"
	StyleOverTheTop NotificationStyle = "Over the Top"

	// Todo priorities
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"

	// Todo repeat options
	RepeatNone    RepeatOption = "None"
	RepeatDaily   RepeatOption = "Daily"
	RepeatWeekly  RepeatOption = "Weekly"
	RepeatMonthly RepeatOption = "Monthly"

	// ClassroomMinutes is the fixed quiet interval for classroom mode.
	ClassroomMinutes = 90

	// LogTimesCap bounds the retained drink timestamps.
	LogTimesCap = 100

	// CompletionDatesCap bounds the retained task-completion dates.
	CompletionDatesCap = 10

	// ReminderWindow is how long past a todo reminder time the reminder
	// still fires.
	ReminderWindow = 5 * time.Minute
)

// IsValid reports whether the style is one of the known notification styles.
func (s NotificationStyle) IsValid() bool {
	switch s {
	case StyleLegacy, StyleStandard, StyleOverTheTop:
		return true
	default:
		return false
	}
}

// IsValid reports whether the priority is one of High, Medium or Low.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// IsValid reports whether the repeat option is known. An empty option is
// treated as RepeatNone by callers, not here.
func (r RepeatOption) IsValid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	default:
		return false
	}
}

// RepeatPeriodDays returns the minimum days since completion before a
// repeating task is respawned. Zero means the option never respawns.
func (r RepeatOption) RepeatPeriodDays() int {
	switch r {
	case RepeatDaily:
		return 1
	case RepeatWeekly:
		return 7
	case RepeatMonthly:
		return 28
	default:
		return 0
	}
}
