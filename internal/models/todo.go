package models

import (
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
)

// TodoItem is a single task on the todo list.
//
// CompletedAt is non-nil iff Completed is true. Deadline and CompletedAt are
// RFC 3339 strings, ReminderTime is a bare "HH:MM" wall-clock string.
type TodoItem struct {
	ID           int                    `json:"id"`
	Text         string                 `json:"text"`
	Completed    bool                   `json:"completed"`
	Priority     constants.Priority     `json:"priority"`
	Tags         []string               `json:"tags"`
	Category     string                 `json:"category"`
	Description  string                 `json:"description"`
	CreatedAt    string                 `json:"created_at"`
	CompletedAt  *string                `json:"completed_at"`
	Deadline     *string                `json:"deadline"`
	ReminderTime *string                `json:"reminder_time"`
	Repeat       constants.RepeatOption `json:"repeat_option"`
}

// ToggleCompleted flips the completion state and keeps CompletedAt in sync.
func (t *TodoItem) ToggleCompleted(now time.Time) bool {
	t.Completed = !t.Completed
	if t.Completed {
		ts := now.Format(time.RFC3339)
		t.CompletedAt = &ts
	} else {
		t.CompletedAt = nil
	}
	return t.Completed
}

// DeadlineTime parses the deadline, returning false when absent or
// unparseable.
func (t *TodoItem) DeadlineTime() (time.Time, bool) {
	if t.Deadline == nil {
		return time.Time{}, false
	}
	dt, err := time.Parse(time.RFC3339, *t.Deadline)
	if err != nil {
		return time.Time{}, false
	}
	return dt, true
}

// CompletedAtTime parses the completion timestamp, returning false when
// absent or unparseable.
func (t *TodoItem) CompletedAtTime() (time.Time, bool) {
	if t.CompletedAt == nil {
		return time.Time{}, false
	}
	ct, err := time.Parse(time.RFC3339, *t.CompletedAt)
	if err != nil {
		return time.Time{}, false
	}
	return ct, true
}

// IsOverdue reports whether the task's deadline has passed without the task
// being completed.
func (t *TodoItem) IsOverdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	dt, ok := t.DeadlineTime()
	if !ok {
		return false
	}
	return dt.Before(now)
}

// DaysUntilDeadline returns calendar days until the deadline (negative when
// overdue) and false when the task has no usable deadline.
func (t *TodoItem) DaysUntilDeadline(now time.Time) (int, bool) {
	dt, ok := t.DeadlineTime()
	if !ok {
		return 0, false
	}
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	b := time.Date(dt.Year(), dt.Month(), dt.Day(), 0, 0, 0, 0, now.Location())
	return int(b.Sub(a).Hours() / 24), true
}

// ShouldRemind reports whether the task's reminder is due: the task has a
// reminder time, is not completed, its deadline (if any) falls on today, and
// now is within the reminder window past the reminder time.
func (t *TodoItem) ShouldRemind(now time.Time) bool {
	if t.ReminderTime == nil || t.Completed {
		return false
	}

	if dt, ok := t.DeadlineTime(); ok {
		dy, dm, dd := dt.Date()
		ny, nm, nd := now.Date()
		if dy != ny || dm != nm || dd != nd {
			return false
		}
	} else if t.Deadline != nil {
		// Present but unparseable deadline: treat as absent.
	}

	clock, err := time.Parse(constants.ClockFormat, *t.ReminderTime)
	if err != nil {
		return false
	}
	due := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location())
	return !due.After(now) && now.Sub(due) <= constants.ReminderWindow
}

// NextOccurrence clones a completed repeating task into a fresh uncompleted
// instance, advancing the deadline by the repeat period. It returns false
// when the task is not yet due to respawn.
//
// The monthly advance caps the day-of-month at 28 so the result is valid in
// every month.
func (t *TodoItem) NextOccurrence(now time.Time, nextID int) (TodoItem, bool) {
	period := t.Repeat.RepeatPeriodDays()
	if !t.Completed || period == 0 {
		return TodoItem{}, false
	}
	completed, ok := t.CompletedAtTime()
	if !ok {
		return TodoItem{}, false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	done := time.Date(completed.Year(), completed.Month(), completed.Day(), 0, 0, 0, 0, now.Location())
	daysSince := int(today.Sub(done).Hours() / 24)
	if daysSince < period {
		return TodoItem{}, false
	}

	next := TodoItem{
		ID:           nextID,
		Text:         t.Text,
		Priority:     t.Priority,
		Tags:         append([]string(nil), t.Tags...),
		Category:     t.Category,
		Description:  t.Description,
		CreatedAt:    now.Format(time.RFC3339),
		ReminderTime: t.ReminderTime,
		Repeat:       t.Repeat,
	}

	if dt, ok := t.DeadlineTime(); ok {
		var advanced time.Time
		switch t.Repeat {
		case constants.RepeatDaily:
			advanced = time.Date(now.Year(), now.Month(), now.Day(), dt.Hour(), dt.Minute(), 0, 0, now.Location())
		case constants.RepeatWeekly:
			advanced = dt.AddDate(0, 0, 7)
		case constants.RepeatMonthly:
			day := dt.Day()
			if day > 28 {
				day = 28
			}
			month := now.Month() + 1
			year := now.Year()
			if month > time.December {
				month = time.January
				year++
			}
			advanced = time.Date(year, month, day, dt.Hour(), dt.Minute(), 0, 0, now.Location())
		}
		if !advanced.IsZero() {
			ds := advanced.Format(time.RFC3339)
			next.Deadline = &ds
		}
	}

	return next, true
}
