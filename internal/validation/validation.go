package validation

import (
	"fmt"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/models"
)

// Issue describes a single sanitization performed on a loaded document.
type Issue struct {
	Key         string
	Description string
}

// SanitizeDocument clamps or substitutes invalid values on a loaded settings
// document. Invalid values never reject the whole document; each fix is
// reported so the caller can log it.
func SanitizeDocument(doc *models.Document) []Issue {
	var issues []Issue

	fix := func(key, desc string) {
		issues = append(issues, Issue{Key: key, Description: desc})
	}

	if doc.MinMinutes < 1 {
		fix(constants.SettingMinMinutes, fmt.Sprintf("%d is below 1, reset to default", doc.MinMinutes))
		doc.MinMinutes = constants.DefaultMinMinutes
	}
	if doc.MaxMinutes < 1 {
		fix(constants.SettingMaxMinutes, fmt.Sprintf("%d is below 1, reset to default", doc.MaxMinutes))
		doc.MaxMinutes = constants.DefaultMaxMinutes
	}
	if doc.MaxMinutes < doc.MinMinutes {
		fix(constants.SettingMaxMinutes, "below min_minutes, raised to match")
		doc.MaxMinutes = doc.MinMinutes
	}
	if doc.SnoozeMinutes < 1 {
		fix(constants.SettingSnoozeMinutes, fmt.Sprintf("%d is below 1, reset to default", doc.SnoozeMinutes))
		doc.SnoozeMinutes = constants.DefaultSnoozeMinutes
	}
	if doc.DailyGoal < 0 {
		fix(constants.SettingDailyGoal, fmt.Sprintf("%d is negative, reset to default", doc.DailyGoal))
		doc.DailyGoal = constants.DefaultDailyGoal
	}
	if doc.Count < 0 {
		fix("log_count", "negative, reset to 0")
		doc.Count = 0
	}
	if !doc.Style.IsValid() {
		fix(constants.SettingNotificationStyle, fmt.Sprintf("unknown style %q, reset to default", doc.Style))
		doc.Style = constants.DefaultNotificationStyle
	}
	if !validTheme(doc.Theme) {
		fix(constants.SettingTheme, fmt.Sprintf("unknown theme %q, reset to default", doc.Theme))
		doc.Theme = constants.DefaultTheme
	}
	if !validSound(doc.SoundChoice) {
		fix(constants.SettingSoundChoice, fmt.Sprintf("unknown sound %q, reset to default", doc.SoundChoice))
		doc.SoundChoice = constants.DefaultSoundChoice
	}

	for i := range doc.Todos {
		todo := &doc.Todos[i]
		if !todo.Priority.IsValid() {
			fix("todos", fmt.Sprintf("task %d has unknown priority %q, reset to Medium", todo.ID, todo.Priority))
			todo.Priority = constants.PriorityMedium
		}
		if todo.Repeat == "" {
			todo.Repeat = constants.RepeatNone
		} else if !todo.Repeat.IsValid() {
			fix("todos", fmt.Sprintf("task %d has unknown repeat option %q, reset to None", todo.ID, todo.Repeat))
			todo.Repeat = constants.RepeatNone
		}
		if todo.Category == "" {
			todo.Category = constants.DefaultCategory
		}
		// completed_at is non-nil iff completed
		if todo.Completed && todo.CompletedAt == nil {
			fix("todos", fmt.Sprintf("task %d completed without timestamp, using created_at", todo.ID))
			ts := todo.CreatedAt
			todo.CompletedAt = &ts
		}
		if !todo.Completed && todo.CompletedAt != nil {
			fix("todos", fmt.Sprintf("task %d has stray completion timestamp, cleared", todo.ID))
			todo.CompletedAt = nil
		}
	}

	return issues
}

func validSound(choice string) bool {
	for _, path := range constants.SoundOptions {
		if path == choice {
			return true
		}
	}
	return false
}

func validTheme(name string) bool {
	for _, t := range constants.ThemeNames {
		if t == name {
			return true
		}
	}
	return false
}
