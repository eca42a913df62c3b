package cli

import (
	"fmt"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/models"
	"github.com/nisu0001/bea-apa3.0/internal/scheduler"
	"github.com/nisu0001/bea-apa3.0/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Scheduler *scheduler.Scheduler
	ConfigDir string
}

// FormatTodoLine renders one task for list output.
func FormatTodoLine(item models.TodoItem, now time.Time) string {
	check := "[ ]"
	if item.Completed {
		check = "[x]"
	}

	line := fmt.Sprintf("%s #%d %s (%s, %s)", check, item.ID, item.Text, item.Priority, item.Category)

	if days, ok := item.DaysUntilDeadline(now); ok {
		switch {
		case item.IsOverdue(now):
			line += fmt.Sprintf(", overdue by %d day(s)", -days)
		case days == 0:
			line += ", due today"
		default:
			line += fmt.Sprintf(", due in %d day(s)", days)
		}
	}
	if item.Repeat != constants.RepeatNone && item.Repeat != "" {
		line += fmt.Sprintf(" [repeats %s]", item.Repeat)
	}
	for _, tag := range item.Tags {
		line += " #" + tag
	}
	return line
}

// FormatDuration renders a countdown as MM:SS.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
