package todo

import (
	"strings"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/models"
)

// ParseQuickAdd builds a task from the quick-add shorthand:
//
//	"!", "!!", "!!!"                   Low / Medium / High priority
//	@today, @tomorrow, @nextweek       deadline at 18:00 local on that day
//	#tag                               collected into the tags set
//
// All recognized tokens are stripped from the task text. Only the first
// priority marker and the first deadline keyword count.
func ParseQuickAdd(input string, now time.Time) models.TodoItem {
	item := models.TodoItem{
		Text:      strings.TrimSpace(input),
		Priority:  constants.PriorityMedium,
		Category:  constants.DefaultCategory,
		CreatedAt: now.Format(time.RFC3339),
		Repeat:    constants.RepeatNone,
	}

	text := item.Text

	deadlines := map[string]time.Time{
		"@today":    now,
		"@tomorrow": now.AddDate(0, 0, 1),
		"@nextweek": now.AddDate(0, 0, 7),
	}

	var tags []string
	var kept []string
	prioritySet := false
	for _, word := range strings.Fields(text) {
		lower := strings.ToLower(word)

		if !prioritySet {
			switch word {
			case "!!!":
				item.Priority = constants.PriorityHigh
				prioritySet = true
				continue
			case "!!":
				item.Priority = constants.PriorityMedium
				prioritySet = true
				continue
			case "!":
				item.Priority = constants.PriorityLow
				prioritySet = true
				continue
			}
		}

		if day, ok := deadlines[lower]; ok && item.Deadline == nil {
			deadline := time.Date(day.Year(), day.Month(), day.Day(), 18, 0, 0, 0, now.Location())
			ds := deadline.Format(time.RFC3339)
			item.Deadline = &ds
			continue
		}

		if strings.HasPrefix(word, "#") && len(word) > 1 {
			tags = append(tags, word[1:])
			continue
		}

		kept = append(kept, word)
	}

	item.Text = strings.Join(kept, " ")
	item.Tags = tags
	return item
}
