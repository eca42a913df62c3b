package todo

import (
	"testing"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
)

func TestParseQuickAdd(t *testing.T) {
	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		input        string
		wantText     string
		wantPriority constants.Priority
		wantDeadline string
		wantTags     []string
	}{
		{
			name:         "plain text defaults to medium",
			input:        "Buy milk",
			wantText:     "Buy milk",
			wantPriority: constants.PriorityMedium,
		},
		{
			name:         "full shorthand",
			input:        "Buy milk !!! @tomorrow #errand",
			wantText:     "Buy milk",
			wantPriority: constants.PriorityHigh,
			wantDeadline: "2024-03-08T18:00:00Z",
			wantTags:     []string{"errand"},
		},
		{
			name:         "single bang is low",
			input:        "Water plants !",
			wantText:     "Water plants",
			wantPriority: constants.PriorityLow,
		},
		{
			name:         "double bang is medium",
			input:        "Check email !!",
			wantText:     "Check email",
			wantPriority: constants.PriorityMedium,
		},
		{
			name:         "today deadline",
			input:        "Call dentist @today",
			wantText:     "Call dentist",
			wantPriority: constants.PriorityMedium,
			wantDeadline: "2024-03-07T18:00:00Z",
		},
		{
			name:         "next week deadline",
			input:        "Plan trip @nextweek",
			wantText:     "Plan trip",
			wantPriority: constants.PriorityMedium,
			wantDeadline: "2024-03-14T18:00:00Z",
		},
		{
			name:         "only first deadline keyword counts",
			input:        "Pack bags @today @tomorrow",
			wantText:     "Pack bags",
			wantPriority: constants.PriorityMedium,
			wantDeadline: "2024-03-07T18:00:00Z",
		},
		{
			name:         "multiple tags",
			input:        "Fix bug #work #urgent",
			wantText:     "Fix bug",
			wantPriority: constants.PriorityMedium,
			wantTags:     []string{"work", "urgent"},
		},
		{
			name:         "bare hash stays in the text",
			input:        "Review PR #",
			wantText:     "Review PR #",
			wantPriority: constants.PriorityMedium,
		},
		{
			name:         "deadline keyword is case-insensitive",
			input:        "Pay rent @Tomorrow",
			wantText:     "Pay rent",
			wantPriority: constants.PriorityMedium,
			wantDeadline: "2024-03-08T18:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := ParseQuickAdd(tt.input, now)

			if item.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", item.Text, tt.wantText)
			}
			if item.Priority != tt.wantPriority {
				t.Errorf("Priority = %q, want %q", item.Priority, tt.wantPriority)
			}
			if tt.wantDeadline == "" {
				if item.Deadline != nil {
					t.Errorf("Deadline = %v, want none", *item.Deadline)
				}
			} else if item.Deadline == nil || *item.Deadline != tt.wantDeadline {
				t.Errorf("Deadline = %v, want %q", item.Deadline, tt.wantDeadline)
			}
			if len(item.Tags) != len(tt.wantTags) {
				t.Fatalf("Tags = %v, want %v", item.Tags, tt.wantTags)
			}
			for i := range tt.wantTags {
				if item.Tags[i] != tt.wantTags[i] {
					t.Errorf("Tags[%d] = %q, want %q", i, item.Tags[i], tt.wantTags[i])
				}
			}
			if item.Category != constants.DefaultCategory {
				t.Errorf("Category = %q, want default", item.Category)
			}
			if item.Repeat != constants.RepeatNone {
				t.Errorf("Repeat = %q, want None", item.Repeat)
			}
		})
	}
}
