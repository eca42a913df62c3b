package todo

import (
	"fmt"
	"sort"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/logger"
	"github.com/nisu0001/bea-apa3.0/internal/models"
	"github.com/nisu0001/bea-apa3.0/internal/storage"
	"github.com/nisu0001/bea-apa3.0/internal/utils"
)

// Tracker manages the todo list stored on the settings document.
type Tracker struct {
	store storage.Provider
}

// Stats aggregates task counts for display and for the achievement engine.
type Stats struct {
	Total                   int
	Completed               int
	CompletedToday          int
	CompletedBeforeDeadline int
	Overdue                 int
	CompletionRate          float64
	Categories              map[string]CategoryCount
}

// CategoryCount is the per-category share of Stats.
type CategoryCount struct {
	Total     int
	Completed int
}

func New(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// All returns the live task slice.
func (t *Tracker) All() []models.TodoItem {
	return t.store.Document().Todos
}

// Get returns the task with the given id.
func (t *Tracker) Get(id int) (models.TodoItem, error) {
	for _, item := range t.store.Document().Todos {
		if item.ID == id {
			return item, nil
		}
	}
	return models.TodoItem{}, fmt.Errorf("task not found: %d", id)
}

// Add appends a task, assigning the next free id, and persists.
func (t *Tracker) Add(item models.TodoItem) (models.TodoItem, error) {
	doc := t.store.Document()

	item.ID = t.nextID()
	if item.Priority == "" {
		item.Priority = constants.PriorityMedium
	}
	if item.Category == "" {
		item.Category = constants.DefaultCategory
	}
	if item.Repeat == "" {
		item.Repeat = constants.RepeatNone
	}
	if item.CreatedAt == "" {
		item.CreatedAt = time.Now().Format(time.RFC3339)
	}

	doc.Todos = append(doc.Todos, item)
	return item, t.store.Save()
}

// QuickAdd parses the shorthand input and adds the resulting task.
func (t *Tracker) QuickAdd(input string, now time.Time) (models.TodoItem, error) {
	item := ParseQuickAdd(input, now)
	if item.Text == "" {
		return models.TodoItem{}, fmt.Errorf("empty task text")
	}
	return t.Add(item)
}

// Update replaces the stored task with the same id and persists.
func (t *Tracker) Update(item models.TodoItem) error {
	doc := t.store.Document()
	for i := range doc.Todos {
		if doc.Todos[i].ID == item.ID {
			doc.Todos[i] = item
			return t.store.Save()
		}
	}
	return fmt.Errorf("task not found: %d", item.ID)
}

// Toggle flips a task's completion state and persists. It returns the new
// state.
func (t *Tracker) Toggle(id int, now time.Time) (bool, error) {
	doc := t.store.Document()
	for i := range doc.Todos {
		if doc.Todos[i].ID == id {
			completed := doc.Todos[i].ToggleCompleted(now)
			return completed, t.store.Save()
		}
	}
	return false, fmt.Errorf("task not found: %d", id)
}

// Delete removes a task and persists.
func (t *Tracker) Delete(id int) error {
	doc := t.store.Document()
	for i := range doc.Todos {
		if doc.Todos[i].ID == id {
			doc.Todos = append(doc.Todos[:i], doc.Todos[i+1:]...)
			return t.store.Save()
		}
	}
	return fmt.Errorf("task not found: %d", id)
}

// ClearCompleted removes every completed task and persists. It returns how
// many were removed.
func (t *Tracker) ClearCompleted() (int, error) {
	doc := t.store.Document()
	kept := doc.Todos[:0]
	removed := 0
	for _, item := range doc.Todos {
		if item.Completed {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	doc.Todos = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, t.store.Save()
}

// ProcessRepeating respawns completed repeating tasks whose repeat period
// has elapsed since completion, cloning the template with an advanced
// deadline. Called once on load.
func (t *Tracker) ProcessRepeating(now time.Time) (int, error) {
	doc := t.store.Document()

	var spawned []models.TodoItem
	nextID := t.nextID()
	for i := range doc.Todos {
		next, ok := doc.Todos[i].NextOccurrence(now, nextID)
		if !ok {
			continue
		}
		// Detach the template so the same completion does not respawn again.
		doc.Todos[i].Repeat = constants.RepeatNone
		spawned = append(spawned, next)
		nextID++
	}

	if len(spawned) == 0 {
		return 0, nil
	}
	doc.Todos = append(doc.Todos, spawned...)
	logger.Info("Respawned repeating tasks", "count", len(spawned))
	return len(spawned), t.store.Save()
}

// DueReminders returns the tasks whose reminder window covers now.
func (t *Tracker) DueReminders(now time.Time) []models.TodoItem {
	var due []models.TodoItem
	for _, item := range t.store.Document().Todos {
		if item.ShouldRemind(now) {
			due = append(due, item)
		}
	}
	return due
}

// GetTaskStats aggregates the counts consumed by the achievement engine.
func (t *Tracker) GetTaskStats(now time.Time) Stats {
	doc := t.store.Document()

	stats := Stats{Categories: map[string]CategoryCount{}}
	for _, item := range doc.Todos {
		stats.Total++

		cat := item.Category
		if cat == "" {
			cat = "Uncategorized"
		}
		counts := stats.Categories[cat]
		counts.Total++

		if item.Completed {
			stats.Completed++
			counts.Completed++
			if ct, ok := item.CompletedAtTime(); ok {
				if utils.SameDay(ct, now) {
					stats.CompletedToday++
				}
				if dt, hasDeadline := item.DeadlineTime(); hasDeadline && !ct.After(dt) {
					stats.CompletedBeforeDeadline++
				}
			}
		}
		if item.IsOverdue(now) {
			stats.Overdue++
		}

		stats.Categories[cat] = counts
	}

	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total)
	}
	return stats
}

// AllTags returns the sorted union of tags across all tasks.
func (t *Tracker) AllTags() []string {
	seen := map[string]bool{}
	var tags []string
	for _, item := range t.store.Document().Todos {
		for _, tag := range item.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

func (t *Tracker) nextID() int {
	max := 0
	for _, item := range t.store.Document().Todos {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}
