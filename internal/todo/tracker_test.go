package todo

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/models"
	"github.com/nisu0001/bea-apa3.0/internal/storage"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "settings.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return New(store)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	trk := newTestTracker(t)

	first, err := trk.Add(models.TodoItem{Text: "one"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	second, err := trk.Add(models.TodoItem{Text: "two"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("IDs = (%d, %d), want (1, 2)", first.ID, second.ID)
	}
	if first.Priority != constants.PriorityMedium {
		t.Errorf("Priority = %q, want Medium default", first.Priority)
	}
	if first.Category != constants.DefaultCategory {
		t.Errorf("Category = %q, want default", first.Category)
	}
}

func TestAddReusesNoIDs(t *testing.T) {
	trk := newTestTracker(t)

	a, _ := trk.Add(models.TodoItem{Text: "a"})
	b, _ := trk.Add(models.TodoItem{Text: "b"})
	if err := trk.Delete(a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	c, _ := trk.Add(models.TodoItem{Text: "c"})
	if c.ID != b.ID+1 {
		t.Errorf("ID after delete = %d, want %d", c.ID, b.ID+1)
	}
}

func TestQuickAddRejectsEmptyText(t *testing.T) {
	trk := newTestTracker(t)

	if _, err := trk.QuickAdd("!!! #tag", time.Now()); err == nil {
		t.Error("QuickAdd() with no residual text should fail")
	}
	if _, err := trk.QuickAdd("", time.Now()); err == nil {
		t.Error("QuickAdd() with empty input should fail")
	}
}

func TestToggleUnknownID(t *testing.T) {
	trk := newTestTracker(t)
	if _, err := trk.Toggle(99, time.Now()); err == nil {
		t.Error("Toggle() on a missing task should fail")
	}
}

func TestClearCompleted(t *testing.T) {
	trk := newTestTracker(t)
	now := time.Now()

	a, _ := trk.Add(models.TodoItem{Text: "done"})
	trk.Add(models.TodoItem{Text: "open"})
	if _, err := trk.Toggle(a.ID, now); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	removed, err := trk.ClearCompleted()
	if err != nil {
		t.Fatalf("ClearCompleted() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if len(trk.All()) != 1 || trk.All()[0].Text != "open" {
		t.Errorf("remaining = %v, want just the open task", trk.All())
	}
}

func TestProcessRepeatingSpawnsAndDetaches(t *testing.T) {
	trk := newTestTracker(t)

	completedAt := "2024-03-05T20:00:00Z"
	deadline := "2024-03-05T18:00:00Z"
	trk.Add(models.TodoItem{
		Text:        "Water plants",
		Completed:   true,
		CompletedAt: &completedAt,
		Deadline:    &deadline,
		Repeat:      constants.RepeatDaily,
	})

	now := time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC)
	spawned, err := trk.ProcessRepeating(now)
	if err != nil {
		t.Fatalf("ProcessRepeating() error = %v", err)
	}
	if spawned != 1 {
		t.Fatalf("spawned = %d, want 1", spawned)
	}

	items := trk.All()
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Repeat != constants.RepeatNone {
		t.Error("template not detached after respawn")
	}
	if items[1].Completed {
		t.Error("respawned task starts completed")
	}

	// A second pass has nothing left to spawn.
	spawned, err = trk.ProcessRepeating(now)
	if err != nil {
		t.Fatalf("ProcessRepeating() error = %v", err)
	}
	if spawned != 0 {
		t.Errorf("second pass spawned = %d, want 0", spawned)
	}
}

func TestGetTaskStats(t *testing.T) {
	trk := newTestTracker(t)
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)

	completedToday := now.Add(-time.Hour).Format(time.RFC3339)
	deadlineAhead := now.Add(6 * time.Hour).Format(time.RFC3339)
	deadlinePast := "2024-03-01T18:00:00Z"

	trk.Add(models.TodoItem{Text: "beat the deadline", Category: "Work",
		Completed: true, CompletedAt: &completedToday, Deadline: &deadlineAhead})
	trk.Add(models.TodoItem{Text: "late and open", Category: "Work", Deadline: &deadlinePast})
	trk.Add(models.TodoItem{Text: "untouched", Category: "Home"})

	stats := trk.GetTaskStats(now)

	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d, want 1", stats.Completed)
	}
	if stats.CompletedToday != 1 {
		t.Errorf("CompletedToday = %d, want 1", stats.CompletedToday)
	}
	if stats.CompletedBeforeDeadline != 1 {
		t.Errorf("CompletedBeforeDeadline = %d, want 1", stats.CompletedBeforeDeadline)
	}
	if stats.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", stats.Overdue)
	}
	if got := stats.Categories["Work"]; got.Total != 2 || got.Completed != 1 {
		t.Errorf("Categories[Work] = %+v, want {2 1}", got)
	}
	if stats.CompletionRate != 1.0/3.0 {
		t.Errorf("CompletionRate = %f, want 1/3", stats.CompletionRate)
	}
}

func TestAllTagsSortedUnion(t *testing.T) {
	trk := newTestTracker(t)

	trk.Add(models.TodoItem{Text: "a", Tags: []string{"work", "urgent"}})
	trk.Add(models.TodoItem{Text: "b", Tags: []string{"home", "work"}})

	got := trk.AllTags()
	want := []string{"home", "urgent", "work"}
	if len(got) != len(want) {
		t.Fatalf("AllTags() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllTags()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
