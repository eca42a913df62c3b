package models

import (
	"testing"
	"time"
)

func TestAchievementUnlockIsMonotonic(t *testing.T) {
	a := Achievement{ID: "first_drink"}
	first := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	if !a.Unlock(first) {
		t.Fatal("first Unlock() should report a new unlock")
	}
	if a.UnlockDate == nil || *a.UnlockDate != first.Format(time.RFC3339) {
		t.Errorf("UnlockDate = %v, want %s", a.UnlockDate, first.Format(time.RFC3339))
	}

	if a.Unlock(later) {
		t.Error("second Unlock() should be a no-op")
	}
	if *a.UnlockDate != first.Format(time.RFC3339) {
		t.Error("UnlockDate changed on re-unlock")
	}
}

func TestAchievementUpdateProgress(t *testing.T) {
	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)

	t.Run("clamps to max and unlocks", func(t *testing.T) {
		a := Achievement{ID: "total_drinks_100", ProgressMax: 100}
		if !a.UpdateProgress(250, now) {
			t.Error("reaching max should unlock")
		}
		if a.Progress != 100 {
			t.Errorf("Progress = %d, want 100", a.Progress)
		}
	})

	t.Run("progress only moves forward", func(t *testing.T) {
		a := Achievement{ID: "task_master", ProgressMax: 10}
		a.UpdateProgress(7, now)
		a.UpdateProgress(3, now)
		if a.Progress != 7 {
			t.Errorf("Progress = %d, want 7", a.Progress)
		}
	})

	t.Run("ignored after unlock", func(t *testing.T) {
		a := Achievement{ID: "task_master", ProgressMax: 10, Progress: 10, Unlocked: true}
		if a.UpdateProgress(5, now) {
			t.Error("UpdateProgress() after unlock should not report an unlock")
		}
		if a.Progress != 10 {
			t.Errorf("Progress = %d, want 10", a.Progress)
		}
	})

	t.Run("no-op when max is zero", func(t *testing.T) {
		a := Achievement{ID: "first_drink"}
		if a.UpdateProgress(5, now) {
			t.Error("UpdateProgress() without a max should never unlock")
		}
	})
}

func TestDefaultAchievements(t *testing.T) {
	all := DefaultAchievements()
	if len(all) != 17 {
		t.Fatalf("len(DefaultAchievements()) = %d, want 17", len(all))
	}
	for id, a := range all {
		if a.ID != id {
			t.Errorf("achievement %q keyed under %q", a.ID, id)
		}
		if a.Unlocked {
			t.Errorf("achievement %q starts unlocked", id)
		}
		if a.Progress != 0 {
			t.Errorf("achievement %q starts with progress %d", id, a.Progress)
		}
	}
}
