package achievements

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/models"
	"github.com/nisu0001/bea-apa3.0/internal/storage"
	"github.com/nisu0001/bea-apa3.0/internal/todo"
)

type recordingSink struct {
	unlocked []string
}

func (r *recordingSink) AchievementUnlocked(a models.Achievement) {
	r.unlocked = append(r.unlocked, a.ID)
}

func newTestEngine(t *testing.T) (*Engine, storage.Provider, *recordingSink) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "settings.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	sink := &recordingSink{}
	return NewEngine(store, todo.New(store), sink), store, sink
}

func unlockedIDs(list []models.Achievement) map[string]bool {
	out := map[string]bool{}
	for _, a := range list {
		out[a.ID] = true
	}
	return out
}

func TestEvaluateFirstDrink(t *testing.T) {
	engine, store, sink := newTestEngine(t)
	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)

	store.Document().Count = 1
	unlocked, err := engine.Evaluate(now)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !unlockedIDs(unlocked)["first_drink"] {
		t.Error("first_drink not unlocked after the first drink")
	}
	if len(sink.unlocked) == 0 {
		t.Error("sink never notified")
	}

	// Re-evaluation never re-unlocks.
	unlocked, err = engine.Evaluate(now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if unlockedIDs(unlocked)["first_drink"] {
		t.Error("first_drink unlocked twice")
	}
}

func TestEvaluateDailyGoal(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	doc := store.Document()

	t.Run("zero goal zero count never unlocks", func(t *testing.T) {
		doc.DailyGoal = 0
		doc.Count = 0
		unlocked, _ := engine.Evaluate(now)
		if unlockedIDs(unlocked)["daily_goal"] {
			t.Error("daily_goal unlocked on an empty day")
		}
	})

	t.Run("reaching the goal unlocks", func(t *testing.T) {
		doc.DailyGoal = 8
		doc.Count = 8
		unlocked, _ := engine.Evaluate(now)
		if !unlockedIDs(unlocked)["daily_goal"] {
			t.Error("daily_goal not unlocked at goal")
		}
	})
}

func TestEvaluateStreaks(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	now := time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)
	doc := store.Document()

	doc.Count = 2
	doc.History = map[string]int{
		"2024-03-06": 5,
		"2024-03-05": 5,
	}

	unlocked, err := engine.Evaluate(now)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	ids := unlockedIDs(unlocked)
	if !ids["three_day_streak"] {
		t.Error("three_day_streak not unlocked at streak 3")
	}
	if ids["week_streak"] {
		t.Error("week_streak unlocked at streak 3")
	}
}

func TestEvaluatePerfectWeek(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	doc := store.Document()

	doc.DailyGoal = 8
	doc.History = map[string]int{}
	for i := 1; i <= 7; i++ {
		doc.History[time.Date(2024, 3, i, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat)] = 8
	}

	unlocked, err := engine.Evaluate(now)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !unlockedIDs(unlocked)["perfect_week"] {
		t.Error("perfect_week not unlocked after seven at-goal days")
	}
}

func TestEvaluateTimeBased(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	doc := store.Document()

	// Five early-morning logs on distinct days.
	for i := 1; i <= 5; i++ {
		doc.LogTimes = append(doc.LogTimes,
			time.Date(2024, 3, i, 7, 30, 0, 0, time.UTC).Format(time.RFC3339))
	}

	unlocked, err := engine.Evaluate(now)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	ids := unlockedIDs(unlocked)
	if !ids["morning_person"] {
		t.Error("morning_person not unlocked after five pre-9am logs")
	}
	if ids["night_owl"] {
		t.Error("night_owl unlocked without late logs")
	}
}

func TestEvaluateConsistency(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	now := time.Date(2024, 3, 7, 22, 0, 0, 0, time.UTC)
	doc := store.Document()

	// Four logs on one day with >= 2h gaps between each.
	for _, hour := range []int{8, 11, 14, 17} {
		doc.LogTimes = append(doc.LogTimes,
			time.Date(2024, 3, 7, hour, 0, 0, 0, time.UTC).Format(time.RFC3339))
	}
	// Pad so the five-log threshold is met.
	doc.LogTimes = append(doc.LogTimes,
		time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC).Format(time.RFC3339))

	unlocked, err := engine.Evaluate(now)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !unlockedIDs(unlocked)["consistency"] {
		t.Error("consistency not unlocked for an evenly spaced day")
	}
}

func TestEvaluateTaskAchievements(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	doc := store.Document()

	completedAt := now.Add(-time.Hour).Format(time.RFC3339)
	for i := 0; i < 10; i++ {
		doc.Todos = append(doc.Todos, models.TodoItem{
			ID: i + 1, Text: "t", Category: "Work",
			Completed: true, CompletedAt: &completedAt,
		})
	}

	unlocked, err := engine.Evaluate(now)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	ids := unlockedIDs(unlocked)
	if !ids["task_master"] {
		t.Error("task_master not unlocked at ten completions")
	}
	if !ids["category_master"] {
		t.Error("category_master not unlocked with the Work category fully done")
	}
	if ids["productivity_guru"] {
		t.Error("productivity_guru unlocked at only ten completions")
	}

	a := doc.Achievements["productivity_guru"]
	if a.Progress != 10 {
		t.Errorf("productivity_guru progress = %d, want 10", a.Progress)
	}
}

func TestEvaluateHydratedWorker(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	doc := store.Document()

	doc.DailyGoal = 5
	doc.Count = 5
	completedAt := now.Add(-time.Hour).Format(time.RFC3339)
	for i := 0; i < 3; i++ {
		doc.Todos = append(doc.Todos, models.TodoItem{
			ID: i + 1, Text: "t", Completed: true, CompletedAt: &completedAt,
		})
	}

	unlocked, err := engine.Evaluate(now)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !unlockedIDs(unlocked)["hydrated_worker"] {
		t.Error("hydrated_worker not unlocked at goal with three tasks done today")
	}
}

func TestStreak(t *testing.T) {
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		history    map[string]int
		todayCount int
		want       int
	}{
		{
			name:       "nothing logged",
			history:    map[string]int{},
			todayCount: 0,
			want:       0,
		},
		{
			name:       "today only",
			history:    map[string]int{},
			todayCount: 1,
			want:       1,
		},
		{
			name: "three consecutive days",
			history: map[string]int{
				"2024-03-06": 5,
				"2024-03-05": 2,
			},
			todayCount: 1,
			want:       3,
		},
		{
			name: "history beyond a gap ignored",
			history: map[string]int{
				"2024-03-06": 5,
				"2024-03-04": 9,
			},
			todayCount: 1,
			want:       2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.history, tt.todayCount, now); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPerfectRun(t *testing.T) {
	tests := []struct {
		name    string
		history map[string]int
		goal    int
		want    int
	}{
		{
			name:    "zero goal never counts",
			history: map[string]int{"2024-03-01": 10},
			goal:    0,
			want:    0,
		},
		{
			name: "run resets below goal",
			history: map[string]int{
				"2024-03-01": 8,
				"2024-03-02": 8,
				"2024-03-03": 3,
				"2024-03-04": 8,
			},
			goal: 8,
			want: 2,
		},
		{
			name: "full week",
			history: map[string]int{
				"2024-03-01": 8, "2024-03-02": 8, "2024-03-03": 9,
				"2024-03-04": 8, "2024-03-05": 8, "2024-03-06": 8,
				"2024-03-07": 10,
			},
			goal: 8,
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PerfectRun(tt.history, tt.goal); got != tt.want {
				t.Errorf("PerfectRun() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLongestConsecutiveRun(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"single day", []string{"2024-03-01"}, 1},
		{"five straight days", []string{
			"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05",
		}, 5},
		{"gap splits the run", []string{
			"2024-03-01", "2024-03-02", "2024-03-04", "2024-03-05", "2024-03-06",
		}, 3},
		{"unsorted input", []string{"2024-03-03", "2024-03-01", "2024-03-02"}, 3},
		{"junk entries skipped", []string{"2024-03-01", "bogus", "2024-03-02"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := longestConsecutiveRun(tt.dates); got != tt.want {
				t.Errorf("longestConsecutiveRun() = %d, want %d", got, tt.want)
			}
		})
	}
}
