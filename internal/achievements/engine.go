package achievements

import (
	"sort"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/logger"
	"github.com/nisu0001/bea-apa3.0/internal/models"
	"github.com/nisu0001/bea-apa3.0/internal/storage"
	"github.com/nisu0001/bea-apa3.0/internal/todo"
	"github.com/nisu0001/bea-apa3.0/internal/utils"
)

// Sink receives unlock events. The daemon plugs in the notifier; tests plug
// in a recorder.
type Sink interface {
	AchievementUnlocked(a models.Achievement)
}

// Engine evaluates the unlock predicates against the settings document.
// Every predicate is idempotent: re-evaluation never double-unlocks and
// never reverts an unlock.
type Engine struct {
	store storage.Provider
	todos *todo.Tracker
	sink  Sink
}

func NewEngine(store storage.Provider, todos *todo.Tracker, sink Sink) *Engine {
	return &Engine{store: store, todos: todos, sink: sink}
}

// Evaluate runs every predicate family, persists when anything unlocked,
// and emits one event per newly unlocked achievement. It returns the newly
// unlocked achievements.
func (e *Engine) Evaluate(now time.Time) ([]models.Achievement, error) {
	doc := e.store.Document()
	if len(doc.Achievements) == 0 {
		doc.Achievements = models.DefaultAchievements()
	}

	var unlocked []models.Achievement
	unlocked = append(unlocked, e.checkCounts(doc, now)...)
	unlocked = append(unlocked, e.checkStreaks(doc, now)...)
	unlocked = append(unlocked, e.checkDailyGoal(doc, now)...)
	unlocked = append(unlocked, e.checkTimeBased(doc, now)...)
	if e.todos != nil {
		unlocked = append(unlocked, e.checkTodos(doc, e.todos.GetTaskStats(now), now)...)
	}

	if len(unlocked) == 0 {
		return nil, nil
	}

	for _, a := range unlocked {
		logger.Info("Achievement unlocked", "id", a.ID, "name", a.Name)
		if e.sink != nil {
			e.sink.AchievementUnlocked(a)
		}
	}
	return unlocked, e.store.Save()
}

// unlock marks the achievement and collects it when newly unlocked.
func unlock(doc *models.Document, id string, now time.Time, out *[]models.Achievement) {
	a, ok := doc.Achievements[id]
	if !ok {
		return
	}
	if a.Unlock(now) {
		doc.Achievements[id] = a
		*out = append(*out, a)
	}
}

// progress advances an achievement's progress counter and collects it when
// the advance unlocked it.
func progress(doc *models.Document, id string, value int, now time.Time, out *[]models.Achievement) {
	a, ok := doc.Achievements[id]
	if !ok {
		return
	}
	newlyUnlocked := a.UpdateProgress(value, now)
	doc.Achievements[id] = a
	if newlyUnlocked {
		*out = append(*out, a)
	}
}

func (e *Engine) checkCounts(doc *models.Document, now time.Time) []models.Achievement {
	var out []models.Achievement

	total := doc.TotalDrinks()
	if total > 0 {
		unlock(doc, "first_drink", now, &out)
	}
	progress(doc, "total_drinks_100", total, now, &out)
	progress(doc, "total_drinks_500", total, now, &out)
	return out
}

func (e *Engine) checkStreaks(doc *models.Document, now time.Time) []models.Achievement {
	var out []models.Achievement

	streak := Streak(doc.History, doc.Count, now)
	if streak >= 3 {
		unlock(doc, "three_day_streak", now, &out)
	}
	if streak >= 7 {
		unlock(doc, "week_streak", now, &out)
	}
	if streak >= 30 {
		unlock(doc, "month_streak", now, &out)
	}

	progress(doc, "perfect_week", PerfectRun(doc.History, doc.DailyGoal), now, &out)
	return out
}

func (e *Engine) checkDailyGoal(doc *models.Document, now time.Time) []models.Achievement {
	var out []models.Achievement
	if doc.Count >= doc.DailyGoal && doc.Count > 0 {
		unlock(doc, "daily_goal", now, &out)
	}
	return out
}

func (e *Engine) checkTimeBased(doc *models.Document, now time.Time) []models.Achievement {
	var out []models.Achievement
	if len(doc.LogTimes) < 5 {
		return out
	}

	times := make([]time.Time, 0, len(doc.LogTimes))
	for _, raw := range doc.LogTimes {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			continue
		}
		times = append(times, t)
	}

	morning, night := 0, 0
	for _, t := range times {
		if t.Hour() < 9 {
			morning++
		}
		if t.Hour() >= 22 {
			night++
		}
	}
	if morning >= 5 {
		unlock(doc, "morning_person", now, &out)
	}
	if night >= 5 {
		unlock(doc, "night_owl", now, &out)
	}

	if hasConsistentDay(times) {
		unlock(doc, "consistency", now, &out)
	}
	return out
}

// hasConsistentDay reports whether any single day has at least four logs
// with at least three gaps of two hours or more between consecutive logs.
func hasConsistentDay(times []time.Time) bool {
	byDay := map[string][]time.Time{}
	for _, t := range times {
		key := utils.DateKey(t)
		byDay[key] = append(byDay[key], t)
	}

	for _, day := range byDay {
		if len(day) < 4 {
			continue
		}
		sort.Slice(day, func(i, j int) bool { return day[i].Before(day[j]) })
		gaps := 0
		for i := 1; i < len(day); i++ {
			if day[i].Sub(day[i-1]) >= 2*time.Hour {
				gaps++
			}
		}
		if gaps >= 3 {
			return true
		}
	}
	return false
}

func (e *Engine) checkTodos(doc *models.Document, stats todo.Stats, now time.Time) []models.Achievement {
	var out []models.Achievement

	progress(doc, "task_master", stats.Completed, now, &out)
	progress(doc, "productivity_guru", stats.Completed, now, &out)
	progress(doc, "deadline_hero", stats.CompletedBeforeDeadline, now, &out)

	// Daily Grind: remember the days on which at least one task was
	// completed, bounded, then count the longest consecutive run.
	if a, ok := doc.Achievements["daily_grind"]; ok && !a.Unlocked && stats.CompletedToday > 0 {
		today := utils.DateKey(now)
		present := false
		for _, d := range doc.CompletionDates {
			if d == today {
				present = true
				break
			}
		}
		if !present {
			doc.CompletionDates = append(doc.CompletionDates, today)
			if len(doc.CompletionDates) > constants.CompletionDatesCap {
				doc.CompletionDates = doc.CompletionDates[len(doc.CompletionDates)-constants.CompletionDatesCap:]
			}
		}
		progress(doc, "daily_grind", longestConsecutiveRun(doc.CompletionDates), now, &out)
	}

	if stats.CompletedToday >= 3 && doc.Count >= doc.DailyGoal && doc.Count > 0 {
		unlock(doc, "hydrated_worker", now, &out)
	}

	for _, counts := range stats.Categories {
		if counts.Total > 0 && counts.Total == counts.Completed {
			unlock(doc, "category_master", now, &out)
			break
		}
	}
	return out
}

// longestConsecutiveRun counts the longest run of adjacent calendar days in
// the date list. Unparseable entries are skipped.
func longestConsecutiveRun(dates []string) int {
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := utils.ParseDate(d, time.UTC)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run, best := 1, 1
	for i := 1; i < len(days); i++ {
		if utils.DaysBetween(days[i-1], days[i]) == 1 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}

// Streak counts consecutive calendar days with a positive count, walking
// backward from today. Today uses the live count; history carries every
// finished day.
func Streak(history map[string]int, todayCount int, now time.Time) int {
	streak := 0
	for day := now; ; day = day.AddDate(0, 0, -1) {
		count := history[utils.DateKey(day)]
		if utils.SameDay(day, now) {
			count = todayCount
		}
		if count <= 0 {
			break
		}
		streak++
	}
	return streak
}

// PerfectRun returns the longest run of consecutive history entries, scanned
// in chronological order, each meeting the daily goal. The counter resets on
// any day below goal. History iteration order is not chronological, so the
// keys are sorted first.
func PerfectRun(history map[string]int, dailyGoal int) int {
	if dailyGoal <= 0 {
		return 0
	}

	dates := make([]string, 0, len(history))
	for d := range history {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	run, best := 0, 0
	for _, d := range dates {
		if history[d] >= dailyGoal {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}
