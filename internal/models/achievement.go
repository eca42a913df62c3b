package models

import "time"

// Achievement is a single unlockable badge. Unlock is monotonic: once
// Unlocked is true it never reverts and UnlockDate does not change.
type Achievement struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Unlocked    bool    `json:"unlocked"`
	UnlockDate  *string `json:"unlock_date"`
	IsMajor     bool    `json:"is_major"`
	Progress    int     `json:"progress"`
	ProgressMax int     `json:"progress_max"`
}

// Unlock marks the achievement unlocked at now. It returns true only on the
// first call; re-unlocking is a no-op.
func (a *Achievement) Unlock(now time.Time) bool {
	if a.Unlocked {
		return false
	}
	a.Unlocked = true
	date := now.Format(time.RFC3339)
	a.UnlockDate = &date
	return true
}

// UpdateProgress moves progress toward ProgressMax, clamped to
// [0, ProgressMax]. Progress only moves forward; calls after unlock are
// ignored. Returns true when the achievement newly unlocked.
func (a *Achievement) UpdateProgress(progress int, now time.Time) bool {
	if a.Unlocked || a.ProgressMax <= 0 {
		return false
	}
	if progress < a.Progress {
		return false
	}
	if progress > a.ProgressMax {
		progress = a.ProgressMax
	}
	a.Progress = progress
	if a.Progress >= a.ProgressMax {
		return a.Unlock(now)
	}
	return false
}

// DefaultAchievements returns the built-in achievement table keyed by id.
func DefaultAchievements() map[string]Achievement {
	list := []Achievement{
		{ID: "first_drink", Name: "First Sip", Description: "Log your first hydration", Icon: "water"},
		{ID: "daily_goal", Name: "Daily Goal Achieved", Description: "Reach your daily hydration goal", Icon: "target"},
		{ID: "three_day_streak", Name: "Three Day Streak", Description: "Meet your daily goal for 3 days in a row", Icon: "fire", IsMajor: true},
		{ID: "week_streak", Name: "Week Warrior", Description: "Meet your daily goal for 7 days in a row", Icon: "fire", IsMajor: true},
		{ID: "month_streak", Name: "Monthly Master", Description: "Meet your daily goal for 30 days in a row", Icon: "trophy", IsMajor: true},
		{ID: "total_drinks_100", Name: "Century Sipper", Description: "Log 100 total drinks", Icon: "water", ProgressMax: 100},
		{ID: "total_drinks_500", Name: "Hydration Hero", Description: "Log 500 total drinks", Icon: "badge", IsMajor: true, ProgressMax: 500},
		{ID: "morning_person", Name: "Morning Person", Description: "Log a drink before 9am for 5 days", Icon: "sunrise"},
		{ID: "night_owl", Name: "Night Owl", Description: "Log a drink after 10pm for 5 days", Icon: "moon"},
		{ID: "consistency", Name: "Consistency is Key", Description: "Log drinks at regular intervals throughout the day", Icon: "clock"},
		{ID: "perfect_week", Name: "Perfect Week", Description: "Meet or exceed your goal every day for a week", Icon: "star", IsMajor: true, ProgressMax: 7},
		{ID: "task_master", Name: "Task Master", Description: "Complete 10 tasks", Icon: "check", ProgressMax: 10},
		{ID: "productivity_guru", Name: "Productivity Guru", Description: "Complete 50 tasks", Icon: "star", IsMajor: true, ProgressMax: 50},
		{ID: "deadline_hero", Name: "Deadline Hero", Description: "Complete 5 tasks before their deadlines", Icon: "clock", ProgressMax: 5},
		{ID: "daily_grind", Name: "Daily Grind", Description: "Complete at least one task every day for 5 days", Icon: "calendar", ProgressMax: 5},
		{ID: "hydrated_worker", Name: "Hydrated Worker", Description: "Reach your hydration goal and complete 3 tasks in a single day", Icon: "water"},
		{ID: "category_master", Name: "Category Champion", Description: "Complete all tasks in a category", Icon: "badge"},
	}

	out := make(map[string]Achievement, len(list))
	for _, a := range list {
		out[a.ID] = a
	}
	return out
}
