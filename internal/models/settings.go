package models

import (
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
)

// Document is the entire persisted settings file. It is loaded once at
// startup and rewritten wholesale on every mutating action.
//
// Today's live count is Count; History only ever holds finished days. The
// daily rollover moves Count into History and resets it.
type Document struct {
	MinMinutes       int                          `json:"min_minutes"`
	MaxMinutes       int                          `json:"max_minutes"`
	SnoozeMinutes    int                          `json:"snooze_minutes"`
	DailyGoal        int                          `json:"daily_goal"`
	SoundEnabled     bool                         `json:"sound_enabled"`
	SoundChoice      string                       `json:"sound_choice"`
	Count            int                          `json:"log_count"`
	LastLogDate      string                       `json:"last_log_date"`
	History          map[string]int               `json:"history"`
	Theme            string                       `json:"theme"`
	ShowProgressText bool                         `json:"show_progress_text"`
	StartAtLogin     bool                         `json:"start_at_login"`
	Style            constants.NotificationStyle  `json:"notification_style"`
	Achievements     map[string]Achievement       `json:"achievements"`
	Profile          UserProfile                  `json:"user_profile"`
	LogTimes         []string                     `json:"log_times"`
	Todos            []TodoItem                   `json:"todos"`

	// Achievement bookkeeping carried on the document.
	CompletionDates []string `json:"daily_task_completions"`

	// Legacy keys kept for settings-file compatibility with older releases.
	HasEarlyDrink       bool `json:"has_early_drink"`
	HasLateDrink        bool `json:"has_late_drink"`
	ConsistentIntervals int  `json:"consistent_intervals"`
}

// UserProfile is the cosmetic identity record shown on the profile page.
type UserProfile struct {
	Name       string `json:"name"`
	PhotoPath  string `json:"photo_path"`
	JoinedDate string `json:"joined_date"`
}

// DefaultDocument returns a document populated with every built-in default.
// Loading decodes stored JSON over this value, so any key absent from the
// file keeps its default.
func DefaultDocument() Document {
	now := time.Now().Format(time.RFC3339)
	return Document{
		MinMinutes:       constants.DefaultMinMinutes,
		MaxMinutes:       constants.DefaultMaxMinutes,
		SnoozeMinutes:    constants.DefaultSnoozeMinutes,
		DailyGoal:        constants.DefaultDailyGoal,
		SoundEnabled:     constants.DefaultSoundEnabled,
		SoundChoice:      constants.DefaultSoundChoice,
		Count:            0,
		LastLogDate:      now,
		History:          map[string]int{},
		Theme:            constants.DefaultTheme,
		ShowProgressText: constants.DefaultShowProgressText,
		StartAtLogin:     constants.DefaultStartAtLogin,
		Style:            constants.DefaultNotificationStyle,
		Achievements:     map[string]Achievement{},
		Profile: UserProfile{
			JoinedDate: now,
		},
		LogTimes:        []string{},
		Todos:           []TodoItem{},
		CompletionDates: []string{},
	}
}

// EnsureMaps initializes any nil collections after decoding.
func (d *Document) EnsureMaps() {
	if d.History == nil {
		d.History = map[string]int{}
	}
	if d.Achievements == nil {
		d.Achievements = map[string]Achievement{}
	}
	if d.LogTimes == nil {
		d.LogTimes = []string{}
	}
	if d.Todos == nil {
		d.Todos = []TodoItem{}
	}
	if d.CompletionDates == nil {
		d.CompletionDates = []string{}
	}
}

// LastLogDay returns the calendar day of the last logged action. An
// unparseable stored timestamp is treated as today rather than propagated.
func (d *Document) LastLogDay(now time.Time) time.Time {
	t, err := time.Parse(time.RFC3339, d.LastLogDate)
	if err != nil {
		return now
	}
	return t
}

// TotalDrinks is the sum of all archived history plus today's live count.
func (d *Document) TotalDrinks() int {
	total := d.Count
	for _, c := range d.History {
		total += c
	}
	return total
}

// AppendLogTime records a drink timestamp, keeping only the most recent
// entries.
func (d *Document) AppendLogTime(t time.Time) {
	d.LogTimes = append(d.LogTimes, t.Format(time.RFC3339))
	if len(d.LogTimes) > constants.LogTimesCap {
		d.LogTimes = d.LogTimes[len(d.LogTimes)-constants.LogTimesCap:]
	}
}
