package tracker

import (
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/logger"
	"github.com/nisu0001/bea-apa3.0/internal/storage"
	"github.com/nisu0001/bea-apa3.0/internal/utils"
)

// Tracker maintains today's drink count and the rolling day→count history.
type Tracker struct {
	store storage.Provider
}

// Stats is a snapshot of the hydration figures shown on the dashboard.
type Stats struct {
	Today      int
	Goal       int
	RollingAvg float64
	Streak     int
}

func New(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// LogDrink increments today's count, capped at the daily goal, records the
// timestamp and persists. Any pending rollover runs first so a drink logged
// just after midnight cannot swallow the finished day; only the rollover
// ever advances the last-log date.
func (t *Tracker) LogDrink(now time.Time) error {
	if _, err := t.CheckDailyReset(now); err != nil {
		return err
	}

	doc := t.store.Document()
	if doc.Count < doc.DailyGoal {
		doc.Count++
	}
	doc.AppendLogTime(now)

	return t.store.Save()
}

// CheckDailyReset performs the day rollover when the stored last-log date is
// stale: the finished day's count is archived into history (only when
// non-zero), the live count resets, and the last-log date moves to now.
//
// The operation is idempotent. Calling it again in the same day is a no-op,
// so the midnight timer and any startup check may both invoke it safely.
func (t *Tracker) CheckDailyReset(now time.Time) (bool, error) {
	doc := t.store.Document()

	lastDay := doc.LastLogDay(now)
	if !utils.StartOfDay(lastDay).Before(utils.StartOfDay(now)) {
		return false, nil
	}

	if doc.Count > 0 {
		doc.History[utils.DateKey(lastDay)] = doc.Count
	}
	doc.Count = 0
	doc.LastLogDate = now.Format(time.RFC3339)

	logger.Info("Daily rollover", "archived_day", utils.DateKey(lastDay))
	return true, t.store.Save()
}

// UpdateStats computes the 7-day rolling average (today's live count plus up
// to six archived days, missing days counted as zero) and the current streak
// of consecutive days with a positive count, walking backward from today.
func (t *Tracker) UpdateStats(now time.Time) Stats {
	doc := t.store.Document()

	sum := 0
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -i)
		if i == 0 {
			sum += doc.Count
		} else {
			sum += doc.History[utils.DateKey(day)]
		}
	}

	streak := 0
	for day := now; ; day = day.AddDate(0, 0, -1) {
		count := doc.History[utils.DateKey(day)]
		if utils.SameDay(day, now) {
			count = doc.Count
		}
		if count <= 0 {
			break
		}
		streak++
	}

	return Stats{
		Today:      doc.Count,
		Goal:       doc.DailyGoal,
		RollingAvg: float64(sum) / 7.0,
		Streak:     streak,
	}
}

// ProgressRatio is today's count over the daily goal, clamped to [0,1]. A
// zero goal counts as already complete so display code never divides by
// zero.
func (t *Tracker) ProgressRatio() float64 {
	doc := t.store.Document()
	if doc.DailyGoal <= 0 {
		return 1.0
	}
	ratio := float64(doc.Count) / float64(doc.DailyGoal)
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}
