package cli

import (
	"fmt"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/tracker"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	now := time.Now()
	trk := tracker.New(ctx.Store)
	if _, err := trk.CheckDailyReset(now); err != nil {
		return fmt.Errorf("failed to roll over the day: %w", err)
	}

	doc := ctx.Store.Document()
	stats := trk.UpdateStats(now)

	if doc.Profile.Name != "" {
		joined := doc.Profile.JoinedDate
		if t, err := time.Parse(time.RFC3339, joined); err == nil {
			joined = t.Format("2006-01-02")
		}
		fmt.Printf("Profile:      %s (joined %s)\n", doc.Profile.Name, joined)
	}
	fmt.Printf("Today:        %d/%d\n", stats.Today, stats.Goal)
	fmt.Printf("7-day avg:    %.1f drinks/day\n", stats.RollingAvg)
	fmt.Printf("Streak:       %d day(s)\n", stats.Streak)
	fmt.Printf("Total drinks: %d\n", doc.TotalDrinks())
	fmt.Printf("Days tracked: %d\n", len(doc.History))
	return nil
}
