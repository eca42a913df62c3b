package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/tracker"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	now := time.Now()
	trk := tracker.New(ctx.Store)

	if _, err := trk.CheckDailyReset(now); err != nil {
		return fmt.Errorf("failed to roll over the day: %w", err)
	}

	stats := trk.UpdateStats(now)
	ratio := trk.ProgressRatio()

	filled := int(ratio * 20)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)

	fmt.Printf("Hydration  %s  %d/%d (%.0f%%)\n", bar, stats.Today, stats.Goal, ratio*100)
	fmt.Printf("Streak     %d day(s)\n", stats.Streak)
	fmt.Printf("7-day avg  %.1f drinks/day\n", stats.RollingAvg)
	return nil
}
