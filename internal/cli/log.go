package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/achievements"
	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/notifier"
	"github.com/nisu0001/bea-apa3.0/internal/todo"
	"github.com/nisu0001/bea-apa3.0/internal/tracker"
)

type LogCmd struct{}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	now := time.Now()
	trk := tracker.New(ctx.Store)

	if _, err := trk.CheckDailyReset(now); err != nil {
		return fmt.Errorf("failed to roll over the day: %w", err)
	}
	if err := trk.LogDrink(now); err != nil {
		return fmt.Errorf("failed to log drink: %w", err)
	}

	doc := ctx.Store.Document()
	n := notifier.New(doc.Style)
	engine := achievements.NewEngine(ctx.Store, todo.New(ctx.Store), n)
	if _, err := engine.Evaluate(now); err != nil {
		return fmt.Errorf("failed to evaluate achievements: %w", err)
	}

	quote := constants.MotivationalQuotes[rand.Intn(len(constants.MotivationalQuotes))]
	fmt.Printf("%s\n", quote)

	stats := trk.UpdateStats(now)
	fmt.Printf("Today: %d/%d", stats.Today, stats.Goal)
	if stats.Streak > 1 {
		fmt.Printf("  •  %d day streak", stats.Streak)
	}
	fmt.Println()
	return nil
}
