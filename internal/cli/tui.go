package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nisu0001/bea-apa3.0/internal/todo"
	"github.com/nisu0001/bea-apa3.0/internal/tracker"
	"github.com/nisu0001/bea-apa3.0/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	now := time.Now()
	if _, err := tracker.New(ctx.Store).CheckDailyReset(now); err != nil {
		return fmt.Errorf("failed to roll over the day: %w", err)
	}
	if _, err := todo.New(ctx.Store).ProcessRepeating(now); err != nil {
		return fmt.Errorf("failed to process repeating tasks: %w", err)
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Scheduler), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
