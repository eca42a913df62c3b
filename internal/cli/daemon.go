package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/nisu0001/bea-apa3.0/internal/daemon"
	"github.com/nisu0001/bea-apa3.0/internal/instance"
)

type DaemonCmd struct {
	Classroom bool `help:"Pause reminders for 90 minutes before the first one fires."`
}

func (c *DaemonCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	d := daemon.New(daemon.Config{
		Store:     ctx.Store,
		Scheduler: ctx.Scheduler,
		ConfigDir: ctx.ConfigDir,
		Classroom: c.Classroom,
	})

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := d.Run(runCtx); err != nil {
		if errors.Is(err, instance.ErrAlreadyRunning) {
			fmt.Println("Another instance is already running; asked it to come to the front.")
			return nil
		}
		return err
	}
	return nil
}
