package cli

import (
	"fmt"
	"os"

	"github.com/nisu0001/bea-apa3.0/internal/autostart"
)

type AutostartCmd struct {
	Enable  AutostartEnableCmd  `cmd:"" help:"Launch the reminder daemon at login."`
	Disable AutostartDisableCmd `cmd:"" help:"Stop launching the daemon at login."`
	Status  AutostartStatusCmd  `cmd:"" default:"1" help:"Show whether login launch is configured."`
}

type AutostartEnableCmd struct{}

func (c *AutostartEnableCmd) Run(ctx *Context) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	a := autostart.New(exe)
	if err := a.Install(); err != nil {
		return err
	}

	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()
	ctx.Store.Document().StartAtLogin = true
	if err := ctx.Store.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	path, _ := a.Path()
	fmt.Printf("Autostart enabled: %s\n", path)
	return nil
}

type AutostartDisableCmd struct{}

func (c *AutostartDisableCmd) Run(ctx *Context) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	if err := autostart.New(exe).Uninstall(); err != nil {
		return err
	}

	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()
	ctx.Store.Document().StartAtLogin = false
	if err := ctx.Store.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("Autostart disabled.")
	return nil
}

type AutostartStatusCmd struct{}

func (c *AutostartStatusCmd) Run(ctx *Context) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	a := autostart.New(exe)
	if a.IsInstalled() {
		path, _ := a.Path()
		fmt.Printf("Autostart is enabled: %s\n", path)
	} else {
		fmt.Println("Autostart is disabled.")
	}
	return nil
}
