package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	fmt.Printf("Initialized storage at %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Run 'bea-apa' to open the dashboard, or 'bea-apa daemon' to start reminders.")
	return nil
}
