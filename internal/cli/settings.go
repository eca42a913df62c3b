package cli

import (
	"fmt"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	MinMinutes   *int    `help:"Minimum minutes between reminders."`
	MaxMinutes   *int    `help:"Maximum minutes between reminders."`
	Snooze       *int    `help:"Snooze duration in minutes."`
	DailyGoal    *int    `help:"Daily drink goal."`
	SoundEnabled *bool   `help:"Enable or disable reminder sounds."`
	Sound        *string `help:"Reminder sound name."`
	Theme        *string `help:"Color theme name."`
	Style        *string `help:"Notification style (Legacy, Standard, Over the Top)."`
	ProgressText *bool   `help:"Show the numeric count on the progress display."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	doc := ctx.Store.Document()

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Min Interval:       %d min\n", doc.MinMinutes)
		fmt.Printf("  Max Interval:       %d min\n", doc.MaxMinutes)
		fmt.Printf("  Snooze:             %d min\n", doc.SnoozeMinutes)
		fmt.Printf("  Daily Goal:         %d\n", doc.DailyGoal)
		fmt.Println("\nAppearance & Sound:")
		fmt.Printf("  Sound Enabled:      %v\n", doc.SoundEnabled)
		fmt.Printf("  Sound:              %s\n", doc.SoundChoice)
		fmt.Printf("  Theme:              %s\n", doc.Theme)
		fmt.Printf("  Notification Style: %s\n", doc.Style)
		fmt.Printf("  Progress Text:      %v\n", doc.ShowProgressText)
		return nil
	}

	updated := false
	if c.MinMinutes != nil {
		doc.MinMinutes = *c.MinMinutes
		updated = true
	}
	if c.MaxMinutes != nil {
		doc.MaxMinutes = *c.MaxMinutes
		updated = true
	}
	if c.Snooze != nil {
		doc.SnoozeMinutes = *c.Snooze
		updated = true
	}
	if c.DailyGoal != nil {
		doc.DailyGoal = *c.DailyGoal
		updated = true
	}
	if c.SoundEnabled != nil {
		doc.SoundEnabled = *c.SoundEnabled
		updated = true
	}
	if c.Sound != nil {
		// Accept either a sound name ("Meow") or a stored asset path.
		if path, ok := constants.SoundOptions[*c.Sound]; ok {
			doc.SoundChoice = path
		} else {
			doc.SoundChoice = *c.Sound
		}
		updated = true
	}
	if c.Theme != nil {
		doc.Theme = *c.Theme
		updated = true
	}
	if c.Style != nil {
		doc.Style = constants.NotificationStyle(*c.Style)
		updated = true
	}
	if c.ProgressText != nil {
		doc.ShowProgressText = *c.ProgressText
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	for _, issue := range validation.SanitizeDocument(doc) {
		fmt.Printf("Adjusted %s: %s\n", issue.Key, issue.Description)
	}
	if err := ctx.Store.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
