package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/models"
)

type AchievementsCmd struct {
	All bool `help:"Include locked achievements."`
}

func (c *AchievementsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	defer ctx.Store.Close()

	doc := ctx.Store.Document()

	list := make([]models.Achievement, 0, len(doc.Achievements))
	for _, a := range doc.Achievements {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Unlocked != list[j].Unlocked {
			return list[i].Unlocked
		}
		return list[i].Name < list[j].Name
	})

	unlocked := 0
	for _, a := range list {
		if a.Unlocked {
			unlocked++
		}
	}
	fmt.Printf("Achievements: %d/%d unlocked\n\n", unlocked, len(list))

	for _, a := range list {
		if !a.Unlocked && !c.All {
			continue
		}
		mark := "  "
		if a.Unlocked {
			mark = "★ "
		}
		line := fmt.Sprintf("%s%s: %s", mark, a.Name, a.Description)
		if a.Unlocked && a.UnlockDate != nil {
			if t, err := time.Parse(time.RFC3339, *a.UnlockDate); err == nil {
				line += fmt.Sprintf(" (unlocked %s)", t.Format("2006-01-02"))
			}
		} else if a.ProgressMax > 0 {
			line += fmt.Sprintf(" [%d/%d]", a.Progress, a.ProgressMax)
		}
		fmt.Println(line)
	}
	return nil
}
