package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/tracker"
	"github.com/nisu0001/bea-apa3.0/internal/utils"
)

type HistoryCmd struct {
	Days int `help:"How many past days to show." default:"14"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
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

	dates := make([]string, 0, len(doc.History))
	for d := range doc.History {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if c.Days > 0 && len(dates) > c.Days {
		dates = dates[:c.Days]
	}

	fmt.Printf("%s  %d (today)\n", utils.DateKey(now), doc.Count)
	for _, d := range dates {
		fmt.Printf("%s  %d\n", d, doc.History[d])
	}
	return nil
}
