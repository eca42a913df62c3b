package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nisu0001/bea-apa3.0/internal/scheduler"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateTasks, StateQuickAdd:
		content = m.viewTasks()
	case StateAchievements:
		content = m.viewAchievements()
	case StateSettings:
		content = m.viewSettings()
	case StateEditSettings:
		content = m.form.View()
	}

	var status string
	if m.statusMsg != "" {
		status = statusStyle.Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		status,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	titles := []string{"Today", "Tasks", "Achievements", "Settings"}
	states := []SessionState{StateToday, StateTasks, StateAchievements, StateSettings}

	active := m.state
	switch active {
	case StateQuickAdd:
		active = StateTasks
	case StateEditSettings:
		active = StateSettings
	}

	for i, title := range titles {
		if states[i] == active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	doc := m.store.Document()
	stats := m.tracker.UpdateStats(time.Now())

	var b strings.Builder

	label := "Hydration"
	if doc.ShowProgressText {
		label = fmt.Sprintf("Hydration %d/%d", stats.Today, stats.Goal)
	}
	b.WriteString(label + "\n")
	b.WriteString(m.bar.ViewAs(m.tracker.ProgressRatio()) + "\n\n")

	if m.sched.State() == scheduler.StateDue {
		b.WriteString(dueStyle.Render("Time to hydrate!") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("Next reminder in %s\n", fmtCountdown(m.sched.Remaining())))
	}

	b.WriteString(fmt.Sprintf("\nStreak:    %d day(s)\n", stats.Streak))
	b.WriteString(fmt.Sprintf("7-day avg: %.1f drinks/day\n", stats.RollingAvg))

	return docStyle.Render(b.String())
}

func (m Model) viewTasks() string {
	items := m.todos.All()
	now := time.Now()

	var b strings.Builder
	if m.state == StateQuickAdd {
		b.WriteString(m.quickInput.View() + "\n\n")
	}

	if len(items) == 0 {
		b.WriteString("No tasks. Press 'a' to add one.")
		return docStyle.Render(b.String())
	}

	for i, item := range items {
		cursor := "  "
		if i == m.cursor && m.state == StateTasks {
			cursor = "> "
		}

		check := "[ ]"
		if item.Completed {
			check = "[x]"
		}

		line := fmt.Sprintf("%s%s %s (%s, %s)", cursor, check, item.Text, item.Priority, item.Category)
		switch {
		case item.Completed:
			line = doneStyle.Render(line)
		case item.IsOverdue(now):
			line = overdueStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewAchievements() string {
	doc := m.store.Document()

	ids := make([]string, 0, len(doc.Achievements))
	for id := range doc.Achievements {
		ids = append(ids, id)
	}
	// Stable order: unlocked first, then by name.
	sort.Slice(ids, func(i, j int) bool {
		a, b := doc.Achievements[ids[i]], doc.Achievements[ids[j]]
		if a.Unlocked != b.Unlocked {
			return a.Unlocked
		}
		return a.Name < b.Name
	})

	var b strings.Builder
	for _, id := range ids {
		a := doc.Achievements[id]
		if a.Unlocked {
			b.WriteString(unlockedStyle.Render("★ "+a.Name) + "  " + a.Description + "\n")
		} else {
			line := "  " + a.Name + "  " + a.Description
			if a.ProgressMax > 0 {
				line += fmt.Sprintf(" [%d/%d]", a.Progress, a.ProgressMax)
			}
			b.WriteString(lockedStyle.Render(line) + "\n")
		}
	}
	return docStyle.Render(b.String())
}

func (m Model) viewSettings() string {
	doc := m.store.Document()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Min interval:       %d min\n", doc.MinMinutes))
	b.WriteString(fmt.Sprintf("Max interval:       %d min\n", doc.MaxMinutes))
	b.WriteString(fmt.Sprintf("Snooze:             %d min\n", doc.SnoozeMinutes))
	b.WriteString(fmt.Sprintf("Daily goal:         %d\n", doc.DailyGoal))
	b.WriteString(fmt.Sprintf("Sound enabled:      %v\n", doc.SoundEnabled))
	b.WriteString(fmt.Sprintf("Theme:              %s\n", doc.Theme))
	b.WriteString(fmt.Sprintf("Notification style: %s\n", doc.Style))
	b.WriteString("\nPress 'e' to edit.")
	return docStyle.Render(b.String())
}

func fmtCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	if total >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
