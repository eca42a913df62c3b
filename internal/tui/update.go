package tui

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/scheduler"
	"github.com/nisu0001/bea-apa3.0/internal/utils"
	"github.com/nisu0001/bea-apa3.0/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.state == StateQuickAdd {
		return m.updateQuickAdd(msg)
	}
	if m.state == StateEditSettings {
		return m.updateSettingsForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = msg.Width - 8
		if m.bar.Width > 50 {
			m.bar.Width = 50
		}

	case tickMsg:
		now := time.Time(msg)
		// A tick that crosses midnight triggers the rollover.
		if !utils.SameDay(m.lastTick, now) {
			if _, err := m.tracker.CheckDailyReset(now); err == nil {
				m.todos.ProcessRepeating(now)
				m.engine.Evaluate(now)
			}
		}
		m.lastTick = now
		cmds = append(cmds, tick())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Tab):
			m.state = m.nextTab(1)
			m.cursor = 0

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = m.nextTab(-1)
			m.cursor = 0

		default:
			return m.updateTab(msg)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) nextTab(dir int) SessionState {
	tabs := []SessionState{StateToday, StateTasks, StateAchievements, StateSettings}
	for i, s := range tabs {
		if s == m.state {
			return tabs[(i+dir+len(tabs))%len(tabs)]
		}
	}
	return StateToday
}

func (m Model) updateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateToday:
		return m.updateToday(msg)
	case StateTasks:
		return m.updateTasks(msg)
	case StateSettings:
		if key.Matches(msg, m.keys.Edit) {
			return m.openSettingsForm(), nil
		}
	}
	return m, nil
}

func (m Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	doc := m.store.Document()

	switch {
	case key.Matches(msg, m.keys.Drink):
		now := time.Now()
		if err := m.tracker.LogDrink(now); err != nil {
			m.statusMsg = fmt.Sprintf("Failed to log drink: %v", err)
			return m, nil
		}
		unlocked, _ := m.engine.Evaluate(now)
		if len(unlocked) > 0 {
			m.statusMsg = "Achievement unlocked: " + unlocked[0].Name
		} else {
			m.statusMsg = constants.MotivationalQuotes[rand.Intn(len(constants.MotivationalQuotes))]
		}
		if m.sched.State() == scheduler.StateDue {
			m.sched.Arm(doc.MinMinutes, doc.MaxMinutes)
		}

	case key.Matches(msg, m.keys.Snooze):
		m.sched.Snooze(doc.SnoozeMinutes)
		m.statusMsg = constants.SnoozeMessage

	case key.Matches(msg, m.keys.Quiet):
		m.sched.ClassroomMode()
		m.statusMsg = constants.ClassroomMessage
	}
	return m, nil
}

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.todos.All()

	switch {
	case key.Matches(msg, m.keys.Add):
		m.previousState = m.state
		m.state = StateQuickAdd
		m.quickInput.SetValue("")
		return m, m.quickInput.Focus()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		if m.cursor < len(items) {
			now := time.Now()
			completed, err := m.todos.Toggle(items[m.cursor].ID, now)
			if err != nil {
				m.statusMsg = fmt.Sprintf("Failed to toggle task: %v", err)
				return m, nil
			}
			if completed {
				if unlocked, _ := m.engine.Evaluate(now); len(unlocked) > 0 {
					m.statusMsg = "Achievement unlocked: " + unlocked[0].Name
				}
			}
		}

	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(items) {
			if err := m.todos.Delete(items[m.cursor].ID); err != nil {
				m.statusMsg = fmt.Sprintf("Failed to delete task: %v", err)
			} else if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

func (m Model) updateQuickAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc:
			m.state = StateTasks
			m.quickInput.Blur()
			return m, nil
		case tea.KeyEnter:
			if _, err := m.todos.QuickAdd(m.quickInput.Value(), time.Now()); err != nil {
				m.statusMsg = fmt.Sprintf("Failed to add task: %v", err)
			}
			m.state = StateTasks
			m.quickInput.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.quickInput, cmd = m.quickInput.Update(msg)
	return m, cmd
}

func (m Model) openSettingsForm() Model {
	doc := m.store.Document()
	m.settingsForm = &SettingsFormModel{
		MinMinutes:   strconv.Itoa(doc.MinMinutes),
		MaxMinutes:   strconv.Itoa(doc.MaxMinutes),
		Snooze:       strconv.Itoa(doc.SnoozeMinutes),
		DailyGoal:    strconv.Itoa(doc.DailyGoal),
		SoundEnabled: doc.SoundEnabled,
		Theme:        doc.Theme,
		Style:        string(doc.Style),
	}

	themeOpts := make([]huh.Option[string], 0, len(constants.ThemeNames))
	for _, name := range constants.ThemeNames {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Min interval (minutes)").Value(&m.settingsForm.MinMinutes),
			huh.NewInput().Title("Max interval (minutes)").Value(&m.settingsForm.MaxMinutes),
			huh.NewInput().Title("Snooze (minutes)").Value(&m.settingsForm.Snooze),
			huh.NewInput().Title("Daily goal").Value(&m.settingsForm.DailyGoal),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Sound enabled").Value(&m.settingsForm.SoundEnabled),
			huh.NewSelect[string]().Title("Theme").Options(themeOpts...).Value(&m.settingsForm.Theme),
			huh.NewSelect[string]().Title("Notification style").Options(
				huh.NewOption(string(constants.StyleLegacy), string(constants.StyleLegacy)),
				huh.NewOption(string(constants.StyleStandard), string(constants.StyleStandard)),
				huh.NewOption(string(constants.StyleOverTheTop), string(constants.StyleOverTheTop)),
			).Value(&m.settingsForm.Style),
		),
	)

	m.previousState = m.state
	m.state = StateEditSettings
	return m
}

func (m Model) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.state = StateSettings
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		doc := m.store.Document()
		if v, err := strconv.Atoi(m.settingsForm.MinMinutes); err == nil {
			doc.MinMinutes = v
		}
		if v, err := strconv.Atoi(m.settingsForm.MaxMinutes); err == nil {
			doc.MaxMinutes = v
		}
		if v, err := strconv.Atoi(m.settingsForm.Snooze); err == nil {
			doc.SnoozeMinutes = v
		}
		if v, err := strconv.Atoi(m.settingsForm.DailyGoal); err == nil {
			doc.DailyGoal = v
		}
		doc.SoundEnabled = m.settingsForm.SoundEnabled
		doc.Theme = m.settingsForm.Theme
		doc.Style = constants.NotificationStyle(m.settingsForm.Style)

		validation.SanitizeDocument(doc)
		if err := m.store.Save(); err != nil {
			m.statusMsg = fmt.Sprintf("Failed to save settings: %v", err)
		} else {
			m.statusMsg = "Settings saved."
			m.sched.Arm(doc.MinMinutes, doc.MaxMinutes)
		}
		m.state = StateSettings
	case huh.StateAborted:
		m.state = StateSettings
	}
	return m, tea.Batch(cmds...)
}
