package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nisu0001/bea-apa3.0/internal/achievements"
	"github.com/nisu0001/bea-apa3.0/internal/scheduler"
	"github.com/nisu0001/bea-apa3.0/internal/storage"
	"github.com/nisu0001/bea-apa3.0/internal/todo"
	"github.com/nisu0001/bea-apa3.0/internal/tracker"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateTasks
	StateAchievements
	StateSettings
	StateQuickAdd
	StateEditSettings
)

// tickMsg drives the countdown display once per second.
type tickMsg time.Time

type SettingsFormModel struct {
	MinMinutes   string
	MaxMinutes   string
	Snooze       string
	DailyGoal    string
	SoundEnabled bool
	Theme        string
	Style        string
}

type Model struct {
	store   storage.Provider
	sched   *scheduler.Scheduler
	tracker *tracker.Tracker
	todos   *todo.Tracker
	engine  *achievements.Engine

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	bar           progress.Model
	quickInput    textinput.Model
	form          *huh.Form
	settingsForm  *SettingsFormModel

	cursor    int
	lastTick  time.Time
	statusMsg string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, sched *scheduler.Scheduler) Model {
	todos := todo.New(store)

	input := textinput.New()
	input.Placeholder = "Buy milk !!! @tomorrow #errand"
	input.CharLimit = 200

	doc := store.Document()
	sched.Arm(doc.MinMinutes, doc.MaxMinutes)

	return Model{
		store:      store,
		sched:      sched,
		tracker:    tracker.New(store),
		todos:      todos,
		engine:     achievements.NewEngine(store, todos, nil),
		state:      StateToday,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		bar:        progress.New(progress.WithDefaultGradient()),
		quickInput: input,
		lastTick:   time.Now(),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Drink, m.keys.Snooze, m.keys.Quiet)
	case StateTasks:
		keys = append(keys, m.keys.Add, m.keys.Enter, m.keys.Delete)
	case StateSettings:
		keys = append(keys, m.keys.Edit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	actions := []key.Binding{m.keys.Drink, m.keys.Snooze, m.keys.Quiet, m.keys.Add, m.keys.Delete, m.keys.Edit}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
