package daemon

import (
	"context"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/achievements"
	"github.com/nisu0001/bea-apa3.0/internal/instance"
	"github.com/nisu0001/bea-apa3.0/internal/logger"
	"github.com/nisu0001/bea-apa3.0/internal/notifier"
	"github.com/nisu0001/bea-apa3.0/internal/scheduler"
	"github.com/nisu0001/bea-apa3.0/internal/storage"
	"github.com/nisu0001/bea-apa3.0/internal/todo"
	"github.com/nisu0001/bea-apa3.0/internal/tracker"
	"github.com/nisu0001/bea-apa3.0/internal/utils"
)

// Daemon is the tray-resident core: one event loop multiplexing the reminder
// timer, a single next-midnight rollover timer, the per-minute todo reminder
// check and raise requests from subsequent launches.
//
// All state mutation happens on this loop; the timers only deliver ticks.
type Daemon struct {
	store    storage.Provider
	tracker  *tracker.Tracker
	todos    *todo.Tracker
	engine   *achievements.Engine
	notifier *notifier.Notifier
	sched    *scheduler.Scheduler

	configDir string
	classroom bool

	raise chan struct{}
	// remindedOn records, per task, the day its reminder last fired so a
	// task notifies once per day even though the check runs every minute.
	remindedOn map[int]string
}

// Config carries the daemon's construction parameters.
type Config struct {
	Store     storage.Provider
	Scheduler *scheduler.Scheduler
	ConfigDir string
	Classroom bool
}

func New(cfg Config) *Daemon {
	doc := cfg.Store.Document()
	n := notifier.New(doc.Style)
	todos := todo.New(cfg.Store)
	return &Daemon{
		store:      cfg.Store,
		tracker:    tracker.New(cfg.Store),
		todos:      todos,
		engine:     achievements.NewEngine(cfg.Store, todos, n),
		notifier:   n,
		sched:      cfg.Scheduler,
		configDir:  cfg.ConfigDir,
		classroom:  cfg.Classroom,
		raise:      make(chan struct{}, 1),
		remindedOn: map[int]string{},
	}
}

// Run acquires the single-instance socket and drives the event loop until
// the context is cancelled. When another instance already runs, the raise
// message has been sent and ErrAlreadyRunning is returned.
func (d *Daemon) Run(ctx context.Context) error {
	server, err := instance.Acquire(d.configDir, d.requestRaise)
	if err != nil {
		return err
	}
	defer server.Close()

	now := time.Now()
	if _, err := d.tracker.CheckDailyReset(now); err != nil {
		logger.Warn("Daily reset failed", "error", err)
	}
	if _, err := d.todos.ProcessRepeating(now); err != nil {
		logger.Warn("Repeating-task processing failed", "error", err)
	}
	if _, err := d.engine.Evaluate(now); err != nil {
		logger.Warn("Achievement evaluation failed", "error", err)
	}

	doc := d.store.Document()
	if d.classroom {
		d.sched.ClassroomMode()
	} else {
		d.sched.Arm(doc.MinMinutes, doc.MaxMinutes)
	}
	defer d.sched.Stop()

	midnight := time.NewTimer(time.Until(utils.NextMidnight(now)))
	defer midnight.Stop()

	reminderTick := time.NewTicker(time.Minute)
	defer reminderTick.Stop()

	logger.Info("Daemon started", "config_dir", d.configDir)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Daemon stopping")
			return nil

		case <-d.sched.C():
			d.onReminderDue()

		case <-midnight.C:
			d.onMidnight()
			midnight.Reset(time.Until(utils.NextMidnight(time.Now())))

		case <-reminderTick.C:
			d.onReminderCheck(time.Now())

		case <-d.raise:
			// The tray surface owns window raising; the core just records
			// that a second launch happened.
			logger.Info("Raise requested")
		}
	}
}

func (d *Daemon) requestRaise() {
	select {
	case d.raise <- struct{}{}:
	default:
	}
}

// onReminderDue surfaces the hydration prompt and immediately arms the next
// interval; the countdown to the next reminder starts when the prompt shows,
// not when the user acts on it.
func (d *Daemon) onReminderDue() {
	d.notifier.ReminderDue()
	doc := d.store.Document()
	d.sched.Arm(doc.MinMinutes, doc.MaxMinutes)
}

// onMidnight performs the rollover. The rollover itself is idempotent, so an
// extra invocation from startup or a clock adjustment is harmless.
func (d *Daemon) onMidnight() {
	now := time.Now()
	if _, err := d.tracker.CheckDailyReset(now); err != nil {
		logger.Warn("Daily reset failed", "error", err)
	}
	if _, err := d.todos.ProcessRepeating(now); err != nil {
		logger.Warn("Repeating-task processing failed", "error", err)
	}
	if _, err := d.engine.Evaluate(now); err != nil {
		logger.Warn("Achievement evaluation failed", "error", err)
	}
}

func (d *Daemon) onReminderCheck(now time.Time) {
	today := utils.DateKey(now)
	for _, item := range d.todos.DueReminders(now) {
		if d.remindedOn[item.ID] == today {
			continue
		}
		d.remindedOn[item.ID] = today
		d.notifier.TodoReminder(item)
	}
}

// LogDrink handles the user action from the reminder surface: count the
// drink, refresh achievements.
func (d *Daemon) LogDrink(now time.Time) error {
	if err := d.tracker.LogDrink(now); err != nil {
		return err
	}
	_, err := d.engine.Evaluate(now)
	return err
}

// Snooze pushes the next reminder back by the configured snooze interval.
func (d *Daemon) Snooze() {
	d.sched.Snooze(d.store.Document().SnoozeMinutes)
}
