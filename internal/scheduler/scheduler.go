package scheduler

import (
	"math/rand"
	"sync"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/logger"
)

// State is the scheduler's position in its two-state machine.
type State int

const (
	// StateWaiting means a timer is armed toward a fixed expiry.
	StateWaiting State = iota
	// StateDue means the reminder has surfaced and the timer is disarmed.
	StateDue
)

// Scheduler arms one reminder at a time and reports when it comes due.
//
// Arm picks a uniformly random whole-minute interval in [min, max]
// inclusive. min <= max is a precondition enforced by settings validation,
// not here.
type Scheduler struct {
	mu       sync.Mutex
	state    State
	interval time.Duration
	armedAt  time.Time
	timer    *time.Timer
	out      chan time.Time

	rng *rand.Rand
	now func() time.Time
}

// New returns a scheduler seeded from the current time.
func New() *Scheduler {
	return NewWithOptions(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewWithOptions injects the random source and clock, for tests.
func NewWithOptions(rng *rand.Rand, now func() time.Time) *Scheduler {
	return &Scheduler{
		state: StateDue,
		out:   make(chan time.Time, 1),
		rng:   rng,
		now:   now,
	}
}

// C delivers one value each time the armed interval elapses.
func (s *Scheduler) C() <-chan time.Time {
	return s.out
}

// Arm transitions to Waiting with a fresh random interval.
func (s *Scheduler) Arm(minMinutes, maxMinutes int) time.Duration {
	minutes := minMinutes
	if maxMinutes > minMinutes {
		minutes = minMinutes + s.rng.Intn(maxMinutes-minMinutes+1)
	}
	d := time.Duration(minutes) * time.Minute
	s.armWith(d)
	logger.Info("Reminder armed", "minutes", minutes)
	return d
}

// Snooze transitions back to Waiting with the configured snooze interval.
// It applies from Due or, by user request, from Waiting.
func (s *Scheduler) Snooze(snoozeMinutes int) time.Duration {
	d := time.Duration(snoozeMinutes) * time.Minute
	s.armWith(d)
	logger.Info("Reminder snoozed", "minutes", snoozeMinutes)
	return d
}

// ClassroomMode forces Waiting with a fixed 90-minute interval regardless of
// the configured bounds.
func (s *Scheduler) ClassroomMode() time.Duration {
	d := constants.ClassroomMinutes * time.Minute
	s.armWith(d)
	logger.Info("Classroom mode armed", "minutes", constants.ClassroomMinutes)
	return d
}

func (s *Scheduler) armWith(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.state = StateWaiting
	s.interval = d
	s.armedAt = s.now()
	s.timer = time.AfterFunc(d, s.fire)
}

func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.state != StateWaiting {
		s.mu.Unlock()
		return
	}
	s.state = StateDue
	s.mu.Unlock()

	select {
	case s.out <- s.now():
	default:
	}
}

// Stop disarms any pending timer.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = StateDue
}

// State returns the current machine state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Interval returns the currently armed interval (zero when never armed).
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Progress is elapsed/interval for the countdown display, clamped to [0,1].
func (s *Scheduler) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.interval <= 0 {
		return 0
	}
	if s.state == StateDue {
		return 1
	}
	p := float64(s.now().Sub(s.armedAt)) / float64(s.interval)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Remaining is the time left until the reminder comes due, floored at zero.
func (s *Scheduler) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateDue || s.interval <= 0 {
		return 0
	}
	left := s.interval - s.now().Sub(s.armedAt)
	if left < 0 {
		return 0
	}
	return left
}
