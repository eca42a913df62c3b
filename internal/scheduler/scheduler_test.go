package scheduler

import (
	"math/rand"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestScheduler() (*Scheduler, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC)}
	s := NewWithOptions(rand.New(rand.NewSource(1)), clock.Now)
	return s, clock
}

func TestArmDegenerateRange(t *testing.T) {
	s, _ := newTestScheduler()
	defer s.Stop()

	if got := s.Arm(30, 30); got != 30*time.Minute {
		t.Errorf("Arm(30, 30) = %v, want 30m", got)
	}
	if s.State() != StateWaiting {
		t.Error("state after Arm should be Waiting")
	}
}

func TestArmStaysInBounds(t *testing.T) {
	s, _ := newTestScheduler()
	defer s.Stop()

	for i := 0; i < 200; i++ {
		d := s.Arm(30, 60)
		if d < 30*time.Minute || d > 60*time.Minute {
			t.Fatalf("Arm(30, 60) = %v, outside bounds", d)
		}
	}
}

func TestSnoozeInterval(t *testing.T) {
	s, _ := newTestScheduler()
	defer s.Stop()

	if got := s.Snooze(10); got != 10*time.Minute {
		t.Errorf("Snooze(10) = %v, want 10m", got)
	}
	if s.State() != StateWaiting {
		t.Error("state after Snooze should be Waiting")
	}
}

func TestClassroomModeInterval(t *testing.T) {
	s, _ := newTestScheduler()
	defer s.Stop()

	if got := s.ClassroomMode(); got != 90*time.Minute {
		t.Errorf("ClassroomMode() = %v, want 90m", got)
	}
}

func TestProgress(t *testing.T) {
	s, clock := newTestScheduler()
	defer s.Stop()

	if got := s.Progress(); got != 0 {
		t.Errorf("Progress() before any arm = %f, want 0", got)
	}

	s.Arm(30, 30)
	clock.now = clock.now.Add(15 * time.Minute)
	if got := s.Progress(); got != 0.5 {
		t.Errorf("Progress() at half = %f, want 0.5", got)
	}

	// The wall clock can overshoot the interval before the timer callback
	// runs; the ratio still clamps.
	clock.now = clock.now.Add(time.Hour)
	if got := s.Progress(); got != 1 {
		t.Errorf("Progress() past expiry = %f, want 1", got)
	}
}

func TestRemaining(t *testing.T) {
	s, clock := newTestScheduler()
	defer s.Stop()

	if got := s.Remaining(); got != 0 {
		t.Errorf("Remaining() before any arm = %v, want 0", got)
	}

	s.Arm(30, 30)
	clock.now = clock.now.Add(10 * time.Minute)
	if got := s.Remaining(); got != 20*time.Minute {
		t.Errorf("Remaining() = %v, want 20m", got)
	}

	clock.now = clock.now.Add(time.Hour)
	if got := s.Remaining(); got != 0 {
		t.Errorf("Remaining() past expiry = %v, want 0", got)
	}
}

func TestStopDisarms(t *testing.T) {
	s, _ := newTestScheduler()

	s.Arm(30, 60)
	s.Stop()
	if s.State() != StateDue {
		t.Error("state after Stop should be Due")
	}
}

func TestRearmReplacesPendingTimer(t *testing.T) {
	s, _ := newTestScheduler()
	defer s.Stop()

	s.Arm(30, 30)
	if got := s.Snooze(5); got != 5*time.Minute {
		t.Errorf("Snooze(5) = %v, want 5m", got)
	}
	if s.Interval() != 5*time.Minute {
		t.Errorf("Interval() = %v, want 5m", s.Interval())
	}
}
