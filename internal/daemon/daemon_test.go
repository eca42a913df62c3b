package daemon

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/instance"
	"github.com/nisu0001/bea-apa3.0/internal/scheduler"
	"github.com/nisu0001/bea-apa3.0/internal/storage"
)

func newTestDaemon(t *testing.T) (*Daemon, storage.Provider, string) {
	t.Helper()
	dir := t.TempDir()
	store := storage.NewJSONStore(filepath.Join(dir, "settings.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	d := New(Config{
		Store:     store,
		Scheduler: scheduler.New(),
		ConfigDir: dir,
	})
	return d, store, dir
}

func TestLogDrinkUpdatesCount(t *testing.T) {
	d, store, _ := newTestDaemon(t)

	if err := d.LogDrink(time.Now()); err != nil {
		t.Fatalf("LogDrink() error = %v", err)
	}
	if store.Document().Count != 1 {
		t.Errorf("Count = %d, want 1", store.Document().Count)
	}
}

func TestSnoozeArmsScheduler(t *testing.T) {
	d, store, _ := newTestDaemon(t)
	store.Document().SnoozeMinutes = 10

	d.Snooze()
	defer d.sched.Stop()

	if d.sched.State() != scheduler.StateWaiting {
		t.Error("scheduler not armed after snooze")
	}
	if d.sched.Interval() != 10*time.Minute {
		t.Errorf("Interval = %v, want 10m", d.sched.Interval())
	}
}

func TestRunRefusesSecondInstance(t *testing.T) {
	d, _, dir := newTestDaemon(t)

	server, err := instance.Acquire(dir, nil)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Run(ctx); err != instance.ErrAlreadyRunning {
		t.Errorf("Run() error = %v, want ErrAlreadyRunning", err)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	d, _, _ := newTestDaemon(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	// Give the loop a moment to start before cancelling.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("daemon did not stop on cancel")
	}
}
