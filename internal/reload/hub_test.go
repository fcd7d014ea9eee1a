package reload

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHubNotify(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe()
	b := hub.Subscribe()

	hub.Notify()
	hub.Notify()

	for name, ch := range map[string]chan struct{}{"a": a, "b": b} {
		select {
		case <-ch:
		default:
			t.Errorf("subscriber %s was not notified", name)
		}
	}

	hub.Unsubscribe(a)
	hub.Unsubscribe(a)
	if n := hub.Subscribers(); n != 1 {
		t.Errorf("expected 1 subscriber, got %d", n)
	}
	if _, ok := <-a; ok {
		t.Error("expected unsubscribed channel to be closed")
	}
}

func TestWatcherNotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	hub := NewHub()
	sub := hub.Subscribe()

	w := NewWatcher(hub, nil, dir)
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("watcher returned error: %v", err)
		}
	}()

	// Keep writing until the watcher is registered and picks one up.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-sub:
			return
		case <-tick.C:
			if err := os.WriteFile(filepath.Join(dir, "styles.css"), []byte(time.Now().String()), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload notification")
		}
	}
}

func TestWatcherMissingDir(t *testing.T) {
	w := NewWatcher(NewHub(), nil, filepath.Join(t.TempDir(), "missing"))
	if err := w.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
