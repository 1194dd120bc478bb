package segments

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitDirty(t *testing.T, w *Watcher, timeout time.Duration) bool {
	t.Helper()
	select {
	case <-w.Dirty():
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestWatcherSignalsOnTemplateEdit(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "edited.yaml"), []byte("width: 800\n"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if !waitDirty(t, w, 2*time.Second) {
		t.Fatal("no dirty signal after template edit")
	}
}

func TestWatcherCoalescesBurst(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "burst.tengo")
		if err := os.WriteFile(name, []byte("entities := []\n"), 0o644); err != nil {
			t.Fatalf("write script: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !waitDirty(t, w, 2*time.Second) {
		t.Fatal("no dirty signal after burst")
	}
	// the burst lands inside one debounce window: one signal, not five
	if waitDirty(t, w, 300*time.Millisecond) {
		t.Fatal("burst raised more than one dirty signal")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if waitDirty(t, w, 300*time.Millisecond) {
		t.Fatal("dirty signal for an unrelated file")
	}
}

func TestWatcherCloseDuringEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	// edits racing teardown must not panic the watcher goroutine
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			_ = os.WriteFile(filepath.Join(dir, "race.yaml"), []byte("width: 800\n"), 0o644)
		}
	}()

	time.Sleep(50 * time.Millisecond)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	close(stop)
	<-done
}

func TestIsReloadable(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"flat_run.yaml", true},
		{"flat_run.YML", true},
		{"scripts/spike_run.tengo", true},
		{"notes.txt", false},
		{"player.png", false},
	}
	for _, c := range cases {
		if got := isReloadable(c.path); got != c.want {
			t.Fatalf("isReloadable(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}
