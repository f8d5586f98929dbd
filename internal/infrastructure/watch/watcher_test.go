package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

type recordingInvalidator struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingInvalidator) Invalidate(dataType, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, dataType+"/"+name)
}

func (r *recordingInvalidator) seen(call string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.calls {
		if c == call {
			return true
		}
	}
	return false
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestWatcherInvalidatesChangedFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "gene_expression")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	rec := &recordingInvalidator{}
	w, err := NewWatcher(context.Background(), root, rec)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "als.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	waitFor(t, func() bool { return rec.seen("gene_expression/als") })
}

func TestWatcherPicksUpNewCategoryDirectory(t *testing.T) {
	root := t.TempDir()

	rec := &recordingInvalidator{}
	w, err := NewWatcher(context.Background(), root, rec)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	dir := filepath.Join(root, "proteomics")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	// Give the watcher a moment to register the new directory before the
	// first file lands in it.
	waitFor(t, func() bool {
		if err := os.WriteFile(filepath.Join(dir, "x.json"), []byte(`{}`), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		return rec.seen("proteomics/x")
	})
}

func TestWatcherIgnoresNonJSON(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "pathways")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	rec := &recordingInvalidator{}
	w, err := NewWatcher(context.Background(), root, rec)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ref.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	waitFor(t, func() bool { return rec.seen("pathways/ref") })
	if rec.seen("pathways/notes.txt") || rec.seen("pathways/notes") {
		t.Fatalf("watcher invalidated a non-JSON file")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	root := t.TempDir()

	w, err := NewWatcher(context.Background(), root, &recordingInvalidator{})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	w.Close()
	w.Close()
}
