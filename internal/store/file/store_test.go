package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/christ0s/freegames-reporter/internal/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	return New(path, zerolog.Nop()), path
}

func TestLoadMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	ids, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty set, got %d ids", len(ids))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not json at all"},
		{"wrong shape", `{"status": "ok"}`},
		{"wrong element type", `["a", "b"]`},
		{"truncated", `[1, 2,`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, path := newTestStore(t)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			ids, err := store.Load()
			if err != nil {
				t.Fatalf("corrupt state must not be fatal, got: %v", err)
			}
			if len(ids) != 0 {
				t.Fatalf("expected empty set, got %d ids", len(ids))
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.Save(models.NewIDSet(300, 100, 200)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	ids, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := []int{100, 200, 300}
	got := ids.Sorted()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSaveWritesSortedNewlineTerminated(t *testing.T) {
	store, path := newTestStore(t)

	if err := store.Save(models.NewIDSet(2, 1)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n  1,\n  2\n]\n"
	if string(data) != want {
		t.Fatalf("got %q, want %q", data, want)
	}
}

func TestSaveOverwritesPreviousState(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.Save(models.NewIDSet(1)); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(models.NewIDSet(1, 2)); err != nil {
		t.Fatal(err)
	}

	ids, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || !ids.Contains(1) || !ids.Contains(2) {
		t.Fatalf("got %v, want [1 2]", ids.Sorted())
	}
}
