package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-cubes/internal/records"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreLoadEmpty(t *testing.T) {
	store := openTemp(t)

	_, err := store.Load()
	if !errors.Is(err, records.ErrMalformed) {
		t.Fatalf("Load() on empty db: expected ErrMalformed, got %v", err)
	}

	tbl := records.Load(store, nil)
	if tbl.Entries()[0].Name != "Nick" {
		t.Errorf("expected fallback to default table, got %v", tbl.Entries())
	}
}

func TestStoreSaveAndLoadRecords(t *testing.T) {
	store := openTemp(t)

	if err := store.Save(records.DefaultEntries()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	want := records.DefaultEntries()
	if len(loaded) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(loaded))
	}
	for i := range want {
		if loaded[i] != want[i] {
			t.Errorf("record %d: expected %v, got %v", i, want[i], loaded[i])
		}
	}

	// Saving again replaces rather than appends
	if err := store.Save([]records.Record{{Name: "Solo", Score: 1}}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	loaded, _ = store.Load()
	if len(loaded) != 1 || loaded[0].Name != "Solo" {
		t.Errorf("expected single replaced record, got %v", loaded)
	}
}

func TestStoreBacksTable(t *testing.T) {
	store := openTemp(t)

	tbl := records.Load(store, nil)
	tbl.Insert("Zed", 4200)
	tbl.Save()

	reloaded := records.Load(store, nil)
	if reloaded.Entries()[2].Name != "Zed" {
		t.Errorf("expected Zed in third place, got %v", reloaded.Entries())
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
