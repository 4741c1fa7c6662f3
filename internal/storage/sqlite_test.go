package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSetGet(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.Set(SlotPlayerName, "runner"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	got, err := store.Get(SlotPlayerName)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != "runner" {
		t.Errorf("Get() = %q, expected %q", got, "runner")
	}
}

func TestStoreOverwrite(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.Set(SlotLeaderboard, "[1]"); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(SlotLeaderboard, "[2]"); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(SlotLeaderboard)
	if err != nil {
		t.Fatal(err)
	}
	if got != "[2]" {
		t.Errorf("Get() = %q, expected latest value %q", got, "[2]")
	}
}

func TestStoreMissingSlot(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	got, err := store.Get("nonexistent")
	if err != nil {
		t.Fatalf("Get() on missing slot should not fail: %v", err)
	}
	if got != "" {
		t.Errorf("Get() on missing slot = %q, expected empty string", got)
	}
}

func TestStoreReopenPersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(SlotPlayerName, "kept"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	got, err := reopened.Get(SlotPlayerName)
	if err != nil {
		t.Fatal(err)
	}
	if got != "kept" {
		t.Errorf("value did not survive reopen: %q", got)
	}
}
