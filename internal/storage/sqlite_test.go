package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/boxarcade/internal/core"
	"github.com/vovakirdan/boxarcade/internal/replay"
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

func sampleRecording() replay.Recording {
	return replay.Recording{
		GameID: "platformer",
		Seed:   42,
		Ticks:  90,
		Events: []replay.Event{
			{Tick: 0, Key: core.KeyD, Down: true},
			{Tick: 21, Key: core.KeyW, Down: true},
			{Tick: 33, Key: core.KeyW, Down: false},
			{Tick: 33, Key: core.KeyUpperA, Down: true},
			{Tick: 80, Key: core.KeyD, Down: false},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	rec := sampleRecording()
	id, err := store.SaveReplay(ctx, rec)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.LoadReplay(ctx, id)
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("LoadReplay() = %+v, expected %+v", got, rec)
	}
}

func TestStoreLoadWithoutEvents(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	id, err := store.SaveReplay(ctx, replay.Recording{GameID: "pong", Seed: -7, Ticks: 12})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	got, err := store.LoadReplay(ctx, id)
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}
	if got.GameID != "pong" || got.Seed != -7 || got.Ticks != 12 || len(got.Events) != 0 {
		t.Errorf("LoadReplay() = %+v", got)
	}
}

func TestStoreNotFound(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	if _, err := store.LoadReplay(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadReplay(missing) error = %v, expected ErrNotFound", err)
	}
	if err := store.DeleteReplay(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteReplay(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestStoreListReplays(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	var ids []int64
	for _, game := range []string{"platformer", "pong", "platformer"} {
		rec := sampleRecording()
		rec.GameID = game
		id, err := store.SaveReplay(ctx, rec)
		if err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
		ids = append(ids, id)
	}

	all, err := store.ListReplays(ctx, "", 10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 replays, got %d", len(all))
	}
	// Newest first
	if all[0].ID != ids[2] || all[2].ID != ids[0] {
		t.Errorf("order = %d,%d,%d", all[0].ID, all[1].ID, all[2].ID)
	}
	if all[0].Events != 5 || all[0].Ticks != 90 || all[0].Seed != 42 {
		t.Errorf("entry = %+v", all[0])
	}
	if all[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	plat, err := store.ListReplays(ctx, "platformer", 10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(plat) != 2 {
		t.Errorf("Expected 2 platformer replays, got %d", len(plat))
	}

	limited, err := store.ListReplays(ctx, "", 1)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 replay with limit, got %d", len(limited))
	}
}

func TestStoreDeleteReplay(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	id, err := store.SaveReplay(ctx, sampleRecording())
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if err := store.DeleteReplay(ctx, id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, err := store.LoadReplay(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadReplay(deleted) error = %v, expected ErrNotFound", err)
	}

	var n int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM replay_events").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("%d orphaned events left", n)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store1.SaveReplay(ctx, sampleRecording())
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	got, err := store2.LoadReplay(ctx, id)
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}
	if len(got.Events) != 5 {
		t.Errorf("Expected 5 events after reopen, got %d", len(got.Events))
	}
}
