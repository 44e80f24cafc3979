package persistence

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeStore struct {
	name string

	mu     sync.Mutex
	values []string
	seeded bool
}

func (f *fakeStore) Name() string { return f.name }

func (f *fakeStore) Snapshot() ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return json.Marshal(f.values)
}

func (f *fakeStore) Restore(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return json.Unmarshal(data, &f.values)
}

func (f *fakeStore) Seed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seeded = true
	f.values = []string{"default"}
}

func (f *fakeStore) set(values ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = values
}

func (f *fakeStore) snapshotState() ([]string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.values...), f.seeded
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adapter_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestHydrateSeedsWhenNoSnapshotExists(t *testing.T) {
	adapter, err := NewAdapter(openTestDB(t))
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}
	defer adapter.Close()

	st := &fakeStore{name: "fresh"}
	adapter.Hydrate(st)

	if _, seeded := st.snapshotState(); !seeded {
		t.Fatal("expected Seed on missing snapshot")
	}
}

func TestFlushThenHydrateRoundTrip(t *testing.T) {
	db := openTestDB(t)

	adapter, err := NewAdapter(db)
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}

	st := &fakeStore{name: "trip"}
	st.set("a", "b")
	adapter.Flush(st)
	// Close drains anything the background writer has not reached yet.
	adapter.Close()

	reopened, err := NewAdapter(db)
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}
	defer reopened.Close()

	loaded := &fakeStore{name: "trip"}
	reopened.Hydrate(loaded)

	values, seeded := loaded.snapshotState()
	if seeded {
		t.Fatal("should restore, not seed")
	}
	if len(values) != 2 || values[0] != "a" || values[1] != "b" {
		t.Fatalf("restored values = %v", values)
	}
}

func TestCoalescedFlushesPersistLatestState(t *testing.T) {
	db := openTestDB(t)

	adapter, err := NewAdapter(db)
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}

	st := &fakeStore{name: "latest"}
	st.set("v1")
	adapter.Flush(st)
	st.set("v2")
	adapter.Flush(st)
	st.set("v3")
	adapter.Flush(st)
	adapter.Close()

	reopened, err := NewAdapter(db)
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}
	defer reopened.Close()

	loaded := &fakeStore{name: "latest"}
	reopened.Hydrate(loaded)

	values, _ := loaded.snapshotState()
	if len(values) != 1 || values[0] != "v3" {
		t.Fatalf("restored values = %v, want the final snapshot", values)
	}
}

func TestHydrateCorruptSnapshotFallsBackToSeed(t *testing.T) {
	db := openTestDB(t)

	adapter, err := NewAdapter(db)
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}
	defer adapter.Close()

	row := StoreSnapshot{Name: "corrupt", Data: []byte("{not json")}
	if err := db.Save(&row).Error; err != nil {
		t.Fatalf("save corrupt row: %v", err)
	}

	st := &fakeStore{name: "corrupt"}
	adapter.Hydrate(st)

	values, seeded := st.snapshotState()
	if !seeded {
		t.Fatal("expected Seed on corrupt snapshot")
	}
	if len(values) != 1 || values[0] != "default" {
		t.Fatalf("values = %v, want seeded defaults", values)
	}
}

type failingStore struct {
	fakeStore
}

func (f *failingStore) Snapshot() ([]byte, error) {
	return nil, errors.New("boom")
}

func TestFlushFailureIsNotFatal(t *testing.T) {
	adapter, err := NewAdapter(openTestDB(t))
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}

	st := &failingStore{fakeStore: fakeStore{name: "broken"}}
	adapter.Flush(st)
	// Close must return despite the snapshot error.
	adapter.Close()
}
