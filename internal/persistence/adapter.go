// Package persistence snapshots each named store into a key-value table so
// the app restarts with the state it shut down with. Writes are best-effort:
// a failed flush is logged and the in-memory state stays authoritative.
package persistence

import (
	"errors"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Store is what the adapter needs from a state container: a stable name, a
// serialized snapshot, and a way back. Seed installs the documented defaults
// when no prior snapshot exists.
type Store interface {
	Name() string
	Snapshot() ([]byte, error)
	Restore(data []byte) error
	Seed()
}

// Flusher is the mutation-side hook; stores call Flush after every mutation.
type Flusher interface {
	Flush(st Store)
}

type StoreSnapshot struct {
	Name      string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

type Adapter struct {
	db *gorm.DB

	mu    sync.Mutex
	dirty map[string]Store
	wake  chan struct{}
	done  chan struct{}
	idle  chan struct{}
}

func NewAdapter(db *gorm.DB) (*Adapter, error) {
	if err := db.AutoMigrate(&StoreSnapshot{}); err != nil {
		return nil, err
	}

	a := &Adapter{
		db:    db,
		dirty: make(map[string]Store),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
		idle:  make(chan struct{}),
	}
	go a.flushLoop()
	return a, nil
}

// Hydrate loads the saved snapshot into st, falling back to Seed when there
// is no snapshot or it cannot be decoded. Must run before the store is read.
func (a *Adapter) Hydrate(st Store) {
	var row StoreSnapshot
	err := a.db.Where("name = ?", st.Name()).First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Hydrate %s: load failed, seeding defaults: %v", st.Name(), err)
		}
		st.Seed()
		return
	}

	if err := st.Restore(row.Data); err != nil {
		log.Printf("Hydrate %s: corrupt snapshot, seeding defaults: %v", st.Name(), err)
		st.Seed()
	}
}

// Flush marks st dirty and wakes the background writer. Back-to-back
// mutations coalesce; the snapshot is taken when the writer gets to it, so
// the persisted state is never older than the last mutation.
func (a *Adapter) Flush(st Store) {
	a.mu.Lock()
	a.dirty[st.Name()] = st
	a.mu.Unlock()

	select {
	case a.wake <- struct{}{}:
	default:
	}
}

func (a *Adapter) flushLoop() {
	defer close(a.idle)
	for {
		select {
		case <-a.done:
			return
		case <-a.wake:
			a.writeDirty()
		}
	}
}

func (a *Adapter) writeDirty() {
	a.mu.Lock()
	pending := a.dirty
	a.dirty = make(map[string]Store)
	a.mu.Unlock()

	for name, st := range pending {
		a.write(name, st)
	}
}

func (a *Adapter) write(name string, st Store) {
	data, err := st.Snapshot()
	if err != nil {
		log.Printf("Flush %s: snapshot failed: %v", name, err)
		return
	}

	row := StoreSnapshot{Name: name, Data: data, UpdatedAt: time.Now()}
	if err := a.db.Save(&row).Error; err != nil {
		log.Printf("Flush %s: write failed: %v", name, err)
	}
}

// Close stops the background writer, waits for any write in flight, then
// synchronously persists anything still dirty. Called from the fx OnStop hook.
func (a *Adapter) Close() {
	close(a.done)
	<-a.idle
	a.writeDirty()
}
