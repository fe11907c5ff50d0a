// Package memory provides a deterministic in-process storage driver.
//
// IDs are assigned sequentially per entity starting at 1, mirroring an
// auto-increment column. The driver is safe for concurrent use. It backs tests
// and the "memory" database driver setting.
package memory

import (
	"sync"

	"github.com/mrlokans/studygroups/internal/entities"
	"github.com/mrlokans/studygroups/internal/storage"
)

type table[T any] struct {
	rows   map[uint]T
	nextID uint
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uint]T), nextID: 1}
}

func (t *table[T]) insert(build func(id uint) T) T {
	row := build(t.nextID)
	t.rows[t.nextID] = row
	t.nextID++
	return row
}

// Driver keeps every entity in maps guarded by a single mutex.
type Driver struct {
	mu     sync.Mutex
	broken error

	users      *table[entities.User]
	groups     *table[entities.StudyGroup]
	decks      *table[entities.Deck]
	flashcards *table[entities.Flashcard]
}

var _ storage.Driver = (*Driver)(nil)

func NewDriver() *Driver {
	return &Driver{
		users:      newTable[entities.User](),
		groups:     newTable[entities.StudyGroup](),
		decks:      newTable[entities.Deck](),
		flashcards: newTable[entities.Flashcard](),
	}
}

// Break makes every subsequent operation fail with cause until Restore is called.
func (d *Driver) Break(cause error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.broken = cause
}

// Restore undoes Break.
func (d *Driver) Restore() {
	d.Break(nil)
}

func (d *Driver) Setup() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.broken != nil {
		return storage.Connection(d.broken, "Failed to connect to in-memory store - %v", d.broken)
	}
	return nil
}

// Ping reports the cause passed to Break, if any.
func (d *Driver) Ping() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.broken
}

// get, create, remove and update implement the driver contract once for all tables.

func get[T any](d *Driver, t *table[T], kind string, id uint) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	if d.broken != nil {
		return zero, storage.Internal(d.broken, "Failed to get %s with ID %d - %v", kind, id, d.broken)
	}
	row, ok := t.rows[id]
	if !ok {
		return zero, storage.NotFound("Could not find %s with ID %d", kind, id)
	}
	return row, nil
}

func create[T any](d *Driver, t *table[T], kind string, build func(id uint) T) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.broken != nil {
		var zero T
		return zero, storage.Internal(d.broken, "Failed to create %s - %v", kind, d.broken)
	}
	return t.insert(build), nil
}

func remove[T any](d *Driver, t *table[T], kind string, id uint) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.broken != nil {
		return storage.Internal(d.broken, "Failed to get %s with ID %d - %v", kind, id, d.broken)
	}
	if _, ok := t.rows[id]; !ok {
		return storage.NotFound("Could not find %s with ID %d", kind, id)
	}
	delete(t.rows, id)
	return nil
}

func update[T any](d *Driver, t *table[T], kind string, id uint, apply func(stored T) T) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	if d.broken != nil {
		return zero, storage.Internal(d.broken, "Failed to get %s with ID %d - %v", kind, id, d.broken)
	}
	stored, ok := t.rows[id]
	if !ok {
		return zero, storage.NotFound("Could not find %s with ID %d", kind, id)
	}
	updated := apply(stored)
	t.rows[id] = updated
	return updated, nil
}
