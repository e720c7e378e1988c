// Package repository wraps each persisted collection in a Collection that serializes its
// read-modify-write cycle.
//
// Operations that touch several collections nest their locks in one fixed order:
//
//	users -> teams -> memberships -> boards -> tasks
//
// A goroutine never takes the same collection lock twice.
package repository

import (
	"errors"
	"fmt"
	"sync"

	"team-board-backend/internal/storage"
)

var (
	// ErrRecordNotFound is returned when a lookup by id matches no record
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a write would break a uniqueness rule
	ErrDuplicateKey = errors.New("duplicate key")
)

// Collection is one named record collection in a store, guarded by its own lock.
// Every call reloads the collection; nothing is cached between calls.
type Collection[T any] struct {
	name  string
	store storage.Store
	mu    sync.RWMutex
}

// NewCollection creates a collection over the named store collection
func NewCollection[T any](store storage.Store, name string) *Collection[T] {
	return &Collection[T]{name: name, store: store}
}

// Name returns the store collection name
func (c *Collection[T]) Name() string {
	return c.name
}

// View loads the collection under the read lock and passes it to fn
func (c *Collection[T]) View(fn func(records []T) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records, err := c.load()
	if err != nil {
		return err
	}
	return fn(records)
}

// Update loads the collection under the write lock, passes it to fn and saves what fn
// returns. Nothing is saved when fn fails.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	if err := c.store.Save(c.name, updated); err != nil {
		return fmt.Errorf("save %s: %w", c.name, err)
	}
	return nil
}

func (c *Collection[T]) load() ([]T, error) {
	var records []T
	if err := c.store.Load(c.name, &records); err != nil {
		return nil, fmt.Errorf("load %s: %w", c.name, err)
	}
	return records, nil
}
