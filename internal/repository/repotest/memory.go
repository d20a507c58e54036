// Package repotest provides an in-memory repository.Repository for handler
// and router tests.
package repotest

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/chachabrian/covoiturage-backend/internal/repository"
)

// ErrStoreDown is what Memory returns once Fail is set.
var ErrStoreDown = errors.New("store unavailable")

// Memory keeps rows in a map keyed by id. SetID tells it how to stamp ids on T.
type Memory[T any] struct {
	mu     sync.Mutex
	rows   map[uint]T
	nextID uint
	setID  func(*T, uint)

	// Fail makes every call return ErrStoreDown without touching the rows.
	Fail bool
	// Calls counts every call, failed ones included.
	Calls int
}

// NewMemory returns an empty store.
func NewMemory[T any](setID func(*T, uint)) *Memory[T] {
	return &Memory[T]{rows: make(map[uint]T), setID: setID}
}

var _ repository.Repository[struct{}] = (*Memory[struct{}])(nil)

func (m *Memory[T]) enter() error {
	m.Calls++
	if m.Fail {
		return ErrStoreDown
	}
	return nil
}

// Create implements repository.Repository.
func (m *Memory[T]) Create(_ context.Context, entity *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return err
	}

	m.nextID++
	m.setID(entity, m.nextID)
	m.rows[m.nextID] = *entity
	return nil
}

// FindAll implements repository.Repository. Rows come back in id order.
func (m *Memory[T]) FindAll(_ context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.rows[id])
	}
	return out, nil
}

// Update implements repository.Repository.
func (m *Memory[T]) Update(_ context.Context, id uint, entity *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return err
	}

	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	m.setID(entity, id)
	m.rows[id] = *entity
	return nil
}

// Delete implements repository.Repository.
func (m *Memory[T]) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return err
	}

	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// Len returns the number of stored rows.
func (m *Memory[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}
