package repository

import (
	"errors"
	"sync"

	"github.com/legaldocgen/legaldocgen/backend/go-services/internal/document"
)

var (
	ErrNotFound = errors.New("document not found")
)

// MemoryRepo holds all documents for the lifetime of the process. There is no
// eviction and no durability; every record vanishes on restart. The map is
// guarded by an RWMutex since gin serves requests from concurrent goroutines,
// and the repo exclusively owns its records: Put stores a copy and Get/List
// hand out copies.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*document.Document
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*document.Document)}
}

// Put inserts or replaces the record under doc.ID.
func (m *MemoryRepo) Put(doc *document.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[doc.ID] = doc.Clone()
	return nil
}

func (m *MemoryRepo) Get(id string) (*document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.store[id]; ok {
		return d.Clone(), nil
	}
	return nil, ErrNotFound
}

// List returns all records in map iteration order.
func (m *MemoryRepo) List() ([]*document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*document.Document, 0, len(m.store))
	for _, d := range m.store {
		out = append(out, d.Clone())
	}
	return out, nil
}

func (m *MemoryRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
