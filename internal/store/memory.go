package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/onboarding-wizard/internal/types"
)

// MemoryStore keeps submissions in process memory. Entries survive until the
// process exits or Reset is called.
type MemoryStore struct {
	mu      sync.Mutex
	entries []*Entry
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save appends a submission and assigns it an id and timestamp.
func (m *MemoryStore) Save(_ context.Context, fields map[string]string, file *types.FileRef) (*Entry, error) {
	entry := &Entry{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Fields:    fields,
		File:      file,
	}
	m.mu.Lock()
	m.entries = append(m.entries, entry)
	m.mu.Unlock()
	return entry, nil
}

// List returns all submissions in insertion order.
func (m *MemoryStore) List(_ context.Context) ([]*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Entry(nil), m.entries...), nil
}

// Reset discards all stored submissions.
func (m *MemoryStore) Reset() {
	m.mu.Lock()
	m.entries = nil
	m.mu.Unlock()
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() {}
