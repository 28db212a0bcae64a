package usage

import (
	"context"
	"sync"

	"deep-summarizer/models"
)

// MemoryStore keeps entries for the life of the process.
type MemoryStore struct {
	mu      sync.Mutex
	entries []models.UsageEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Append(_ context.Context, entry models.UsageEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MemoryStore) List(_ context.Context) ([]models.UsageEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.UsageEntry{}, m.entries...), nil
}
