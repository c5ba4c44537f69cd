package store

import (
	"context"
	"sync"
)

// KV is the external persistence collaborator: a whole-document key-value
// collection. Get reports absence via the second return value; Set and Delete
// replace or erase entire documents. There are no partial-write semantics.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// MemKV implements KV in process memory. Useful for tests and for running the
// service without any durable backend.
type MemKV struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemKV creates an empty in-memory collection.
func NewMemKV() *MemKV {
	return &MemKV{docs: make(map[string][]byte)}
}

func (m *MemKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, true, nil
}

func (m *MemKV) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := make([]byte, len(value))
	copy(doc, value)
	m.docs[key] = doc
	return nil
}

func (m *MemKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, key)
	return nil
}
