package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store for tests and ephemeral runs.
type Memory struct {
	mu   sync.Mutex
	blob []byte
	set  bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(ctx context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, false, nil
	}
	blob := make([]byte, len(m.blob))
	copy(blob, m.blob)
	return blob, true, nil
}

func (m *Memory) Set(ctx context.Context, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = make([]byte, len(blob))
	copy(m.blob, blob)
	m.set = true
	return nil
}
