package state

import (
	"bytes"
	"context"
	"sync"
)

// MemoryStore keeps the encoded state in memory. Snapshots still go through
// Encode/Decode so it behaves like the durable stores.
type MemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Save(_ context.Context, snap Snapshot) error {
	var buf bytes.Buffer
	if err := Encode(&buf, snap); err != nil {
		return err
	}
	s.mu.Lock()
	s.data = buf.Bytes()
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return Snapshot{}, ErrNoState
	}
	return Decode(bytes.NewReader(s.data))
}

// Raw returns the encoded state as last saved.
func (s *MemoryStore) Raw() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.data)
}
