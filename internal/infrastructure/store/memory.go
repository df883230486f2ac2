package store

import (
	"context"
	"sync"
)

var _ BlobStore = (*MemoryStore)(nil)

// MemoryStore blob store en memoria, para tests y demos sin persistencia.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore construye el store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Load devuelve el blob del kind o (nil, nil) si no existe.
func (s *MemoryStore) Load(_ context.Context, kind string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[kind]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save reemplaza el blob completo del kind.
func (s *MemoryStore) Save(_ context.Context, kind string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.blobs[kind] = cp
	return nil
}

// Delete elimina el blob del kind.
func (s *MemoryStore) Delete(_ context.Context, kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, kind)
	return nil
}
