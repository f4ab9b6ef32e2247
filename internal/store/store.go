// Package store defines the key-value blob storage the library snapshot is
// persisted to, plus an in-memory implementation.
package store

import "sync"

// Store is a string key-value blob store.
//
// Get reports ok=false for a key that was never written. Set overwrites any
// prior value. Implementations provide no transactional discipline beyond a
// single whole-value write.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Memory is a map-backed Store. The zero value is ready to use.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory { return &Memory{} }

func (s *Memory) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[string]string)
	}
	s.m[key] = value
	return nil
}
