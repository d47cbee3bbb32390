// internal/infrastructure/storage/memory/memory.go
package memory

import (
	"context"
	"sync"

	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/cart"
)

// Store is an in-memory implementation of the cart storage port. It is used
// in tests and when the service runs without a Redis instance; state does
// not survive a restart.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

// Get retrieves a value by key. Missing keys report cart.ErrKeyNotFound.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.values[key]
	if !ok {
		return "", cart.ErrKeyNotFound
	}
	return val, nil
}

// Set stores a key-value pair.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Del deletes the given keys. Deleting a missing key is not an error.
func (s *Store) Del(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}
