// Package memcache provides the unbounded in-memory cache.Store.
package memcache

import (
	"sync"

	"github.com/somohq/somo/core/cache"
)

type entry struct {
	key  cache.Key
	data interface{}
}

type store struct {
	mu    sync.RWMutex
	table map[string]entry
}

func NewStore() cache.Store {
	return &store{table: make(map[string]entry)}
}

func (s *store) Get(key cache.Key) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.table[key.String()]
	if !ok {
		return nil, false
	}
	return e.data, true
}

func (s *store) Set(key cache.Key, data interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table[key.String()] = entry{key: key, data: data}
}

func (s *store) Remove(key cache.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.table, key.String())
}

func (s *store) Keys() []cache.Key {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]cache.Key, 0, len(s.table))
	for _, e := range s.table {
		keys = append(keys, e.key)
	}
	return keys
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = make(map[string]entry)
}
