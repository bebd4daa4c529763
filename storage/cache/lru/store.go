// Package lrucache provides a size-bounded cache.Store backed by an LRU.
package lrucache

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/somohq/somo/core/cache"
)

type record struct {
	key  cache.Key
	data interface{}
}

type store struct {
	backing *lru.Cache
}

func NewStore(size int) (cache.Store, error) {
	backing, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &store{backing: backing}, nil
}

func (s *store) Get(key cache.Key) (interface{}, bool) {
	v, ok := s.backing.Get(key.String())
	if !ok {
		return nil, false
	}
	return v.(record).data, true
}

func (s *store) Set(key cache.Key, data interface{}) {
	s.backing.Add(key.String(), record{key: key, data: data})
}

func (s *store) Remove(key cache.Key) {
	s.backing.Remove(key.String())
}

func (s *store) Keys() []cache.Key {
	raw := s.backing.Keys()
	keys := make([]cache.Key, 0, len(raw))
	for _, k := range raw {
		if v, ok := s.backing.Peek(k); ok {
			keys = append(keys, v.(record).key)
		}
	}
	return keys
}

func (s *store) Clear() {
	s.backing.Purge()
}
