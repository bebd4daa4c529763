package lrucache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/somohq/somo/core/cache"
)

func Test_store(t *testing.T) {
	s, err := NewStore(10)
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	key := cache.NewKey("faculties", "u1")

	_, ok := s.Get(key)
	assert.False(t, ok)

	s.Set(key, "data")
	entry, ok := s.Get(key)
	assert.True(t, ok)
	assert.Equal(t, "data", entry)

	assert.ElementsMatch(t, []cache.Key{key}, s.Keys())

	s.Remove(key)
	_, ok = s.Get(key)
	assert.False(t, ok)
}

func Test_store_evictsLeastRecentlyUsed(t *testing.T) {
	s, err := NewStore(2)
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}

	k1 := cache.NewKey("a")
	k2 := cache.NewKey("b")
	k3 := cache.NewKey("c")

	s.Set(k1, 1)
	s.Set(k2, 2)
	s.Get(k1) // touch k1 so k2 becomes the eviction candidate
	s.Set(k3, 3)

	_, ok := s.Get(k2)
	assert.False(t, ok)
	_, ok = s.Get(k1)
	assert.True(t, ok)
	_, ok = s.Get(k3)
	assert.True(t, ok)
}

func Test_NewStore_invalidSize(t *testing.T) {
	_, err := NewStore(0)
	assert.Error(t, err)
}
