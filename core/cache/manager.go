package cache

import (
	"context"
	"fmt"

	"github.com/somohq/somo/core"
)

// Fetcher loads the data for one cache entry from its upstream source.
type Fetcher func(ctx context.Context) (interface{}, error)

// Manager provides invalidate/set/prefetch/snapshot helpers over a Store.
// It never propagates upstream failures: a failed prefetch is logged and
// surfaced as nil, which callers must treat as "not available".
type Manager struct {
	store Store
	log   core.Logger
}

func NewManager(store Store, log core.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Store exposes the underlying store for read paths (filter.ReadCache et al.).
func (m *Manager) Store() Store { return m.store }

func (m *Manager) Set(key Key, data interface{}) {
	m.store.Set(key, data)
}

// Remove deletes one exact key.
func (m *Manager) Remove(key Key) {
	m.store.Remove(key)
}

// Invalidate deletes the key and every key it prefixes, so invalidating a
// parent list key also drops the child entries fanned out from it.
func (m *Manager) Invalidate(key Key) {
	for _, k := range m.store.Keys() {
		if k.HasPrefix(key) {
			m.store.Remove(k)
		}
	}
}

// Snapshot returns a copy of the entry so callers can render from it without
// observing later cache writes. Only the slice shapes the resolvers produce
// are copied; other payloads are returned as-is.
func (m *Manager) Snapshot(key Key) (interface{}, bool) {
	entry, ok := m.store.Get(key)
	if !ok {
		return nil, false
	}
	return copyEntry(entry), true
}

func (m *Manager) Keys() []Key {
	return m.store.Keys()
}

func (m *Manager) Clear() {
	m.store.Clear()
}

// Prefetch returns the cached entry for key, fetching and storing it on a
// miss. Fetcher failures are swallowed: they are logged and nil is returned.
func (m *Manager) Prefetch(ctx context.Context, key Key, fetch Fetcher) interface{} {
	if entry, ok := m.store.Get(key); ok {
		return entry
	}
	data, err := fetch(ctx)
	if err != nil {
		if m.log != nil {
			m.log.Warn(fmt.Sprintf("cache: prefetch %q failed: %v", key, err), err)
		}
		return nil
	}
	m.store.Set(key, data)
	return data
}

func copyEntry(entry interface{}) interface{} {
	switch e := entry.(type) {
	case []interface{}:
		out := make([]interface{}, len(e))
		copy(out, e)
		return out
	case []map[string]interface{}:
		out := make([]map[string]interface{}, len(e))
		copy(out, e)
		return out
	default:
		return entry
	}
}
