package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/somohq/somo/core/cache"
	memcache "github.com/somohq/somo/storage/cache/mem"
)

func Test_ReadCache(t *testing.T) {
	key := cache.NewKey("faculties", "u1")

	newStore := func(entry interface{}) cache.Store {
		store := memcache.NewStore()
		store.Set(key, entry)
		return store
	}
	items := []Item{{ID: "f1", Value: "f1", Label: "Polytechnic"}}

	tests := []struct {
		name      string
		store     cache.Store
		key       cache.Key
		transform Transform
		enabled   bool
		want      Result
	}{
		{
			name:    "disabled short-circuits",
			store:   newStore(items),
			key:     key,
			enabled: false,
			want:    Result{Data: []Item{}, IsEmpty: true},
		},
		{
			name:    "nil store",
			key:     key,
			enabled: true,
			want:    Result{Data: []Item{}, IsEmpty: true},
		},
		{
			name:    "empty key",
			store:   newStore(items),
			enabled: true,
			want:    Result{Data: []Item{}, IsEmpty: true},
		},
		{
			name:    "miss",
			store:   memcache.NewStore(),
			key:     key,
			enabled: true,
			want:    Result{Data: []Item{}, IsEmpty: true},
		},
		{
			name:    "hit with items",
			store:   newStore(items),
			key:     key,
			enabled: true,
			want:    Result{Data: items, IsAvailable: true},
		},
		{
			name:    "hit with empty entry",
			store:   newStore([]Item{}),
			key:     key,
			enabled: true,
			want:    Result{Data: []Item{}, IsAvailable: true, IsEmpty: true},
		},
		{
			name:    "non-array entry coerces to empty",
			store:   newStore("not a list"),
			key:     key,
			enabled: true,
			want:    Result{Data: []Item{}, IsAvailable: true, IsEmpty: true},
		},
		{
			name:    "map entries coerce",
			store:   newStore([]map[string]interface{}{{"id": "f1", "name": "Polytechnic"}}),
			key:     key,
			enabled: true,
			want:    Result{Data: items, IsAvailable: true},
		},
		{
			name:      "transform applies",
			store:     newStore([]string{"a", "b"}),
			key:       key,
			enabled:   true,
			transform: func(entry interface{}) []Item { return items },
			want:      Result{Data: items, IsAvailable: true},
		},
		{
			name:      "panicking transform degrades to empty",
			store:     newStore(items),
			key:       key,
			enabled:   true,
			transform: func(entry interface{}) []Item { panic("boom") },
			want:      Result{Data: []Item{}, IsAvailable: true, IsEmpty: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadCache(tt.store, tt.key, tt.transform, tt.enabled))
		})
	}
}

func Test_ReadCache_snapshotIsolation(t *testing.T) {
	key := cache.NewKey("faculties")
	store := memcache.NewStore()
	entry := []Item{{ID: "f1", Value: "f1", Label: "Polytechnic"}}
	store.Set(key, entry)

	res := ReadCache(store, key, nil, true)
	res.Data[0].Label = "mutated"

	again := ReadCache(store, key, nil, true)
	assert.Equal(t, "Polytechnic", again.Data[0].Label)
}

func Test_CoerceItems(t *testing.T) {
	tests := []struct {
		name  string
		entry interface{}
		want  []Item
	}{
		{name: "nil", entry: nil, want: nil},
		{name: "scalar", entry: 42, want: nil},
		{
			name:  "items are copied",
			entry: []Item{{ID: "a", Value: "a", Label: "A"}},
			want:  []Item{{ID: "a", Value: "a", Label: "A"}},
		},
		{
			name:  "value/label maps",
			entry: []interface{}{map[string]interface{}{"value": "a", "label": "A"}},
			want:  []Item{{ID: "a", Value: "a", Label: "A"}},
		},
		{
			name:  "id/name maps",
			entry: []interface{}{map[string]interface{}{"id": "a", "name": "A"}},
			want:  []Item{{ID: "a", Value: "a", Label: "A"}},
		},
		{
			name:  "title label",
			entry: []map[string]interface{}{{"id": "a", "title": "A"}},
			want:  []Item{{ID: "a", Value: "a", Label: "A"}},
		},
		{
			name:  "bare scalars use the element",
			entry: []interface{}{"a"},
			want:  []Item{{ID: "a", Value: "a", Label: "a"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceItems(tt.entry))
		})
	}
}
