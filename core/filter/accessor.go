package filter

import "github.com/somohq/somo/core/cache"

// Result is the outcome of one cache read.
// IsAvailable=false means the entry has not been written yet (a normal "not
// yet available" state, not an error); IsEmpty reports whether the resolved
// data holds no items.
type Result struct {
	Data        []Item `json:"data"`
	IsAvailable bool   `json:"is_available"`
	IsEmpty     bool   `json:"is_empty"`
}

// Transform shapes a raw cache entry into dropdown items.
type Transform func(entry interface{}) []Item

func unavailable() Result {
	return Result{Data: []Item{}, IsEmpty: true}
}

// ReadCache reads one entry out of the store. With enabled=false it
// short-circuits to the miss result without touching the store. A missing
// transform triggers best-effort coercion; a panicking transform or a
// non-array entry degrades to an empty result.
func ReadCache(store cache.Store, key cache.Key, transform Transform, enabled bool) Result {
	if !enabled || store == nil || len(key) == 0 {
		return unavailable()
	}

	entry, ok := store.Get(key)
	if !ok {
		return unavailable()
	}

	var items []Item
	if transform != nil {
		items = safeTransform(transform, entry)
	} else {
		items = CoerceItems(entry)
	}
	if items == nil {
		items = []Item{}
	}
	return Result{Data: items, IsAvailable: true, IsEmpty: len(items) == 0}
}

func safeTransform(transform Transform, entry interface{}) (items []Item) {
	defer func() {
		if recover() != nil {
			items = nil
		}
	}()
	return transform(entry)
}

// CoerceItems derives a uniform item shape from an untyped cache entry:
// Value from Value|value|id (falling back to the element itself) and Label
// from Label|label|name|title. Non-array entries coerce to nil.
func CoerceItems(entry interface{}) []Item {
	switch e := entry.(type) {
	case []Item:
		out := make([]Item, len(e))
		copy(out, e)
		return out
	case []interface{}:
		out := make([]Item, 0, len(e))
		for _, el := range e {
			out = append(out, coerceItem(el))
		}
		return out
	case []map[string]interface{}:
		out := make([]Item, 0, len(e))
		for _, el := range e {
			out = append(out, coerceItem(el))
		}
		return out
	default:
		return nil
	}
}

func coerceItem(el interface{}) Item {
	if item, ok := el.(Item); ok {
		if item.ID == "" {
			item.ID = Stringify(item.Value)
		}
		return item
	}
	if m, ok := el.(map[string]interface{}); ok {
		value := firstPresent(m, "Value", "value", "id")
		if value == nil {
			value = el
		}
		var label string
		if l := firstPresent(m, "Label", "label", "name", "title"); l != nil {
			label = Stringify(l)
		} else {
			label = Stringify(el)
		}
		return Item{ID: Stringify(value), Value: value, Label: label}
	}
	return Item{ID: Stringify(el), Value: el, Label: Stringify(el)}
}

func firstPresent(m map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
