package filter

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// FriendlyValue is the human-readable projection of one raw filter field,
// for chip/summary display.
type FriendlyValue struct {
	Label string      `json:"label"`
	Value interface{} `json:"value"`
}

// Record holds one FriendlyValue per filter-model field. Its key set is
// always exactly the model's key set.
type Record map[string]FriendlyValue

// BuildFriendly produces the friendly record for a filter model. It iterates
// the model's own key set: fields with no configured resolver still get a
// default label, and resolver entries for absent fields are ignored. When a
// field has available cascading data, a transient dropdown descriptor is
// synthesized over a snapshot copy of that data and merged under any explicit
// resolver for the field.
func BuildFriendly(model Model, resolvers map[string]*Descriptor, cascade *CascadeResult, dateFormat string) Record {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}

	rec := make(Record, len(model))
	for name, raw := range model {
		desc := resolvers[name]
		if cascade != nil {
			if fr, ok := cascade.Fields[name]; ok && fr.IsAvailable {
				desc = mergeCascadeDescriptor(desc, fr)
			}
		}
		rec[name] = FriendlyValue{Label: Resolve(raw, desc, dateFormat), Value: raw}
	}
	return rec
}

// mergeCascadeDescriptor layers an explicit resolver over the transient
// dropdown synthesized from cascading data. The snapshot copy guarantees
// stable rendering even if the cache mutates later.
func mergeCascadeDescriptor(explicit *Descriptor, fr FieldResult) *Descriptor {
	desc := Descriptor{Type: TypeDropdown}
	if explicit != nil {
		desc = *explicit
		if desc.Type == "" {
			desc.Type = TypeDropdown
		}
	}
	if len(desc.Data) == 0 {
		snapshot := make([]Item, len(fr.Data))
		copy(snapshot, fr.Data)
		desc.Data = snapshot
	}
	return &desc
}

// Primitives flattens the record's label/value pairs into a flat list,
// ordered by field name, suitable as a change-detection dependency list.
func (r Record) Primitives() []interface{} {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]interface{}, 0, 2*len(r))
	for _, name := range names {
		out = append(out, r[name].Label, r[name].Value)
	}
	return out
}

// Builder memoizes friendly-record construction: as long as the semantic
// fingerprint of (model, resolver output, cascade snapshot, date format) is
// unchanged it keeps returning the identical Record, so a consumer keying a
// side effect off the record (or its Primitives) runs it exactly once per
// semantic change.
type Builder struct {
	mu          sync.Mutex
	fingerprint string
	record      Record
}

func (b *Builder) Build(model Model, resolvers map[string]*Descriptor, cascade *CascadeResult, dateFormat string) Record {
	rec := BuildFriendly(model, resolvers, cascade, dateFormat)
	fp := fingerprint(rec, dateFormat)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.record != nil && fp == b.fingerprint {
		return b.record
	}
	b.fingerprint = fp
	b.record = rec
	return rec
}

func fingerprint(rec Record, dateFormat string) string {
	names := make([]string, 0, len(rec))
	for name := range rec {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, 3*len(rec)+1)
	parts = append(parts, dateFormat)
	for _, name := range names {
		parts = append(parts, name, rec[name].Label, fmt.Sprintf("%v", rec[name].Value))
	}
	return strings.Join(parts, "\x1f")
}
