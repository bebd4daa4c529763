package filter

import (
	"github.com/kat-co/vala"
	"github.com/pkg/errors"

	"github.com/somohq/somo/core/cache"
)

// FieldState is the settling state of one cascading field.
type FieldState string

const (
	// StateDisabled: the field is switched off or its parent has no value.
	StateDisabled FieldState = "disabled"
	// StatePending: the cache key resolved but the entry is not written yet.
	StatePending FieldState = "pending"
	// StateReady: cache hit with data.
	StateReady FieldState = "ready"
	// StateReadyEmpty: cache hit, data empty.
	StateReadyEmpty FieldState = "ready-empty"
)

type (
	// KeyBuilder derives a field's effective cache key from the current raw
	// value of its parent field.
	KeyBuilder func(parentValue interface{}) cache.Key

	// GlobalTransform shapes raw cache entries for any field of a cascade
	// config; it receives the field name and decides per field.
	GlobalTransform func(entry interface{}, field string) []Item

	// CascadingField declares how one filter field sources its dropdown data
	// from the cache. A field with a ParentField must supply BuildKey; a field
	// without one must supply a static Key.
	CascadingField struct {
		Name        string
		ParentField string
		Key         cache.Key
		BuildKey    KeyBuilder
		Transform   Transform
		Disabled    bool
	}

	// CascadeConfig is the full cascading-field configuration of one filter
	// screen. When a global Transform is set it is used for every field and
	// field-scoped transforms are ignored; only one transform runs per read.
	CascadeConfig struct {
		Fields    []CascadingField
		Transform GlobalTransform
		Disabled  bool
	}

	// FieldResult is the resolved cache state of one cascading field.
	FieldResult struct {
		Result
		// FriendlyName is the display label of the field's current raw value
		// against the resolved data ("All" while the field is not ready).
		FriendlyName string     `json:"friendly_name"`
		State        FieldState `json:"state"`
	}

	// CascadeResult maps field names to their resolved state.
	CascadeResult struct {
		Fields map[string]FieldResult `json:"fields"`
		// AnyLoading is true while at least one field is pending: enabled,
		// parent satisfied, key resolved, entry not yet in the cache.
		AnyLoading bool `json:"any_loading"`
	}
)

// Field returns the resolved state for one field name.
func (r CascadeResult) Field(name string) (FieldResult, bool) {
	fr, ok := r.Fields[name]
	return fr, ok
}

// Validate checks the data-model invariants of the config: non-empty field
// names, key-builder presence wherever a parent is declared, a static key
// everywhere else, and an acyclic parent graph. Resolution itself never
// errors; call Validate once when assembling a screen's configuration.
func (c CascadeConfig) Validate() error {
	byName := make(map[string]*CascadingField, len(c.Fields))
	for i := range c.Fields {
		f := &c.Fields[i]
		if err := vala.BeginValidation().Validate(
			vala.StringNotEmpty(f.Name, "Name"),
		).Check(); err != nil {
			return errors.Wrap(err, "cascade config")
		}
		if _, dup := byName[f.Name]; dup {
			return errors.Errorf("cascade config: duplicate field %q", f.Name)
		}
		byName[f.Name] = f

		if f.ParentField != "" && f.BuildKey == nil {
			return errors.Errorf("cascade config: field %q declares a parent but no key builder", f.Name)
		}
		if f.ParentField == "" && len(f.Key) == 0 && f.BuildKey == nil {
			return errors.Errorf("cascade config: field %q has neither a cache key nor a parent", f.Name)
		}
	}

	// a field may not (transitively) depend on itself
	for name := range byName {
		seen := map[string]bool{name: true}
		cur := byName[name]
		for cur.ParentField != "" {
			next, ok := byName[cur.ParentField]
			if !ok {
				break // parent is a plain model field, not a cascading one
			}
			if seen[next.Name] {
				return errors.Errorf("cascade config: field %q is part of a dependency cycle", name)
			}
			seen[next.Name] = true
			cur = next
		}
	}
	return nil
}

// ResolveCascade resolves every configured field against the current model
// values. Each field resolves independently, from the raw value of its parent
// rather than the parent's resolved state.
func ResolveCascade(store cache.Store, model Model, cfg CascadeConfig) CascadeResult {
	out := CascadeResult{Fields: make(map[string]FieldResult, len(cfg.Fields))}
	for i := range cfg.Fields {
		fr := resolveCascadingField(store, model, cfg, &cfg.Fields[i])
		out.Fields[cfg.Fields[i].Name] = fr
		if fr.State == StatePending {
			out.AnyLoading = true
		}
	}
	return out
}

func resolveCascadingField(store cache.Store, model Model, cfg CascadeConfig, f *CascadingField) FieldResult {
	if cfg.Disabled || f.Disabled {
		return inertField()
	}

	key := f.Key
	if f.ParentField != "" {
		parentValue := model[f.ParentField]
		// absent parent value is "not ready", never "show all"
		if IsUnset(parentValue) {
			return inertField()
		}
		if f.BuildKey == nil {
			return inertField()
		}
		key = safeBuildKey(f.BuildKey, parentValue)
	}
	if len(key) == 0 {
		return inertField()
	}

	var transform Transform
	if cfg.Transform != nil {
		name := f.Name
		transform = func(entry interface{}) []Item { return cfg.Transform(entry, name) }
	} else {
		transform = f.Transform
	}

	res := ReadCache(store, key, transform, true)
	state := StatePending
	if res.IsAvailable {
		if res.IsEmpty {
			state = StateReadyEmpty
		} else {
			state = StateReady
		}
	}

	friendly := AllLabel
	if res.IsAvailable {
		friendly = Resolve(model[f.Name], &Descriptor{Type: TypeDropdown, Data: res.Data}, "")
	}

	return FieldResult{Result: res, FriendlyName: friendly, State: state}
}

func inertField() FieldResult {
	return FieldResult{Result: unavailable(), FriendlyName: AllLabel, State: StateDisabled}
}

func safeBuildKey(build KeyBuilder, parentValue interface{}) (key cache.Key) {
	defer func() {
		if recover() != nil {
			key = nil
		}
	}()
	return build(parentValue)
}

// CascadeResets computes, from an old and a new model, the names of fields
// whose parent changed (directly or through an ancestor) and which must
// therefore be cleared. This replaces previous-value tracking across renders
// with one pure transition.
func CascadeResets(old, updated Model, fields []CascadingField) []string {
	byName := make(map[string]*CascadingField, len(fields))
	for i := range fields {
		byName[fields[i].Name] = &fields[i]
	}

	memo := make(map[string]bool, len(fields))
	var dirty func(name string, seen map[string]bool) bool
	dirty = func(name string, seen map[string]bool) bool {
		if v, ok := memo[name]; ok {
			return v
		}
		f, ok := byName[name]
		if !ok || f.ParentField == "" || seen[name] {
			memo[name] = false
			return false
		}
		seen[name] = true
		changed := Stringify(old[f.ParentField]) != Stringify(updated[f.ParentField]) ||
			dirty(f.ParentField, seen)
		memo[name] = changed
		return changed
	}

	var names []string
	for i := range fields {
		if dirty(fields[i].Name, map[string]bool{}) {
			names = append(names, fields[i].Name)
		}
	}
	return names
}

// ApplyCascadeResets returns a copy of the updated model with every field
// whose parent changed reset to nil.
func ApplyCascadeResets(old, updated Model, fields []CascadingField) Model {
	out := make(Model, len(updated))
	for k, v := range updated {
		out[k] = v
	}
	for _, name := range CascadeResets(old, updated, fields) {
		out[name] = nil
	}
	return out
}
