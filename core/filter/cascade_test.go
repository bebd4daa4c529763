package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/somohq/somo/core/cache"
	memcache "github.com/somohq/somo/storage/cache/mem"
)

var (
	keyUniversities = cache.NewKey("universities")
	keyFaculties    = cache.NewKey("faculties")

	facultyKeyBuilder = func(parentValue interface{}) cache.Key {
		return keyFaculties.Append(Stringify(parentValue))
	}
)

func consoleCascade() CascadeConfig {
	return CascadeConfig{
		Fields: []CascadingField{
			{Name: "university_id", Key: keyUniversities},
			{Name: "faculty_id", ParentField: "university_id", BuildKey: facultyKeyBuilder},
		},
	}
}

func Test_CascadeConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     CascadeConfig
		wantErr string
	}{
		{name: "valid", cfg: consoleCascade()},
		{
			name:    "empty field name",
			cfg:     CascadeConfig{Fields: []CascadingField{{Key: keyUniversities}}},
			wantErr: "cascade config",
		},
		{
			name: "duplicate field",
			cfg: CascadeConfig{Fields: []CascadingField{
				{Name: "a", Key: keyUniversities},
				{Name: "a", Key: keyUniversities},
			}},
			wantErr: "duplicate field",
		},
		{
			name: "parent without key builder",
			cfg: CascadeConfig{Fields: []CascadingField{
				{Name: "faculty_id", ParentField: "university_id"},
			}},
			wantErr: "no key builder",
		},
		{
			name: "no key and no parent",
			cfg: CascadeConfig{Fields: []CascadingField{
				{Name: "university_id"},
			}},
			wantErr: "neither a cache key nor a parent",
		},
		{
			name: "self cycle",
			cfg: CascadeConfig{Fields: []CascadingField{
				{Name: "a", ParentField: "a", BuildKey: facultyKeyBuilder},
			}},
			wantErr: "cycle",
		},
		{
			name: "transitive cycle",
			cfg: CascadeConfig{Fields: []CascadingField{
				{Name: "a", ParentField: "b", BuildKey: facultyKeyBuilder},
				{Name: "b", ParentField: "a", BuildKey: facultyKeyBuilder},
			}},
			wantErr: "cycle",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func Test_ResolveCascade(t *testing.T) {
	unis := []Item{{ID: "u1", Value: "u1", Label: "UNIKIN"}}
	faculties := []Item{{ID: "f1", Value: "f1", Label: "Polytechnic"}}

	t.Run("parent unset keeps child inert", func(t *testing.T) {
		store := memcache.NewStore()
		store.Set(keyUniversities, unis)

		res := ResolveCascade(store, Model{}, consoleCascade())

		uni, _ := res.Field("university_id")
		assert.Equal(t, StateReady, uni.State)
		assert.Equal(t, AllLabel, uni.FriendlyName)

		fac, _ := res.Field("faculty_id")
		assert.Equal(t, StateDisabled, fac.State)
		assert.False(t, fac.IsAvailable)
		assert.Empty(t, fac.Data)
		assert.False(t, res.AnyLoading)
	})

	t.Run("parent set, child entry missing -> pending", func(t *testing.T) {
		store := memcache.NewStore()
		store.Set(keyUniversities, unis)

		res := ResolveCascade(store, Model{"university_id": "u1"}, consoleCascade())

		fac, _ := res.Field("faculty_id")
		assert.Equal(t, StatePending, fac.State)
		assert.True(t, res.AnyLoading)
	})

	t.Run("parent set, child entry present -> ready with friendly name", func(t *testing.T) {
		store := memcache.NewStore()
		store.Set(keyUniversities, unis)
		store.Set(keyFaculties.Append("u1"), faculties)

		model := Model{"university_id": "u1", "faculty_id": "f1"}
		res := ResolveCascade(store, model, consoleCascade())

		uni, _ := res.Field("university_id")
		assert.Equal(t, "UNIKIN", uni.FriendlyName)

		fac, _ := res.Field("faculty_id")
		assert.Equal(t, StateReady, fac.State)
		assert.Equal(t, faculties, fac.Data)
		assert.Equal(t, "Polytechnic", fac.FriendlyName)
		assert.False(t, res.AnyLoading)
	})

	t.Run("empty child entry -> ready-empty", func(t *testing.T) {
		store := memcache.NewStore()
		store.Set(keyFaculties.Append("u1"), []Item{})

		cfg := CascadeConfig{Fields: []CascadingField{
			{Name: "faculty_id", ParentField: "university_id", BuildKey: facultyKeyBuilder},
		}}
		res := ResolveCascade(store, Model{"university_id": "u1"}, cfg)

		fac, _ := res.Field("faculty_id")
		assert.Equal(t, StateReadyEmpty, fac.State)
		assert.Equal(t, AllLabel, fac.FriendlyName)
	})

	t.Run("disabled config resolves nothing", func(t *testing.T) {
		store := memcache.NewStore()
		store.Set(keyUniversities, unis)

		cfg := consoleCascade()
		cfg.Disabled = true
		res := ResolveCascade(store, Model{"university_id": "u1"}, cfg)

		for _, fr := range res.Fields {
			assert.Equal(t, StateDisabled, fr.State)
		}
	})

	t.Run("panicking key builder degrades to inert", func(t *testing.T) {
		store := memcache.NewStore()
		cfg := CascadeConfig{Fields: []CascadingField{
			{Name: "faculty_id", ParentField: "university_id", BuildKey: func(interface{}) cache.Key { panic("boom") }},
		}}

		res := ResolveCascade(store, Model{"university_id": "u1"}, cfg)

		fac, _ := res.Field("faculty_id")
		assert.Equal(t, StateDisabled, fac.State)
	})

	t.Run("global transform wins over field transform", func(t *testing.T) {
		store := memcache.NewStore()
		store.Set(keyUniversities, []string{"raw"})

		fieldItems := []Item{{ID: "field", Value: "field", Label: "field"}}
		globalItems := []Item{{ID: "global", Value: "global", Label: "global"}}
		cfg := CascadeConfig{
			Fields: []CascadingField{{
				Name:      "university_id",
				Key:       keyUniversities,
				Transform: func(entry interface{}) []Item { return fieldItems },
			}},
			Transform: func(entry interface{}, field string) []Item {
				assert.Equal(t, "university_id", field)
				return globalItems
			},
		}

		res := ResolveCascade(store, Model{}, cfg)
		uni, _ := res.Field("university_id")
		assert.Equal(t, globalItems, uni.Data)
	})

	t.Run("raw entries auto-coerce", func(t *testing.T) {
		store := memcache.NewStore()
		store.Set(keyUniversities, []map[string]interface{}{{"id": "u1", "name": "UNIKIN"}})

		res := ResolveCascade(store, Model{"university_id": "u1"}, consoleCascade())
		uni, _ := res.Field("university_id")
		assert.Equal(t, StateReady, uni.State)
		assert.Equal(t, "UNIKIN", uni.FriendlyName)
	})
}

func Test_CascadeResets(t *testing.T) {
	fields := []CascadingField{
		{Name: "university_id", Key: keyUniversities},
		{Name: "faculty_id", ParentField: "university_id", BuildKey: facultyKeyBuilder},
		{Name: "course_id", ParentField: "faculty_id", BuildKey: func(v interface{}) cache.Key {
			return cache.NewKey("courses", Stringify(v))
		}},
	}

	tests := []struct {
		name    string
		old     Model
		updated Model
		want    []string
	}{
		{
			name:    "no change",
			old:     Model{"university_id": "u1", "faculty_id": "f1"},
			updated: Model{"university_id": "u1", "faculty_id": "f1"},
			want:    nil,
		},
		{
			name:    "parent change clears children transitively",
			old:     Model{"university_id": "u1", "faculty_id": "f1", "course_id": "c1"},
			updated: Model{"university_id": "u2", "faculty_id": "f1", "course_id": "c1"},
			want:    []string{"faculty_id", "course_id"},
		},
		{
			name:    "mid-level change clears only below",
			old:     Model{"university_id": "u1", "faculty_id": "f1", "course_id": "c1"},
			updated: Model{"university_id": "u1", "faculty_id": "f2", "course_id": "c1"},
			want:    []string{"course_id"},
		},
		{
			name:    "nil and empty string are the same unset parent",
			old:     Model{"faculty_id": "f1"},
			updated: Model{"university_id": "", "faculty_id": "f1"},
			want:    nil,
		},
		{
			name:    "numeric parent compares by value",
			old:     Model{"university_id": float64(1), "faculty_id": "f1"},
			updated: Model{"university_id": "1", "faculty_id": "f1"},
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CascadeResets(tt.old, tt.updated, fields))
		})
	}
}

func Test_ApplyCascadeResets(t *testing.T) {
	fields := []CascadingField{
		{Name: "university_id", Key: keyUniversities},
		{Name: "faculty_id", ParentField: "university_id", BuildKey: facultyKeyBuilder},
	}

	old := Model{"university_id": "u1", "faculty_id": "f1", "search": "x"}
	updated := Model{"university_id": "u2", "faculty_id": "f1", "search": "x"}

	out := ApplyCascadeResets(old, updated, fields)

	assert.Equal(t, Model{"university_id": "u2", "faculty_id": nil, "search": "x"}, out)
	// input models are untouched
	assert.Equal(t, "f1", updated["faculty_id"])
}
