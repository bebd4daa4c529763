package filter

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	memcache "github.com/somohq/somo/storage/cache/mem"
)

func Test_BuildFriendly(t *testing.T) {
	resolvers := map[string]*Descriptor{
		"university_id": {Type: TypeDropdown, Data: universities},
		"is_active":     {Type: TypeBoolean},
		"absent_field":  {Type: TypeString}, // not in the model; must not appear
	}

	model := Model{
		"university_id": "u1",
		"is_active":     true,
		"search":        "poly", // no resolver; still present
		"unset":         nil,
	}

	rec := BuildFriendly(model, resolvers, nil, "")

	// key set is exactly the model's key set
	assert.Len(t, rec, len(model))
	for name := range model {
		assert.Contains(t, rec, name)
	}
	assert.NotContains(t, rec, "absent_field")

	assert.Equal(t, FriendlyValue{Label: "University of Kinshasa", Value: "u1"}, rec["university_id"])
	assert.Equal(t, FriendlyValue{Label: ActiveLabel, Value: true}, rec["is_active"])
	assert.Equal(t, FriendlyValue{Label: "poly", Value: "poly"}, rec["search"])
	assert.Equal(t, FriendlyValue{Label: AllLabel, Value: nil}, rec["unset"])
}

func Test_BuildFriendly_cascadeMerge(t *testing.T) {
	store := memcache.NewStore()
	store.Set(keyFaculties.Append("u1"), []Item{{ID: "f1", Value: "f1", Label: "Polytechnic"}})

	cfg := CascadeConfig{Fields: []CascadingField{
		{Name: "faculty_id", ParentField: "university_id", BuildKey: facultyKeyBuilder},
	}}
	model := Model{"university_id": "u1", "faculty_id": "f1"}
	cascade := ResolveCascade(store, model, cfg)

	rec := BuildFriendly(model, nil, &cascade, "")
	assert.Equal(t, "Polytechnic", rec["faculty_id"].Label)

	// the merged snapshot is decoupled from later cache writes
	store.Set(keyFaculties.Append("u1"), []Item{{ID: "f1", Value: "f1", Label: "Renamed"}})
	assert.Equal(t, "Polytechnic", rec["faculty_id"].Label)
}

func Test_BuildFriendly_explicitResolverWins(t *testing.T) {
	store := memcache.NewStore()
	store.Set(keyFaculties.Append("u1"), []Item{{ID: "f1", Value: "f1", Label: "FromCache"}})

	cfg := CascadeConfig{Fields: []CascadingField{
		{Name: "faculty_id", ParentField: "university_id", BuildKey: facultyKeyBuilder},
	}}
	model := Model{"university_id": "u1", "faculty_id": "f1"}
	cascade := ResolveCascade(store, model, cfg)

	resolvers := map[string]*Descriptor{
		"faculty_id": {Type: TypeDropdown, Data: []Item{{ID: "f1", Value: "f1", Label: "FromResolver"}}},
	}
	rec := BuildFriendly(model, resolvers, &cascade, "")
	assert.Equal(t, "FromResolver", rec["faculty_id"].Label)
}

func Test_Record_Primitives(t *testing.T) {
	rec := Record{
		"b": {Label: "B", Value: 2},
		"a": {Label: "A", Value: 1},
	}
	assert.Equal(t, []interface{}{"A", 1, "B", 2}, rec.Primitives())
}

func Test_Builder_memoization(t *testing.T) {
	var b Builder
	resolvers := map[string]*Descriptor{
		"university_id": {Type: TypeDropdown, Data: universities},
	}

	model := Model{"university_id": "u1"}
	rec1 := b.Build(model, resolvers, nil, "")

	// same semantic inputs: the identical record comes back
	rec2 := b.Build(Model{"university_id": "u1"}, resolvers, nil, "")
	assert.True(t, reflect.ValueOf(rec1).Pointer() == reflect.ValueOf(rec2).Pointer(),
		"expected the memoized record instance")

	// a semantic change produces a new record
	rec3 := b.Build(Model{"university_id": "u2"}, resolvers, nil, "")
	assert.False(t, reflect.ValueOf(rec1).Pointer() == reflect.ValueOf(rec3).Pointer())
	assert.Equal(t, "University of Lubumbashi", rec3["university_id"].Label)

	// a date-format change alone is semantic too
	b2 := Builder{}
	m := Model{"since": "2024-09-01"}
	r := map[string]*Descriptor{"since": {Type: TypeDate}}
	first := b2.Build(m, r, nil, "MM/DD/YYYY")
	second := b2.Build(m, r, nil, "DD/MM/YYYY")
	assert.NotEqual(t, first["since"].Label, second["since"].Label)
}
