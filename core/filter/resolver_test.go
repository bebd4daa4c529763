package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var universities = []Item{
	{ID: "u1", Value: "u1", Label: "University of Kinshasa"},
	{ID: "u2", Value: "u2", Label: "University of Lubumbashi"},
}

func Test_Resolve(t *testing.T) {
	bPtr := func(b bool) *bool { return &b }
	date := time.Date(2024, time.September, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		value      interface{}
		desc       *Descriptor
		dateFormat string
		want       string
	}{
		{name: "nil descriptor, unset value", value: nil, want: AllLabel},
		{name: "nil descriptor, set value", value: "u1", want: "u1"},

		{name: "dropdown hit", value: "u1", desc: &Descriptor{Type: TypeDropdown, Data: universities}, want: "University of Kinshasa"},
		{name: "dropdown numeric value matches string item", value: float64(1), desc: &Descriptor{Type: TypeDropdown, Data: []Item{{Value: "1", Label: "One"}}}, want: "One"},
		{name: "dropdown unset", value: nil, desc: &Descriptor{Type: TypeDropdown, Data: universities}, want: AllLabel},
		{name: "dropdown empty source", value: "u1", desc: &Descriptor{Type: TypeDropdown}, want: AllLabel},
		{name: "dropdown miss", value: "nope", desc: &Descriptor{Type: TypeDropdown, Data: universities}, want: UnknownLabel},

		{name: "boolean true default", value: true, desc: &Descriptor{Type: TypeBoolean}, want: ActiveLabel},
		{name: "boolean false default", value: bPtr(false), desc: &Descriptor{Type: TypeBoolean}, want: InactiveLabel},
		{name: "boolean null default", value: nil, desc: &Descriptor{Type: TypeBoolean}, want: AllLabel},
		{name: "boolean custom labels", value: true, desc: &Descriptor{Type: TypeBoolean, TrueLabel: "Yes", FalseLabel: "No", NullLabel: "Any"}, want: "Yes"},
		{name: "boolean custom null", value: nil, desc: &Descriptor{Type: TypeBoolean, NullLabel: "Any"}, want: "Any"},

		{name: "string quoted", value: "kin", desc: &Descriptor{Type: TypeString}, want: `"kin"`},
		{name: "string unset", value: "", desc: &Descriptor{Type: TypeString}, want: AllLabel},

		{name: "date default pattern", value: date, desc: &Descriptor{Type: TypeDate}, want: "09/01/2024"},
		{name: "date custom pattern", value: date, desc: &Descriptor{Type: TypeDate}, dateFormat: "DD/MM/YYYY", want: "01/09/2024"},
		{name: "date from RFC3339 string", value: "2024-09-01T10:30:00Z", desc: &Descriptor{Type: TypeDate}, want: "09/01/2024"},
		{name: "date from plain string", value: "2024-09-01", desc: &Descriptor{Type: TypeDate}, dateFormat: "YYYY-MM-DD", want: "2024-09-01"},
		{name: "date unparseable passes through", value: "yesterday", desc: &Descriptor{Type: TypeDate}, want: "yesterday"},
		{name: "date unset", value: time.Time{}, desc: &Descriptor{Type: TypeDate}, want: AllLabel},

		{name: "custom", value: 3, desc: &Descriptor{Type: TypeCustom, Resolve: func(v interface{}) string { return "three" }}, want: "three"},
		{name: "custom nil func falls back", value: "x", desc: &Descriptor{Type: TypeCustom}, want: "x"},
		{name: "custom panicking func falls back", value: "x", desc: &Descriptor{Type: TypeCustom, Resolve: func(v interface{}) string { panic("boom") }}, want: "x"},

		{name: "unknown type falls back", value: "x", desc: &Descriptor{Type: FieldType("???")}, want: "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.value, tt.desc, tt.dateFormat))
		})
	}
}

func Test_IsUnset(t *testing.T) {
	var nilBool *bool
	now := time.Now()

	assert.True(t, IsUnset(nil))
	assert.True(t, IsUnset(""))
	assert.True(t, IsUnset(false))
	assert.True(t, IsUnset(nilBool))
	assert.True(t, IsUnset(time.Time{}))
	assert.False(t, IsUnset("x"))
	assert.False(t, IsUnset(true))
	assert.False(t, IsUnset(now))
	assert.False(t, IsUnset(0)) // numeric zero is a value, not "unset"
}

func Test_Stringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "u1", Stringify("u1"))
	assert.Equal(t, "1", Stringify(float64(1)))
	assert.Equal(t, "1.5", Stringify(1.5))
	assert.Equal(t, "true", Stringify(true))
}

func Test_DateLayout(t *testing.T) {
	assert.Equal(t, "01/02/2006", DateLayout(""))
	assert.Equal(t, "02/01/2006", DateLayout("DD/MM/YYYY"))
	assert.Equal(t, "2006-01-02 15:04:05", DateLayout("YYYY-MM-DD HH:mm:ss"))
}
