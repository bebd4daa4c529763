// Package filter converts raw filter state into human-readable labels and
// resolves cascading dropdown data (university -> faculty -> course) out of
// the options cache. All read paths are pure and never panic: malformed
// configuration and cache misses degrade to the "All"/empty defaults.
package filter

import (
	"fmt"
	"strings"
	"time"
)

// Model is the raw filter state of one screen, keyed by field name.
// Values are primitives (string identifier, bool, string, date) or nil
// meaning "unset".
type Model map[string]interface{}

// Item is one dropdown entry.
type Item struct {
	ID    string      `json:"id"`
	Value interface{} `json:"value"`
	Label string      `json:"label"`
}

// FieldType selects the resolution strategy for one field.
type FieldType string

const (
	TypeDropdown FieldType = "dropdown"
	TypeBoolean  FieldType = "boolean"
	TypeString   FieldType = "string"
	TypeDate     FieldType = "date"
	TypeCustom   FieldType = "custom"
)

// Display sentinels.
const (
	AllLabel     = "All"
	UnknownLabel = "Unknown"

	ActiveLabel   = "Active"
	InactiveLabel = "Inactive"

	DefaultDateFormat = "MM/DD/YYYY"
)

// Descriptor is the static per-field configuration describing how to resolve
// one field's display label.
type Descriptor struct {
	Type FieldType `json:"type"`

	// Data is the dropdown source.
	Data []Item `json:"data,omitempty"`

	// Boolean labels, keyed by true/false/null. Defaults: Active/Inactive/All.
	TrueLabel  string `json:"true_label,omitempty"`
	FalseLabel string `json:"false_label,omitempty"`
	NullLabel  string `json:"null_label,omitempty"`

	// Resolve handles TypeCustom fields.
	Resolve func(value interface{}) string `json:"-"`
}

// IsUnset reports whether a raw filter value means "no effective value":
// nil, the empty string, false or a zero time.
func IsUnset(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case *bool:
		return v == nil
	case time.Time:
		return v.IsZero()
	case *time.Time:
		return v == nil || v.IsZero()
	default:
		return false
	}
}

// Stringify renders a raw filter value for display and value comparison.
// JSON-decoded numbers print without a trailing ".0" so "1" matches 1.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

var dateTokens = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MM", "01",
	"DD", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
)

// DateLayout translates a console-style date pattern (MM/DD/YYYY, YYYY-MM-DD, ...)
// into a Go reference layout.
func DateLayout(pattern string) string {
	if pattern == "" {
		pattern = DefaultDateFormat
	}
	return dateTokens.Replace(pattern)
}
