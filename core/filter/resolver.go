package filter

import "time"

// Resolve maps one raw filter value to a display label using the field's
// descriptor. A nil descriptor falls back to plain stringification with the
// "All" sentinel for unset values. Resolve is pure and never panics; a
// malformed descriptor degrades to the default label.
func Resolve(value interface{}, desc *Descriptor, dateFormat string) string {
	if desc == nil {
		return defaultLabel(value)
	}
	switch desc.Type {
	case TypeDropdown:
		return resolveDropdown(value, desc.Data)
	case TypeBoolean:
		return ResolveBoolean(value, desc)
	case TypeString:
		return resolveString(value)
	case TypeDate:
		return ResolveDate(value, dateFormat)
	case TypeCustom:
		return resolveCustom(value, desc)
	default:
		return defaultLabel(value)
	}
}

func defaultLabel(value interface{}) string {
	if IsUnset(value) {
		return AllLabel
	}
	return Stringify(value)
}

// resolveDropdown matches the value against the data source by exact Value
// match. An unset value or an empty source yields "All"; a miss against a
// non-empty source yields "Unknown".
func resolveDropdown(value interface{}, data []Item) string {
	if IsUnset(value) || len(data) == 0 {
		return AllLabel
	}
	want := Stringify(value)
	for _, item := range data {
		if Stringify(item.Value) == want {
			return item.Label
		}
	}
	return UnknownLabel
}

// ResolveBoolean returns one of three labels keyed by true/false/null.
func ResolveBoolean(value interface{}, desc *Descriptor) string {
	trueLabel, falseLabel, nullLabel := ActiveLabel, InactiveLabel, AllLabel
	if desc != nil {
		if desc.TrueLabel != "" {
			trueLabel = desc.TrueLabel
		}
		if desc.FalseLabel != "" {
			falseLabel = desc.FalseLabel
		}
		if desc.NullLabel != "" {
			nullLabel = desc.NullLabel
		}
	}

	var b *bool
	switch v := value.(type) {
	case bool:
		b = &v
	case *bool:
		b = v
	}
	if b == nil {
		return nullLabel
	}
	if *b {
		return trueLabel
	}
	return falseLabel
}

func resolveString(value interface{}) string {
	if IsUnset(value) {
		return AllLabel
	}
	return `"` + Stringify(value) + `"`
}

// ResolveDate formats a date value with the given console-style pattern.
// RFC3339 and plain-date strings are parsed first; anything unparseable is
// returned as-is rather than dropped.
func ResolveDate(value interface{}, pattern string) string {
	if IsUnset(value) {
		return AllLabel
	}

	layout := DateLayout(pattern)
	switch v := value.(type) {
	case time.Time:
		return v.Format(layout)
	case *time.Time:
		return v.Format(layout)
	case string:
		for _, parse := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(parse, v); err == nil {
				return t.Format(layout)
			}
		}
		return v
	default:
		return Stringify(value)
	}
}

// resolveCustom delegates to the caller-supplied function; a missing or
// panicking function falls back to the default label.
func resolveCustom(value interface{}, desc *Descriptor) (label string) {
	if desc.Resolve == nil {
		return defaultLabel(value)
	}
	defer func() {
		if recover() != nil {
			label = defaultLabel(value)
		}
	}()
	return desc.Resolve(value)
}
