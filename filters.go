package paginator

import (
	"slices"

	"github.com/samber/lo"
)

type (
	// Filter is one field/text pair of a listing filter form. An empty Value
	// is a valid entry: it renders as an empty input and constrains nothing.
	Filter struct {
		Field string
		Value string
	}

	// Filters is an ordered association list from field name to filter text.
	// Keys are unique; iteration order is stable and affects only rendering.
	Filters []Filter
)

// Get returns the text for field and whether the field is present.
func (f Filters) Get(field string) (string, bool) {
	idx := slices.IndexFunc(f, func(item Filter) bool {
		return item.Field == field
	})
	if idx == -1 {
		return "", false
	}

	return f[idx].Value, true
}

// Set returns a copy of the list with field set to value. An existing entry
// keeps its position, a new one is appended.
func (f Filters) Set(field, value string) Filters {
	ret := f.Clone()

	idx := slices.IndexFunc(ret, func(item Filter) bool {
		return item.Field == field
	})
	if idx != -1 {
		ret[idx].Value = value
		return ret
	}

	return append(ret, Filter{Field: field, Value: value})
}

// Clone returns a shallow copy safe to modify independently.
func (f Filters) Clone() Filters {
	return slices.Clone(f)
}

// applied returns the entries that actually constrain the query. Empty-string
// values stay in the list as stored state but never reach SQL.
func (f Filters) applied() Filters {
	return lo.Filter(f, func(item Filter, _ int) bool {
		return item.Value != ""
	})
}

// FiltersFromMap builds an ordered filter list from an unordered map. Keys
// are sorted to keep the result deterministic.
func FiltersFromMap(m map[string]string) Filters {
	keys := lo.Keys(m)
	slices.Sort(keys)

	ret := make(Filters, 0, len(keys))
	for _, key := range keys {
		ret = append(ret, Filter{Field: key, Value: m[key]})
	}

	return ret
}
