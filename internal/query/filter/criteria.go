package filter

import (
	"github.com/leengari/kidb/internal/domain/data"
)

// Criteria maps a field to its set of allowed values.
// Entries are AND-combined; values within one entry are OR-combined.
// Keys are assumed to be valid schema fields; callers validate names with
// data.ParseField before building a Criteria.
type Criteria map[data.Field][]string

// Eq is a single-entry Criteria matching one value
func Eq(field data.Field, value string) Criteria {
	return Criteria{field: {value}}
}

// IsEmpty reports whether the criteria constrain nothing
func (c Criteria) IsEmpty() bool {
	return len(c) == 0
}

// Add returns a copy of c with values appended to the field's allowed set
func (c Criteria) Add(field data.Field, values ...string) Criteria {
	out := c.Clone()
	out[field] = append(out[field], values...)
	return out
}

// Clone returns a deep copy
func (c Criteria) Clone() Criteria {
	out := make(Criteria, len(c))
	for f, vals := range c {
		cp := make([]string, len(vals))
		copy(cp, vals)
		out[f] = cp
	}
	return out
}

// Predicate compiles the criteria into a single row test.
// Membership sets are built once so the returned function is cheap per row.
func (c Criteria) Predicate() PredicateFunc {
	if c.IsEmpty() {
		return All
	}

	preds := make([]PredicateFunc, 0, len(c))
	for f, vals := range c {
		preds = append(preds, In(f, vals...))
	}
	return And(preds...)
}
