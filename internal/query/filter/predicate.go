package filter

import (
	"github.com/leengari/kidb/internal/domain/data"
)

// PredicateFunc is a function that tests whether a record matches certain criteria
type PredicateFunc func(data.Record) bool

// All matches every record
func All(data.Record) bool { return true }

// In builds a membership test: the record's field value must be one of values.
// An empty value set matches nothing, and a missing Ki never matches.
func In(field data.Field, values ...string) PredicateFunc {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return func(r data.Record) bool {
		val, ok := r.Value(field)
		if !ok {
			return false
		}
		_, found := set[val]
		return found
	}
}

// And combines predicates; a record must satisfy every one of them
func And(preds ...PredicateFunc) PredicateFunc {
	return func(r data.Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}
