package aggregate

import (
	"github.com/leengari/kidb/internal/domain/data"
	"github.com/leengari/kidb/internal/query/outlier"
)

// Group is a run of records sharing one key value
type Group struct {
	Key  string
	Rows []data.Record
}

// GroupBy partitions records by a field, keeping groups in first-occurrence
// order and rows in input order within each group
func GroupBy(rows []data.Record, field data.Field) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, row := range rows {
		key, _ := row.Value(field)
		pos, exists := index[key]
		if !exists {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, Group{Key: key})
		}
		groups[pos].Rows = append(groups[pos].Rows, row)
	}
	return groups
}

// Ki returns the Ki column of the group
func (g Group) Ki() []data.NullFloat {
	values := make([]data.NullFloat, len(g.Rows))
	for i, row := range g.Rows {
		values[i] = row.Ki
	}
	return values
}

// WithoutOutliers returns a copy of the group holding only the rows whose
// Ki lies inside the deviation band computed over this group alone
func (g Group) WithoutOutliers(factor float64) Group {
	flags := outlier.Classify(g.Ki(), factor)

	kept := make([]data.Record, 0, len(g.Rows))
	for i, row := range g.Rows {
		if !flags[i] {
			kept = append(kept, row)
		}
	}
	return Group{Key: g.Key, Rows: kept}
}
