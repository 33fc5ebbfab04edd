// Package aggregate computes per-receptor Ki statistics for a ligand.
//
// Only exact ("=") measurements take part. When a deviation factor is given,
// each receptor group is trimmed of its outliers before the statistics are
// computed, and the trimmed rows are also left out of the returned sources,
// so the statistics can always be recomputed from the sources alone.
package aggregate

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/leengari/kidb/internal/domain/data"
	"github.com/leengari/kidb/internal/domain/schema"
	"github.com/leengari/kidb/internal/query/filter"
	"github.com/leengari/kidb/internal/query/outlier"
)

// ReceptorStats summarizes the Ki values of one receptor group.
// Mean and Median are missing when the group has no Ki value;
// StandardDeviation is missing with fewer than two values.
type ReceptorStats struct {
	Receptor          string         `json:"receptor"`
	Median            data.NullFloat `json:"median"`
	Mean              data.NullFloat `json:"mean"`
	StandardDeviation data.NullFloat `json:"std"`
	Count             int            `json:"count"`
}

// Result holds the statistics and the exact rows they were computed from
type Result struct {
	Statistics []ReceptorStats
	Sources    *schema.Table
}

// Summarize answers a Ki summary query for one ligand.
// A deviation of zero disables outlier exclusion; any other factor trims each
// receptor group, and a negative one empties every group holding two or more distinct values.
func Summarize(t *schema.Table, ligand string, deviation float64) Result {
	matched := t.
		Filter(filter.Criteria{
			data.FieldLigand: {ligand},
			data.FieldKiOp:   {data.DefaultKiOp},
		}).
		SortBy(data.FieldReceptor)

	groups := GroupBy(matched.Rows(), data.FieldReceptor)

	if deviation != 0 && matched.Len() > 0 {
		for i := range groups {
			groups[i] = groups[i].WithoutOutliers(deviation)
		}
	}

	stats := make([]ReceptorStats, 0, len(groups))
	var sources []data.Record
	for _, g := range groups {
		if len(g.Rows) == 0 {
			continue
		}
		stats = append(stats, Describe(g.Key, g.Rows))
		sources = append(sources, g.Rows...)
	}

	return Result{
		Statistics: stats,
		Sources:    schema.NewTable(t.Name, sources),
	}
}

// Describe computes the statistics of a receptor's rows
func Describe(receptor string, rows []data.Record) ReceptorStats {
	values := make([]data.NullFloat, len(rows))
	for i, row := range rows {
		values[i] = row.Ki
	}
	ki := outlier.Present(values)

	s := ReceptorStats{
		Receptor: receptor,
		Count:    len(ki),
	}
	if len(ki) == 0 {
		return s
	}

	s.Mean = data.Float(stat.Mean(ki, nil))
	s.Median = data.Float(median(ki))
	if len(ki) > 1 {
		s.StandardDeviation = data.Float(stat.StdDev(ki, nil))
	}
	return s
}

// median averages the two middle values of an even-sized sample
func median(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Stats returns the statistics for one receptor, if present
func (r Result) Stats(receptor string) (ReceptorStats, bool) {
	for _, s := range r.Statistics {
		if s.Receptor == receptor {
			return s, true
		}
	}
	return ReceptorStats{}, false
}
