package aggregate_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/kidb/internal/domain/data"
	"github.com/leengari/kidb/internal/domain/schema"
	"github.com/leengari/kidb/internal/query/aggregate"
	"github.com/leengari/kidb/internal/query/filter"
	"github.com/leengari/kidb/internal/testutil"
)

func TestSummarize_Caffeine_NoDeviation(t *testing.T) {
	result := aggregate.Summarize(testutil.CreateCaffeineTable(), "Caffeine", 0)

	assert.Equal(t, len(result.Statistics), 1)
	s := result.Statistics[0]
	assert.Equal(t, s.Receptor, "A2A")
	assert.Equal(t, s.Count, 4)
	assert.Equal(t, s.Mean, data.Float(32.875))
	assert.Equal(t, s.Median, data.Float(10.75))
	assert.Assert(t, s.StandardDeviation.Valid)

	// the ">" row is never aggregated
	assert.Equal(t, result.Sources.Len(), 4)
	for _, r := range result.Sources.Rows() {
		assert.Equal(t, r.KiOp, "=")
	}
}

func TestSummarize_Caffeine_OutlierExcluded(t *testing.T) {
	result := aggregate.Summarize(testutil.CreateCaffeineTable(), "Caffeine", 1)

	s, ok := result.Stats("A2A")
	assert.Assert(t, ok)
	assert.Equal(t, s.Count, 3)
	assert.Equal(t, s.Mean, data.Float(10.5))
	assert.Equal(t, s.Median, data.Float(10.5))

	assert.Equal(t, result.Sources.Len(), 3)
	for _, r := range result.Sources.Rows() {
		assert.Assert(t, r.Ki.Float64 != 100.0)
	}
}

func TestSummarize_Caffeine_WideBandKeepsAll(t *testing.T) {
	// 100.0 sits just under 1.5 sample deviations above the mean
	result := aggregate.Summarize(testutil.CreateCaffeineTable(), "Caffeine", 2)

	s, _ := result.Stats("A2A")
	assert.Equal(t, s.Count, 4)
	assert.Equal(t, result.Sources.Len(), 4)
}

func TestSummarize_UnknownLigand(t *testing.T) {
	for _, deviation := range []float64{0, 2} {
		result := aggregate.Summarize(testutil.CreateCaffeineTable(), "Aspirin", deviation)

		assert.Equal(t, len(result.Statistics), 0)
		assert.Equal(t, result.Sources.Len(), 0)
	}
}

func TestSummarize_SortedByReceptor(t *testing.T) {
	result := aggregate.Summarize(testutil.CreateReceptorTable(), "Caffeine", 0)

	var receptors []string
	for _, s := range result.Statistics {
		receptors = append(receptors, s.Receptor)
	}
	assert.DeepEqual(t, receptors, []string{"A1", "A2A", "A2B"})

	var sourceOrder []string
	for _, r := range result.Sources.Rows() {
		sourceOrder = append(sourceOrder, r.Receptor)
	}
	assert.DeepEqual(t, sourceOrder, []string{"A1", "A1", "A2A", "A2B"})
}

func TestSummarize_SingletonGroupSurvives(t *testing.T) {
	table := schema.NewTable("ki", []data.Record{
		testutil.Ki("L", "R1", 5),
		testutil.Ki("L", "R2", 1),
		testutil.Ki("L", "R2", 1.1),
		testutil.Ki("L", "R2", 0.9),
		testutil.Ki("L", "R2", 50),
	})

	for _, deviation := range []float64{-1, 0.01, 0.5, 1, 3} {
		result := aggregate.Summarize(table, "L", deviation)
		s, ok := result.Stats("R1")
		assert.Assert(t, ok, "deviation %v dropped singleton group", deviation)
		assert.Equal(t, s.Count, 1)
		assert.Equal(t, s.Mean, data.Float(5))
		assert.Equal(t, s.Median, data.Float(5))
		assert.Assert(t, !s.StandardDeviation.Valid)
	}
}

func TestSummarize_NegativeDeviationOmitsEmptiedGroups(t *testing.T) {
	table := schema.NewTable("ki", []data.Record{
		testutil.Ki("L", "R1", 3.2),
		testutil.Ki("L", "R1", 2.9),
		testutil.Ki("L", "R1", 40),
		testutil.Ki("L", "R2", 100),
		testutil.Ki("L", "R2", 120),
		testutil.Ki("L", "R3", 7),
		testutil.Missing("L", "R3"),
	})

	result := aggregate.Summarize(table, "L", -1)

	// R1 and R2 lose every row; R3 has a single value and is never trimmed
	assert.Equal(t, len(result.Statistics), 1)
	s, ok := result.Stats("R3")
	assert.Assert(t, ok)
	assert.Equal(t, s.Count, 1)
	assert.Equal(t, s.Mean, data.Float(7))

	assert.Equal(t, result.Sources.Len(), 2)
	for _, r := range result.Sources.Rows() {
		assert.Equal(t, r.Receptor, "R3")
	}

	caffeine := aggregate.Summarize(testutil.CreateCaffeineTable(), "Caffeine", -1)
	assert.Equal(t, len(caffeine.Statistics), 0)
	assert.Equal(t, caffeine.Sources.Len(), 0)
}

func TestSummarize_MissingKi(t *testing.T) {
	result := aggregate.Summarize(testutil.CreateReceptorTable(), "Istradefylline", 0)

	a1, ok := result.Stats("A1")
	assert.Assert(t, ok)
	assert.Equal(t, a1.Count, 0)
	assert.Assert(t, !a1.Mean.Valid)
	assert.Assert(t, !a1.Median.Valid)
	assert.Assert(t, !a1.StandardDeviation.Valid)

	// the row stays in the sources even though it carries no value
	assert.Equal(t, result.Sources.Len(), 2)

	// and it is never treated as an outlier
	withDeviation := aggregate.Summarize(testutil.CreateReceptorTable(), "Istradefylline", 0.5)
	assert.Equal(t, withDeviation.Sources.Len(), 2)
}

func TestSummarize_SourcesReproduceStatistics(t *testing.T) {
	table := schema.NewTable("ki", []data.Record{
		testutil.Ki("L", "R1", 3.2),
		testutil.Ki("L", "R1", 2.9),
		testutil.Ki("L", "R1", 3.4),
		testutil.Ki("L", "R1", 40),
		testutil.Ki("L", "R1", 3.1),
		testutil.Ki("L", "R2", 100),
		testutil.Ki("L", "R2", 120),
		testutil.Ki("L", "R2", 0.3),
		testutil.Bound("L", "R2", "<", 1),
		testutil.Ki("L", "R3", 7),
		testutil.Missing("L", "R3"),
	})

	for _, deviation := range []float64{-1, 0, 0.5, 1, 1.5, 3} {
		result := aggregate.Summarize(table, "L", deviation)

		for _, s := range result.Statistics {
			rows := result.Sources.Filter(filter.Eq(data.FieldReceptor, s.Receptor)).Rows()
			assert.DeepEqual(t, aggregate.Describe(s.Receptor, rows), s)
		}
	}
}

func TestSummarize_DeviationNeverGrowsSources(t *testing.T) {
	table := testutil.CreateReceptorTable()
	base := aggregate.Summarize(table, "Caffeine", 0)

	prev := base.Sources.Len()
	for _, deviation := range []float64{5, 2, 1, 0.5, 0.1, -0.1, -1} {
		n := aggregate.Summarize(table, "Caffeine", deviation).Sources.Len()
		assert.Assert(t, n <= prev)
		prev = n
	}
}

func TestDescribe_EvenMedian(t *testing.T) {
	rows := []data.Record{
		testutil.Ki("L", "R", 4),
		testutil.Ki("L", "R", 1),
		testutil.Ki("L", "R", 3),
		testutil.Ki("L", "R", 2),
	}

	s := aggregate.Describe("R", rows)
	assert.Equal(t, s.Median, data.Float(2.5))
	assert.Equal(t, s.Mean, data.Float(2.5))
	assert.Equal(t, s.Count, 4)
}

func TestGroupBy_FirstOccurrence(t *testing.T) {
	groups := aggregate.GroupBy(testutil.CreateReceptorTable().Rows(), data.FieldLigand)

	var keys []string
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	assert.DeepEqual(t, keys, []string{"Caffeine", "Theophylline", "Istradefylline", "Adenosine"})
	assert.Equal(t, len(groups[0].Rows), 4)
}
