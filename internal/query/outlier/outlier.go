// Package outlier classifies Ki values that fall outside a band of
// deviation factors around their group mean.
package outlier

import (
	"gonum.org/v1/gonum/stat"

	"github.com/leengari/kidb/internal/domain/data"
)

// Band is the inclusive inlier interval [Low, High]
type Band struct {
	Low  float64
	High float64
}

// Contains reports whether v lies inside the band. Boundary values are inliers.
func (b Band) Contains(v float64) bool {
	return !(v < b.Low || v > b.High)
}

// BandOf computes mean ± factor·s over the present values, where s is the
// sample standard deviation. ok is false when fewer than two values are
// present; no band applies then. A negative factor yields an inverted band
// that contains no value unless s is zero.
func BandOf(values []data.NullFloat, factor float64) (Band, bool) {
	present := Present(values)
	if len(present) < 2 {
		return Band{}, false
	}

	mean, std := stat.MeanStdDev(present, nil)
	return Band{
		Low:  mean - factor*std,
		High: mean + factor*std,
	}, true
}

// Classify flags each value as an outlier (true) or inlier (false).
// Missing values are never outliers, and groups with fewer than two
// present values never contain outliers. A NaN factor flags nothing.
func Classify(values []data.NullFloat, factor float64) []bool {
	flags := make([]bool, len(values))

	band, ok := BandOf(values, factor)
	if !ok {
		return flags
	}

	for i, v := range values {
		if v.Valid && !band.Contains(v.Float64) {
			flags[i] = true
		}
	}
	return flags
}

// Present returns the non-missing values in order
func Present(values []data.NullFloat) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v.Valid {
			out = append(out, v.Float64)
		}
	}
	return out
}
