// Package stats summarizes batches of decisions.
package stats

import "github.com/danielpatrickdp/chaos-oracle/internal/oracle"

// #region summary

// Summary aggregates a batch of results.
type Summary struct {
	Total        int
	Yes          int
	No           int
	YesFraction  float64
	MeanRawValue float64
}

// Summarize folds a result slice into a Summary. Empty input yields a
// zero Summary.
func Summarize(results []oracle.Result) Summary {
	s := Summary{Total: len(results)}
	if s.Total == 0 {
		return s
	}
	var rawSum float64
	for _, r := range results {
		if r.Decision == 1 {
			s.Yes++
		} else {
			s.No++
		}
		rawSum += r.RawValue
	}
	s.YesFraction = float64(s.Yes) / float64(s.Total)
	s.MeanRawValue = rawSum / float64(s.Total)
	return s
}

// Balanced reports whether the yes fraction falls inside [lo, hi].
// A coarse bias check for large batches.
func (s Summary) Balanced(lo, hi float64) bool {
	return s.YesFraction >= lo && s.YesFraction <= hi
}

// #endregion summary
