// Package descriptive provides descriptive statistics over samples of float64.
//
// Every function is stateless. Functions whose name contains "Incremental"
// update a caller-owned aggregate in place; the package never retains
// references to its arguments, so calls are safe from any number of
// goroutines as long as a given aggregate is not shared without external
// synchronization.
//
// # Sorted input
//
// Order statistics (Median, Quantile, Quantiles, QuantileInverse,
// RankInterpolated, Frequencies, Split, TrimmedMean, WinsorizedMean) require
// data sorted ascending. Sortedness is never verified; unsorted input gives
// silently wrong results:
//
//	sorted := slices.Clone(values)
//	slices.Sort(sorted)
//	q90 := descriptive.Quantile(sorted, 0.9)
//
// # Aggregates
//
// Many statistics are computed from precomputed sums so that a sample can be
// scanned once:
//
//	agg := descriptive.NewRunningAggregate()
//	_ = descriptive.IncrementalUpdate(values, 0, len(values)-1, &agg)
//	v := descriptive.SampleVariance(len(values), agg.Sum, agg.SumOfSquares)
//	sd := descriptive.SampleStandardDeviation(len(values), v)
//
// # Errors
//
// Argument violations (mismatched lengths, empty samples where one is
// required, trim counts exceeding the sample) are reported as errors matching
// ErrInvalidArgument; bad index ranges match ErrIndexRange. Mathematically
// undefined results (log of non-positive values, division by zero at small n,
// the mean of an empty sample) are NOT errors: they propagate as NaN or Inf
// so that callers can render them as "N/A".
package descriptive
