// Package summary computes a one-shot descriptive report over a sample.
//
// The report is built from a single pass of running aggregates and power
// sums; the remaining statistics are derived from those sums and from one
// sorted copy of the data. Undefined statistics (geometric mean of a sample
// with non-positive values, sample kurtosis of three values, ...) are NaN.
package summary
