// Package godescriptive provides descriptive statistics over samples of
// float64 values.
//
// The engine in package descriptive is a set of stateless functions over
// slices: central tendency, dispersion, moments and shape, order statistics
// on sorted data, incremental aggregates over index ranges, and relations
// between paired samples. Undefined results (an empty mean, a negative
// geometric mean) are NaN rather than errors; malformed arguments are
// reported as errors classified by descriptive.ErrInvalidArgument and
// descriptive.ErrIndexRange.
//
// # Quick Start
//
// Summarize a CSV column:
//
//	s, _ := sample.LoadCSVColumn("scores.csv", "y")
//	report, _ := summary.Compute(s, summary.Options{TrimLeft: 1, TrimRight: 1})
//	fmt.Println(report.Mean, report.Median, report.SampleSkew)
//
// Use the engine directly:
//
//	sorted := []float64{1, 2, 2, 3, 5}
//	q := descriptive.Quantile(sorted, 0.9)
//	bins := descriptive.Split(sorted, []float64{2, 4})
//
// # Packages
//
//   - descriptive: the statistics engine
//   - sample: named samples, CSV loading and transforms
//   - summary: one-shot reports built from the engine
//   - correlogram: ACF, PACF and portmanteau tests
//   - config: configuration for the descstat CLI
//
// # References
//
//   - Sokal, R. R., & Rohlf, F. J. (1981). Biometry
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package godescriptive
