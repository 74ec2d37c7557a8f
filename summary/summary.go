package summary

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/godescriptive/descriptive"
	"github.com/sartorproj/godescriptive/sample"
)

// DefaultQuantiles are the quantiles reported when Options.Quantiles is nil.
var DefaultQuantiles = []float64{0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99}

// Options controls Compute.
type Options struct {
	Quantiles   []float64
	TrimLeft    int
	TrimRight   int
	Frequencies bool
}

// QuantileValue is one reported quantile.
type QuantileValue struct {
	Phi   float64 `json:"phi" yaml:"phi"`
	Value float64 `json:"value" yaml:"value"`
}

// Frequency is one distinct value and its number of occurrences.
type Frequency struct {
	Value float64 `json:"value" yaml:"value"`
	Count int     `json:"count" yaml:"count"`
}

// Summary is a descriptive report over one sample.
type Summary struct {
	Name string `json:"name" yaml:"name"`
	Size int    `json:"size" yaml:"size"`

	Min          float64 `json:"min" yaml:"min"`
	Max          float64 `json:"max" yaml:"max"`
	Sum          float64 `json:"sum" yaml:"sum"`
	SumOfSquares float64 `json:"sum_of_squares" yaml:"sum_of_squares"`

	Mean           float64 `json:"mean" yaml:"mean"`
	GeometricMean  float64 `json:"geometric_mean" yaml:"geometric_mean"`
	HarmonicMean   float64 `json:"harmonic_mean" yaml:"harmonic_mean"`
	Median         float64 `json:"median" yaml:"median"`
	TrimmedMean    float64 `json:"trimmed_mean" yaml:"trimmed_mean"`
	WinsorizedMean float64 `json:"winsorized_mean" yaml:"winsorized_mean"`

	Variance                float64 `json:"variance" yaml:"variance"`
	SampleVariance          float64 `json:"sample_variance" yaml:"sample_variance"`
	StandardDeviation       float64 `json:"standard_deviation" yaml:"standard_deviation"`
	SampleStandardDeviation float64 `json:"sample_standard_deviation" yaml:"sample_standard_deviation"`
	StandardError           float64 `json:"standard_error" yaml:"standard_error"`
	MeanDeviation           float64 `json:"mean_deviation" yaml:"mean_deviation"`
	RMS                     float64 `json:"rms" yaml:"rms"`

	Moment3                     float64 `json:"moment3" yaml:"moment3"`
	Moment4                     float64 `json:"moment4" yaml:"moment4"`
	Skew                        float64 `json:"skew" yaml:"skew"`
	Kurtosis                    float64 `json:"kurtosis" yaml:"kurtosis"`
	SampleSkew                  float64 `json:"sample_skew" yaml:"sample_skew"`
	SampleKurtosis              float64 `json:"sample_kurtosis" yaml:"sample_kurtosis"`
	SampleSkewStandardError     float64 `json:"sample_skew_standard_error" yaml:"sample_skew_standard_error"`
	SampleKurtosisStandardError float64 `json:"sample_kurtosis_standard_error" yaml:"sample_kurtosis_standard_error"`

	Lag1         float64 `json:"lag1" yaml:"lag1"`
	DurbinWatson float64 `json:"durbin_watson" yaml:"durbin_watson"`

	Quantiles   []QuantileValue `json:"quantiles" yaml:"quantiles"`
	Distinct    int             `json:"distinct" yaml:"distinct"`
	Frequencies []Frequency     `json:"frequencies,omitempty" yaml:"frequencies,omitempty"`
}

// Compute builds the report for s.
func Compute(s *sample.Sample, opts Options) (*Summary, error) {
	values := s.Values
	n := len(values)
	if n == 0 {
		return nil, errors.Wrap(descriptive.ErrInvalidArgument, "summary of an empty sample")
	}

	agg := descriptive.NewRunningAggregate()
	if err := descriptive.IncrementalUpdate(values, 0, n-1, &agg); err != nil {
		return nil, err
	}

	// sumOfPowers[j] = Σx^j for j = 0..4.
	sumOfPowers := make([]float64, 5)
	sumOfPowers[0] = float64(n)
	if err := descriptive.IncrementalUpdateSumsOfPowers(values, 0, n-1, 1, 4, sumOfPowers[1:]); err != nil {
		return nil, err
	}

	sorted := s.Sorted()
	mean := agg.Sum / float64(n)

	sum := &Summary{
		Name:         s.Name,
		Size:         n,
		Min:          agg.Min,
		Max:          agg.Max,
		Sum:          agg.Sum,
		SumOfSquares: agg.SumOfSquares,
		Mean:         mean,
		Median:       descriptive.Median(sorted),
	}

	sum.GeometricMean = descriptive.GeometricMean(n, descriptive.SumOfLogarithms(values))
	sum.HarmonicMean = descriptive.HarmonicMean(n, descriptive.SumOfInversions(values))

	var err error
	sum.TrimmedMean, err = descriptive.TrimmedMean(sorted, mean, opts.TrimLeft, opts.TrimRight)
	if err != nil {
		return nil, err
	}
	sum.WinsorizedMean, err = descriptive.WinsorizedMean(sorted, mean, opts.TrimLeft, opts.TrimRight)
	if err != nil {
		return nil, err
	}

	sum.Variance = descriptive.Variance(n, agg.Sum, agg.SumOfSquares)
	sum.SampleVariance = descriptive.SampleVariance(n, agg.Sum, agg.SumOfSquares)
	sum.StandardDeviation = descriptive.StandardDeviation(sum.SampleVariance)
	sum.SampleStandardDeviation = descriptive.SampleStandardDeviation(n, sum.SampleVariance)
	sum.StandardError = descriptive.StandardError(n, sum.SampleVariance)
	sum.MeanDeviation = descriptive.MeanDeviation(values, mean)
	sum.RMS = descriptive.RMS(n, agg.SumOfSquares)

	populationSD := descriptive.StandardDeviation(sum.Variance)
	sum.Moment3 = descriptive.MomentFromPowerSums(3, mean, n, sumOfPowers)
	sum.Moment4 = descriptive.MomentFromPowerSums(4, mean, n, sumOfPowers)
	sum.Skew = descriptive.Skew(sum.Moment3, populationSD)
	sum.Kurtosis = descriptive.Kurtosis(sum.Moment4, populationSD)
	sum.SampleSkew = descriptive.SampleSkew(n, sum.Moment3, sum.SampleVariance)
	sum.SampleKurtosis = descriptive.SampleKurtosis(n, sum.Moment4, sum.SampleVariance)
	sum.SampleSkewStandardError = descriptive.SampleSkewStandardError(n)
	sum.SampleKurtosisStandardError = descriptive.SampleKurtosisStandardError(n)

	sum.Lag1 = descriptive.Lag1(values, mean)
	sum.DurbinWatson = math.NaN()
	if dw, err := descriptive.DurbinWatson(values); err == nil {
		sum.DurbinWatson = dw
	}

	phis := opts.Quantiles
	if phis == nil {
		phis = DefaultQuantiles
	}
	for i, q := range descriptive.Quantiles(sorted, phis) {
		sum.Quantiles = append(sum.Quantiles, QuantileValue{Phi: phis[i], Value: q})
	}

	var distinct []float64
	var counts []int
	if opts.Frequencies {
		descriptive.Frequencies(sorted, &distinct, &counts)
		sum.Frequencies = make([]Frequency, len(distinct))
		for i := range distinct {
			sum.Frequencies[i] = Frequency{Value: distinct[i], Count: counts[i]}
		}
	} else {
		descriptive.Frequencies(sorted, &distinct, nil)
	}
	sum.Distinct = len(distinct)

	return sum, nil
}

// Field is one named scalar of a Summary, in report order.
type Field struct {
	Name  string
	Value float64
}

// Fields lists the scalar statistics of s in report order.
func (s *Summary) Fields() []Field {
	return []Field{
		{"size", float64(s.Size)},
		{"distinct", float64(s.Distinct)},
		{"min", s.Min},
		{"max", s.Max},
		{"sum", s.Sum},
		{"sum_of_squares", s.SumOfSquares},
		{"mean", s.Mean},
		{"geometric_mean", s.GeometricMean},
		{"harmonic_mean", s.HarmonicMean},
		{"median", s.Median},
		{"trimmed_mean", s.TrimmedMean},
		{"winsorized_mean", s.WinsorizedMean},
		{"variance", s.Variance},
		{"sample_variance", s.SampleVariance},
		{"standard_deviation", s.StandardDeviation},
		{"sample_standard_deviation", s.SampleStandardDeviation},
		{"standard_error", s.StandardError},
		{"mean_deviation", s.MeanDeviation},
		{"rms", s.RMS},
		{"moment3", s.Moment3},
		{"moment4", s.Moment4},
		{"skew", s.Skew},
		{"kurtosis", s.Kurtosis},
		{"sample_skew", s.SampleSkew},
		{"sample_skew_standard_error", s.SampleSkewStandardError},
		{"sample_kurtosis", s.SampleKurtosis},
		{"sample_kurtosis_standard_error", s.SampleKurtosisStandardError},
		{"lag1", s.Lag1},
		{"durbin_watson", s.DurbinWatson},
	}
}
