package summary

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/godescriptive/descriptive"
	"github.com/sartorproj/godescriptive/sample"
)

func TestCompute(t *testing.T) {
	s := sample.NewNamed("scores", []float64{4, 2, 9, 4, 5, 7, 4, 5})

	sum, err := Compute(s, Options{TrimLeft: 1, TrimRight: 1, Frequencies: true})
	require.NoError(t, err)

	assert.Equal(t, "scores", sum.Name)
	assert.Equal(t, 8, sum.Size)
	assert.Equal(t, 2.0, sum.Min)
	assert.Equal(t, 9.0, sum.Max)
	assert.Equal(t, 40.0, sum.Sum)
	assert.Equal(t, 232.0, sum.SumOfSquares)
	assert.Equal(t, 5.0, sum.Mean)
	assert.Equal(t, 4.5, sum.Median)
	assert.InDelta(t, 29.0/6, sum.TrimmedMean, 1e-12)
	assert.InDelta(t, 5.0, sum.WinsorizedMean, 1e-12)

	assert.InDelta(t, 4.0, sum.Variance, 1e-12)
	assert.InDelta(t, 32.0/7, sum.SampleVariance, 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7), sum.StandardDeviation, 1e-12)
	assert.Greater(t, sum.SampleStandardDeviation, sum.StandardDeviation)
	assert.InDelta(t, math.Sqrt(32.0/7/8), sum.StandardError, 1e-12)
	assert.InDelta(t, 1.5, sum.MeanDeviation, 1e-12)
	assert.InDelta(t, math.Sqrt(29), sum.RMS, 1e-12)

	assert.InDelta(t, 5.25, sum.Moment3, 1e-9)
	assert.InDelta(t, 44.5, sum.Moment4, 1e-9)
	assert.InDelta(t, 0.65625, sum.Skew, 1e-9)
	assert.InDelta(t, -0.21875, sum.Kurtosis, 1e-9)
	assert.InDelta(t, 0.8184875533567996, sum.SampleSkew, 1e-9)
	assert.InDelta(t, 0.9406249999999998, sum.SampleKurtosis, 1e-9)
	assert.InDelta(t, descriptive.SampleSkewStandardError(8), sum.SampleSkewStandardError, 0)

	assert.InDelta(t, descriptive.GeometricMeanOf(s.Values), sum.GeometricMean, 1e-12)
	assert.InDelta(t, 8/descriptive.SumOfInversions(s.Values), sum.HarmonicMean, 1e-12)
	assert.InDelta(t, 93.0/232, sum.DurbinWatson, 1e-12)
	assert.InDelta(t, descriptive.Lag1(s.Values, 5), sum.Lag1, 0)

	assert.Equal(t, 5, sum.Distinct)
	assert.Equal(t, []Frequency{{2, 1}, {4, 3}, {5, 2}, {7, 1}, {9, 1}}, sum.Frequencies)
	assert.Len(t, sum.Quantiles, len(DefaultQuantiles))
}

func TestComputeQuantiles(t *testing.T) {
	s := sample.New([]float64{1, 2, 3, 4, 5})

	sum, err := Compute(s, Options{Quantiles: []float64{0.5, 0.25}})
	require.NoError(t, err)
	assert.Equal(t, []QuantileValue{{0.5, 3}, {0.25, 2}}, sum.Quantiles)
	assert.Nil(t, sum.Frequencies)
	assert.Equal(t, 5, sum.Distinct)
}

func TestComputeUndefinedStatistics(t *testing.T) {
	sum, err := Compute(sample.New([]float64{-1, 2, 3}), Options{})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(sum.GeometricMean))
	// n = 3: the kurtosis correction divides by zero.
	assert.True(t, math.IsNaN(sum.SampleKurtosis))

	single, err := Compute(sample.New([]float64{7}), Options{})
	require.NoError(t, err)
	assert.Equal(t, 7.0, single.Mean)
	assert.True(t, math.IsNaN(single.SampleVariance))
	assert.True(t, math.IsNaN(single.DurbinWatson))
}

func TestComputeErrors(t *testing.T) {
	_, err := Compute(sample.New(nil), Options{})
	assert.True(t, errors.Is(err, descriptive.ErrInvalidArgument))

	_, err = Compute(sample.New([]float64{1, 2, 3}), Options{TrimLeft: 2, TrimRight: 1})
	assert.True(t, errors.Is(err, descriptive.ErrInvalidArgument))
}

func TestFieldsOrder(t *testing.T) {
	sum, err := Compute(sample.New([]float64{1, 2, 3, 4}), Options{})
	require.NoError(t, err)

	fields := sum.Fields()
	assert.Equal(t, "size", fields[0].Name)
	assert.Equal(t, 4.0, fields[0].Value)
	assert.Equal(t, "durbin_watson", fields[len(fields)-1].Name)
}

func TestSummaryJSONKeys(t *testing.T) {
	s := sample.NewNamed("scores", []float64{4, 2, 9, 4, 5, 7, 4, 5})
	sum, err := Compute(s, Options{Frequencies: true})
	require.NoError(t, err)

	data, err := json.Marshal(sum)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	for _, f := range sum.Fields() {
		assert.Contains(t, got, f.Name)
	}
	assert.Contains(t, got, "quantiles")
	assert.Contains(t, got, "frequencies")
	assert.NotContains(t, got, "SumOfSquares")
	assert.InDelta(t, 232.0, got["sum_of_squares"], 0)
}
