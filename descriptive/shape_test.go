package descriptive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func powerSums(t *testing.T, data []float64, maxPower int) []float64 {
	t.Helper()

	sums := make([]float64, maxPower+1)
	require.NoError(t, IncrementalUpdateSumsOfPowers(data, 0, len(data)-1, 0, maxPower, sums))
	return sums
}

func TestMomentFromPowerSums(t *testing.T) {
	data := []float64{1, 2, 3, 4, 10}
	mean := Mean(data)
	sums := powerSums(t, data, 5)

	assert.Equal(t, float64(len(data)), sums[0])
	for k := 0; k <= 5; k++ {
		assert.InDelta(t, MomentFromData(data, k, mean), MomentFromPowerSums(k, mean, len(data), sums), 1e-8, "k=%d", k)
		assert.InDelta(t, MomentFromData(data, k, 1.5), MomentFromPowerSums(k, 1.5, len(data), sums), 1e-8, "k=%d", k)
	}

	// About zero the moment is just the mean of the powers.
	assert.InDelta(t, sums[2]/5, MomentFromPowerSums(2, 0, len(data), sums), 1e-12)
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1.0, binomial(5, 0))
	assert.Equal(t, 6.0, binomial(4, 2))
	assert.Equal(t, 120.0, binomial(10, 3))
	assert.Equal(t, 0.0, binomial(3, 4))
}

func TestSkewAndKurtosis(t *testing.T) {
	assert.Equal(t, 1.0, Skew(8, 2))
	assert.Equal(t, 0.0, Kurtosis(48, 2))

	symmetric := []float64{1, 2, 3, 4, 5}
	mean := Mean(symmetric)
	sd := StandardDeviation(Variance(5, Sum(symmetric), SumOfSquares(symmetric)))
	assert.InDelta(t, 0.0, SkewOf(symmetric, mean, sd), 1e-12)
	// Discrete uniform on 5 points: m4/σ⁴ = 6.8/4 = 1.7.
	assert.InDelta(t, 1.7-3, KurtosisOf(symmetric, mean, sd), 1e-12)
}

func TestSampleSkewAndKurtosis(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean := Mean(data)
	sv := SampleVarianceOf(data, mean)
	n := len(data)

	assert.InDelta(t, 0.8184875533567996, SampleSkewOf(data, mean, sv), 1e-12)
	assert.InDelta(t, 0.8184875533567996, SampleSkew(n, MomentFromData(data, 3, mean), sv), 1e-12)

	assert.InDelta(t, 0.9406249999999998, SampleKurtosisOf(data, mean, sv), 1e-12)
	assert.InDelta(t, 0.9406249999999998, SampleKurtosis(n, MomentFromData(data, 4, mean), sv), 1e-12)
}

func TestSampleShapeUndefinedForSmallN(t *testing.T) {
	// Not guarded: the formulas degenerate to Inf or NaN.
	skew := SampleSkew(2, 0.5, 1)
	assert.True(t, math.IsInf(skew, 0) || math.IsNaN(skew))

	assert.True(t, math.IsNaN(SampleKurtosis(3, 2, 1)))
	assert.True(t, math.IsInf(SampleKurtosisStandardError(3), 0) || math.IsNaN(SampleKurtosisStandardError(3)))
}

func TestShapeStandardErrors(t *testing.T) {
	assert.InDelta(t, 0.6870429186215167, SampleSkewStandardError(10), 1e-12)
	assert.InDelta(t, 1.334248769989982, SampleKurtosisStandardError(10), 1e-12)
}
