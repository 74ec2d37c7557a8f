package descriptive

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRangeFromTo(t *testing.T) {
	require.NoError(t, CheckRangeFromTo(0, 4, 5))
	require.NoError(t, CheckRangeFromTo(2, 2, 5))
	require.NoError(t, CheckRangeFromTo(3, 2, 5))
	require.NoError(t, CheckRangeFromTo(0, -1, 0))

	for _, c := range [][3]int{{3, 1, 5}, {-1, 2, 5}, {0, 5, 5}, {6, 7, 5}} {
		err := CheckRangeFromTo(c[0], c[1], c[2])
		require.Error(t, err, "from=%d to=%d size=%d", c[0], c[1], c[2])
		assert.True(t, errors.Is(err, ErrIndexRange))
	}

	err := CheckRangeFromTo(3, 1, 5)
	assert.Contains(t, err.Error(), "from: 3, to: 1, size=5")
}

func TestIncrementalUpdate(t *testing.T) {
	data := []float64{3, -2, 8, 1, 5}

	agg := NewRunningAggregate()
	require.NoError(t, IncrementalUpdate(data, 0, len(data)-1, &agg))
	assert.Equal(t, RunningAggregate{Min: -2, Max: 8, Sum: 15, SumOfSquares: 103}, agg)
}

func TestIncrementalUpdateEquivalence(t *testing.T) {
	data := wave(41)
	mid := 17

	whole := NewRunningAggregate()
	require.NoError(t, IncrementalUpdate(data, 0, len(data)-1, &whole))

	halves := NewRunningAggregate()
	require.NoError(t, IncrementalUpdate(data, 0, mid, &halves))
	require.NoError(t, IncrementalUpdate(data, mid+1, len(data)-1, &halves))

	assert.Equal(t, whole.Min, halves.Min)
	assert.Equal(t, whole.Max, halves.Max)
	assert.Equal(t, whole.Sum, halves.Sum)
	assert.Equal(t, whole.SumOfSquares, halves.SumOfSquares)
}

func TestIncrementalUpdateEmptyRange(t *testing.T) {
	agg := NewRunningAggregate()
	require.NoError(t, IncrementalUpdate([]float64{1, 2}, 1, 0, &agg))
	assert.True(t, math.IsInf(agg.Min, 1))
	assert.True(t, math.IsInf(agg.Max, -1))
	assert.Equal(t, 0.0, agg.Sum)
}

func TestIncrementalUpdateBadRange(t *testing.T) {
	agg := NewRunningAggregate()
	err := IncrementalUpdate([]float64{1, 2, 3, 4, 5}, 3, 1, &agg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexRange))
	assert.Equal(t, NewRunningAggregate(), agg)
}

func TestSumsOfPowersFastPaths(t *testing.T) {
	data := wave(29)
	last := len(data) - 1

	for to := 2; to <= 4; to++ {
		fast := make([]float64, to)
		require.NoError(t, IncrementalUpdateSumsOfPowers(data, 0, last, 1, to, fast))

		generic := make([]float64, to)
		incrementalUpdateSumsOfPowersGeneric(data, 0, last, 1, to-1, generic)

		small := make([]float64, to)
		for j := 1; j <= to; j++ {
			small[j-1] = sumOfPowerDeviations(data, j, 0, 0, last)
		}

		for j := range fast {
			tol := 1e-12 * math.Abs(generic[j])
			assert.InDelta(t, generic[j], fast[j], tol, "to=%d power=%d", to, j+1)
			assert.InDelta(t, small[j], fast[j], tol, "to=%d power=%d", to, j+1)
		}
	}
}

func TestSumsOfPowersAccumulates(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	sums := make([]float64, 4)
	require.NoError(t, IncrementalUpdateSumsOfPowers(data, 0, 1, 1, 4, sums))
	require.NoError(t, IncrementalUpdateSumsOfPowers(data, 2, 3, 1, 4, sums))
	assert.Equal(t, []float64{10, 30, 100, 354}, sums)

	sums = []float64{0, 0}
	require.NoError(t, IncrementalUpdateSumsOfPowers(data, 0, 3, 1, 2, sums))
	require.NoError(t, IncrementalUpdateSumsOfPowers(data, 0, 3, 1, 2, sums))
	assert.Equal(t, []float64{20, 60}, sums)
}

func TestSumsOfPowersGeneralPath(t *testing.T) {
	data := []float64{1.5, 2, 3}

	sums := make([]float64, 6)
	require.NoError(t, IncrementalUpdateSumsOfPowers(data, 0, 2, 2, 7, sums))
	for j := 2; j <= 7; j++ {
		assert.InDelta(t, SumOfPowerDeviations(data, j, 0), sums[j-2], 1e-9, "power=%d", j)
	}

	sums = make([]float64, 3)
	require.NoError(t, IncrementalUpdateSumsOfPowers(data, 0, 2, -2, 0, sums))
	assert.InDelta(t, 1/2.25+0.25+1.0/9, sums[0], 1e-12)
	assert.InDelta(t, 1/1.5+0.5+1.0/3, sums[1], 1e-12)
	assert.InDelta(t, 3.0, sums[2], 1e-12)
}

func TestSumsOfPowersErrors(t *testing.T) {
	data := []float64{1, 2, 3}

	err := IncrementalUpdateSumsOfPowers(data, 0, 2, 1, 4, make([]float64, 3))
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	err = IncrementalUpdateSumsOfPowers(data, 4, 5, 1, 2, make([]float64, 2))
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	err = IncrementalUpdateSumsOfPowers(data, 1, 5, 1, 2, make([]float64, 2))
	assert.True(t, errors.Is(err, ErrIndexRange))
}

func TestIncrementalWeightedUpdate(t *testing.T) {
	data := []float64{1, 2, 3}
	weights := []float64{2, 1, 0.5}

	var agg WeightedAggregate
	require.NoError(t, IncrementalWeightedUpdate(data, weights, 0, 1, &agg))
	require.NoError(t, IncrementalWeightedUpdate(data, weights, 2, 2, &agg))
	assert.InDelta(t, 2+2+1.5, agg.Sum, 1e-12)
	assert.InDelta(t, 2+4+4.5, agg.SumOfSquares, 1e-12)

	err := IncrementalWeightedUpdate(data, weights[:2], 0, 1, &agg)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	err = IncrementalWeightedUpdate(data, weights, 2, 0, &agg)
	assert.True(t, errors.Is(err, ErrIndexRange))
}
