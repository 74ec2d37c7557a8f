package descriptive

import (
	"math"

	"github.com/cockroachdb/errors"
)

// RunningAggregate is the running [min, max, sum, sumOfSquares] state
// extended by IncrementalUpdate. The zero value is not a valid starting
// state; use NewRunningAggregate.
type RunningAggregate struct {
	Min          float64
	Max          float64
	Sum          float64
	SumOfSquares float64
}

// NewRunningAggregate returns the empty aggregate [+Inf, -Inf, 0, 0].
func NewRunningAggregate() RunningAggregate {
	return RunningAggregate{
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}
}

// IncrementalUpdate extends inOut over data[from..to] (inclusive).
// Feeding contiguous ranges one after another is equivalent to a single call
// over their union.
func IncrementalUpdate(data []float64, from, to int, inOut *RunningAggregate) error {
	if err := CheckRangeFromTo(from, to, len(data)); err != nil {
		return err
	}
	lo, hi := inOut.Min, inOut.Max
	sum, sumSquares := inOut.Sum, inOut.SumOfSquares
	for i := from; i <= to; i++ {
		element := data[i]
		sum += element
		sumSquares += element * element
		if element < lo {
			lo = element
		}
		if element > hi {
			hi = element
		}
	}
	inOut.Min, inOut.Max = lo, hi
	inOut.Sum, inOut.SumOfSquares = sum, sumSquares
	return nil
}

// IncrementalUpdateSumsOfPowers adds Σdata[i]^j over data[from..to] to
// sumOfPowers[j-fromSumIndex] for every j in [fromSumIndex, toSumIndex].
//
// fromSumIndex == 1 with toSumIndex in {2, 3, 4} (the sums needed for
// moments up to kurtosis) and small exponent ranges within [-1, 5] take
// dedicated paths; every path yields the same sums up to floating point
// associativity.
func IncrementalUpdateSumsOfPowers(
	data []float64, from, to int, fromSumIndex, toSumIndex int, sumOfPowers []float64,
) error {
	lastIndex := toSumIndex - fromSumIndex
	if from > len(data) || lastIndex < 0 || lastIndex+1 > len(sumOfPowers) {
		return errors.Wrapf(ErrInvalidArgument,
			"sums of powers: from=%d, size=%d, exponents [%d, %d], buffer length %d",
			from, len(data), fromSumIndex, toSumIndex, len(sumOfPowers))
	}
	if err := CheckRangeFromTo(from, to, len(data)); err != nil {
		return err
	}

	if fromSumIndex == 1 {
		switch toSumIndex {
		case 2:
			var sum, sumSquares float64
			for i := from; i <= to; i++ {
				element := data[i]
				sum += element
				sumSquares += element * element
			}
			sumOfPowers[0] += sum
			sumOfPowers[1] += sumSquares
			return nil
		case 3:
			var sum, sumSquares, sumCubes float64
			for i := from; i <= to; i++ {
				element := data[i]
				sum += element
				sumSquares += element * element
				sumCubes += element * element * element
			}
			sumOfPowers[0] += sum
			sumOfPowers[1] += sumSquares
			sumOfPowers[2] += sumCubes
			return nil
		case 4:
			var sum, sumSquares, sumCubes, sumQuads float64
			for i := from; i <= to; i++ {
				element := data[i]
				sum += element
				squared := element * element
				sumSquares += squared
				sumCubes += squared * element
				sumQuads += squared * squared
			}
			sumOfPowers[0] += sum
			sumOfPowers[1] += sumSquares
			sumOfPowers[2] += sumCubes
			sumOfPowers[3] += sumQuads
			return nil
		}
	}

	if fromSumIndex == toSumIndex || (fromSumIndex >= -1 && toSumIndex <= 5) {
		for j := fromSumIndex; j <= toSumIndex; j++ {
			sumOfPowers[j-fromSumIndex] += sumOfPowerDeviations(data, j, 0, from, to)
		}
		return nil
	}

	incrementalUpdateSumsOfPowersGeneric(data, from, to, fromSumIndex, lastIndex, sumOfPowers)
	return nil
}

// incrementalUpdateSumsOfPowersGeneric computes successive powers by
// repeated multiplication starting from data[i]^fromSumIndex.
func incrementalUpdateSumsOfPowersGeneric(
	data []float64, from, to int, fromSumIndex, lastIndex int, sumOfPowers []float64,
) {
	for i := from; i <= to; i++ {
		element := data[i]
		pow := math.Pow(element, float64(fromSumIndex))
		for j := 0; j < lastIndex; j++ {
			sumOfPowers[j] += pow
			pow *= element
		}
		sumOfPowers[lastIndex] += pow
	}
}

// WeightedAggregate is the running [sum, sumOfSquares] state of a weighted
// sequence extended by IncrementalWeightedUpdate.
type WeightedAggregate struct {
	Sum          float64
	SumOfSquares float64
}

// IncrementalWeightedUpdate adds Σdata[i]·weights[i] to inOut.Sum and
// Σdata[i]²·weights[i] to inOut.SumOfSquares over data[from..to].
func IncrementalWeightedUpdate(data, weights []float64, from, to int, inOut *WeightedAggregate) error {
	if err := CheckRangeFromTo(from, to, len(data)); err != nil {
		return err
	}
	if len(data) != len(weights) {
		return errors.Wrapf(ErrInvalidArgument, "from=%d, to=%d, data size=%d, weights size=%d",
			from, to, len(data), len(weights))
	}
	sum, sumOfSquares := inOut.Sum, inOut.SumOfSquares
	for i := from; i <= to; i++ {
		element := data[i]
		prod := element * weights[i]
		sum += prod
		sumOfSquares += element * prod
	}
	inOut.Sum, inOut.SumOfSquares = sum, sumOfSquares
	return nil
}
