package descriptive

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Mean returns the arithmetic mean of data.
// An empty sample yields NaN (0/0) rather than an error.
func Mean(data []float64) float64 {
	return Sum(data) / float64(len(data))
}

// GeometricMean returns exp(sumOfLogarithms/size).
func GeometricMean(size int, sumOfLogarithms float64) float64 {
	return math.Exp(sumOfLogarithms / float64(size))
}

// GeometricMeanOf returns the geometric mean of data. All values must be
// positive; a non-positive value makes the result NaN (or 0 for an exact
// zero), it is not reported as an error.
func GeometricMeanOf(data []float64) float64 {
	return GeometricMean(len(data), SumOfLogarithms(data))
}

// HarmonicMean returns size/sumOfInversions.
func HarmonicMean(size int, sumOfInversions float64) float64 {
	return float64(size) / sumOfInversions
}

// WeightedMean returns Σ(data[i]*weights[i]) / Σweights[i].
func WeightedMean(data, weights []float64) (float64, error) {
	if err := checkSameLength("weighted mean", data, weights); err != nil {
		return 0, err
	}
	sum := 0.0
	weightsSum := 0.0
	for i := len(data) - 1; i >= 0; i-- {
		w := weights[i]
		sum += data[i] * w
		weightsSum += w
	}
	return sum / weightsSum, nil
}

// Median returns Quantile(sortedData, 0.5).
//
// This is the interpolated order statistic, which differs from the
// average of the two middle elements only when the interpolation point does
// not fall on an index. For odd n it is exactly sortedData[(n-1)/2].
func Median(sortedData []float64) float64 {
	return Quantile(sortedData, 0.5)
}

// TrimmedMean returns the mean of sortedData after removing the left
// smallest and right largest values. mean must be the mean of the whole
// sample; it is corrected once per removed value, all left trims first.
func TrimmedMean(sortedData []float64, mean float64, left, right int) (float64, error) {
	n := len(sortedData)
	if err := checkTrim("trimmed mean", n, left, right); err != nil {
		return 0, err
	}
	n0 := n
	for i := 0; i < left; i++ {
		n--
		mean += (mean - sortedData[i]) / float64(n)
	}
	for i := 0; i < right; i++ {
		n--
		mean += (mean - sortedData[n0-1-i]) / float64(n)
	}
	return mean, nil
}

// WinsorizedMean returns the mean of sortedData after replacing the left
// smallest values with sortedData[left] and the right largest values with
// sortedData[n-1-right]. mean must be the mean of the whole sample.
func WinsorizedMean(sortedData []float64, mean float64, left, right int) (float64, error) {
	n := len(sortedData)
	if err := checkTrim("winsorized mean", n, left, right); err != nil {
		return 0, err
	}
	size := float64(n)
	leftElement := sortedData[left]
	for i := 0; i < left; i++ {
		mean += (leftElement - sortedData[i]) / size
	}
	rightElement := sortedData[n-1-right]
	for i := 0; i < right; i++ {
		mean += (rightElement - sortedData[n-1-i]) / size
	}
	return mean, nil
}

func checkTrim(op string, n, left, right int) error {
	if n == 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s: empty data", op)
	}
	if left < 0 || right < 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s: negative trim (left=%d, right=%d)", op, left, right)
	}
	if left+right >= n {
		return errors.Wrapf(ErrInvalidArgument, "%s: not enough data (left=%d, right=%d, size=%d)", op, left, right, n)
	}
	return nil
}

// Min returns the smallest element of data.
func Min(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, errors.Wrap(ErrInvalidArgument, "min: empty data")
	}
	m := data[len(data)-1]
	for i := len(data) - 2; i >= 0; i-- {
		if data[i] < m {
			m = data[i]
		}
	}
	return m, nil
}

// Max returns the largest element of data.
func Max(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, errors.Wrap(ErrInvalidArgument, "max: empty data")
	}
	m := data[len(data)-1]
	for i := len(data) - 2; i >= 0; i-- {
		if data[i] > m {
			m = data[i]
		}
	}
	return m, nil
}

// PooledMean returns the size-weighted mean of two sub-sample means.
func PooledMean(size1 int, mean1 float64, size2 int, mean2 float64) float64 {
	return (float64(size1)*mean1 + float64(size2)*mean2) / float64(size1+size2)
}

// Sum returns Σdata[i].
func Sum(data []float64) float64 {
	return sumOfPowerDeviations(data, 1, 0, 0, len(data)-1)
}

// SumOfSquares returns Σdata[i]².
func SumOfSquares(data []float64) float64 {
	return sumOfPowerDeviations(data, 2, 0, 0, len(data)-1)
}

// SumOfLogarithms returns Σln(data[i]).
func SumOfLogarithms(data []float64) float64 {
	return sumOfLogarithms(data, 0, len(data)-1)
}

// SumOfLogarithmsRange returns Σln(data[i]) over the inclusive range
// [from, to]. The empty range from == to+1 sums to 0.
func SumOfLogarithmsRange(data []float64, from, to int) (float64, error) {
	if err := CheckRangeFromTo(from, to, len(data)); err != nil {
		return 0, err
	}
	return sumOfLogarithms(data, from, to), nil
}

func sumOfLogarithms(data []float64, from, to int) float64 {
	sum := 0.0
	for i := from; i <= to; i++ {
		sum += math.Log(data[i])
	}
	return sum
}

// SumOfInversions returns Σ1/data[i].
func SumOfInversions(data []float64) float64 {
	return sumOfPowerDeviations(data, -1, 0, 0, len(data)-1)
}

// SumOfInversionsRange returns Σ1/data[i] over the inclusive range
// [from, to].
func SumOfInversionsRange(data []float64, from, to int) (float64, error) {
	if err := CheckRangeFromTo(from, to, len(data)); err != nil {
		return 0, err
	}
	return sumOfPowerDeviations(data, -1, 0, from, to), nil
}

// Product returns Πdata[i]; 1 for an empty sample.
func Product(data []float64) float64 {
	p := 1.0
	for _, v := range data {
		p *= v
	}
	return p
}

// SumOfPowerDeviations returns Σ(data[i]-c)^k.
func SumOfPowerDeviations(data []float64, k int, c float64) float64 {
	return sumOfPowerDeviations(data, k, c, 0, len(data)-1)
}

// sumOfPowerDeviations returns Σ(data[i]-c)^k over the inclusive range
// [from, to]. Exponents -2..5 avoid math.Pow.
func sumOfPowerDeviations(data []float64, k int, c float64, from, to int) float64 {
	sum := 0.0
	switch k {
	case -2:
		for i := from; i <= to; i++ {
			v := data[i] - c
			sum += 1 / (v * v)
		}
	case -1:
		for i := from; i <= to; i++ {
			sum += 1 / (data[i] - c)
		}
	case 0:
		sum += float64(to - from + 1)
	case 1:
		for i := from; i <= to; i++ {
			sum += data[i] - c
		}
	case 2:
		for i := from; i <= to; i++ {
			v := data[i] - c
			sum += v * v
		}
	case 3:
		for i := from; i <= to; i++ {
			v := data[i] - c
			sum += v * v * v
		}
	case 4:
		for i := from; i <= to; i++ {
			v := data[i] - c
			sum += v * v * v * v
		}
	case 5:
		for i := from; i <= to; i++ {
			v := data[i] - c
			sum += v * v * v * v * v
		}
	default:
		for i := from; i <= to; i++ {
			sum += math.Pow(data[i]-c, float64(k))
		}
	}
	return sum
}
