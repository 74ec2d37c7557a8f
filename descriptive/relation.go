package descriptive

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Covariance returns the sample covariance of data1 and data2, accumulated
// in a single numerically stable pass.
func Covariance(data1, data2 []float64) (float64, error) {
	if err := checkSameLength("covariance", data1, data2); err != nil {
		return 0, err
	}
	size := len(data1)
	sumx, sumy := data1[0], data2[0]
	sxy := 0.0
	for i := 1; i < size; i++ {
		x := data1[i]
		y := data2[i]
		sumx += x
		sxy += (x - sumx/float64(i+1)) * (y - sumy/float64(i))
		sumy += y
	}
	return sxy / float64(size-1), nil
}

// CovarianceTwoPass returns the sample covariance computed from both means
// first and then the sum of cross deviations. It is slower than Covariance
// and agrees with it up to rounding.
func CovarianceTwoPass(data1, data2 []float64) (float64, error) {
	if err := checkSameLength("covariance", data1, data2); err != nil {
		return 0, err
	}
	mean1 := Mean(data1)
	mean2 := Mean(data2)
	sumOfProducts := 0.0
	for i := range data1 {
		sumOfProducts += (data1[i] - mean1) * (data2[i] - mean2)
	}
	return sumOfProducts / float64(len(data1)-1), nil
}

// Correlation returns Covariance(data1, data2) / (sd1·sd2).
func Correlation(data1 []float64, standardDeviation1 float64, data2 []float64, standardDeviation2 float64) (float64, error) {
	cov, err := Covariance(data1, data2)
	if err != nil {
		return 0, err
	}
	return cov / (standardDeviation1 * standardDeviation2), nil
}

// AutoCorrelation returns the lag-k autocorrelation
//
//	Σ_{i=lag..n-1} (data[i]-mean)(data[i-lag]-mean) / ((n-lag)·variance)
func AutoCorrelation(data []float64, lag int, mean, variance float64) (float64, error) {
	n := len(data)
	if lag < 0 || lag >= n {
		return 0, errors.Wrapf(ErrIndexRange, "lag %d too large for size %d", lag, n)
	}
	run := 0.0
	for i := lag; i < n; i++ {
		run += (data[i] - mean) * (data[i-lag] - mean)
	}
	return (run / float64(n-lag)) / variance, nil
}

// Lag1 returns the lag-1 autocorrelation estimated by running averages of
// the lagged cross products and the squared deviations. It is a distinct
// estimator from AutoCorrelation(data, 1, ...) and does not give the same
// value. An empty sample yields NaN.
func Lag1(data []float64, mean float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	q := 0.0
	v := (data[0] - mean) * (data[0] - mean)
	for i := 1; i < len(data); i++ {
		delta0 := data[i-1] - mean
		delta1 := data[i] - mean
		q += (delta0*delta1 - q) / float64(i+1)
		v += (delta1*delta1 - v) / float64(i+1)
	}
	return q / v
}

// DurbinWatson returns Σ_{i=1..n-1}(x[i]-x[i-1])² / Σ_{i=0..n-1} x[i]².
func DurbinWatson(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, errors.Wrap(ErrInvalidArgument, "durbin-watson: data must contain at least two values")
	}
	run := 0.0
	runSq := data[0] * data[0]
	for i := 1; i < len(data); i++ {
		x := data[i] - data[i-1]
		run += x * x
		runSq += data[i] * data[i]
	}
	return run / runSq, nil
}
