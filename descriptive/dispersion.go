package descriptive

import "math"

// smallSampleLimit is the largest size for which SampleStandardDeviation
// uses the exact Gamma-function correction factor.
const smallSampleLimit = 30

// Variance returns the population variance (sumOfSquares - mean*sum)/size.
func Variance(size int, sum, sumOfSquares float64) float64 {
	mean := sum / float64(size)
	return (sumOfSquares - mean*sum) / float64(size)
}

// SampleVariance returns the Bessel-corrected variance
// (sumOfSquares - mean*sum)/(size-1).
func SampleVariance(size int, sum, sumOfSquares float64) float64 {
	mean := sum / float64(size)
	return (sumOfSquares - mean*sum) / float64(size-1)
}

// SampleVarianceOf returns Σ(data[i]-mean)² / (n-1).
func SampleVarianceOf(data []float64, mean float64) float64 {
	sum := 0.0
	for i := len(data) - 1; i >= 0; i-- {
		delta := data[i] - mean
		sum += delta * delta
	}
	return sum / float64(len(data)-1)
}

// StandardDeviation returns sqrt(variance).
func StandardDeviation(variance float64) float64 {
	return math.Sqrt(variance)
}

// VarianceFromStandardDeviation returns standardDeviation².
func VarianceFromStandardDeviation(standardDeviation float64) float64 {
	return standardDeviation * standardDeviation
}

// StandardError returns sqrt(variance/size).
func StandardError(size int, variance float64) float64 {
	return math.Sqrt(variance / float64(size))
}

// SampleStandardDeviation returns the unbiased standard deviation
// Cn*sqrt(sampleVariance).
//
// For n > 30 Cn is approximated by 1 + 1/(4(n-1)); otherwise it is computed
// exactly as sqrt((n-1)/2)·Γ((n-1)/2)/Γ(n/2). The two branches do not meet
// exactly at n = 30.
func SampleStandardDeviation(size int, sampleVariance float64) float64 {
	n := float64(size)
	s := math.Sqrt(sampleVariance)
	var cn float64
	if size > smallSampleLimit {
		cn = 1 + 1/(4*(n-1))
	} else {
		cn = math.Sqrt((n-1)*0.5) * math.Gamma((n-1)*0.5) / math.Gamma(n*0.5)
	}
	return cn * s
}

// PooledVariance returns the size-weighted mean of two sub-sample variances.
func PooledVariance(size1 int, variance1 float64, size2 int, variance2 float64) float64 {
	return (float64(size1)*variance1 + float64(size2)*variance2) / float64(size1+size2)
}

// SampleWeightedVariance returns
// (sumOfSquaredProducts - sumOfProducts²/sumOfWeights) / (sumOfWeights - 1).
func SampleWeightedVariance(sumOfWeights, sumOfProducts, sumOfSquaredProducts float64) float64 {
	return (sumOfSquaredProducts - sumOfProducts*sumOfProducts/sumOfWeights) / (sumOfWeights - 1)
}

// MeanDeviation returns the mean absolute deviation Σ|data[i]-mean| / n.
func MeanDeviation(data []float64, mean float64) float64 {
	sum := 0.0
	for i := len(data) - 1; i >= 0; i-- {
		sum += math.Abs(data[i] - mean)
	}
	return sum / float64(len(data))
}

// SumOfSquaredDeviations returns variance*(size-1), the numerator of the
// sample variance.
func SumOfSquaredDeviations(size int, variance float64) float64 {
	return variance * float64(size-1)
}

// RMS returns the root mean square sqrt(sumOfSquares/size).
func RMS(size int, sumOfSquares float64) float64 {
	return math.Sqrt(sumOfSquares / float64(size))
}

// WeightedRMS returns sumOfProducts/sumOfSquaredProducts.
func WeightedRMS(sumOfProducts, sumOfSquaredProducts float64) float64 {
	return sumOfProducts / sumOfSquaredProducts
}

// Standardize replaces every element of data in place by its z-score
// (data[i]-mean)/standardDeviation.
func Standardize(data []float64, mean, standardDeviation float64) {
	for i := range data {
		data[i] = (data[i] - mean) / standardDeviation
	}
}
