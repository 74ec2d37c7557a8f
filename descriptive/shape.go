package descriptive

import "math"

// MomentFromPowerSums returns the k-th moment about c,
//
//	Σ_{i=0..k} (-1)^i · C(k,i) · c^i · sumOfPowers[k-i] / size
//
// where sumOfPowers[j] holds Σx^j (so sumOfPowers[0] is the sample size).
// sumOfPowers must have at least k+1 elements.
func MomentFromPowerSums(k int, c float64, size int, sumOfPowers []float64) float64 {
	sum := 0.0
	sign := 1.0
	for i := 0; i <= k; i++ {
		var y float64
		switch i {
		case 0:
			y = 1
		case 1:
			y = c
		case 2:
			y = c * c
		case 3:
			y = c * c * c
		default:
			y = math.Pow(c, float64(i))
		}
		sum += sign * binomial(k, i) * y * sumOfPowers[k-i]
		sign = -sign
	}
	return sum / float64(size)
}

// MomentFromData returns the k-th moment about c, Σ(data[i]-c)^k / n.
func MomentFromData(data []float64, k int, c float64) float64 {
	return SumOfPowerDeviations(data, k, c) / float64(len(data))
}

// binomial returns the binomial coefficient C(n, k).
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	b := 1.0
	for i := 1; i <= k; i++ {
		b = b * float64(n-k+i) / float64(i)
	}
	return math.Round(b)
}

// Skew returns moment3/σ³.
func Skew(moment3, standardDeviation float64) float64 {
	return moment3 / (standardDeviation * standardDeviation * standardDeviation)
}

// SkewOf returns the skew of data given its mean and standard deviation.
func SkewOf(data []float64, mean, standardDeviation float64) float64 {
	return Skew(MomentFromData(data, 3, mean), standardDeviation)
}

// Kurtosis returns the excess kurtosis moment4/σ⁴ - 3 (zero for a normal
// distribution).
func Kurtosis(moment4, standardDeviation float64) float64 {
	return -3 + moment4/(standardDeviation*standardDeviation*standardDeviation*standardDeviation)
}

// KurtosisOf returns the excess kurtosis of data given its mean and
// standard deviation.
func KurtosisOf(data []float64, mean, standardDeviation float64) float64 {
	return Kurtosis(MomentFromData(data, 4, mean), standardDeviation)
}

// SampleSkew returns the bias-corrected skew (Sokal & Rohlf)
//
//	n·m3 / ((n-1)(n-2)·s³),  m3 = moment3·n,  s = sqrt(sampleVariance).
//
// Undefined for n <= 2; the division is left unguarded and yields Inf or NaN.
func SampleSkew(size int, moment3, sampleVariance float64) float64 {
	n := float64(size)
	s := math.Sqrt(sampleVariance)
	m3 := moment3 * n
	return n * m3 / ((n - 1) * (n - 2) * s * s * s)
}

// SampleSkewOf returns SampleSkew computed from the raw sample.
func SampleSkewOf(data []float64, mean, sampleVariance float64) float64 {
	n := len(data)
	sum := 0.0
	for i := n - 1; i >= 0; i-- {
		s := data[i] - mean
		sum += s * s * s
	}
	return SampleSkew(n, sum/float64(n), sampleVariance)
}

// SampleSkewStandardError returns sqrt(6n(n-1)/((n-2)(n+1)(n+3))).
func SampleSkewStandardError(size int) float64 {
	n := float64(size)
	return math.Sqrt(6 * n * (n - 1) / ((n - 2) * (n + 1) * (n + 3)))
}

// SampleKurtosis returns the bias-corrected excess kurtosis (Sokal & Rohlf)
//
//	m4·n(n+1) / ((n-1)(n-2)(n-3)·s²·s²) - 3(n-1)²/((n-2)(n-3))
//
// with m4 = moment4·n and s² = sampleVariance. Undefined for n <= 3; the
// division is left unguarded and yields Inf or NaN.
func SampleKurtosis(size int, moment4, sampleVariance float64) float64 {
	n := float64(size)
	s2 := sampleVariance
	m4 := moment4 * n
	return m4*n*(n+1)/((n-1)*(n-2)*(n-3)*s2*s2) - 3*(n-1)*(n-1)/((n-2)*(n-3))
}

// SampleKurtosisOf returns SampleKurtosis computed from the raw sample.
func SampleKurtosisOf(data []float64, mean, sampleVariance float64) float64 {
	n := len(data)
	sum := 0.0
	for i := n - 1; i >= 0; i-- {
		s := data[i] - mean
		sum += s * s * s * s
	}
	return SampleKurtosis(n, sum/float64(n), sampleVariance)
}

// SampleKurtosisStandardError returns
// sqrt(24n(n-1)²/((n-3)(n-2)(n+3)(n+5))).
func SampleKurtosisStandardError(size int) float64 {
	n := float64(size)
	return math.Sqrt(24 * n * (n - 1) * (n - 1) / ((n - 3) * (n - 2) * (n + 3) * (n + 5)))
}
