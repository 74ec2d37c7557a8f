package correlogram

import (
	"math"

	"github.com/sartorproj/godescriptive/descriptive"
	"github.com/sartorproj/godescriptive/sample"
)

// ACF calculates the autocorrelation function for lags 0 to maxLag.
// Returns nil for an empty or constant sample.
//
// r(k) = Σ(x[i]-mean)(x[i-k]-mean) / Σ(x[i]-mean)², which is
// descriptive.AutoCorrelation rescaled by (n-k)/n.
func ACF(s *sample.Sample, maxLag int) []float64 {
	n := s.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := s.Mean()
	variance := descriptive.MomentFromData(s.Values, 2, mean)
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		r, err := descriptive.AutoCorrelation(s.Values, k, mean, variance)
		if err != nil {
			return nil
		}
		acf[k] = r * float64(n-k) / float64(n)
	}
	return acf
}

// PACF calculates the partial autocorrelation function using the
// Durbin-Levinson algorithm. Index 0 is always 1. A lag whose recursion
// denominator is zero is left at 0. Returns nil when maxLag < 1 or the ACF
// is undefined.
func PACF(s *sample.Sample, maxLag int) []float64 {
	n := s.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 1 {
		return nil
	}

	acf := ACF(s, maxLag)
	if acf == nil {
		return nil
	}

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1

	phi := make([][]float64, maxLag+1)
	for i := range phi {
		phi[i] = make([]float64, maxLag+1)
	}
	phi[1][1] = acf[1]
	pacf[1] = acf[1]

	for k := 2; k <= maxLag; k++ {
		num := acf[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= phi[k-1][j] * acf[k-j]
			den -= phi[k-1][j] * acf[j]
		}
		if den == 0 {
			continue
		}

		phi[k][k] = num / den
		pacf[k] = phi[k][k]
		for j := 1; j < k; j++ {
			phi[k][j] = phi[k-1][j] - phi[k][k]*phi[k-1][k-j]
		}
	}

	return pacf
}

// Correlogram holds ACF and PACF values with their 95% confidence bound.
type Correlogram struct {
	Lags      []int     `json:"lags" yaml:"lags"`
	ACF       []float64 `json:"acf" yaml:"acf"`
	PACF      []float64 `json:"pacf" yaml:"pacf"`
	ConfBound float64   `json:"conf_bound" yaml:"conf_bound"` // ±1.96/sqrt(n)
}

// Compute calculates ACF and PACF up to maxLag. Returns nil when the ACF is
// undefined. PACF is nil when maxLag < 1.
func Compute(s *sample.Sample, maxLag int) *Correlogram {
	acf := ACF(s, maxLag)
	if acf == nil {
		return nil
	}

	lags := make([]int, len(acf))
	for i := range lags {
		lags[i] = i
	}

	return &Correlogram{
		Lags:      lags,
		ACF:       acf,
		PACF:      PACF(s, len(acf)-1),
		ConfBound: 1.96 / math.Sqrt(float64(s.Len())),
	}
}

// SignificantLags returns the lags (excluding 0) whose value exceeds the
// confidence bound in absolute value.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}
