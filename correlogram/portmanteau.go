package correlogram

import (
	"github.com/sartorproj/godescriptive/descriptive"
	"github.com/sartorproj/godescriptive/sample"
	"gonum.org/v1/gonum/stat/distuv"
)

// minPortmanteauSize is the smallest sample the portmanteau tests accept.
const minPortmanteauSize = 10

// TestResult is the result of a portmanteau test for autocorrelation.
type TestResult struct {
	Statistic float64 `json:"statistic" yaml:"statistic"`
	PValue    float64 `json:"p_value" yaml:"p_value"`
	Lags      int     `json:"lags" yaml:"lags"`
	DOF       int     `json:"dof" yaml:"dof"`
}

// LjungBox performs the Ljung-Box test. The null hypothesis is that there is
// no autocorrelation up to the given lag. fitdf is the number of fitted
// parameters subtracted from the degrees of freedom. Returns nil for samples
// shorter than 10, lags < 1, or a constant sample.
func LjungBox(s *sample.Sample, lags, fitdf int) *TestResult {
	return portmanteau(s, lags, fitdf, func(n, k int, r float64) float64 {
		return float64(n*(n+2)) * r * r / float64(n-k)
	})
}

// BoxPierce performs the Box-Pierce test, n·Σr(k)².
func BoxPierce(s *sample.Sample, lags, fitdf int) *TestResult {
	return portmanteau(s, lags, fitdf, func(n, _ int, r float64) float64 {
		return float64(n) * r * r
	})
}

func portmanteau(s *sample.Sample, lags, fitdf int, term func(n, k int, r float64) float64) *TestResult {
	n := s.Len()
	if n < minPortmanteauSize || lags < 1 {
		return nil
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(s, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += term(n, k, acf[k])
	}

	dof := max(lags-fitdf, 1)
	chi := distuv.ChiSquared{K: float64(dof)}

	return &TestResult{
		Statistic: q,
		PValue:    1 - chi.CDF(q),
		Lags:      lags,
		DOF:       dof,
	}
}

// DurbinWatsonResult is the Durbin-Watson statistic for a sequence of
// residuals:
//
//	d ≈ 2: no autocorrelation
//	d < 2: positive autocorrelation
//	d > 2: negative autocorrelation
type DurbinWatsonResult struct {
	Statistic float64 `json:"statistic" yaml:"statistic"`
	Lag1      float64 `json:"lag1" yaml:"lag1"`
}

// DurbinWatson calculates the Durbin-Watson statistic and the lag-1
// autocorrelation of residuals. Returns nil for fewer than two values or
// all-zero residuals.
func DurbinWatson(residuals []float64) *DurbinWatsonResult {
	d, err := descriptive.DurbinWatson(residuals)
	if err != nil {
		return nil
	}
	if descriptive.SumOfSquares(residuals) == 0 {
		return nil
	}
	return &DurbinWatsonResult{
		Statistic: d,
		Lag1:      descriptive.Lag1(residuals, descriptive.Mean(residuals)),
	}
}
