// Package correlogram provides serial-correlation diagnostics for samples.
//
// The autocorrelation function is derived from descriptive.AutoCorrelation;
// partial autocorrelations use the Durbin-Levinson recursion.
//
//	c := correlogram.Compute(s, 20)
//	significant := correlogram.SignificantLags(c.ACF, c.ConfBound)
//
// # Portmanteau tests
//
//	lb := correlogram.LjungBox(s, 10, 0)
//	if lb != nil && lb.PValue < 0.05 {
//	    // significant autocorrelation up to lag 10
//	}
//
//	dw := correlogram.DurbinWatson(s.Values)
package correlogram
