package summary

import (
	"github.com/sartorproj/godescriptive/descriptive"
	"github.com/sartorproj/godescriptive/sample"
)

// Relation describes the linear relationship between two paired samples.
type Relation struct {
	Size        int     `json:"size" yaml:"size"`
	Covariance  float64 `json:"covariance" yaml:"covariance"`
	Correlation float64 `json:"correlation" yaml:"correlation"`
}

// Relate computes the covariance and correlation of x and y, which must
// have the same non-zero length.
func Relate(x, y *sample.Sample) (*Relation, error) {
	cov, err := descriptive.Covariance(x.Values, y.Values)
	if err != nil {
		return nil, err
	}
	corr, err := descriptive.Correlation(x.Values, x.Std(), y.Values, y.Std())
	if err != nil {
		return nil, err
	}
	return &Relation{Size: x.Len(), Covariance: cov, Correlation: corr}, nil
}

// Pooled holds the combined mean and sample variance of two summaries.
type Pooled struct {
	Size           int     `json:"size" yaml:"size"`
	Mean           float64 `json:"mean" yaml:"mean"`
	SampleVariance float64 `json:"sample_variance" yaml:"sample_variance"`
}

// Pool combines two summaries by size-weighted averaging.
func Pool(a, b *Summary) Pooled {
	return Pooled{
		Size:           a.Size + b.Size,
		Mean:           descriptive.PooledMean(a.Size, a.Mean, b.Size, b.Mean),
		SampleVariance: descriptive.PooledVariance(a.Size, a.SampleVariance, b.Size, b.SampleVariance),
	}
}

// Weighted is a report over a sample with per-value weights.
type Weighted struct {
	Size           int     `json:"size" yaml:"size"`
	SumOfWeights   float64 `json:"sum_of_weights" yaml:"sum_of_weights"`
	Mean           float64 `json:"mean" yaml:"mean"`
	SampleVariance float64 `json:"sample_variance" yaml:"sample_variance"`
	RMS            float64 `json:"rms" yaml:"rms"`
}

// ComputeWeighted builds the weighted report. values and weights must have
// the same non-zero length.
func ComputeWeighted(values, weights *sample.Sample) (*Weighted, error) {
	mean, err := descriptive.WeightedMean(values.Values, weights.Values)
	if err != nil {
		return nil, err
	}

	var agg descriptive.WeightedAggregate
	if err := descriptive.IncrementalWeightedUpdate(values.Values, weights.Values, 0, values.Len()-1, &agg); err != nil {
		return nil, err
	}
	sumOfWeights := descriptive.Sum(weights.Values)

	return &Weighted{
		Size:           values.Len(),
		SumOfWeights:   sumOfWeights,
		Mean:           mean,
		SampleVariance: descriptive.SampleWeightedVariance(sumOfWeights, agg.Sum, agg.SumOfSquares),
		RMS:            descriptive.WeightedRMS(agg.Sum, agg.SumOfSquares),
	}, nil
}
