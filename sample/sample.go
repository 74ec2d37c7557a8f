package sample

import (
	"math"
	"slices"

	"github.com/sartorproj/godescriptive/descriptive"
)

// Sample is an ordered sequence of values with an optional name.
type Sample struct {
	Values []float64
	Name   string
}

// New creates a sample from values. The slice is used as is.
func New(values []float64) *Sample {
	return &Sample{Values: values}
}

// NewNamed creates a named sample from values.
func NewNamed(name string, values []float64) *Sample {
	return &Sample{Values: values, Name: name}
}

// Len returns the number of values.
func (s *Sample) Len() int {
	return len(s.Values)
}

// Mean returns the arithmetic mean, NaN when empty.
func (s *Sample) Mean() float64 {
	return descriptive.Mean(s.Values)
}

// Variance returns the sample (n-1) variance, NaN for fewer than two values.
func (s *Sample) Variance() float64 {
	if len(s.Values) < 2 {
		return math.NaN()
	}
	return descriptive.SampleVarianceOf(s.Values, s.Mean())
}

// Std returns the square root of Variance.
func (s *Sample) Std() float64 {
	return descriptive.StandardDeviation(s.Variance())
}

// Min returns the minimum value, NaN when empty.
func (s *Sample) Min() float64 {
	m, err := descriptive.Min(s.Values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Max returns the maximum value, NaN when empty.
func (s *Sample) Max() float64 {
	m, err := descriptive.Max(s.Values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Sorted returns a sorted copy of the values.
func (s *Sample) Sorted() []float64 {
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)
	return sorted
}

// Median returns the interpolated median, 0 when empty.
func (s *Sample) Median() float64 {
	return descriptive.Median(s.Sorted())
}

// Quantile returns the interpolated phi-quantile, 0 when empty.
func (s *Sample) Quantile(phi float64) float64 {
	return descriptive.Quantile(s.Sorted(), phi)
}

// Diff returns the first differences x[i]-x[i-1].
func (s *Sample) Diff() *Sample {
	if len(s.Values) < 2 {
		return &Sample{Values: []float64{}, Name: s.Name + "_diff"}
	}

	result := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		result[i-1] = s.Values[i] - s.Values[i-1]
	}
	return &Sample{Values: result, Name: s.Name + "_diff"}
}

// Slice returns a copy of the values in [start, end), clamped to the sample.
func (s *Sample) Slice(start, end int) *Sample {
	start = max(start, 0)
	end = min(end, len(s.Values))
	if start >= end {
		return &Sample{Values: []float64{}, Name: s.Name}
	}
	return &Sample{Values: slices.Clone(s.Values[start:end]), Name: s.Name}
}

// Copy returns a deep copy of the sample.
func (s *Sample) Copy() *Sample {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	return &Sample{Values: values, Name: s.Name}
}

// Log applies the natural logarithm. Non-positive values become NaN.
func (s *Sample) Log() *Sample {
	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		if v > 0 {
			result[i] = math.Log(v)
		} else {
			result[i] = math.NaN()
		}
	}
	return &Sample{Values: result, Name: s.Name + "_log"}
}

// Normalize returns the z-scores of the sample. A constant sample, or one
// with fewer than two values, is returned as a copy.
func (s *Sample) Normalize() *Sample {
	out := s.Copy()
	out.Name = s.Name + "_normalized"

	std := s.Std()
	if std == 0 || math.IsNaN(std) {
		return out
	}
	descriptive.Standardize(out.Values, s.Mean(), std)
	return out
}
