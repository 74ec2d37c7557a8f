package descriptive

import (
	"slices"
	"sort"
)

// Quantile returns the phi-quantile (0 <= phi <= 1) of sortedData by linear
// interpolation between the two order statistics around phi·(n-1).
// An empty sample yields 0.
func Quantile(sortedData []float64, phi float64) float64 {
	n := len(sortedData)
	if n == 0 {
		return 0
	}
	index := phi * float64(n-1)
	lhs := int(index)
	delta := index - float64(lhs)
	if lhs == n-1 {
		return sortedData[lhs]
	}
	return (1-delta)*sortedData[lhs] + delta*sortedData[lhs+1]
}

// Quantiles returns Quantile(sortedData, p) for each p in percentages, in
// the same order.
func Quantiles(sortedData []float64, percentages []float64) []float64 {
	quantiles := make([]float64, len(percentages))
	for i, p := range percentages {
		quantiles[i] = Quantile(sortedData, p)
	}
	return quantiles
}

// QuantileInverse returns the fraction of sortedList that is <= element,
// interpolated between neighbours: RankInterpolated(sortedList, element)/n.
func QuantileInverse(sortedList []float64, element float64) float64 {
	return RankInterpolated(sortedList, element) / float64(len(sortedList))
}

// RankInterpolated returns the number of elements of sortedList that are
// <= element. When element lies strictly between two neighbours the rank is
// linearly interpolated between them.
func RankInterpolated(sortedList []float64, element float64) float64 {
	n := len(sortedList)
	index := sort.SearchFloat64s(sortedList, element)
	if index < n && sortedList[index] == element {
		to := index + 1
		for to < n && sortedList[to] == element {
			to++
		}
		return float64(to)
	}

	insertionPoint := index
	if insertionPoint == 0 || insertionPoint == n {
		return float64(insertionPoint)
	}
	from := sortedList[insertionPoint-1]
	to := sortedList[insertionPoint]
	delta := (element - from) / (to - from)
	return float64(insertionPoint) + delta
}

// Frequencies run-length encodes sortedData: every distinct value is
// appended to *distinctValues and its number of occurrences to *frequencies,
// in ascending order. Both outputs are cleared first. frequencies may be nil
// when only the distinct values are wanted.
//
// For example [5 6 6 7 8 8] gives distinct values [5 6 7 8] and
// frequencies [1 2 1 2].
func Frequencies(sortedData []float64, distinctValues *[]float64, frequencies *[]int) {
	*distinctValues = (*distinctValues)[:0]
	if frequencies != nil {
		*frequencies = (*frequencies)[:0]
	}

	size := len(sortedData)
	for i := 0; i < size; {
		element := sortedData[i]
		run := i + 1
		for run < size && sortedData[run] == element {
			run++
		}
		*distinctValues = append(*distinctValues, element)
		if frequencies != nil {
			*frequencies = append(*frequencies, run-i)
		}
		i = run
	}
}

// Split partitions sortedList into len(splitters)+1 bins using the
// half-open intervals
//
//	(-inf, s0), [s0, s1), ..., [s(m-1), +inf]
//
// splitters must be sorted ascending. A run of values equal to a splitter
// always lands in the bin that starts at that splitter. Concatenating the
// bins in order reproduces sortedList. Every bin is a fresh slice.
func Split(sortedList []float64, splitters []float64) [][]float64 {
	noOfBins := len(splitters) + 1
	bins := make([][]float64, noOfBins)
	for i := range bins {
		bins[i] = []float64{}
	}

	listSize := len(sortedList)
	nextStart := 0
	for i := 0; nextStart < listSize && i < noOfBins-1; i++ {
		// Leftmost index >= splitter: the insertion point if absent, the
		// first element of the run if present.
		index := sort.SearchFloat64s(sortedList, splitters[i])
		if index < nextStart {
			index = nextStart
		}
		bins[i] = slices.Clone(sortedList[nextStart:index])
		nextStart = index
	}
	bins[noOfBins-1] = slices.Clone(sortedList[nextStart:])
	return bins
}
