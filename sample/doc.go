// Package sample provides the Sample type and CSV loading for numeric data.
//
// A Sample is an ordered, named sequence of float64 values. Its summary
// methods delegate to package descriptive, so edge cases follow the same
// contract: the mean of an empty sample is NaN, not zero.
//
// # Creating a Sample
//
//	s := sample.New([]float64{12, 7, 9, 14, 11})
//	fmt.Println(s.Mean(), s.Median(), s.Quantile(0.9))
//
// # Loading from CSV
//
// Load one column, optionally restricted to rows whose id column matches:
//
//	opts := sample.DefaultCSVOptions()
//	opts.ValueColumn = "line_length"
//	opts.IDColumn = "work"
//	opts.IDFilter = "Hamlet"
//	s, err := sample.LoadCSV("lines.csv", opts)
//
// # Transformations
//
//	logged := s.Log()        // natural log, NaN for non-positive values
//	diff := s.Diff()         // first differences
//	z := s.Normalize()       // z-scores
//	head := s.Slice(0, 100)  // sub-sample
package sample
