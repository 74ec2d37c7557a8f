package commands

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sartorproj/godescriptive/descriptive"
)

// ErrUnsortedSplitters is returned when --at values are not ascending.
var ErrUnsortedSplitters = errors.New("split points must be in ascending order")

type splitView struct {
	Name string    `json:"name" yaml:"name"`
	Bins []binView `json:"bins" yaml:"bins"`
}

// binView covers [Lower, Upper); null bounds are unbounded.
type binView struct {
	Lower  num   `json:"lower" yaml:"lower"`
	Upper  num   `json:"upper" yaml:"upper"`
	Count  int   `json:"count" yaml:"count"`
	Mean   num   `json:"mean" yaml:"mean"`
	Values []num `json:"values,omitempty" yaml:"values,omitempty"`
}

func newSplitCommand(a *app) *cobra.Command {
	var (
		splitters  []float64
		withValues bool
	)

	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Partition the sorted values into half-open bins at the given points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.IsSorted(splitters) {
				return errors.Wrapf(ErrUnsortedSplitters, "%v", splitters)
			}

			s, err := a.loadSample(cmd, args[0])
			if err != nil {
				return err
			}

			bins := descriptive.Split(s.Sorted(), splitters)
			view := splitView{Name: s.Name, Bins: make([]binView, len(bins))}
			for i, bin := range bins {
				lower, upper := math.Inf(-1), math.Inf(1)
				if i > 0 {
					lower = splitters[i-1]
				}
				if i < len(splitters) {
					upper = splitters[i]
				}
				view.Bins[i] = binView{
					Lower: num(lower),
					Upper: num(upper),
					Count: len(bin),
					Mean:  num(descriptive.Mean(bin)),
				}
				if withValues {
					view.Bins[i].Values = nums(bin)
				}
			}

			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				tbl := newTable(view.Name, table.Row{"Bin", "Count", "Mean"})
				for _, b := range view.Bins {
					tbl.AppendRow(table.Row{binLabel(b), formatCount(b.Count), formatFloat(float64(b.Mean))})
				}
				tbl.AppendFooter(table.Row{"total", formatCount(s.Len()), ""})
				writeTable(w, tbl)
			})
		},
	}

	cmd.Flags().Float64SliceVar(&splitters, "at", nil, "ascending split points")
	cmd.Flags().BoolVar(&withValues, "values", false, "include bin members in json and yaml output")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func binLabel(b binView) string {
	lower, upper := "-inf", "+inf"
	if !math.IsInf(float64(b.Lower), 0) {
		lower = formatFloat(float64(b.Lower))
	}
	if !math.IsInf(float64(b.Upper), 0) {
		upper = formatFloat(float64(b.Upper))
	}
	return fmt.Sprintf("[%s, %s)", lower, upper)
}
