package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sartorproj/godescriptive/config"
	"github.com/sartorproj/godescriptive/summary"
)

// ErrWeightsWithTransform is returned when --weights and --transform are
// combined; the weights pair with raw rows, not transformed values.
var ErrWeightsWithTransform = errors.New("weights cannot be combined with a transform")

type summaryView struct {
	Name        string          `json:"name" yaml:"name"`
	Statistics  map[string]num  `json:"statistics" yaml:"statistics"`
	Quantiles   []quantileView  `json:"quantiles" yaml:"quantiles"`
	Frequencies []frequencyView `json:"frequencies,omitempty" yaml:"frequencies,omitempty"`
	Weighted    *weightedView   `json:"weighted,omitempty" yaml:"weighted,omitempty"`
}

type quantileView struct {
	Phi   num `json:"phi" yaml:"phi"`
	Value num `json:"value" yaml:"value"`
}

type frequencyView struct {
	Value num `json:"value" yaml:"value"`
	Count int `json:"count" yaml:"count"`
}

type weightedView struct {
	Column         string `json:"column" yaml:"column"`
	Size           int    `json:"size" yaml:"size"`
	SumOfWeights   num    `json:"sum_of_weights" yaml:"sum_of_weights"`
	Mean           num    `json:"mean" yaml:"mean"`
	SampleVariance num    `json:"sample_variance" yaml:"sample_variance"`
	RMS            num    `json:"rms" yaml:"rms"`
}

func newSummaryCommand(a *app) *cobra.Command {
	var (
		phis        []float64
		trimLeft    int
		trimRight   int
		frequencies bool
		transform   string
		weights     string
	)

	cmd := &cobra.Command{
		Use:   "summary <file>",
		Short: "Report descriptive statistics of a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("quantile") {
				a.cfg.Summary.Quantiles = phis
			}
			if flags.Changed("trim-left") {
				a.cfg.Summary.TrimLeft = trimLeft
			}
			if flags.Changed("trim-right") {
				a.cfg.Summary.TrimRight = trimRight
			}
			if flags.Changed("frequencies") {
				a.cfg.Summary.Frequencies = frequencies
			}
			if err := config.Validate(a.cfg); err != nil {
				return err
			}

			if weights != "" && transform != "" {
				return errors.Wrapf(ErrWeightsWithTransform, "--weights %q with --transform %q", weights, transform)
			}

			columns := []string{a.cfg.Input.ValueColumn}
			if weights != "" {
				columns = append(columns, weights)
			}
			samples, err := a.loadColumns(cmd, args[0], columns...)
			if err != nil {
				return err
			}

			s, err := applyTransform(samples[0], transform)
			if err != nil {
				return err
			}

			sum, err := summary.Compute(s, summary.Options{
				Quantiles:   a.cfg.Summary.Quantiles,
				TrimLeft:    a.cfg.Summary.TrimLeft,
				TrimRight:   a.cfg.Summary.TrimRight,
				Frequencies: a.cfg.Summary.Frequencies,
			})
			if err != nil {
				return err
			}
			a.logger.Debug("computed summary", "name", sum.Name, "size", sum.Size, "mean", sum.Mean)

			var weighted *summary.Weighted
			if weights != "" {
				weighted, err = summary.ComputeWeighted(samples[0], samples[1])
				if err != nil {
					return err
				}
			}

			view := newSummaryView(sum, weights, weighted)
			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				renderSummaryTable(w, sum, weights, weighted)
			})
		},
	}

	cmd.Flags().Float64SliceVarP(&phis, "quantile", "q", nil, "quantiles to report, e.g. 0.1,0.5,0.9")
	cmd.Flags().IntVar(&trimLeft, "trim-left", 0, "smallest values dropped by the trimmed and winsorized means")
	cmd.Flags().IntVar(&trimRight, "trim-right", 0, "largest values dropped by the trimmed and winsorized means")
	cmd.Flags().BoolVar(&frequencies, "frequencies", false, "include the frequency table")
	cmd.Flags().StringVarP(&transform, "transform", "t", "", "transform applied first: log, diff or normalize")
	cmd.Flags().StringVarP(&weights, "weights", "w", "", "weights column for the weighted statistics")

	return cmd
}

func newSummaryView(sum *summary.Summary, weightsColumn string, weighted *summary.Weighted) summaryView {
	view := summaryView{
		Name:       sum.Name,
		Statistics: make(map[string]num),
		Quantiles:  make([]quantileView, len(sum.Quantiles)),
	}
	for _, f := range sum.Fields() {
		view.Statistics[f.Name] = num(f.Value)
	}
	for i, q := range sum.Quantiles {
		view.Quantiles[i] = quantileView{Phi: num(q.Phi), Value: num(q.Value)}
	}
	for _, f := range sum.Frequencies {
		view.Frequencies = append(view.Frequencies, frequencyView{Value: num(f.Value), Count: f.Count})
	}
	if weighted != nil {
		view.Weighted = &weightedView{
			Column:         weightsColumn,
			Size:           weighted.Size,
			SumOfWeights:   num(weighted.SumOfWeights),
			Mean:           num(weighted.Mean),
			SampleVariance: num(weighted.SampleVariance),
			RMS:            num(weighted.RMS),
		}
	}
	return view
}

func renderSummaryTable(w io.Writer, sum *summary.Summary, weightsColumn string, weighted *summary.Weighted) {
	stats := newTable(sum.Name, table.Row{"Statistic", "Value"})
	for _, f := range sum.Fields() {
		value := formatFloat(f.Value)
		if f.Name == "size" || f.Name == "distinct" {
			value = formatCount(int(f.Value))
		}
		stats.AppendRow(table.Row{f.Name, value})
	}
	writeTable(w, stats)

	quantiles := newTable("Quantiles", table.Row{"Phi", "Value"})
	for _, q := range sum.Quantiles {
		quantiles.AppendRow(table.Row{formatFloat(q.Phi), formatFloat(q.Value)})
	}
	writeTable(w, quantiles)

	if len(sum.Frequencies) > 0 {
		renderFrequencyTable(w, sum.Frequencies, sum.Size)
	}

	if weighted != nil {
		tbl := newTable(fmt.Sprintf("Weighted by %s", weightsColumn), table.Row{"Statistic", "Value"})
		tbl.AppendRow(table.Row{"size", formatCount(weighted.Size)})
		tbl.AppendRow(table.Row{"sum_of_weights", formatFloat(weighted.SumOfWeights)})
		tbl.AppendRow(table.Row{"mean", formatFloat(weighted.Mean)})
		tbl.AppendRow(table.Row{"sample_variance", formatFloat(weighted.SampleVariance)})
		tbl.AppendRow(table.Row{"rms", formatFloat(weighted.RMS)})
		writeTable(w, tbl)
	}
}
