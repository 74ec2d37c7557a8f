package commands

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sartorproj/godescriptive/summary"
)

type correlateView struct {
	X           string     `json:"x" yaml:"x"`
	Y           string     `json:"y" yaml:"y"`
	Size        int        `json:"size" yaml:"size"`
	Covariance  num        `json:"covariance" yaml:"covariance"`
	Correlation num        `json:"correlation" yaml:"correlation"`
	Pooled      pooledView `json:"pooled" yaml:"pooled"`
}

type pooledView struct {
	Size           int `json:"size" yaml:"size"`
	Mean           num `json:"mean" yaml:"mean"`
	SampleVariance num `json:"sample_variance" yaml:"sample_variance"`
}

func newCorrelateCommand(a *app) *cobra.Command {
	var yColumn string

	cmd := &cobra.Command{
		Use:   "correlate <file>",
		Short: "Report covariance and correlation of the value column against a second column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := a.loadColumns(cmd, args[0], a.cfg.Input.ValueColumn, yColumn)
			if err != nil {
				return err
			}
			x, y := samples[0], samples[1]

			rel, err := summary.Relate(x, y)
			if err != nil {
				return err
			}

			opts := summary.Options{Quantiles: a.cfg.Summary.Quantiles}
			sx, err := summary.Compute(x, opts)
			if err != nil {
				return err
			}
			sy, err := summary.Compute(y, opts)
			if err != nil {
				return err
			}
			pooled := summary.Pool(sx, sy)
			a.logger.Debug("computed relation", "x", x.Name, "y", y.Name, "correlation", rel.Correlation)

			view := correlateView{
				X:           x.Name,
				Y:           y.Name,
				Size:        rel.Size,
				Covariance:  num(rel.Covariance),
				Correlation: num(rel.Correlation),
				Pooled: pooledView{
					Size:           pooled.Size,
					Mean:           num(pooled.Mean),
					SampleVariance: num(pooled.SampleVariance),
				},
			}

			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				tbl := newTable(view.X+" ~ "+view.Y, table.Row{"Statistic", "Value"})
				tbl.AppendRow(table.Row{"size", formatCount(view.Size)})
				tbl.AppendRow(table.Row{"covariance", formatFloat(float64(view.Covariance))})
				tbl.AppendRow(table.Row{"correlation", formatFloat(float64(view.Correlation))})
				tbl.AppendRow(table.Row{"pooled_size", formatCount(view.Pooled.Size)})
				tbl.AppendRow(table.Row{"pooled_mean", formatFloat(float64(view.Pooled.Mean))})
				tbl.AppendRow(table.Row{"pooled_sample_variance", formatFloat(float64(view.Pooled.SampleVariance))})
				writeTable(w, tbl)
			})
		},
	}

	cmd.Flags().StringVarP(&yColumn, "with", "y", "", "second column")
	_ = cmd.MarkFlagRequired("with")

	return cmd
}
