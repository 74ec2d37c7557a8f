package commands

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sartorproj/godescriptive/config"
	"github.com/sartorproj/godescriptive/descriptive"
)

type quantilesView struct {
	Name      string         `json:"name" yaml:"name"`
	Size      int            `json:"size" yaml:"size"`
	Quantiles []quantileView `json:"quantiles" yaml:"quantiles"`
	Inverse   []inverseView  `json:"inverse,omitempty" yaml:"inverse,omitempty"`
}

type inverseView struct {
	Element  num `json:"element" yaml:"element"`
	Rank     num `json:"rank" yaml:"rank"`
	Quantile num `json:"quantile" yaml:"quantile"`
}

func newQuantilesCommand(a *app) *cobra.Command {
	var (
		phis     []float64
		elements []float64
	)

	cmd := &cobra.Command{
		Use:   "quantiles <file>",
		Short: "Report quantiles and the inverse quantiles of given values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("phi") {
				a.cfg.Summary.Quantiles = phis
			}
			if err := config.Validate(a.cfg); err != nil {
				return err
			}

			s, err := a.loadSample(cmd, args[0])
			if err != nil {
				return err
			}
			sorted := s.Sorted()

			view := quantilesView{Name: s.Name, Size: len(sorted)}
			levels := a.cfg.Summary.Quantiles
			for i, q := range descriptive.Quantiles(sorted, levels) {
				view.Quantiles = append(view.Quantiles, quantileView{Phi: num(levels[i]), Value: num(q)})
			}
			for _, e := range elements {
				view.Inverse = append(view.Inverse, inverseView{
					Element:  num(e),
					Rank:     num(descriptive.RankInterpolated(sorted, e)),
					Quantile: num(descriptive.QuantileInverse(sorted, e)),
				})
			}

			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				tbl := newTable(view.Name, table.Row{"Phi", "Value"})
				for _, q := range view.Quantiles {
					tbl.AppendRow(table.Row{formatFloat(float64(q.Phi)), formatFloat(float64(q.Value))})
				}
				tbl.AppendFooter(table.Row{"n", formatCount(view.Size)})
				writeTable(w, tbl)

				if len(view.Inverse) == 0 {
					return
				}
				inv := newTable("Inverse", table.Row{"Element", "Rank", "Quantile"})
				for _, e := range view.Inverse {
					inv.AppendRow(table.Row{
						formatFloat(float64(e.Element)),
						formatFloat(float64(e.Rank)),
						formatFloat(float64(e.Quantile)),
					})
				}
				writeTable(w, inv)
			})
		},
	}

	cmd.Flags().Float64SliceVarP(&phis, "phi", "p", nil, "quantiles to report (default from config)")
	cmd.Flags().Float64SliceVarP(&elements, "element", "e", nil, "values whose interpolated rank and inverse quantile to report")

	return cmd
}
