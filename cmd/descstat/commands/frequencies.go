package commands

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sartorproj/godescriptive/descriptive"
	"github.com/sartorproj/godescriptive/summary"
)

type frequenciesView struct {
	Name        string          `json:"name" yaml:"name"`
	Size        int             `json:"size" yaml:"size"`
	Frequencies []frequencyView `json:"frequencies" yaml:"frequencies"`
}

func newFrequenciesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "frequencies <file>",
		Short: "Report each distinct value and how often it occurs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSample(cmd, args[0])
			if err != nil {
				return err
			}

			var (
				distinct []float64
				counts   []int
			)
			descriptive.Frequencies(s.Sorted(), &distinct, &counts)
			a.logger.Debug("computed frequencies", "name", s.Name, "distinct", len(distinct))

			freqs := make([]summary.Frequency, len(distinct))
			view := frequenciesView{Name: s.Name, Size: s.Len(), Frequencies: make([]frequencyView, len(distinct))}
			for i := range distinct {
				freqs[i] = summary.Frequency{Value: distinct[i], Count: counts[i]}
				view.Frequencies[i] = frequencyView{Value: num(distinct[i]), Count: counts[i]}
			}

			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				renderFrequencyTable(w, freqs, s.Len())
			})
		},
	}
}

func renderFrequencyTable(w io.Writer, freqs []summary.Frequency, total int) {
	tbl := newTable("Frequencies", table.Row{"Value", "Count", "Share", "Cumulative"})
	cumulative := 0
	for _, f := range freqs {
		cumulative += f.Count
		tbl.AppendRow(table.Row{
			formatFloat(f.Value),
			formatCount(f.Count),
			formatFloat(float64(f.Count) / float64(total)),
			formatFloat(float64(cumulative) / float64(total)),
		})
	}
	tbl.AppendFooter(table.Row{"distinct", formatCount(len(freqs)), "total", formatCount(total)})
	writeTable(w, tbl)
}
