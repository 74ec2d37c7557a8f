package commands

import (
	"io"
	"math"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sartorproj/godescriptive/config"
	"github.com/sartorproj/godescriptive/correlogram"
	"github.com/sartorproj/godescriptive/descriptive"
)

// ErrUndefinedACF is returned for samples whose autocorrelation is undefined.
var ErrUndefinedACF = errors.New("autocorrelation is undefined for an empty or constant sample")

type acfView struct {
	Name         string            `json:"name" yaml:"name"`
	Size         int               `json:"size" yaml:"size"`
	ConfBound    num               `json:"conf_bound" yaml:"conf_bound"`
	Lags         []lagView         `json:"lags" yaml:"lags"`
	Significant  []int             `json:"significant" yaml:"significant"`
	LjungBox     *testView         `json:"ljung_box,omitempty" yaml:"ljung_box,omitempty"`
	BoxPierce    *testView         `json:"box_pierce,omitempty" yaml:"box_pierce,omitempty"`
	DurbinWatson *durbinWatsonView `json:"durbin_watson,omitempty" yaml:"durbin_watson,omitempty"`
}

type lagView struct {
	Lag  int `json:"lag" yaml:"lag"`
	ACF  num `json:"acf" yaml:"acf"`
	PACF num `json:"pacf" yaml:"pacf"`
}

type testView struct {
	Statistic num `json:"statistic" yaml:"statistic"`
	PValue    num `json:"p_value" yaml:"p_value"`
	Lags      int `json:"lags" yaml:"lags"`
	DOF       int `json:"dof" yaml:"dof"`
}

type durbinWatsonView struct {
	Statistic num `json:"statistic" yaml:"statistic"`
	Lag1      num `json:"lag1" yaml:"lag1"`
}

func newACFCommand(a *app) *cobra.Command {
	var (
		maxLag int
		lags   int
		fitdf  int
	)

	cmd := &cobra.Command{
		Use:   "acf <file>",
		Short: "Report the correlogram with Ljung-Box, Box-Pierce and Durbin-Watson statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-lag") {
				a.cfg.Summary.MaxLag = maxLag
			}
			if cmd.Flags().Changed("lags") {
				a.cfg.Summary.LjungBoxLags = lags
			}
			if err := config.Validate(a.cfg); err != nil {
				return err
			}

			s, err := a.loadSample(cmd, args[0])
			if err != nil {
				return err
			}

			cg := correlogram.Compute(s, a.cfg.Summary.MaxLag)
			if cg == nil {
				return errors.Wrapf(ErrUndefinedACF, "column %q", s.Name)
			}
			a.logger.Debug("computed correlogram", "name", s.Name, "lags", len(cg.Lags))

			view := acfView{
				Name:        s.Name,
				Size:        s.Len(),
				ConfBound:   num(cg.ConfBound),
				Lags:        make([]lagView, len(cg.Lags)),
				Significant: correlogram.SignificantLags(cg.ACF, cg.ConfBound),
			}
			for i, lag := range cg.Lags {
				pacf := math.NaN()
				if i < len(cg.PACF) {
					pacf = cg.PACF[i]
				}
				view.Lags[i] = lagView{Lag: lag, ACF: num(cg.ACF[i]), PACF: num(pacf)}
			}
			view.LjungBox = newTestView(correlogram.LjungBox(s, a.cfg.Summary.LjungBoxLags, fitdf))
			view.BoxPierce = newTestView(correlogram.BoxPierce(s, a.cfg.Summary.LjungBoxLags, fitdf))

			residuals := s.Copy().Values
			mean := descriptive.Mean(residuals)
			for i := range residuals {
				residuals[i] -= mean
			}
			if dw := correlogram.DurbinWatson(residuals); dw != nil {
				view.DurbinWatson = &durbinWatsonView{Statistic: num(dw.Statistic), Lag1: num(dw.Lag1)}
			}

			return a.render(cmd.OutOrStdout(), view, func(w io.Writer) {
				renderACFTable(w, view)
			})
		},
	}

	cmd.Flags().IntVar(&maxLag, "max-lag", 0, "largest lag of the correlogram (default from config)")
	cmd.Flags().IntVar(&lags, "lags", 0, "lags tested by Ljung-Box and Box-Pierce (default from config)")
	cmd.Flags().IntVar(&fitdf, "fitdf", 0, "fitted parameters subtracted from the test degrees of freedom")

	return cmd
}

func newTestView(r *correlogram.TestResult) *testView {
	if r == nil {
		return nil
	}
	return &testView{Statistic: num(r.Statistic), PValue: num(r.PValue), Lags: r.Lags, DOF: r.DOF}
}

func renderACFTable(w io.Writer, view acfView) {
	tbl := newTable(view.Name, table.Row{"Lag", "ACF", "PACF", ""})
	for _, l := range view.Lags {
		mark := ""
		if l.Lag > 0 && slices.Contains(view.Significant, l.Lag) {
			mark = "*"
		}
		tbl.AppendRow(table.Row{l.Lag, formatFloat(float64(l.ACF)), formatFloat(float64(l.PACF)), mark})
	}
	tbl.AppendFooter(table.Row{"n=" + formatCount(view.Size), "±" + formatFloat(float64(view.ConfBound)), "", ""})
	writeTable(w, tbl)

	tests := newTable("Tests", table.Row{"Test", "Statistic", "P-value", "Lags", "DOF"})
	for _, t := range []struct {
		name string
		view *testView
	}{{"Ljung-Box", view.LjungBox}, {"Box-Pierce", view.BoxPierce}} {
		if t.view == nil {
			tests.AppendRow(table.Row{t.name, notAvailable, notAvailable, "", ""})
			continue
		}
		tests.AppendRow(table.Row{
			t.name,
			formatFloat(float64(t.view.Statistic)),
			formatFloat(float64(t.view.PValue)),
			t.view.Lags,
			t.view.DOF,
		})
	}
	if view.DurbinWatson != nil {
		tests.AppendRow(table.Row{
			"Durbin-Watson",
			formatFloat(float64(view.DurbinWatson.Statistic)),
			"",
			"lag1=" + formatFloat(float64(view.DurbinWatson.Lag1)),
			"",
		})
	}
	writeTable(w, tests)
}
