package descriptive

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// parseFloats parses whitespace- or comma-separated numbers.
func parseFloats(t *testing.T, td *datadriven.TestData, fields []string) []float64 {
	t.Helper()

	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			td.Fatalf(t, "parsing %q: %v", f, err)
		}
		values = append(values, v)
	}
	return values
}

func argFloats(t *testing.T, td *datadriven.TestData, key string) []float64 {
	t.Helper()

	for _, arg := range td.CmdArgs {
		if arg.Key == key {
			return parseFloats(t, td, arg.Vals)
		}
	}
	return nil
}

func TestOrderStatisticsDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/order", func(t *testing.T, td *datadriven.TestData) string {
		sorted := parseFloats(t, td, strings.Fields(td.Input))

		var buf strings.Builder
		switch td.Cmd {
		case "quantile":
			for _, phi := range argFloats(t, td, "phi") {
				fmt.Fprintf(&buf, "%g: %g\n", phi, Quantile(sorted, phi))
			}
		case "median":
			fmt.Fprintf(&buf, "%g\n", Median(sorted))
		case "rank":
			for _, e := range argFloats(t, td, "element") {
				fmt.Fprintf(&buf, "%g: %g\n", e, RankInterpolated(sorted, e))
			}
		case "frequencies":
			var distinct []float64
			var freqs []int
			Frequencies(sorted, &distinct, &freqs)
			for i := range distinct {
				fmt.Fprintf(&buf, "%g x%d\n", distinct[i], freqs[i])
			}
		case "split":
			for i, bin := range Split(sorted, argFloats(t, td, "splitters")) {
				fmt.Fprintf(&buf, "bin %d: %v\n", i, bin)
			}
		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
		}
		return buf.String()
	})
}
