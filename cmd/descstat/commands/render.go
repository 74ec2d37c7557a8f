package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/godescriptive/config"
)

const (
	notAvailable = "N/A"
	yamlIndent   = 2
	floatDigits  = 6
)

// num is a float that encodes NaN and ±Inf as JSON null.
type num float64

// MarshalJSON implements json.Marshaler.
func (n num) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func nums(values []float64) []num {
	out := make([]num, len(values))
	for i, v := range values {
		out[i] = num(v)
	}
	return out
}

// render writes view as JSON or YAML, or calls tableFn for the table format.
func (a *app) render(w io.Writer, view any, tableFn func(io.Writer)) error {
	switch a.cfg.Output.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(view), "encoding json")
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(yamlIndent)
		if err := enc.Encode(view); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "encoding yaml")
	default:
		tableFn(w)
		return nil
	}
}

func newTable(title string, header table.Row) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	if title != "" {
		tbl.SetTitle(title)
	}
	if header != nil {
		tbl.AppendHeader(header)
	}
	return tbl
}

func writeTable(w io.Writer, tbl table.Writer) {
	fmt.Fprintln(w, tbl.Render())
}

// formatFloat renders a statistic for tables; undefined values print as N/A.
func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return notAvailable
	}
	return strconv.FormatFloat(v, 'g', floatDigits, 64)
}

func formatCount(n int) string {
	return humanize.Comma(int64(n))
}
