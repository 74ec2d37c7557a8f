// Package commands implements the descstat subcommands.
package commands

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sartorproj/godescriptive/config"
	"github.com/sartorproj/godescriptive/sample"
)

const stdinPath = "-"

// ErrUnknownTransform is returned for a --transform value other than log,
// diff or normalize.
var ErrUnknownTransform = errors.New("unknown transform")

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	verbose    bool
	format     string
	input      inputFlags

	cfg    *config.Config
	logger *slog.Logger
}

type inputFlags struct {
	column    string
	idColumn  string
	idFilter  string
	delimiter string
	skipRows  int
	noHeader  bool
	strict    bool
}

// NewRootCommand creates the descstat root command with all subcommands.
func NewRootCommand(version string) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "descstat",
		Short: "Descriptive statistics for numeric CSV columns",
		Long: `descstat computes descriptive statistics over one column of a CSV file.

Commands:
  summary      Moments, dispersion, shape and order statistics
  quantiles    Quantiles and inverse quantiles
  frequencies  Distinct values and their counts
  split        Partition the sorted values at split points
  acf          Correlogram and autocorrelation tests
  correlate    Covariance and correlation of two columns

Use "-" as the file to read from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: descstat.yaml in . or ./config)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	flags.StringVarP(&a.format, "format", "f", "", "output format: table, json or yaml")
	flags.StringVarP(&a.input.column, "column", "c", "", "value column")
	flags.StringVar(&a.input.idColumn, "id-column", "", "column used by --id-filter")
	flags.StringVar(&a.input.idFilter, "id-filter", "", "keep only rows whose id column equals this value")
	flags.StringVarP(&a.input.delimiter, "delimiter", "d", "", "field delimiter")
	flags.IntVar(&a.input.skipRows, "skip-rows", 0, "rows to skip before the header")
	flags.BoolVar(&a.input.noHeader, "no-header", false, "input has no header row; values come from the last column")
	flags.BoolVar(&a.input.strict, "strict", false, "fail on unparsable values")

	rootCmd.AddCommand(newSummaryCommand(a))
	rootCmd.AddCommand(newQuantilesCommand(a))
	rootCmd.AddCommand(newFrequenciesCommand(a))
	rootCmd.AddCommand(newSplitCommand(a))
	rootCmd.AddCommand(newACFCommand(a))
	rootCmd.AddCommand(newCorrelateCommand(a))
	rootCmd.AddCommand(newVersionCommand(version))

	return rootCmd
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("column") {
		cfg.Input.ValueColumn = a.input.column
	}
	if flags.Changed("id-column") {
		cfg.Input.IDColumn = a.input.idColumn
	}
	if flags.Changed("id-filter") {
		cfg.Input.IDFilter = a.input.idFilter
	}
	if flags.Changed("delimiter") {
		cfg.Input.Delimiter = a.input.delimiter
	}
	if flags.Changed("skip-rows") {
		cfg.Input.SkipRows = a.input.skipRows
	}
	if flags.Changed("no-header") {
		cfg.Input.HasHeader = !a.input.noHeader
	}
	if flags.Changed("strict") {
		cfg.Input.Strict = a.input.strict
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	a.cfg = cfg
	a.logger = buildLogger(cmd.ErrOrStderr(), cfg.Logging)
	a.logger.Debug("configuration loaded", "config", a.configPath, "format", cfg.Output.Format)

	return nil
}

// loadColumns reads the input once and extracts each named column. With
// more than one column only rows where every column holds a value are kept,
// so the samples are paired row by row.
func (a *app) loadColumns(cmd *cobra.Command, path string, columns ...string) ([]*sample.Sample, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinPath {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}

	if len(columns) == 1 {
		s, err := sample.LoadCSVFromReader(bytes.NewReader(data), a.csvOptions(columns[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "loading column %q from %q", columns[0], path)
		}
		a.logger.Debug("loaded sample", "file", path, "column", columns[0], "size", s.Len())
		return []*sample.Sample{s}, nil
	}

	samples, err := sample.LoadCSVColumnsFromReader(bytes.NewReader(data), a.csvOptions(""), columns...)
	if err != nil {
		return nil, errors.Wrapf(err, "loading columns %v from %q", columns, path)
	}
	a.logger.Debug("loaded paired samples", "file", path, "columns", columns, "size", samples[0].Len())
	return samples, nil
}

func (a *app) loadSample(cmd *cobra.Command, path string) (*sample.Sample, error) {
	samples, err := a.loadColumns(cmd, path, a.cfg.Input.ValueColumn)
	if err != nil {
		return nil, err
	}
	return samples[0], nil
}

func (a *app) csvOptions(column string) *sample.CSVOptions {
	in := a.cfg.Input
	return &sample.CSVOptions{
		ValueColumn: column,
		IDColumn:    in.IDColumn,
		IDFilter:    in.IDFilter,
		HasHeader:   in.HasHeader,
		Delimiter:   in.DelimiterRune(),
		SkipRows:    in.SkipRows,
		Strict:      in.Strict,
	}
}

// applyTransform returns s transformed by name; the empty name is a no-op.
func applyTransform(s *sample.Sample, name string) (*sample.Sample, error) {
	switch name {
	case "":
		return s, nil
	case "log":
		return s.Log(), nil
	case "diff":
		return s.Diff(), nil
	case "normalize":
		return s.Normalize(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownTransform, "%q (want log, diff or normalize)", name)
	}
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "descstat %s\n", version)
		},
	}
}
