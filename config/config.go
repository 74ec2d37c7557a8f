// Package config provides configuration loading and validation for descstat.
package config

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidQuantile  = errors.New("quantile must be within [0, 1]")
	ErrInvalidTrim      = errors.New("trim counts must not be negative")
	ErrInvalidMaxLag    = errors.New("max lag must be positive")
	ErrInvalidFormat    = errors.New("unsupported output format")
	ErrInvalidDelimiter = errors.New("delimiter must be a single character")
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Default configuration values.
const (
	defaultValueColumn  = "y"
	defaultDelimiter    = ","
	defaultMaxLag       = 20
	defaultLjungBoxLags = 10
	envPrefix           = "DESCSTAT"
)

// Config holds all configuration for descstat.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Summary SummaryConfig `mapstructure:"summary"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig describes how samples are read from CSV.
type InputConfig struct {
	ValueColumn string `mapstructure:"value_column"`
	IDColumn    string `mapstructure:"id_column"`
	IDFilter    string `mapstructure:"id_filter"`
	Delimiter   string `mapstructure:"delimiter"`
	SkipRows    int    `mapstructure:"skip_rows"`
	HasHeader   bool   `mapstructure:"has_header"`
	Strict      bool   `mapstructure:"strict"`
}

// SummaryConfig holds the statistics settings.
type SummaryConfig struct {
	Quantiles    []float64 `mapstructure:"quantiles"`
	TrimLeft     int       `mapstructure:"trim_left"`
	TrimRight    int       `mapstructure:"trim_right"`
	MaxLag       int       `mapstructure:"max_lag"`
	LjungBoxLags int       `mapstructure:"ljung_box_lags"`
	Frequencies  bool      `mapstructure:"frequencies"`
}

// OutputConfig selects the report format.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DelimiterRune returns the configured delimiter as a rune.
func (c InputConfig) DelimiterRune() rune {
	return []rune(c.Delimiter)[0]
}

// LoadConfig loads configuration from file and environment variables.
// With an empty path, descstat.yaml is looked up in . and ./config; a
// missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("descstat")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if readErr := viperCfg.ReadInConfig(); readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, errors.Wrap(readErr, "failed to read config file")
		}
	}

	var config Config
	if err := viperCfg.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := Validate(&config); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("input.value_column", defaultValueColumn)
	viperCfg.SetDefault("input.id_column", "")
	viperCfg.SetDefault("input.id_filter", "")
	viperCfg.SetDefault("input.delimiter", defaultDelimiter)
	viperCfg.SetDefault("input.skip_rows", 0)
	viperCfg.SetDefault("input.has_header", true)
	viperCfg.SetDefault("input.strict", false)

	viperCfg.SetDefault("summary.quantiles", []float64{0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99})
	viperCfg.SetDefault("summary.trim_left", 0)
	viperCfg.SetDefault("summary.trim_right", 0)
	viperCfg.SetDefault("summary.max_lag", defaultMaxLag)
	viperCfg.SetDefault("summary.ljung_box_lags", defaultLjungBoxLags)
	viperCfg.SetDefault("summary.frequencies", false)

	viperCfg.SetDefault("output.format", FormatTable)

	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", "text")
}

// Validate checks the configuration for out-of-range values.
func Validate(config *Config) error {
	for _, q := range config.Summary.Quantiles {
		if q < 0 || q > 1 {
			return errors.Wrapf(ErrInvalidQuantile, "%v", q)
		}
	}

	if config.Summary.TrimLeft < 0 || config.Summary.TrimRight < 0 {
		return errors.Wrapf(ErrInvalidTrim, "left=%d, right=%d", config.Summary.TrimLeft, config.Summary.TrimRight)
	}

	if config.Summary.MaxLag <= 0 {
		return errors.Wrapf(ErrInvalidMaxLag, "%d", config.Summary.MaxLag)
	}

	if !slices.Contains([]string{FormatTable, FormatJSON, FormatYAML}, config.Output.Format) {
		return errors.Wrapf(ErrInvalidFormat, "%q", config.Output.Format)
	}

	if len([]rune(config.Input.Delimiter)) != 1 {
		return errors.Wrapf(ErrInvalidDelimiter, "%q", config.Input.Delimiter)
	}

	return nil
}
