package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/godescriptive/config"
	"github.com/sartorproj/godescriptive/sample"
)

func TestNumMarshalJSON(t *testing.T) {
	data, err := json.Marshal([]num{1.5, num(math.NaN()), num(math.Inf(1)), num(math.Inf(-1)), 0})
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, null, null, null, 0]`, string(data))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, notAvailable, formatFloat(math.NaN()))
	assert.Equal(t, notAvailable, formatFloat(math.Inf(-1)))
	assert.Equal(t, "0.333333", formatFloat(1.0/3))
	assert.Equal(t, "1.23457e+07", formatFloat(12345678))
	assert.Equal(t, "1,234,567", formatCount(1234567))
	assert.Equal(t, "12", formatCount(12))
}

func TestRenderFormats(t *testing.T) {
	view := struct {
		Value num `json:"value" yaml:"value"`
	}{Value: num(math.NaN())}

	a := &app{cfg: &config.Config{Output: config.OutputConfig{Format: config.FormatJSON}}}
	var buf bytes.Buffer
	require.NoError(t, a.render(&buf, view, nil))
	assert.JSONEq(t, `{"value": null}`, buf.String())

	a.cfg.Output.Format = config.FormatYAML
	buf.Reset()
	require.NoError(t, a.render(&buf, view, nil))
	assert.Equal(t, "value: .nan\n", buf.String())

	a.cfg.Output.Format = config.FormatTable
	buf.Reset()
	called := false
	require.NoError(t, a.render(&buf, view, func(w io.Writer) {
		called = true
		_, _ = io.WriteString(w, "table")
	}))
	assert.True(t, called)
	assert.Equal(t, "table", buf.String())
}

func TestBuildLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := buildLogger(&buf, config.LoggingConfig{Level: "debug", Format: "json"})
	logger.Debug("loaded", "size", 3)
	assert.Contains(t, buf.String(), `"msg":"loaded"`)

	buf.Reset()
	logger = buildLogger(&buf, config.LoggingConfig{Level: "bogus", Format: "text"})
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestApplyTransform(t *testing.T) {
	s := sample.NewNamed("y", []float64{1, 2, 4})

	got, err := applyTransform(s, "")
	require.NoError(t, err)
	assert.Same(t, s, got)

	got, err = applyTransform(s, "log")
	require.NoError(t, err)
	assert.InDelta(t, math.Log(4), got.Values[2], 1e-15)

	got, err = applyTransform(s, "normalize")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got.Mean(), 1e-12)
}
