package sample

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `line,y
1,100
2,101
3,102
4,103
5,104`

	s, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 101, 102, 103, 104}, s.Values)
	assert.Equal(t, "y", s.Name)
}

func TestLoadCSVWithFilter(t *testing.T) {
	csvData := `work,act,words
Hamlet,1,100
Lear,1,200
Hamlet,2,101
Lear,2,201
Hamlet,3,102`

	opts := DefaultCSVOptions()
	opts.ValueColumn = "words"
	opts.IDColumn = "work"
	opts.IDFilter = "Hamlet"

	s, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 101, 102}, s.Values)
}

func TestLoadCSVSkipsMissingValues(t *testing.T) {
	csvData := `y
1
NA

"2"
abc
null
3`

	s, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, s.Values)

	opts := DefaultCSVOptions()
	opts.Strict = true
	_, err = LoadCSVFromReader(strings.NewReader(csvData), opts)
	require.Error(t, err)
}

func TestLoadCSVNoHeader(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.HasHeader = false
	opts.Delimiter = ';'
	opts.SkipRows = 1

	s, err := LoadCSVFromReader(strings.NewReader("# comment\na;1.5\nb;2.5\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, s.Values)
}

func TestLoadCSVErrors(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("a,b\n1,2\n"), DefaultCSVOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `value column "y" not found`)

	_, err = LoadCSVFromReader(strings.NewReader("y\nNA\n"), DefaultCSVOptions())
	assert.True(t, errors.Is(err, ErrNoData))

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), nil)
	require.Error(t, err)
}

func TestLoadCSVColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.csv")
	require.NoError(t, os.WriteFile(path, []byte("n,len\n1,10\n2,12\n3,8\n"), 0o600))

	s, err := LoadCSVColumn(path, "len")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 12, 8}, s.Values)
	assert.Equal(t, "len", s.Name)
}

func TestLoadCSVColumnsKeepsCompleteRows(t *testing.T) {
	csvData := `work,x,y
Hamlet,1,10
Hamlet,NA,20
Lear,2,
Hamlet,3,abc
Hamlet,4,40
Lear,7,70
Hamlet,5,50`

	samples, err := LoadCSVColumnsFromReader(strings.NewReader(csvData), nil, "x", "y")
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, "x", samples[0].Name)
	assert.Equal(t, []float64{1, 4, 7, 5}, samples[0].Values)
	assert.Equal(t, []float64{10, 40, 70, 50}, samples[1].Values)

	opts := DefaultCSVOptions()
	opts.IDColumn = "work"
	opts.IDFilter = "Hamlet"
	samples, err = LoadCSVColumnsFromReader(strings.NewReader(csvData), opts, "y", "x")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 40, 50}, samples[0].Values)
	assert.Equal(t, []float64{1, 4, 5}, samples[1].Values)
}

func TestLoadCSVColumnsErrors(t *testing.T) {
	csvData := "x,y\n1,NA\nNA,2\n"

	_, err := LoadCSVColumnsFromReader(strings.NewReader(csvData), nil, "x", "y")
	assert.True(t, errors.Is(err, ErrNoData))

	_, err = LoadCSVColumnsFromReader(strings.NewReader(csvData), nil, "x", "z")
	require.Error(t, err)

	opts := DefaultCSVOptions()
	opts.Strict = true
	_, err = LoadCSVColumnsFromReader(strings.NewReader("x,y\n1,abc\n"), opts, "x", "y")
	require.Error(t, err)

	opts = DefaultCSVOptions()
	opts.HasHeader = false
	_, err = LoadCSVColumnsFromReader(strings.NewReader(csvData), opts, "x", "y")
	require.Error(t, err)
}
