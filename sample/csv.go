package sample

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNoData is returned when a CSV source yields no usable values.
var ErrNoData = errors.New("no valid data found in CSV")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "y")
	IDColumn    string // Column name for row IDs (optional, for filtering)
	IDFilter    string // Keep only rows whose ID column equals this value
	HasHeader   bool   // Whether the CSV has a header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip before the header
	Strict      bool   // Fail on unparsable values instead of skipping them
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a sample from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", filename)
	}
	defer file.Close()

	s, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %q", filename)
	}
	return s, nil
}

// LoadCSVColumn loads a single named column from a CSV file.
func LoadCSVColumn(filename string, column string) (*Sample, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// LoadCSVFromReader loads a sample from an io.Reader.
//
// Empty cells and the markers NA, NaN and null are skipped. Without a header
// the value is read from the last column.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrapf(err, "skipping row %d", i+1)
		}
	}

	valueIdx, idIdx := -1, -1
	name := opts.ValueColumn
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, errors.Wrap(err, "reading header")
		}
		valueIdx, idIdx = findColumns(header, opts)
		if valueIdx == -1 {
			return nil, errors.Newf("value column %q not found in header %v", opts.ValueColumn, header)
		}
		if opts.IDFilter != "" && idIdx == -1 {
			return nil, errors.Newf("id column %q not found in header %v", opts.IDColumn, header)
		}
	}

	var values []float64
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "reading record %d", line)
		}

		idx := valueIdx
		if idx == -1 {
			idx = len(record) - 1
		}

		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			if clean(record[idIdx]) != opts.IDFilter {
				continue
			}
		}

		if idx < 0 || idx >= len(record) {
			continue
		}
		valStr := clean(record[idx])
		if isMissing(valStr) {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			if opts.Strict {
				return nil, errors.Wrapf(err, "record %d", line)
			}
			continue
		}
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}
	return NewNamed(name, values), nil
}

// LoadCSVColumnsFromReader loads several named columns in one pass and
// keeps a row only when every column holds a value, so the returned samples
// stay paired row by row. A header row is required. opts.ValueColumn is
// ignored.
func LoadCSVColumnsFromReader(r io.Reader, opts *CSVOptions, columns ...string) ([]*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	if !opts.HasHeader {
		return nil, errors.New("loading named columns requires a header row")
	}
	if len(columns) == 0 {
		return nil, errors.New("no columns requested")
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrapf(err, "skipping row %d", i+1)
		}
	}

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	indexes := make([]int, len(columns))
	for i, column := range columns {
		indexes[i] = -1
		for j, h := range header {
			if clean(h) == column {
				indexes[i] = j
				break
			}
		}
		if indexes[i] == -1 {
			return nil, errors.Newf("value column %q not found in header %v", column, header)
		}
	}
	idIdx := -1
	if opts.IDFilter != "" {
		for j, h := range header {
			if clean(h) == opts.IDColumn {
				idIdx = j
				break
			}
		}
		if idIdx == -1 {
			return nil, errors.Newf("id column %q not found in header %v", opts.IDColumn, header)
		}
	}

	values := make([][]float64, len(columns))
	row := make([]float64, len(columns))
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "reading record %d", line)
		}

		if idIdx >= 0 && idIdx < len(record) && clean(record[idIdx]) != opts.IDFilter {
			continue
		}

		complete := true
		for i, idx := range indexes {
			if idx >= len(record) || isMissing(clean(record[idx])) {
				complete = false
				break
			}
			val, err := strconv.ParseFloat(clean(record[idx]), 64)
			if err != nil {
				if opts.Strict {
					return nil, errors.Wrapf(err, "record %d, column %q", line, columns[i])
				}
				complete = false
				break
			}
			row[i] = val
		}
		if !complete {
			continue
		}
		for i := range values {
			values[i] = append(values[i], row[i])
		}
	}

	if len(values[0]) == 0 {
		return nil, ErrNoData
	}
	samples := make([]*Sample, len(columns))
	for i, column := range columns {
		samples[i] = NewNamed(column, values[i])
	}
	return samples, nil
}

func isMissing(field string) bool {
	return field == "" || field == "NA" || field == "NaN" || field == "null"
}

func findColumns(header []string, opts *CSVOptions) (valueIdx, idIdx int) {
	valueIdx, idIdx = -1, -1
	for i, h := range header {
		h = clean(h)
		switch {
		case h == opts.ValueColumn:
			valueIdx = i
		case opts.ValueColumn == "" && valueIdx == -1 && (h == "y" || h == "value" || h == "Value"):
			valueIdx = i
		case opts.IDColumn != "" && h == opts.IDColumn:
			idIdx = i
		}
	}
	return valueIdx, idIdx
}

func clean(field string) string {
	return strings.TrimSpace(strings.Trim(field, "\""))
}
