package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoData is returned when a file holds no usable observation.
var ErrNoData = errors.New("dataset: no valid data found")

// ErrMissingColumn is returned when a named column is absent from the header.
var ErrMissingColumn = errors.New("dataset: missing column")

// CSVOptions holds options for loading samples from CSV and XLSX files.
type CSVOptions struct {
	XColumn   string // Column name for x (default: "x")
	YColumn   string // Column name for y (default: "y")
	ErrColumn string // Column name for y uncertainties (optional)
	Sheet     string // Worksheet for XLSX files (default: first sheet)
	HasHeader bool   // Whether the first row is a header (default: true)
	Delimiter rune   // Field delimiter for CSV (default: ',')
	SkipRows  int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for loading samples.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		XColumn:   "x",
		YColumn:   "y",
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a sample from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a sample from an io.Reader holding CSV data.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRows(rows, opts)
}

// columns holds the resolved indices of the x, y and uncertainty columns.
type columns struct {
	x, y, yErr int
}

// resolveColumns maps header names to column indices. Positional columns
// 0 and 1 are used only when the default names are in effect and neither
// appears in the header; a column asked for by name must exist.
func resolveColumns(header []string, opts *CSVOptions) (columns, error) {
	xName, yName := opts.XColumn, opts.YColumn
	if xName == "" {
		xName = "x"
	}
	if yName == "" {
		yName = "y"
	}
	cols := columns{x: -1, y: -1, yErr: -1}

	for i, h := range header {
		h = cleanField(h)
		switch {
		case h == xName:
			cols.x = i
		case h == yName:
			cols.y = i
		case opts.ErrColumn != "" && h == opts.ErrColumn:
			cols.yErr = i
		case opts.ErrColumn == "" && (h == "yerr" || h == "y_err" || h == "sigma" || h == "err"):
			if cols.yErr == -1 {
				cols.yErr = i
			}
		}
	}

	if cols.x == -1 && cols.y == -1 && xName == "x" && yName == "y" && len(header) >= 2 {
		cols.x, cols.y = 0, 1
		if cols.yErr == 0 || cols.yErr == 1 {
			cols.yErr = -1
		}
	}

	switch {
	case cols.x == -1:
		return cols, fmt.Errorf("%w: x column %q", ErrMissingColumn, xName)
	case cols.y == -1:
		return cols, fmt.Errorf("%w: y column %q", ErrMissingColumn, yName)
	case opts.ErrColumn != "" && cols.yErr == -1:
		return cols, fmt.Errorf("%w: uncertainty column %q", ErrMissingColumn, opts.ErrColumn)
	}
	return cols, nil
}

func fromRows(rows [][]string, opts *CSVOptions) (*Sample, error) {
	if opts.SkipRows > 0 {
		if opts.SkipRows >= len(rows) {
			return nil, ErrNoData
		}
		rows = rows[opts.SkipRows:]
	}

	var cols columns
	if opts.HasHeader {
		if len(rows) == 0 {
			return nil, ErrNoData
		}
		var err error
		if cols, err = resolveColumns(rows[0], opts); err != nil {
			return nil, err
		}
		rows = rows[1:]
	} else {
		// No header: x, y and an optional third uncertainty column
		cols = columns{x: 0, y: 1, yErr: -1}
		if len(rows) > 0 && len(rows[0]) > 2 {
			cols.yErr = 2
		}
	}

	sample := &Sample{}
	if cols.yErr >= 0 {
		sample.YErr = []float64{}
	}

	for _, record := range rows {
		x, ok := parseField(record, cols.x)
		if !ok {
			continue
		}
		y, ok := parseField(record, cols.y)
		if !ok {
			continue
		}
		if cols.yErr >= 0 {
			e, ok := parseField(record, cols.yErr)
			if !ok {
				continue
			}
			sample.YErr = append(sample.YErr, e)
		}
		sample.X = append(sample.X, x)
		sample.Y = append(sample.Y, y)
	}

	if sample.Len() == 0 {
		return nil, ErrNoData
	}
	return sample, nil
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func parseField(record []string, idx int) (float64, bool) {
	if idx < 0 || idx >= len(record) {
		return 0, false
	}
	field := cleanField(record[idx])
	if field == "" || field == "NA" || field == "NaN" || field == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SaveCSV writes a sample to a CSV file with an x,y[,yerr] header.
func SaveCSV(s *Sample, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteCSV(file, s); err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes a sample as CSV to w.
func WriteCSV(w io.Writer, s *Sample) error {
	writer := csv.NewWriter(w)

	header := []string{"x", "y"}
	if s.HasErrors() {
		header = append(header, "yerr")
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := range s.Y {
		record := []string{formatField(s.X[i]), formatField(s.Y[i])}
		if s.HasErrors() {
			record = append(record, formatField(s.YErr[i]))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatField(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
