package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX loads a sample from a worksheet of an Excel workbook.
func LoadXLSX(filename string, opts *CSVOptions) (*Sample, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	return loadWorkbook(f, opts)
}

// LoadXLSXFromReader loads a sample from an Excel workbook read from r.
func LoadXLSXFromReader(r io.Reader, opts *CSVOptions) (*Sample, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel workbook: %w", err)
	}
	defer f.Close()

	return loadWorkbook(f, opts)
}

func loadWorkbook(f *excelize.File, opts *CSVOptions) (*Sample, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return fromRows(rows, opts)
}
