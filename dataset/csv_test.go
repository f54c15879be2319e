package dataset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `x,y
0,1.0
1,3.1
2,4.9
3,7.2`

	s, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3}, s.X)
	require.Equal(t, []float64{1.0, 3.1, 4.9, 7.2}, s.Y)
	require.False(t, s.HasErrors())
}

func TestLoadCSVWithUncertainties(t *testing.T) {
	csvData := `x,y,sigma
0,1.0,0.1
1,3.1,0.2
2,4.9,0.1`

	s, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	require.NoError(t, err)
	require.True(t, s.HasErrors())
	require.Equal(t, []float64{0.1, 0.2, 0.1}, s.YErr)
}

func TestLoadCSVNamedColumns(t *testing.T) {
	csvData := `"t","voltage","dV","note"
"0.5","1.20","0.05","a"
"1.0","2.41","0.05","b"`

	opts := DefaultCSVOptions()
	opts.XColumn = "t"
	opts.YColumn = "voltage"
	opts.ErrColumn = "dV"

	s, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1.0}, s.X)
	require.Equal(t, []float64{1.20, 2.41}, s.Y)
	require.Equal(t, []float64{0.05, 0.05}, s.YErr)
}

func TestLoadCSVMissingNamedColumn(t *testing.T) {
	tests := []struct {
		name   string
		header string
		x, y   string
		yErr   string
	}{
		{"uncertainty column absent", "x,y,sigma_v", "x", "y", "dv"},
		{"x column absent", "time,v", "t", "v", ""},
		{"y column absent", "t,volts", "t", "v", ""},
		{"default y absent", "x,value", "x", "y", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultCSVOptions()
			opts.XColumn = tt.x
			opts.YColumn = tt.y
			opts.ErrColumn = tt.yErr

			_, err := LoadCSVFromReader(strings.NewReader(tt.header+"\n1,2,3\n2,4,6\n"), opts)
			require.ErrorIs(t, err, ErrMissingColumn)
		})
	}
}

func TestLoadCSVPositionalColumns(t *testing.T) {
	csvData := `a,b,sigma
1,2,0.5
2,4,0.5`

	s, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, s.X)
	require.Equal(t, []float64{2, 4}, s.Y)
	require.Equal(t, []float64{0.5, 0.5}, s.YErr)
}

func TestLoadCSVWithNAValues(t *testing.T) {
	csvData := `x,y,yerr
0,100,1
1,NA,1
2,102,
3,NaN,1
4,104,1`

	s, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	require.NoError(t, err)

	// Rows with any missing field are skipped as a whole
	require.Equal(t, []float64{0, 4}, s.X)
	require.Equal(t, []float64{100, 104}, s.Y)
	require.Equal(t, []float64{1, 1}, s.YErr)
}

func TestLoadCSVNoHeader(t *testing.T) {
	csvData := `# run 7
1;2;0.5
2;4;0.5`

	opts := DefaultCSVOptions()
	opts.HasHeader = false
	opts.Delimiter = ';'
	opts.SkipRows = 1

	s, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, s.X)
	require.Equal(t, []float64{2, 4}, s.Y)
	require.Equal(t, []float64{0.5, 0.5}, s.YErr)
}

func TestLoadCSVNoData(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("x,y\nNA,NA\n"), nil)
	require.ErrorIs(t, err, ErrNoData)
}

func TestSaveCSVRoundTrip(t *testing.T) {
	s, err := NewWithErrors([]float64{0, 0.5}, []float64{1.25, -3}, []float64{0.1, 0.2})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, SaveCSV(s, path))

	loaded, err := LoadCSV(path, nil)
	require.NoError(t, err)
	require.Equal(t, s.X, loaded.X)
	require.Equal(t, s.Y, loaded.Y)
	require.Equal(t, s.YErr, loaded.YErr)
}

func TestWriteCSV(t *testing.T) {
	s, err := New([]float64{1, 2}, []float64{0.5, 1e-7})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, s))
	require.Equal(t, "x,y\n1,0.5\n2,0.0000001\n", buf.String())
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()
	require.Equal(t, "x", opts.XColumn)
	require.Equal(t, "y", opts.YColumn)
	require.Empty(t, opts.ErrColumn)
	require.True(t, opts.HasHeader)
	require.Equal(t, ',', opts.Delimiter)
}

func TestLoadXLSXFromReader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"x", "y", "yerr"},
		{0, 1.5, 0.1},
		{1, 2.5, 0.1},
		{2, 3.5, 0.2},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	s, err := LoadXLSXFromReader(buf, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2}, s.X)
	require.Equal(t, []float64{1.5, 2.5, 3.5}, s.Y)
	require.Equal(t, []float64{0.1, 0.1, 0.2}, s.YErr)
}

func TestLoadXLSXMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	opts := DefaultCSVOptions()
	opts.Sheet = "Missing"
	_, err = LoadXLSXFromReader(buf, opts)
	require.Error(t, err)
}
