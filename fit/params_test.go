package fit

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gofit/format"
)

func TestParamsPrint(t *testing.T) {
	p, err := NewParams([]string{"a", "b"}, []float64{1.0234, 2.0011}, []float64{0.05, 0.002})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Print(&buf))
	require.Equal(t, "  a: 1.02 ± 0.05\n  b: 2.001 ± 0.002\n", buf.String())
}

func TestParamsValidate(t *testing.T) {
	_, err := NewParams([]string{"a"}, []float64{1, 2}, []float64{0.1, 0.1})
	require.ErrorIs(t, err, ErrShapeMismatch)

	p := &Params{Names: []string{"a", "b"}, Values: []float64{1, 2}, Errors: []float64{0.1}}
	require.ErrorIs(t, p.Print(&bytes.Buffer{}), ErrShapeMismatch)

	_, err = p.Latex()
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestParamsPrint_NonFinite(t *testing.T) {
	p, err := NewParams([]string{"a"}, []float64{math.NaN()}, []float64{0.1})
	require.NoError(t, err)
	require.ErrorIs(t, p.Print(&bytes.Buffer{}), format.ErrNonFinite)
}

func TestParamsLatexTable(t *testing.T) {
	p, err := NewParams([]string{"$m$", "$c$"}, []float64{1500, 3.14159}, []float64{30, 0.02})
	require.NoError(t, err)

	want := `$m$ & $(1.50 \pm 0.03) \times 10^{3}$ \\` + "\n" + `$c$ & $3.14 \pm 0.02$ \\`

	var buf bytes.Buffer
	require.NoError(t, p.WriteLatexTable(&buf))
	require.Equal(t, want, buf.String())

	path := filepath.Join(t.TempDir(), "params.tex")
	require.NoError(t, p.SaveLatexTable(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, string(data))
}
