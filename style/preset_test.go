package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLaTeXFonts(t *testing.T) {
	p := LaTeXFonts()
	require.Equal(t, "latex", p.Name())
	require.True(t, p.UsesTeX())
	require.Equal(t, map[string]any{
		"text.usetex": true,
		"font.family": "serif",
	}, p.Params())
}

func TestIEEE(t *testing.T) {
	p := IEEE()
	require.True(t, p.UsesTeX())

	w, h, ok := p.FigureSize()
	require.True(t, ok)
	require.Equal(t, 3.5, w)
	require.InDelta(t, 2.163, h, 1e-3)

	serif, ok := p.Get("font.serif")
	require.True(t, ok)
	require.Equal(t, []string{"Times"}, serif)
	require.Len(t, p.Keys(), 11)
}

func TestPresetIsImmutable(t *testing.T) {
	base := IEEE()
	tweaked := base.With("font.size", 12)

	size, _ := base.Get("font.size")
	require.Equal(t, 10.0, size)
	size, _ = tweaked.Get("font.size")
	require.Equal(t, 12.0, size)

	// Mutating returned values does not leak back into the preset
	params := base.Params()
	params["font.serif"].([]string)[0] = "Helvetica"
	params["text.usetex"] = false

	serif, _ := base.Get("font.serif")
	require.Equal(t, []string{"Times"}, serif)
	require.True(t, base.UsesTeX())
}

func TestPresetSetErrors(t *testing.T) {
	_, err := Default().Set("lines.linewidth", 2)
	require.ErrorIs(t, err, ErrUnknownParam)

	_, err = Default().Set("font.size", "large")
	require.ErrorIs(t, err, ErrInvalidValue)

	_, err = Default().Set("figure.figsize", []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidValue)

	require.Panics(t, func() { Default().With("text.usetex", "yes") })
}

func TestMerge(t *testing.T) {
	p := Default().Merge(LaTeXFonts()).With("font.size", 9.0)
	require.Equal(t, "default", p.Name())
	require.True(t, p.UsesTeX())
	require.Equal(t, []string{"font.family", "font.size", "text.usetex"}, p.Keys())
	require.Empty(t, Default().Params())
}

func TestNamed(t *testing.T) {
	for _, name := range []string{"", "default", "latex", "ieee"} {
		_, err := Named(name)
		require.NoError(t, err)
	}
	_, err := Named("nature")
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	data := []byte(`
name: thesis
base: latex
params:
  font.size: 11
  font.serif: [Palatino, Times]
  figure.figsize: [6, 4.5]
`)

	p, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, "thesis", p.Name())
	require.True(t, p.UsesTeX())

	size, _ := p.Get("font.size")
	require.Equal(t, 11.0, size)

	serif, _ := p.Get("font.serif")
	require.Equal(t, []string{"Palatino", "Times"}, serif)

	w, h, ok := p.FigureSize()
	require.True(t, ok)
	require.Equal(t, 6.0, w)
	require.Equal(t, 4.5, h)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("base: nature\n"))
	require.Error(t, err)

	_, err = Parse([]byte("params:\n  axes.grid: true\n"))
	require.ErrorIs(t, err, ErrUnknownParam)

	_, err = Parse([]byte("params: [1, 2\n"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ieee.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: ieee\nparams:\n  savefig.bbox: standard\n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "ieee", p.Name())

	bbox, _ := p.Get("savefig.bbox")
	require.Equal(t, "standard", bbox)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
