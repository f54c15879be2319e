package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModels(t *testing.T) {
	x := []float64{0, 1, 2}

	require.Equal(t, []float64{1, 3, 5}, Linear(x, 1, 2))
	require.Equal(t, []float64{1, 6, 17}, Polynomial(x, 1, 2, 3))
	require.Equal(t, []float64{4, 4, 4}, Polynomial(x, 4))

	exp := Exponential(x, 2, -1)
	require.Equal(t, 2.0, exp[0])
	require.InDelta(t, 2*math.Exp(-2), exp[2], 1e-12)

	g := Gaussian(x, 3, 1, 0.5)
	require.Equal(t, 3.0, g[1])
	require.InDelta(t, 3*math.Exp(-2), g[0], 1e-12)
	require.InDelta(t, g[0], g[2], 1e-12)
}

func TestModels_ParameterCount(t *testing.T) {
	x := []float64{0, 1}

	require.Nil(t, Linear(x, 1))
	require.Nil(t, Polynomial(x))
	require.Nil(t, Exponential(x, 1, 2, 3))
	require.Nil(t, Gaussian(x, 1, 2))
}
