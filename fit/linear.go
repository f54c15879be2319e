package fit

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gofit/dataset"
)

// FitLinear fits the straight line a + b*x to a sample by weighted least
// squares, weighting each point by 1/YErr^2 when the sample has
// uncertainties. The returned parameters are named "a" and "b" and match
// the Linear model.
//
// With absoluteSigma false the parameter uncertainties are scaled by the
// reduced chi-squared of the fit; with absoluteSigma true the sample's
// uncertainties are taken as exact. Samples without uncertainties are
// always scaled.
func FitLinear(s *dataset.Sample, absoluteSigma bool) (*Params, error) {
	const op = "linear fit"

	n := s.Len()
	if len(s.X) != n {
		return nil, newFitError(op, ErrShapeMismatch, "%d x values, %d y values", len(s.X), n)
	}
	if n <= 2 {
		return nil, newFitError(op, ErrDegreesOfFreedom, "%d observations, 2 parameters", n)
	}

	for i := range n {
		if x := s.X[i]; math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, newFitError(op, ErrNonFinite, "x %d is %v", i, x)
		}
		if y := s.Y[i]; math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, newFitError(op, ErrNonFinite, "y %d is %v", i, y)
		}
	}

	var weights []float64
	if s.HasErrors() {
		if len(s.YErr) != n {
			return nil, newFitError(op, ErrShapeMismatch, "%d y values, %d uncertainties", n, len(s.YErr))
		}
		weights = make([]float64, n)
		for i, e := range s.YErr {
			if !(e > 0) || math.IsInf(e, 0) {
				return nil, newFitError(op, ErrUncertainty, "uncertainty %d is %v", i, e)
			}
			weights[i] = 1 / (e * e)
		}
	}

	var sw, swx, swxx float64
	for i, x := range s.X {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		sw += w
		swx += w * x
		swxx += w * x * x
	}
	delta := sw*swxx - swx*swx
	if delta <= 0 || math.IsNaN(delta) {
		return nil, newFitError(op, ErrSingular, "x values have no spread")
	}

	a, b := stat.LinearRegression(s.X, s.Y, weights, false)

	varA := swxx / delta
	varB := sw / delta

	if weights == nil || !absoluteSigma {
		chi2 := 0.0
		for i, x := range s.X {
			w := 1.0
			if weights != nil {
				w = weights[i]
			}
			r := s.Y[i] - (a + b*x)
			chi2 += w * r * r
		}
		scale := chi2 / float64(n-2)
		varA *= scale
		varB *= scale
	}

	return &Params{
		Names:  []string{"a", "b"},
		Values: []float64{a, b},
		Errors: []float64{math.Sqrt(varA), math.Sqrt(varB)},
	}, nil
}
