package fit

import (
	"errors"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNoVariation is returned by the residual diagnostics when the residuals
// carry no variation.
var ErrNoVariation = errors.New("residuals have no variation")

// DurbinWatson calculates the Durbin-Watson statistic for first-order
// autocorrelation of the residuals.
//
//	d ≈ 2: no autocorrelation
//	d < 2: positive autocorrelation, e.g. a missing term in the model
//	d > 2: negative autocorrelation
func DurbinWatson(residuals []float64) (float64, error) {
	n := len(residuals)
	if n < 2 {
		return 0, newFitError("durbin-watson", ErrDegreesOfFreedom, "%d residuals", n)
	}

	numerator := 0.0
	for i := 1; i < n; i++ {
		diff := residuals[i] - residuals[i-1]
		numerator += diff * diff
	}

	denominator := 0.0
	for _, r := range residuals {
		denominator += r * r
	}

	if denominator == 0 {
		return 0, newFitError("durbin-watson", ErrNoVariation, "")
	}

	return numerator / denominator, nil
}

// DurbinWatson calculates the Durbin-Watson statistic of the residuals.
func (r *ChiSquaredResult) DurbinWatson() (float64, error) {
	return DurbinWatson(r.Residuals)
}

// PortmanteauResult is the outcome of a Ljung-Box or Box-Pierce test.
type PortmanteauResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int // Degrees of freedom
}

// LjungBox performs the Ljung-Box test for autocorrelation in residuals.
// The null hypothesis is that there is no autocorrelation up to the given
// lag; a p-value below 0.05 points at structure the model does not capture.
// fitdf is the number of fitted parameters. lags is clamped to
// len(residuals)-1.
func LjungBox(residuals []float64, lags, fitdf int) (*PortmanteauResult, error) {
	return portmanteau("ljung-box", residuals, lags, fitdf, func(n, k int, r float64) float64 {
		return float64(n*(n+2)) * r * r / float64(n-k)
	})
}

// BoxPierce performs the Box-Pierce test for autocorrelation. It is the
// large-sample form of LjungBox.
func BoxPierce(residuals []float64, lags, fitdf int) (*PortmanteauResult, error) {
	return portmanteau("box-pierce", residuals, lags, fitdf, func(n, _ int, r float64) float64 {
		return float64(n) * r * r
	})
}

func portmanteau(op string, residuals []float64, lags, fitdf int, term func(n, k int, r float64) float64) (*PortmanteauResult, error) {
	n := len(residuals)
	if n < 2 {
		return nil, newFitError(op, ErrDegreesOfFreedom, "%d residuals", n)
	}
	if lags < 1 {
		return nil, newFitError(op, ErrDegreesOfFreedom, "%d lags", lags)
	}
	if lags >= n {
		lags = n - 1
	}
	dof := lags - fitdf
	if dof < 1 {
		return nil, newFitError(op, ErrDegreesOfFreedom, "%d lags, %d fitted parameters", lags, fitdf)
	}

	acf, err := autocorrelations(residuals, lags)
	if err != nil {
		return nil, newFitError(op, ErrNoVariation, "")
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += term(n, k, acf[k])
	}

	dist := distuv.ChiSquared{K: float64(dof)}
	return &PortmanteauResult{
		Statistic: q,
		PValue:    1 - dist.CDF(q),
		Lags:      lags,
		DOF:       dof,
	}, nil
}

// autocorrelations returns the sample autocorrelation of xs for lags 0
// through maxLag.
func autocorrelations(xs []float64, maxLag int) ([]float64, error) {
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	variance := 0.0
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	if variance == 0 {
		return nil, ErrNoVariation
	}

	acf := make([]float64, maxLag+1)
	acf[0] = 1
	for k := 1; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < len(xs); i++ {
			sum += (xs[i] - mean) * (xs[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf, nil
}

// LjungBox runs the Ljung-Box test on the residuals. The fitted parameter
// count is taken as len(Residuals) - DOF.
func (r *ChiSquaredResult) LjungBox(lags int) (*PortmanteauResult, error) {
	return LjungBox(r.Residuals, lags, len(r.Residuals)-r.DOF)
}

// BoxPierce runs the Box-Pierce test on the residuals.
func (r *ChiSquaredResult) BoxPierce(lags int) (*PortmanteauResult, error) {
	return BoxPierce(r.Residuals, lags, len(r.Residuals)-r.DOF)
}
