package fit

import (
	"fmt"
	"io"
	"math"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gofit/dataset"
)

// Config holds optional inputs for ChiSquared.
type Config struct {
	// YErr holds per-point uncertainties. When nil, one uncertainty is
	// estimated from the spread of the residuals and used for every point.
	YErr []float64
	// Report receives a human-readable summary of the fit statistics when
	// set, e.g. os.Stdout.
	Report io.Writer
	Logger *zap.Logger
}

// DefaultConfig returns a Config that estimates uncertainties from the
// residuals and prints nothing.
func DefaultConfig() *Config {
	return &Config{
		Logger: zap.NewNop(),
	}
}

// ChiSquaredResult represents the result of a chi-squared goodness-of-fit
// test.
type ChiSquaredResult struct {
	PValue      float64
	Statistic   float64
	DOF         int // Degrees of freedom
	ReducedChi2 float64
	Residuals   []float64
	Sigma       []float64 // Uncertainty used for each point
	Estimated   bool      // Sigma was estimated from the residuals
}

// ChiSquared computes the chi-squared statistic of model against the
// observations (x, y), the degrees of freedom len(y) - len(params) and the
// p-value 1 - CDF(statistic; dof).
func ChiSquared(x, y []float64, model Model, params []float64, cfg *Config) (*ChiSquaredResult, error) {
	const op = "chi-squared"

	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(x) != len(y) {
		return nil, newFitError(op, ErrShapeMismatch, "%d x values, %d y values", len(x), len(y))
	}
	if cfg.YErr != nil && len(cfg.YErr) != len(y) {
		return nil, newFitError(op, ErrShapeMismatch, "%d y values, %d uncertainties", len(y), len(cfg.YErr))
	}

	dof := len(y) - len(params)
	if dof <= 0 {
		return nil, newFitError(op, ErrDegreesOfFreedom, "%d observations, %d parameters", len(y), len(params))
	}

	predicted := model(x, params...)
	if len(predicted) != len(y) {
		return nil, newFitError(op, ErrShapeMismatch, "model returned %d values for %d observations", len(predicted), len(y))
	}

	residuals := make([]float64, len(y))
	for i := range y {
		r := y[i] - predicted[i]
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, newFitError(op, ErrNonFinite, "residual %d is %v", i, r)
		}
		residuals[i] = r
	}

	sigma, estimated, err := uncertainties(residuals, cfg.YErr)
	if err != nil {
		return nil, err
	}

	chi2 := 0.0
	for i, r := range residuals {
		// A zero estimated sigma only survives uncertainties() when every
		// residual is zero.
		if sigma[i] == 0 {
			continue
		}
		z := r / sigma[i]
		chi2 += z * z
	}

	dist := distuv.ChiSquared{K: float64(dof)}
	result := &ChiSquaredResult{
		PValue:      1 - dist.CDF(chi2),
		Statistic:   chi2,
		DOF:         dof,
		ReducedChi2: chi2 / float64(dof),
		Residuals:   residuals,
		Sigma:       sigma,
		Estimated:   estimated,
	}

	logger.Debug("chi-squared test",
		zap.Int("n", len(y)),
		zap.Int("dof", dof),
		zap.Float64("chi2", chi2),
		zap.Float64("p_value", result.PValue),
		zap.Bool("estimated_sigma", estimated),
	)

	if cfg.Report != nil {
		if err := result.WriteReport(cfg.Report); err != nil {
			return nil, fmt.Errorf("fit: writing report: %w", err)
		}
	}

	return result, nil
}

// ChiSquaredSample runs ChiSquared on a sample, using its uncertainties
// unless cfg already provides some.
func ChiSquaredSample(s *dataset.Sample, model Model, params []float64, cfg *Config) (*ChiSquaredResult, error) {
	c := DefaultConfig()
	if cfg != nil {
		*c = *cfg
	}
	if c.YErr == nil && s.HasErrors() {
		c.YErr = s.YErr
	}
	return ChiSquared(s.X, s.Y, model, params, c)
}

// uncertainties returns the per-point sigma, validating supplied values or
// estimating a global one as the population standard deviation of the
// residuals.
func uncertainties(residuals, yErr []float64) ([]float64, bool, error) {
	const op = "chi-squared"

	if yErr != nil {
		for i, e := range yErr {
			if !(e > 0) || math.IsInf(e, 0) {
				return nil, false, newFitError(op, ErrUncertainty, "uncertainty %d is %v", i, e)
			}
		}
		return yErr, false, nil
	}

	sd, err := stats.StandardDeviationPopulation(residuals)
	if err != nil {
		return nil, true, newFitError(op, ErrUncertainty, "estimating from residuals: %v", err)
	}

	if sd == 0 {
		for i, r := range residuals {
			if r != 0 {
				return nil, true, newFitError(op, ErrUncertainty, "residuals have no spread but residual %d is %v", i, r)
			}
		}
	}

	sigma := make([]float64, len(residuals))
	for i := range sigma {
		sigma[i] = sd
	}
	return sigma, true, nil
}

// WriteReport prints the fit statistics in a human-readable form.
func (r *ChiSquaredResult) WriteReport(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"\nEmpirical fit statistics:\n"+
			"Chi-squared statistic: %.4f\n"+
			"Degrees of freedom: %d\n"+
			"p-value: %.6g\n"+
			"Reduced chi-squared (χ²/dof): %.4f\n",
		r.Statistic, r.DOF, r.PValue, r.ReducedChi2)
	return err
}
