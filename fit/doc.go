// Package fit checks how well a model describes observed data.
//
// # Chi-Squared Goodness of Fit
//
// Given observations, a model and its fitted parameters:
//
//	result, err := fit.ChiSquared(x, y, fit.Linear, []float64{a, b}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("chi2=%.2f dof=%d p=%.3f\n",
//	    result.Statistic, result.DOF, result.PValue)
//
// Per-point uncertainties go in the Config. Without them a single
// uncertainty is estimated from the spread of the residuals:
//
//	cfg := fit.DefaultConfig()
//	cfg.YErr = sigma
//	cfg.Report = os.Stdout // print the fit statistics
//	result, err := fit.ChiSquared(x, y, model, params, cfg)
//
// The p-value is the probability of a chi-squared statistic at least as
// large as the one observed; values close to zero suggest the model does
// not describe the data.
//
// # Models
//
// A Model maps x and the parameters to predicted values. Linear,
// Polynomial, Exponential and Gaussian are provided; any function with the
// same signature works:
//
//	decay := func(t []float64, p ...float64) []float64 {
//	    out := make([]float64, len(t))
//	    for i, v := range t {
//	        out[i] = p[0] * math.Exp(-v/p[1])
//	    }
//	    return out
//	}
//
// # Parameters
//
// Params carries fitted values with their uncertainties and renders them
// for a report or a LaTeX table:
//
//	params, _ := fit.FitLinear(sample, false)
//	params.Print(os.Stdout)
//	params.SaveLatexTable("fit.tex")
//
// # Errors
//
// Mismatched lengths, non-positive degrees of freedom, non-finite model
// output and unusable uncertainties are reported as *FitError values
// wrapping ErrShapeMismatch, ErrDegreesOfFreedom, ErrNonFinite,
// ErrUncertainty or ErrSingular.
package fit
