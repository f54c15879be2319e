// Package gofit reports curve-fit results for lab write-ups.
//
// GoFit turns fitted parameters and observed data into the numbers a report
// needs: values rounded to the precision of their uncertainties, LaTeX
// strings and tables, and a chi-squared goodness-of-fit test with its
// p-value.
//
// # Features
//
//   - Value/uncertainty formatting to matching significant figures
//   - LaTeX math strings with automatic scientific notation
//   - Chi-squared statistic, degrees of freedom and p-value for any model
//   - Weighted straight-line least squares with parameter uncertainties
//   - CSV and Excel sample loading
//   - Immutable plot style presets (LaTeX fonts, IEEE papers)
//
// # Quick Start
//
// Format a fitted parameter:
//
//	v, e, _ := format.FormatValueError(3.14159, 0.02) // "3.14", "0.02"
//	s, _ := format.LatexFormat(1500, 30)              // $(1.50 \pm 0.03) \times 10^{3}$
//
// Test a fit:
//
//	sample, _ := dataset.LoadCSV("run1.csv", nil)
//	params, _ := fit.FitLinear(sample, false)
//	params.Print(os.Stdout)
//
//	cfg := fit.DefaultConfig()
//	cfg.Report = os.Stdout
//	result, _ := fit.ChiSquaredSample(sample, fit.Linear, params.Values, cfg)
//
// # Packages
//
//   - format: value/uncertainty strings and LaTeX tables
//   - fit: chi-squared goodness of fit, models, fitted parameters
//   - dataset: observed samples and file loading
//   - style: plot style presets
package gofit
