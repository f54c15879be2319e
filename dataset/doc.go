// Package dataset holds observed samples for goodness-of-fit checks.
//
// A Sample pairs observed coordinates X with observed values Y and, when
// known, the per-point uncertainties YErr. A nil YErr tells the fit package
// to estimate a single uncertainty from the residual spread.
//
// # Creating a Sample
//
//	s, err := dataset.New(x, y)
//	s, err := dataset.NewWithErrors(x, y, yErr)
//
// # Loading from Files
//
// Samples are usually measured in a lab notebook or spreadsheet:
//
//	opts := dataset.DefaultCSVOptions()
//	opts.ErrColumn = "sigma"
//	s, err := dataset.LoadCSV("run1.csv", opts)
//
//	// Excel workbooks use the same column options
//	s, err := dataset.LoadXLSX("run1.xlsx", opts)
//
// Rows whose x, y or uncertainty cell is empty, NA, NaN or null are skipped.
package dataset
