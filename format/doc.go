// Package format renders fitted values with their uncertainties.
//
// The number of digits shown for a value is driven by its uncertainty: the
// uncertainty is rounded to one significant figure and the value is printed
// down to the same decimal place.
//
// # Plain Text
//
// Format a value and its uncertainty as a pair of strings:
//
//	v, e, err := format.FormatValueError(3.14159, 0.02)
//	// v == "3.14", e == "0.02"
//
// When the leading digit of the uncertainty sits at or above the ones
// place, the value keeps one extra decimal digit:
//
//	v, e, _ := format.FormatValueError(1234.5, 50)
//	// v == "1234.50", e == "5e+01"
//
// # LaTeX
//
// Produce a math-mode string, switching to scientific notation for very
// large or very small values:
//
//	s, _ := format.LatexFormat(1500, 30)
//	// s == `$(1.50 \pm 0.03) \times 10^{3}$`
//
// # Errors
//
// NaN and infinite inputs are rejected with a *FormattingError that wraps
// ErrNonFinite. A negative uncertainty is sized by its magnitude and keeps
// its sign in the output.
package format
