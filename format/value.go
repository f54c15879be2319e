package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatValueError formats value with a precision matching the first
// significant digit of err. The uncertainty is rounded to one significant
// figure.
//
// A zero uncertainty prints the value with six significant figures and the
// uncertainty as "0".
func FormatValueError(value, err float64) (string, string, error) {
	if e := checkFinite(value, err); e != nil {
		return "", "", e
	}

	if err == 0 {
		return fmt.Sprintf("%.6g", value), "0", nil
	}

	decimalPlaces := -decimalExponent(err)
	formattedErr := fmt.Sprintf("%.1g", err)

	// The uncertainty has significant digits left of the decimal point:
	// keep one decimal more than its position.
	if decimalPlaces <= 0 {
		return fmt.Sprintf("%.*f", -decimalPlaces+1, value), formattedErr, nil
	}

	return fmt.Sprintf("%.*f", decimalPlaces, value), formattedErr, nil
}

// LatexFormat returns value ± err as a LaTeX math string. Values with
// magnitude >= 1000 or < 0.01 are written as (v \pm e) \times 10^{k}.
func LatexFormat(value, err float64) (string, error) {
	if e := checkFinite(value, err); e != nil {
		return "", e
	}

	if err == 0 {
		return "$" + shortestRepr(value) + "$", nil
	}

	errOrder := decimalExponent(err)
	valOrder := 0
	if value != 0 {
		valOrder = decimalExponent(value)
	}

	exponent := 0
	if abs := math.Abs(value); abs >= 1000 || abs < 0.01 {
		exponent = valOrder
	}

	scaledValue, scaledErr := scaleDown(value, exponent), scaleDown(err, exponent)
	if e := checkFinite(scaledValue, scaledErr); e != nil {
		return "", e
	}

	precision := max(0, exponent-errOrder)
	v := strconv.FormatFloat(scaledValue, 'f', precision, 64)
	e := strconv.FormatFloat(scaledErr, 'f', precision, 64)

	if exponent == 0 {
		return fmt.Sprintf(`$%s \pm %s$`, v, e), nil
	}
	return fmt.Sprintf(`$(%s \pm %s) \times 10^{%d}$`, v, e, exponent), nil
}

// decimalExponent returns floor(log10(|x|)) for non-zero finite x.
// math.Log10 is not exact at powers of ten (Log10(1000) < 3), so the
// exponent is read from the shortest decimal representation instead.
func decimalExponent(x float64) int {
	s := strconv.FormatFloat(math.Abs(x), 'e', -1, 64)
	exp, _ := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	return exp
}

// scaleDown returns x / 10^exponent. Below 10^-300 the power of ten
// underflows, so x is lifted by 10^300 first.
func scaleDown(x float64, exponent int) float64 {
	if exponent < -300 {
		return x * 1e300 / math.Pow10(exponent+300)
	}
	return x / math.Pow10(exponent)
}

// shortestRepr prints x in fixed notation for decimal exponents in
// [-4, 16) with at least one decimal ("1500.0") and in exponent notation
// otherwise ("1e+16", "1.5e-05").
func shortestRepr(x float64) string {
	if x != 0 {
		if exp := decimalExponent(x); exp < -4 || exp >= 16 {
			return strconv.FormatFloat(x, 'g', -1, 64)
		}
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
