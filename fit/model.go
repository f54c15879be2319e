package fit

import "math"

// Model maps observation coordinates and fitted parameters to predicted
// values, one per coordinate. A model returns nil when the number of
// parameters does not match it.
type Model func(x []float64, params ...float64) []float64

// Linear is the straight line p[0] + p[1]*x.
func Linear(x []float64, p ...float64) []float64 {
	if len(p) != 2 {
		return nil
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = p[0] + p[1]*v
	}
	return out
}

// Polynomial evaluates p[0] + p[1]*x + p[2]*x^2 + ... with Horner's rule.
func Polynomial(x []float64, p ...float64) []float64 {
	if len(p) == 0 {
		return nil
	}
	out := make([]float64, len(x))
	for i, v := range x {
		acc := 0.0
		for k := len(p) - 1; k >= 0; k-- {
			acc = acc*v + p[k]
		}
		out[i] = acc
	}
	return out
}

// Exponential is p[0] * exp(p[1]*x).
func Exponential(x []float64, p ...float64) []float64 {
	if len(p) != 2 {
		return nil
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = p[0] * math.Exp(p[1]*v)
	}
	return out
}

// Gaussian is p[0] * exp(-(x-p[1])^2 / (2*p[2]^2)).
func Gaussian(x []float64, p ...float64) []float64 {
	if len(p) != 3 {
		return nil
	}
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - p[1]) / p[2]
		out[i] = p[0] * math.Exp(-d*d/2)
	}
	return out
}
