package fit

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when parallel inputs differ in length.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrDegreesOfFreedom is returned when there are no more observations
	// than fitted parameters.
	ErrDegreesOfFreedom = errors.New("non-positive degrees of freedom")
	// ErrNonFinite is returned when a residual is NaN or infinite.
	ErrNonFinite = errors.New("non-finite residual")
	// ErrUncertainty is returned when an uncertainty is zero, negative or
	// not finite.
	ErrUncertainty = errors.New("invalid uncertainty")
	// ErrSingular is returned when the least-squares system has no unique
	// solution.
	ErrSingular = errors.New("singular system")
)

// FitError reports why a fit statistic could not be computed.
type FitError struct {
	Op     string
	Kind   error
	Detail string
}

func (e *FitError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("fit: %s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("fit: %s: %v: %s", e.Op, e.Kind, e.Detail)
}

func (e *FitError) Unwrap() error {
	return e.Kind
}

func newFitError(op string, kind error, format string, args ...any) *FitError {
	return &FitError{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
