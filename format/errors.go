package format

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite is reported when a value or uncertainty is NaN or infinite.
var ErrNonFinite = errors.New("non-finite number")

// FormattingError describes a (value, uncertainty) pair that cannot be
// formatted.
type FormattingError struct {
	Value float64
	Err   float64
	Cause error
}

func (e *FormattingError) Error() string {
	return fmt.Sprintf("format: cannot format %g ± %g: %v", e.Value, e.Err, e.Cause)
}

func (e *FormattingError) Unwrap() error {
	return e.Cause
}

func checkFinite(value, err float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || math.IsNaN(err) || math.IsInf(err, 0) {
		return &FormattingError{Value: value, Err: err, Cause: ErrNonFinite}
	}
	return nil
}
