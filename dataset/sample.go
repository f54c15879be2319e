package dataset

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch is returned when parallel slices differ in length.
var ErrLengthMismatch = errors.New("dataset: length mismatch")

// Sample is a set of observations (X, Y) with optional uncertainties YErr.
type Sample struct {
	Name string
	X    []float64
	Y    []float64
	YErr []float64
}

// New creates a sample without per-point uncertainties.
func New(x, y []float64) (*Sample, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(x), len(y))
	}
	return &Sample{X: x, Y: y}, nil
}

// NewWithErrors creates a sample with per-point uncertainties.
func NewWithErrors(x, y, yErr []float64) (*Sample, error) {
	s, err := New(x, y)
	if err != nil {
		return nil, err
	}
	if len(yErr) != len(y) {
		return nil, fmt.Errorf("%w: %d y values, %d uncertainties", ErrLengthMismatch, len(y), len(yErr))
	}
	s.YErr = yErr
	return s, nil
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.Y)
}

// HasErrors reports whether the sample carries per-point uncertainties.
func (s *Sample) HasErrors() bool {
	return s.YErr != nil
}

// Slice returns observations from start to end (exclusive).
func (s *Sample) Slice(start, end int) *Sample {
	if start < 0 {
		start = 0
	}
	if end > s.Len() {
		end = s.Len()
	}
	if start >= end {
		out := &Sample{Name: s.Name, X: []float64{}, Y: []float64{}}
		if s.HasErrors() {
			out.YErr = []float64{}
		}
		return out
	}

	out := &Sample{
		Name: s.Name,
		X:    append([]float64(nil), s.X[start:end]...),
		Y:    append([]float64(nil), s.Y[start:end]...),
	}
	if s.HasErrors() {
		out.YErr = append([]float64(nil), s.YErr[start:end]...)
	}
	return out
}

// Copy creates a deep copy of the sample.
func (s *Sample) Copy() *Sample {
	return s.Slice(0, s.Len())
}

// Scale returns a copy with Y multiplied by factor and YErr by its
// magnitude, e.g. to convert units before fitting.
func (s *Sample) Scale(factor float64) *Sample {
	out := s.Copy()
	for i := range out.Y {
		out.Y[i] *= factor
	}
	for i := range out.YErr {
		out.YErr[i] *= math.Abs(factor)
	}
	return out
}
