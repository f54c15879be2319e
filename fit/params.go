package fit

import (
	"fmt"
	"io"

	"github.com/sartorproj/gofit/format"
)

// Params holds fitted parameter values with their uncertainties and
// display names. The three slices are parallel.
type Params struct {
	Names  []string
	Values []float64
	Errors []float64
}

// NewParams creates Params and checks that the slices are parallel.
func NewParams(names []string, values, errors []float64) (*Params, error) {
	p := &Params{Names: names, Values: values, Errors: errors}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.Values)
}

// Validate checks that names, values and errors have equal length.
func (p *Params) Validate() error {
	if len(p.Names) != len(p.Values) || len(p.Errors) != len(p.Values) {
		return newFitError("params", ErrShapeMismatch, "%d names, %d values, %d errors",
			len(p.Names), len(p.Values), len(p.Errors))
	}
	return nil
}

// Print writes one "  name: value ± error" line per parameter, with the
// value rounded to the precision of its uncertainty.
func (p *Params) Print(w io.Writer) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for i := range p.Values {
		v, e, err := format.FormatValueError(p.Values[i], p.Errors[i])
		if err != nil {
			return fmt.Errorf("parameter %s: %w", p.Names[i], err)
		}
		if _, err := fmt.Fprintf(w, "  %s: %s ± %s\n", p.Names[i], v, e); err != nil {
			return err
		}
	}
	return nil
}

// Latex returns each parameter as a LaTeX math string.
func (p *Params) Latex() ([]string, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := make([]string, len(p.Values))
	for i := range p.Values {
		s, err := format.LatexFormat(p.Values[i], p.Errors[i])
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", p.Names[i], err)
		}
		out[i] = s
	}
	return out, nil
}

// WriteLatexTable writes "name & value \\" rows to w.
func (p *Params) WriteLatexTable(w io.Writer) error {
	formatted, err := p.Latex()
	if err != nil {
		return err
	}
	return format.WriteLatexTable(w, p.Names, formatted)
}

// SaveLatexTable writes "name & value \\" rows to filename.
func (p *Params) SaveLatexTable(filename string) error {
	formatted, err := p.Latex()
	if err != nil {
		return err
	}
	return format.SaveLatexTable(filename, p.Names, formatted)
}
