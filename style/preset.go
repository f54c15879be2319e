package style

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownParam is returned for parameter names a preset does not carry.
var ErrUnknownParam = errors.New("style: unknown parameter")

// ErrInvalidValue is returned when a parameter value has the wrong type.
var ErrInvalidValue = errors.New("style: invalid parameter value")

type kind int

const (
	kindBool kind = iota
	kindString
	kindNumber
	kindStrings
	kindPair
)

// known lists the supported rc parameters and their value kinds.
var known = map[string]kind{
	"text.usetex":        kindBool,
	"font.family":        kindString,
	"font.serif":         kindStrings,
	"font.size":          kindNumber,
	"axes.labelsize":     kindNumber,
	"legend.fontsize":    kindNumber,
	"xtick.labelsize":    kindNumber,
	"ytick.labelsize":    kindNumber,
	"figure.figsize":     kindPair,
	"savefig.bbox":       kindString,
	"savefig.pad_inches": kindNumber,
}

// Preset is an immutable set of plot style parameters.
type Preset struct {
	name   string
	params map[string]any
}

// Default returns an empty preset that leaves the backend defaults alone.
func Default() Preset {
	return Preset{name: "default"}
}

// LaTeXFonts renders text with LaTeX in a serif font.
func LaTeXFonts() Preset {
	return Preset{
		name: "latex",
		params: map[string]any{
			"text.usetex": true,
			"font.family": "serif",
		},
	}
}

// IEEE matches the IEEE two-column paper layout: Times at 10pt body text,
// 8pt ticks and legends, a single-column figure width and a tight bounding
// box.
func IEEE() Preset {
	return Preset{
		name: "ieee",
		params: map[string]any{
			"text.usetex":        true,
			"font.family":        "serif",
			"font.serif":         []string{"Times"},
			"font.size":          10.0,
			"axes.labelsize":     10.0,
			"legend.fontsize":    8.0,
			"xtick.labelsize":    8.0,
			"ytick.labelsize":    8.0,
			"figure.figsize":     []float64{3.5, 3.5 / 1.618},
			"savefig.bbox":       "tight",
			"savefig.pad_inches": 0.05,
		},
	}
}

// Named returns a built-in preset by name.
func Named(name string) (Preset, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "latex":
		return LaTeXFonts(), nil
	case "ieee":
		return IEEE(), nil
	}
	return Preset{}, fmt.Errorf("style: unknown preset %q", name)
}

// Name returns the preset name.
func (p Preset) Name() string {
	return p.name
}

// Rename returns a copy of the preset with a different name.
func (p Preset) Rename(name string) Preset {
	return Preset{name: name, params: p.clone()}
}

// With returns a copy of the preset with key set to value. It panics on
// unknown keys or mistyped values; use Set for values from user input.
func (p Preset) With(key string, value any) Preset {
	out, err := p.Set(key, value)
	if err != nil {
		panic(err)
	}
	return out
}

// Set returns a copy of the preset with key set to value.
func (p Preset) Set(key string, value any) (Preset, error) {
	k, ok := known[key]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownParam, key)
	}
	v, err := normalize(k, value)
	if err != nil {
		return Preset{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, key, err)
	}

	params := p.clone()
	params[key] = v
	return Preset{name: p.name, params: params}, nil
}

// Merge returns a copy of the preset overlaid with the parameters of other.
func (p Preset) Merge(other Preset) Preset {
	params := p.clone()
	for k, v := range other.params {
		params[k] = copyValue(v)
	}
	return Preset{name: p.name, params: params}
}

// Get returns the value of a parameter and whether it is set.
func (p Preset) Get(key string) (any, bool) {
	v, ok := p.params[key]
	if !ok {
		return nil, false
	}
	return copyValue(v), true
}

// UsesTeX reports whether text is rendered through LaTeX.
func (p Preset) UsesTeX() bool {
	v, _ := p.params["text.usetex"].(bool)
	return v
}

// FigureSize returns the figure width and height in inches, if set.
func (p Preset) FigureSize() (width, height float64, ok bool) {
	v, ok := p.params["figure.figsize"].([]float64)
	if !ok {
		return 0, 0, false
	}
	return v[0], v[1], true
}

// Keys returns the set parameter names in sorted order.
func (p Preset) Keys() []string {
	return slices.Sorted(maps.Keys(p.params))
}

// Params returns a copy of the parameters, ready to hand to a backend.
func (p Preset) Params() map[string]any {
	return p.clone()
}

func (p Preset) clone() map[string]any {
	out := make(map[string]any, len(p.params))
	for k, v := range p.params {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case []string:
		return slices.Clone(t)
	case []float64:
		return slices.Clone(t)
	}
	return v
}

func normalize(k kind, value any) (any, error) {
	switch k {
	case kindBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("want bool, got %T", value)
	case kindString:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, fmt.Errorf("want string, got %T", value)
	case kindNumber:
		return toFloat(value)
	case kindStrings:
		switch t := value.(type) {
		case string:
			return []string{t}, nil
		case []string:
			return slices.Clone(t), nil
		case []any:
			out := make([]string, len(t))
			for i, e := range t {
				s, ok := e.(string)
				if !ok {
					return nil, fmt.Errorf("want string list, got %T element", e)
				}
				out[i] = s
			}
			return out, nil
		}
		return nil, fmt.Errorf("want string list, got %T", value)
	case kindPair:
		var items []any
		switch t := value.(type) {
		case []float64:
			for _, f := range t {
				items = append(items, f)
			}
		case []any:
			items = t
		default:
			return nil, fmt.Errorf("want [width, height], got %T", value)
		}
		if len(items) != 2 {
			return nil, fmt.Errorf("want [width, height], got %d values", len(items))
		}
		out := make([]float64, 2)
		for i, e := range items {
			f, err := toFloat(e)
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported kind %d", k)
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	}
	return 0, fmt.Errorf("want number, got %T", v)
}
