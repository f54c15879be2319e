// Package style describes plot style presets as immutable values.
//
// A Preset is a set of matplotlib-style rc parameters ("text.usetex",
// "font.size", ...). Presets are values: every modification returns a new
// Preset, so one preset can be shared by several plots without one
// plot's tweaks leaking into another. A rendering backend receives the
// preset once, at startup, through Params.
//
//	p := style.IEEE().With("font.size", 9.0)
//	backend.Configure(p.Params())
//
// Presets can also be read from YAML:
//
//	name: thesis
//	base: latex
//	params:
//	  font.size: 11
//	  figure.figsize: [6, 4]
package style
