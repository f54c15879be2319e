package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// presetFile is the YAML layout of a preset file.
type presetFile struct {
	Name   string         `yaml:"name"`
	Base   string         `yaml:"base"`
	Params map[string]any `yaml:"params"`
}

// Load reads a preset from a YAML file.
func Load(filename string) (Preset, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Preset{}, err
	}
	return Parse(data)
}

// Parse reads a preset from YAML data. Parameters are applied on top of the
// built-in preset named by base, if any.
func Parse(data []byte) (Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Preset{}, fmt.Errorf("style: parsing preset: %w", err)
	}

	p, err := Named(f.Base)
	if err != nil {
		return Preset{}, err
	}

	for key, value := range f.Params {
		p, err = p.Set(key, value)
		if err != nil {
			return Preset{}, err
		}
	}

	if f.Name != "" {
		p = p.Rename(f.Name)
	}
	return p, nil
}
