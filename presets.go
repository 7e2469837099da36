package geofold

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset hexagon configurations for common paperfolding patterns.
// Radii and thicknesses are in centimetres, matching the reference
// workflow. The *_sharp variants skip corner rounding.
var presets = map[string]PolygonSpec{
	"small": {
		Circumradius: 5.0,
		Sides:        6,
		Thickness:    0.3,
		CornerRadius: 0.3,
		Name:         "Hexagon_Small",
	},
	"medium": {
		Circumradius: 10.0,
		Sides:        6,
		Thickness:    0.5,
		CornerRadius: 0.5,
		Name:         "Hexagon_Medium",
	},
	"large": {
		Circumradius: 20.0,
		Sides:        6,
		Thickness:    1.0,
		CornerRadius: 1.0,
		Name:         "Hexagon_Large",
	},
	"small_sharp": {
		Circumradius: 5.0,
		Sides:        6,
		Thickness:    0.3,
		Name:         "Hexagon_Small_Sharp",
	},
	"medium_sharp": {
		Circumradius: 10.0,
		Sides:        6,
		Thickness:    0.5,
		Name:         "Hexagon_Medium_Sharp",
	},
	"large_sharp": {
		Circumradius: 20.0,
		Sides:        6,
		Thickness:    1.0,
		Name:         "Hexagon_Large_Sharp",
	},
}

// PresetNames returns the sorted names of the built-in presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the named built-in spec.
func Preset(name string) (PolygonSpec, error) {
	spec, ok := presets[name]
	if !ok {
		return PolygonSpec{}, fmt.Errorf("invalid preset name: %q. valid options: %s",
			name, strings.Join(PresetNames(), ", "))
	}
	return spec, nil
}

// LoadSpecs reads named polygon specs from YAML. Every spec is validated
// before the set is returned.
func LoadSpecs(r io.Reader) (map[string]PolygonSpec, error) {
	specs := make(map[string]PolygonSpec)
	if err := yaml.NewDecoder(r).Decode(&specs); err != nil {
		return nil, fmt.Errorf("decoding polygon specs: %w", err)
	}
	for name, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("spec %q: %w", name, err)
		}
	}
	return specs, nil
}
