package geofold

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultName is the component name used when a PolygonSpec does not set one.
const DefaultName = "Hexagon"

// PolygonSpec describes a regular polygon prism. The zero value is not
// valid: Circumradius and Sides must be set. Distances share one length
// unit (the reference workflow uses centimetres).
type PolygonSpec struct {
	// Center of the polygon. The vertex loop lies in the plane z = Center.Z
	// and prism extrusion is centered about it.
	Center r3.Vec `yaml:"center"`
	// Circumradius is the center to vertex distance. Must be positive.
	Circumradius float64 `yaml:"circumradius"`
	// Sides is the vertex count. Must be 3 or greater.
	Sides int `yaml:"sides"`
	// RotationDeg rotates the first vertex away from the +X axis,
	// in degrees, counter-clockwise positive.
	RotationDeg float64 `yaml:"rotation,omitempty"`
	// Thickness is the prism extrusion height. Zero leaves a flat loop.
	Thickness float64 `yaml:"thickness"`
	// CornerRadius rounds each corner with a tangent arc of this radius.
	// Zero leaves sharp corners.
	CornerRadius float64 `yaml:"corner_radius,omitempty"`
	// Name labels the generated component.
	Name string `yaml:"name,omitempty"`
}

// Label returns the spec name, or DefaultName if unset.
func (s PolygonSpec) Label() string {
	if s.Name == "" {
		return DefaultName
	}
	return s.Name
}

// SideLength returns the polygon side length 2R·sin(π/n).
// Result is meaningless for invalid specs.
func (s PolygonSpec) SideLength() float64 {
	return 2 * s.Circumradius * math.Sin(math.Pi/float64(s.Sides))
}

// Validate checks the spec fields and returns an *InvalidSpecError
// describing the first problem found, or nil.
func (s PolygonSpec) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"center.x", s.Center.X},
		{"center.y", s.Center.Y},
		{"center.z", s.Center.Z},
		{"circumradius", s.Circumradius},
		{"rotation", s.RotationDeg},
		{"thickness", s.Thickness},
		{"corner_radius", s.CornerRadius},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &InvalidSpecError{Field: f.name, Reason: "must be finite"}
		}
	}
	if s.Sides < 3 {
		return &InvalidSpecError{Field: "sides", Reason: "fewer than 3 vertices"}
	}
	if s.Circumradius <= 0 {
		return &InvalidSpecError{Field: "circumradius", Reason: "must be positive"}
	}
	if s.Thickness < 0 {
		return &InvalidSpecError{Field: "thickness", Reason: "must not be negative"}
	}
	if s.CornerRadius < 0 {
		return &InvalidSpecError{Field: "corner_radius", Reason: "must not be negative"}
	}
	if s.CornerRadius >= s.Circumradius {
		return &InvalidSpecError{Field: "corner_radius", Reason: "must be less than circumradius"}
	}
	return nil
}
