// Package must generates regular polygon geometry, panicking with typed
// error values on invalid input. The poly package wraps it with an
// error-returning API.
package must

import (
	"math"

	"github.com/Chaeguevara/geofold-fusion"
	"github.com/Chaeguevara/geofold-fusion/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// validate panics with an *geofold.InvalidSpecError if the spec is malformed.
func validate(spec geofold.PolygonSpec) {
	if err := spec.Validate(); err != nil {
		panic(err)
	}
}

// Vertices returns the spec's vertex loop. Vertex i sits at angle
// RotationDeg + i·(360/n) degrees on the circle of radius Circumradius
// about the center, so the loop is in ascending angular order and winds
// counter-clockwise.
func Vertices(spec geofold.PolygonSpec) Loop {
	validate(spec)
	center := r2.Vec{X: spec.Center.X, Y: spec.Center.Y}
	n := spec.Sides
	step := 360. / float64(n)
	v := make(d2.Set, n)
	for i := range v {
		p := d2.Pol{R: spec.Circumradius, Theta: d2r(spec.RotationDeg + float64(i)*step)}
		v[i] = r2.Add(center, p.PolarToCartesian())
	}
	return Loop{V: v, Z: spec.Center.Z}
}

// Metrics are measures derived from a PolygonSpec. All are pure functions
// of the vertex count and circumradius.
type Metrics struct {
	// SideLength is the straight edge length, 2R·sin(π/n). For a regular
	// hexagon it equals the circumradius.
	SideLength float64
	// FlatToFlat is twice the apothem, 2R·cos(π/n). For even vertex counts
	// this is the distance between two opposite parallel sides. Odd-sided
	// polygons have no parallel sides; the value reported is still twice
	// the center-to-edge distance.
	FlatToFlat float64
	// Perimeter is n times the side length.
	Perimeter float64
	// Area is the enclosed area, n·s²/(4·tan(π/n)).
	Area float64
}

// ComputeMetrics returns the derived metrics of the spec's polygon.
func ComputeMetrics(spec geofold.PolygonSpec) Metrics {
	validate(spec)
	n := float64(spec.Sides)
	side := 2 * spec.Circumradius * math.Sin(math.Pi/n)
	return Metrics{
		SideLength: side,
		FlatToFlat: 2 * spec.Circumradius * math.Cos(math.Pi/n),
		Perimeter:  n * side,
		Area:       n * side * side / (4 * math.Tan(math.Pi/n)),
	}
}
