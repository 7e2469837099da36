package must

import (
	"math"

	"github.com/Chaeguevara/geofold-fusion"
	"github.com/Chaeguevara/geofold-fusion/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Corner is one corner of a rounded boundary: a circular arc of radius
// Radius tangent to both edges meeting at Vertex. A zero-sweep corner is
// sharp and degenerates to the vertex itself.
type Corner struct {
	Vertex r2.Vec  // original sharp vertex
	P0     r2.Vec  // tangent point where the incoming edge meets the arc
	P1     r2.Vec  // tangent point where the arc meets the outgoing edge
	Center r2.Vec  // arc center, on the interior angle bisector
	Radius float64 // arc radius
	Start  float64 // angle of P0 about Center, radians
	Sweep  float64 // signed sweep from P0 to P1, counter-clockwise positive
}

// Rounded is a closed boundary of alternating straight edges and corner
// arcs in the plane z = Z. Straight edge i runs from Corners[i].P1 to
// Corners[(i+1)%n].P0; with a zero corner radius every edge degenerates
// to a plain polygon side.
type Rounded struct {
	Z       float64
	Corners []Corner
}

// Round generates the spec's vertex loop and replaces each corner with an
// arc of radius spec.CornerRadius tangent to both adjacent edges. It
// panics with a *geofold.GeometryConflictError if the radius is half the
// side length or more, or if the tangent points of adjacent corners would
// cross: either way the rounding arcs overlap. A zero radius returns
// sharp zero-sweep corners.
func Round(spec geofold.PolygonSpec) Rounded {
	loop := Vertices(spec)
	radius := spec.CornerRadius
	n := len(loop.V)
	rd := Rounded{Z: loop.Z, Corners: make([]Corner, n)}
	if radius == 0 {
		for i, v := range loop.V {
			rd.Corners[i] = Corner{Vertex: v, P0: v, P1: v}
		}
		return rd
	}
	for i, v := range loop.V {
		vp := loop.V[(i+n-1)%n]
		vn := loop.V[(i+1)%n]
		// unit vectors along both edges, pointing away from the corner
		v0 := r2.Unit(r2.Sub(vp, v))
		v1 := r2.Unit(r2.Sub(vn, v))
		theta := math.Acos(r2.Dot(v0, v1)) // interior angle
		// distance from vertex to circle tangent
		d1 := radius / math.Tan(theta/2)
		side := math.Min(r2.Norm(r2.Sub(vp, v)), r2.Norm(r2.Sub(vn, v)))
		if radius >= side/2 || d1 > side/2 {
			panic(&geofold.GeometryConflictError{
				CornerRadius: radius,
				MaxRadius:    math.Min(side/2, side/2*math.Tan(theta/2)),
			})
		}
		// distance from vertex to circle center, along the bisector
		d2c := radius / math.Sin(theta/2)
		c := r2.Add(v, r2.Scale(d2c, r2.Unit(r2.Add(v0, v1))))
		p0 := r2.Add(v, r2.Scale(d1, v0))
		p1 := r2.Add(v, r2.Scale(d1, v1))
		rd.Corners[i] = Corner{
			Vertex: v,
			P0:     p0,
			P1:     p1,
			Center: c,
			Radius: radius,
			Start:  d2.CartesianToPolar(r2.Sub(p0, c)).Theta,
			Sweep:  sign(r2.Cross(v1, v0)) * (math.Pi - theta),
		}
	}
	return rd
}

// Facet flattens every corner arc into facets straight segments and
// returns the resulting vertex loop. Sharp corners contribute a single
// vertex.
func (rd Rounded) Facet(facets int) Loop {
	if facets < 1 {
		facets = 1
	}
	var v d2.Set
	for _, c := range rd.Corners {
		if c.Sweep == 0 {
			v = append(v, c.Vertex)
			continue
		}
		rm := d2.Rotate(c.Sweep / float64(facets))
		rv := r2.Sub(c.P0, c.Center)
		for j := 0; j <= facets; j++ {
			v = append(v, r2.Add(c.Center, rv))
			rv = rm.ApplyPos(rv)
		}
	}
	return Loop{V: v, Z: rd.Z}
}
