package must

import (
	"math"

	"github.com/Chaeguevara/geofold-fusion/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Loop is a closed polygon boundary in the plane z = Z. The edge from the
// last vertex back to the first is implicit. Vertex order is the winding
// order seen by downstream extrusion.
type Loop struct {
	V d2.Set  // vertices, ascending angular order for generated polygons
	Z float64 // height of the loop plane
}

// SignedArea returns the shoelace area of the loop, positive for
// counter-clockwise winding.
func (l Loop) SignedArea() float64 {
	n := len(l.V)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += l.V[i].X*l.V[j].Y - l.V[j].X*l.V[i].Y
	}
	return area / 2
}

// Area returns the unsigned area enclosed by the loop.
func (l Loop) Area() float64 {
	return math.Abs(l.SignedArea())
}

// CCW reports whether the loop winds counter-clockwise.
func (l Loop) CCW() bool {
	return l.SignedArea() > 0
}

// Bounds returns the bounding box of the loop.
func (l Loop) Bounds() d2.Box {
	return d2.Box{Min: l.V.Min(), Max: l.V.Max()}
}

// Points3 lifts the loop vertices into 3D space at z = Z.
func (l Loop) Points3() []r3.Vec {
	v := make([]r3.Vec, len(l.V))
	for i, p := range l.V {
		v[i] = r3.Vec{X: p.X, Y: p.Y, Z: l.Z}
	}
	return v
}

// Distance returns the minimum distance from p to the loop boundary.
// The distance is negative if p is inside the loop, by winding number.
func (l Loop) Distance(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to boundary (>0)
	wn := 0               // winding number (inside/outside)

	n := len(l.V)
	for i := 0; i < n; i++ {
		a := l.V[i]
		b := l.V[(i+1)%n]

		seg := r2.Sub(b, a)
		length := r2.Norm(seg)
		if length == 0 {
			continue
		}
		u := r2.Scale(1/length, seg)

		pa := r2.Sub(p, a)
		pb := r2.Sub(p, b)
		t := r2.Dot(pa, u)                   // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: u.Y, Y: -u.X}) // normal distance from p to line

		// Distance to line segment.
		switch {
		case t < 0:
			dd = math.Min(dd, r2.Norm2(pa)) // distance to segment start
		case t > length:
			dd = math.Min(dd, r2.Norm2(pb)) // distance to segment end
		default:
			dd = math.Min(dd, dn*dn) // normal distance to line
		}

		// Winding number crossing test.
		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of segment
				wn++
			}
		} else {
			if b.Y <= p.Y && dn > 0 { // downward crossing, p right of segment
				wn--
			}
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Contains reports whether p is inside or on the loop boundary.
func (l Loop) Contains(p r2.Vec) bool {
	return l.Distance(p) <= 0
}
