// Package render turns polygon loops into consumable output: triangle
// meshes for prisms, shaded image previews, 2D sketch plots and SVG path
// data. It never talks to a CAD host.
package render

import (
	"errors"

	"github.com/Chaeguevara/geofold-fusion/poly/must"
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r2"
)

// Triangle3 is a mesh triangle with compact float32 vertex storage.
// Vertices are ordered counter-clockwise seen from outside the solid.
type Triangle3 struct {
	V [3][3]float32
}

// Normal returns the unit normal of the triangle, or the zero vector for
// degenerate triangles.
func (t Triangle3) Normal() [3]float32 {
	ux := t.V[1][0] - t.V[0][0]
	uy := t.V[1][1] - t.V[0][1]
	uz := t.V[1][2] - t.V[0][2]
	vx := t.V[2][0] - t.V[0][0]
	vy := t.V[2][1] - t.V[0][1]
	vz := t.V[2][2] - t.V[0][2]
	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx
	m := math32.Sqrt(nx*nx + ny*ny + nz*nz)
	if m == 0 {
		return [3]float32{}
	}
	return [3]float32{nx / m, ny / m, nz / m}
}

func vert(p r2.Vec, z float64) [3]float32 {
	return [3]float32{float32(p.X), float32(p.Y), float32(z)}
}

// Prism triangulates the solid swept from the profile loop over the given
// height, centered about the loop plane like a symmetric extrusion. The
// profile must be convex and wind counter-clockwise; rounded polygon
// profiles from must.Rounded.Facet qualify. The mesh has 2(m-2) cap
// triangles and 2m wall triangles for an m-vertex profile.
func Prism(profile must.Loop, height float64) ([]Triangle3, error) {
	m := len(profile.V)
	if m < 3 {
		return nil, errors.New("prism profile needs at least 3 vertices")
	}
	if height <= 0 {
		return nil, errors.New("prism height must be positive")
	}
	if !profile.CCW() {
		return nil, errors.New("prism profile must wind counter-clockwise")
	}
	top := profile.Z + height/2
	bot := profile.Z - height/2
	tris := make([]Triangle3, 0, 4*m-4)
	// caps, fanned from vertex 0
	for i := 1; i < m-1; i++ {
		a, b, c := profile.V[0], profile.V[i], profile.V[i+1]
		tris = append(tris,
			Triangle3{V: [3][3]float32{vert(a, top), vert(b, top), vert(c, top)}},
			Triangle3{V: [3][3]float32{vert(a, bot), vert(c, bot), vert(b, bot)}},
		)
	}
	// walls
	for i := 0; i < m; i++ {
		a := profile.V[i]
		b := profile.V[(i+1)%m]
		tris = append(tris,
			Triangle3{V: [3][3]float32{vert(a, bot), vert(b, bot), vert(b, top)}},
			Triangle3{V: [3][3]float32{vert(a, bot), vert(b, top), vert(a, top)}},
		)
	}
	return tris, nil
}
