package render

import (
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// ViewConfig positions the preview camera.
type ViewConfig struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eyepos r3.Vec
	Far    float64
	Near   float64
}

// DefaultView is an isometric view of the origin.
var DefaultView = ViewConfig{
	Up:     r3.Vec{Z: 1},
	Eyepos: r3.Vec{X: 2.4, Y: 2.4, Z: 2.4},
	Near:   1,
	Far:    10,
}

// SavePNGPreview renders a shaded preview of the mesh to a PNG file.
// The mesh is fit to a bi-unit cube first, so only the view direction
// matters, not the model scale.
func SavePNGPreview(path string, model []Triangle3, width, height int, view ViewConfig) error {
	const (
		scale = 2  // supersampling
		fovy  = 30 // vertical field of view in degrees
	)
	var (
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z)
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize() // light direction
		color  = fauxgl.HexColor("#468966")           // object color
	)
	mesh := fauxglMesh(model)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(uint(width), uint(height), image, resize.Bilinear)
	return fauxgl.SavePNG(path, image)
}

func fauxglMesh(model []Triangle3) *fauxgl.Mesh {
	ts := make([]*fauxgl.Triangle, len(model))
	for i, t := range model {
		ts[i] = fauxgl.NewTriangleForPoints(
			fauxgl.V(float64(t.V[0][0]), float64(t.V[0][1]), float64(t.V[0][2])),
			fauxgl.V(float64(t.V[1][0]), float64(t.V[1][1]), float64(t.V[1][2])),
			fauxgl.V(float64(t.V[2][0]), float64(t.V[2][1]), float64(t.V[2][2])),
		)
	}
	return fauxgl.NewTriangleMesh(ts)
}
