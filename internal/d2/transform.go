package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rotation is a 2D rotation about the origin.
type Rotation struct {
	cos, sin float64
}

// Rotate returns a rotation of theta radians, counter-clockwise positive.
func Rotate(theta float64) Rotation {
	return Rotation{cos: math.Cos(theta), sin: math.Sin(theta)}
}

// ApplyPos rotates a position vector.
func (t Rotation) ApplyPos(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.cos*b.X - t.sin*b.Y,
		Y: t.sin*b.X + t.cos*b.Y,
	}
}
