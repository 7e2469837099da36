// Package poly is the error-returning API over the polygon generators in
// poly/must. Validation failures surface as the typed errors defined in
// the geofold package; any other panic is wrapped with its stack.
package poly

import (
	"fmt"
	"runtime/debug"

	"github.com/Chaeguevara/geofold-fusion"
	"github.com/Chaeguevara/geofold-fusion/poly/must"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

func recovered(a interface{}) error {
	if err, ok := a.(error); ok {
		return err
	}
	return &shapeErr{
		panicObj: a,
		stack:    string(debug.Stack()),
	}
}

// Vertices returns the vertex loop for a polygon spec.
func Vertices(spec geofold.PolygonSpec) (l must.Loop, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = recovered(a)
		}
	}()
	return must.Vertices(spec), err
}

// ComputeMetrics returns the derived metrics for a polygon spec.
func ComputeMetrics(spec geofold.PolygonSpec) (m must.Metrics, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = recovered(a)
		}
	}()
	return must.ComputeMetrics(spec), err
}

// Round returns the corner-rounded boundary for a polygon spec.
func Round(spec geofold.PolygonSpec) (rd must.Rounded, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = recovered(a)
		}
	}()
	return must.Round(spec), err
}
