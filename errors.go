package geofold

import "fmt"

// InvalidSpecError reports a malformed PolygonSpec field. It is returned
// before any geometry is generated; there are no partial results.
type InvalidSpecError struct {
	Field  string
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid polygon spec: %s: %s", e.Field, e.Reason)
}

// GeometryConflictError reports a corner radius large enough that the
// rounding arcs of adjacent corners would overlap or invert the boundary.
// MaxRadius is the largest radius the polygon admits.
type GeometryConflictError struct {
	CornerRadius float64
	MaxRadius    float64
}

func (e *GeometryConflictError) Error() string {
	return fmt.Sprintf("geometry conflict: corner radius %g exceeds maximum %g for polygon side", e.CornerRadius, e.MaxRadius)
}
