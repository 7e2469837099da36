package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/Chaeguevara/geofold-fusion/poly/must"
)

// SVGPath returns the rounded boundary as SVG path data. Corner arcs
// become elliptical arc commands, sharp corners become line segments and
// the trailing Z closes the final straight edge. Coordinates are emitted
// unchanged: in SVG's y-down coordinate system a mathematically positive
// (counter-clockwise) sweep renders with sweep-flag 0.
func SVGPath(rd must.Rounded) string {
	var b strings.Builder
	for i, c := range rd.Corners {
		if i == 0 {
			fmt.Fprintf(&b, "M%g %g", c.P0.X, c.P0.Y)
		} else {
			fmt.Fprintf(&b, " L%g %g", c.P0.X, c.P0.Y)
		}
		if c.Sweep == 0 {
			continue
		}
		large := 0
		if math.Abs(c.Sweep) > math.Pi {
			large = 1
		}
		sweepFlag := 1
		if c.Sweep > 0 {
			sweepFlag = 0
		}
		fmt.Fprintf(&b, " A%g %g 0 %d %d %g %g", c.Radius, c.Radius, large, sweepFlag, c.P1.X, c.P1.Y)
	}
	b.WriteString(" Z")
	return b.String()
}
