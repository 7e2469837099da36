// Package geofold defines parametric specifications for regular polygon
// prisms with optionally rounded (filleted) corners. The geometry itself
// is generated by the poly package; rendering and meshing live under
// render. All types are plain immutable values with no dependency on any
// CAD host, so the output can feed a sketch API, an SVG path consumer or
// a mesh renderer alike.
package geofold
