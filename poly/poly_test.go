package poly_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Chaeguevara/geofold-fusion"
	"github.com/Chaeguevara/geofold-fusion/poly"
)

func TestVerticesInvalidSpec(t *testing.T) {
	for _, test := range []struct {
		name  string
		spec  geofold.PolygonSpec
		field string
	}{
		{name: "too few sides", spec: geofold.PolygonSpec{Circumradius: 1, Sides: 2}, field: "sides"},
		{name: "zero radius", spec: geofold.PolygonSpec{Sides: 6}, field: "circumradius"},
		{name: "negative radius", spec: geofold.PolygonSpec{Circumradius: -1, Sides: 6}, field: "circumradius"},
		{name: "negative thickness", spec: geofold.PolygonSpec{Circumradius: 1, Sides: 6, Thickness: -0.5}, field: "thickness"},
		{name: "NaN radius", spec: geofold.PolygonSpec{Circumradius: math.NaN(), Sides: 6}, field: "circumradius"},
		{name: "corner radius too large", spec: geofold.PolygonSpec{Circumradius: 1, Sides: 6, CornerRadius: 1}, field: "corner_radius"},
	} {
		_, err := poly.Vertices(test.spec)
		var invalid *geofold.InvalidSpecError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: error %v, want *geofold.InvalidSpecError", test.name, err)
			continue
		}
		if invalid.Field != test.field {
			t.Errorf("%s: error names field %q, want %q", test.name, invalid.Field, test.field)
		}
	}
}

func TestRoundGeometryConflict(t *testing.T) {
	spec := geofold.PolygonSpec{Circumradius: 10, Sides: 6, CornerRadius: 5}
	_, err := poly.Round(spec)
	var conflict *geofold.GeometryConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("error %v, want *geofold.GeometryConflictError", err)
	}
	if conflict.CornerRadius != 5 {
		t.Errorf("conflict radius %g, want 5", conflict.CornerRadius)
	}
}

func TestValidSpecPassthrough(t *testing.T) {
	spec := geofold.PolygonSpec{Circumradius: 5, Sides: 6, Thickness: 0.3, CornerRadius: 0.3}
	loop, err := poly.Vertices(spec)
	if err != nil {
		t.Fatal(err)
	}
	if len(loop.V) != 6 {
		t.Errorf("got %d vertices, want 6", len(loop.V))
	}
	m, err := poly.ComputeMetrics(spec)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(m.SideLength-5) > 1e-9*5 {
		t.Errorf("side length %g, want 5", m.SideLength)
	}
	rd, err := poly.Round(spec)
	if err != nil {
		t.Fatal(err)
	}
	if len(rd.Corners) != 6 {
		t.Errorf("got %d corners, want 6", len(rd.Corners))
	}
}
