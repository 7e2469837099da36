package render_test

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "image/png"

	"github.com/Chaeguevara/geofold-fusion"
	"github.com/Chaeguevara/geofold-fusion/poly/must"
	"github.com/Chaeguevara/geofold-fusion/render"
)

func TestSaveSketch(t *testing.T) {
	spec := geofold.PolygonSpec{Circumradius: 10, Sides: 6, CornerRadius: 1}
	loop := must.Vertices(spec)
	rd := must.Round(spec)
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "hex.png")
	if err := render.SaveSketch(pngPath, "Hexagon", loop, &rd); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	if _, format, err := image.DecodeConfig(fp); err != nil || format != "png" {
		t.Fatalf("sketch decode: format=%q err=%v", format, err)
	}

	svgPath := filepath.Join(dir, "hex.svg")
	if err := render.SaveSketch(svgPath, "Hexagon", loop, nil); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "<svg") {
		t.Error("sketch svg output missing <svg element")
	}
}

func TestSavePNGPreview(t *testing.T) {
	spec := geofold.PolygonSpec{Circumradius: 10, Sides: 6, Thickness: 0.5, CornerRadius: 0.5}
	profile := must.Round(spec).Facet(8)
	tris, err := render.Prism(profile, spec.Thickness)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := render.SavePNGPreview(path, tris, 64, 36, render.DefaultView); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	cfg, _, err := image.DecodeConfig(fp)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.Height != 36 {
		t.Errorf("preview is %dx%d, want 64x36", cfg.Width, cfg.Height)
	}
}
