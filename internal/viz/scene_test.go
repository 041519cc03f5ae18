package viz

import (
	"math"
	"testing"

	"github.com/san-kum/gradviz/internal/surface"
)

func evaluate(t *testing.T, v surface.Variant, x, y float64) *surface.Result {
	t.Helper()
	r, err := surface.Evaluate(v, surface.Point{X: x, Y: y})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	return r
}

func TestArrowVector(t *testing.T) {
	tests := []struct {
		g    surface.Gradient
		want Vec3
	}{
		{surface.Gradient{X: 2, Y: 2}, Vec3{1, 1, 2}},
		{surface.Gradient{X: 2, Y: -2}, Vec3{1, -1, 2}},
		{surface.Gradient{X: -4, Y: 4}, Vec3{-2, 2, 4}},
		{surface.Gradient{}, Vec3{}},
	}
	for _, tt := range tests {
		if got := ArrowVector(tt.g); got != tt.want {
			t.Errorf("ArrowVector(%v) = %v, want %v", tt.g, got, tt.want)
		}
	}
}

func TestBuildScene(t *testing.T) {
	r := evaluate(t, surface.Paraboloid, 1, 1)
	s := BuildScene(r)

	if s.Anchor != (Vec3{1, 1, 2}) {
		t.Errorf("anchor = %v, want (1, 1, 2)", s.Anchor)
	}
	if s.Tip() != (Vec3{2, 2, 4}) {
		t.Errorf("tip = %v, want (2, 2, 4)", s.Tip())
	}
	if !s.HasArrow {
		t.Error("expected an arrow away from critical points")
	}
	if s.Wireframe.Count(LayerMarker) == 0 {
		t.Error("scene has no marker")
	}
	// shaft plus two edges per cone segment
	if n := s.Wireframe.Count(LayerArrow); n != 1+2*coneSegments {
		t.Errorf("arrow edges = %d, want %d", n, 1+2*coneSegments)
	}

	lines := len(meshLines(surface.GridSize, DefaultMeshStride))
	surfaceEdges := len(s.Wireframe.Edges) - s.Wireframe.Count(LayerMarker) -
		s.Wireframe.Count(LayerArrow) - s.Wireframe.Count(LayerAxes)
	if want := 2 * lines * (surface.GridSize - 1); surfaceEdges != want {
		t.Errorf("surface edges = %d, want %d", surfaceEdges, want)
	}
}

func TestBuildScene_CriticalPoint(t *testing.T) {
	s := BuildScene(evaluate(t, surface.Saddle, 0, 0))
	if s.HasArrow || s.Wireframe.Count(LayerArrow) != 0 {
		t.Error("no arrow should be drawn where the gradient vanishes")
	}
	if s.Wireframe.Count(LayerMarker) == 0 {
		t.Error("marker missing at the critical point")
	}
}

func TestSceneToView(t *testing.T) {
	s := BuildScene(evaluate(t, surface.Paraboloid, 0, 0))
	lo := s.ToView(Vec3{surface.DomainMin, surface.DomainMin, s.ZMin})
	hi := s.ToView(Vec3{surface.DomainMax, surface.DomainMax, s.ZMax})
	for _, v := range []float64{lo.X, lo.Y, lo.Z} {
		if math.Abs(v+1) > 1e-9 {
			t.Errorf("low corner maps to %v, want -1", lo)
		}
	}
	for _, v := range []float64{hi.X, hi.Y, hi.Z} {
		if math.Abs(v-1) > 1e-9 {
			t.Errorf("high corner maps to %v, want 1", hi)
		}
	}
}

func TestSurfaceEdgesInsideUnitCube(t *testing.T) {
	for _, v := range surface.Variants {
		s := BuildScene(evaluate(t, v, 1, -1))
		for _, e := range s.Wireframe.Edges {
			if e.Layer < LayerSurface {
				continue
			}
			for _, p := range []Vec3{e.Start, e.End} {
				if math.Abs(p.X) > 1+1e-9 || math.Abs(p.Y) > 1+1e-9 || math.Abs(p.Z) > 1+1e-9 {
					t.Fatalf("%v: surface point %v outside the unit cube", v, p)
				}
			}
		}
	}
}

func TestMeshLines(t *testing.T) {
	idx := meshLines(10, 3)
	want := []int{0, 3, 6, 9}
	if len(idx) != len(want) {
		t.Fatalf("meshLines = %v, want %v", idx, want)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Errorf("meshLines = %v, want %v", idx, want)
		}
	}
	if idx := meshLines(10, 4); idx[len(idx)-1] != 9 {
		t.Errorf("last grid line missing: %v", idx)
	}
}

func TestRenderSceneDrawsOverlays(t *testing.T) {
	s := BuildScene(evaluate(t, surface.Wave, 1, 1))
	cam := NewCamera(-0.6, 0.5, 1)
	c := RenderScene(s, cam, 60, 24)

	var marker, arrow, surf int
	for _, row := range c.Layers {
		for _, l := range row {
			switch {
			case l == LayerMarker:
				marker++
			case l == LayerArrow:
				arrow++
			case l >= LayerSurface:
				surf++
			}
		}
	}
	if marker == 0 || arrow == 0 || surf == 0 {
		t.Errorf("layers drawn: marker=%d arrow=%d surface=%d", marker, arrow, surf)
	}
}
