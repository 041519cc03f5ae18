package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)
	if c.PixelWidth() != 8 || c.PixelHeight() != 8 {
		t.Fatalf("pixel size = %dx%d, want 8x8", c.PixelWidth(), c.PixelHeight())
	}

	c.Set(3, 5, LayerArrow)
	if !c.IsSet(3, 5) {
		t.Fatal("pixel not set")
	}
	// (3, 5) is sub-pixel (1, 1) of cell (1, 1): dot 5, bit 0x10
	if c.Grid[1][1] != brailleBase+0x10 {
		t.Errorf("cell = %U, want %U", c.Grid[1][1], brailleBase+0x10)
	}
	if c.Layers[1][1] != LayerArrow {
		t.Errorf("layer = %v, want arrow", c.Layers[1][1])
	}

	c.Clear()
	if c.IsSet(3, 5) || c.Grid[1][1] != brailleBase || c.Layers[1][1] != LayerNone {
		t.Error("Clear did not reset the cell")
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0, LayerAxes)
	c.Set(0, -1, LayerAxes)
	c.Set(4, 0, LayerAxes)
	c.Set(0, 8, LayerAxes)
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r > brailleBase && r != '\n' }) {
		t.Error("out of bounds writes touched the canvas")
	}
}

func TestCanvasOverlayWins(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(0, 0, LayerMarker)
	c.Set(1, 1, SurfaceLayer(0.5))
	if c.Layers[0][0] != LayerMarker {
		t.Errorf("surface stroke replaced the marker layer: %v", c.Layers[0][0])
	}
	c.Set(1, 2, LayerArrow)
	if c.Layers[0][0] != LayerArrow {
		t.Errorf("overlay should replace overlay: %v", c.Layers[0][0])
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLine(0, 0, 19, 0, LayerAxes)
	for x := 0; x < 20; x++ {
		if !c.IsSet(x, 0) {
			t.Fatalf("pixel (%d, 0) not set", x)
		}
	}
	c.Clear()
	c.DrawLine(0, 0, 5, 5, LayerAxes)
	for i := 0; i <= 5; i++ {
		if !c.IsSet(i, i) {
			t.Errorf("diagonal pixel (%d, %d) not set", i, i)
		}
	}
}

func TestSurfaceLayer(t *testing.T) {
	tests := []struct {
		t    float64
		band int
	}{
		{-0.5, 0},
		{0, 0},
		{0.49, 3},
		{0.999, SurfaceBands - 1},
		{1, SurfaceBands - 1},
		{3, SurfaceBands - 1},
	}
	for _, tt := range tests {
		if got := SurfaceLayer(tt.t).Band(); got != tt.band {
			t.Errorf("SurfaceLayer(%v).Band() = %d, want %d", tt.t, got, tt.band)
		}
	}
	if LayerMarker.Band() != -1 {
		t.Error("non-surface layers have no band")
	}
}

func TestCanvasRenderKeepsText(t *testing.T) {
	c := NewCanvas(6, 2)
	c.DrawLine(0, 0, 11, 7, SurfaceLayer(0.2))
	c.Set(6, 1, LayerMarker)

	plain := c.String()
	rendered := c.Render(ThemeMinimal)
	for _, r := range plain {
		if r != '\n' && !strings.ContainsRune(rendered, r) {
			t.Fatalf("rendered canvas lost glyph %U", r)
		}
	}
	if strings.Count(rendered, "\n") != 2 {
		t.Errorf("rendered canvas has %d lines, want 2", strings.Count(rendered, "\n"))
	}
}
