package viz

import "strings"

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBase = 0x2800

var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Layer tags what was drawn into a cell so it can be colored on output.
// Surface cells carry a height band on top of LayerSurface.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerAxes
	LayerMarker
	LayerArrow
	LayerSurface
)

// SurfaceBands is the number of height bands a surface is split into.
const SurfaceBands = 8

// SurfaceLayer returns the layer for a normalized height in [0, 1].
func SurfaceLayer(t float64) Layer {
	band := int(t * SurfaceBands)
	if band < 0 {
		band = 0
	}
	if band >= SurfaceBands {
		band = SurfaceBands - 1
	}
	return LayerSurface + Layer(band)
}

// Band returns the height band of a surface layer, or -1.
func (l Layer) Band() int {
	if l < LayerSurface {
		return -1
	}
	return int(l - LayerSurface)
}

// Overlay reports whether the layer is drawn on top of the surface
// regardless of depth.
func (l Layer) Overlay() bool { return l == LayerMarker || l == LayerArrow }

// Canvas is a braille pixel buffer. Each cell holds 2x4 sub-pixels and the
// layer of the last stroke that touched it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Layers        [][]Layer
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Layers: make([][]Layer, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Layers[i] = make([]Layer, w)
	}
	c.Clear()
	return c
}

// PixelWidth and PixelHeight are the canvas size in sub-pixels.
func (c *Canvas) PixelWidth() int  { return c.Width * 2 }
func (c *Canvas) PixelHeight() int { return c.Height * 4 }

// Set turns on the sub-pixel at (x, y) and tags its cell with layer.
// Overlay layers are never replaced by surface strokes.
func (c *Canvas) Set(x, y int, layer Layer) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
	if cur := c.Layers[row][col]; !cur.Overlay() || layer.Overlay() {
		c.Layers[row][col] = layer
	}
}

// IsSet reports whether the sub-pixel at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&pixelMap[y%4][x%2] != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
			c.Layers[i][j] = LayerNone
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, layer Layer) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, layer)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// String renders the canvas without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render colors each run of cells that share a layer with the style the
// theme assigns to it.
func (c *Canvas) Render(th Theme) string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Layers[i][j] == c.Layers[i][start] {
				continue
			}
			b.WriteString(th.LayerStyle(c.Layers[i][start]).Render(string(row[start:j])))
			start = j
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
