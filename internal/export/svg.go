package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/gradviz/internal/viz"
)

const svgBackground = "#0a0a0a"

// CanvasToSVG converts a Braille canvas to SVG, one dot per sub-pixel,
// filled with the theme color of the cell layer.
func CanvasToSVG(canvas *viz.Canvas, scale float64, th viz.Theme) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.PixelWidth()) * scale
	height := float64(canvas.PixelHeight()) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground)

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			fill, ok := th.LayerColor(canvas.Layers[row][col])
			if !ok {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					x, y := col*2+dx, row*4+dy
					if !canvas.IsSet(x, y) {
						continue
					}
					cx := float64(x)*scale + scale/2
					cy := float64(y)*scale + scale/2
					fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill)
				}
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// Series is one polyline of a plot. NaN values break the line.
type Series struct {
	Ys     []float64
	Stroke string
}

// PlotToSVG draws series over the shared x values ts.
func PlotToSVG(ts []float64, series []Series, width, height int) string {
	if len(ts) < 2 {
		return ""
	}

	minX, maxX := ts[0], ts[len(ts)-1]
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, y := range s.Ys {
			if math.IsNaN(y) {
				continue
			}
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
	}
	if math.IsInf(minY, 0) {
		return ""
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground)

	for _, s := range series {
		var d strings.Builder
		pen := false
		for i, y := range s.Ys {
			if i >= len(ts) {
				break
			}
			if math.IsNaN(y) {
				pen = false
				continue
			}
			px := (ts[i] - minX) / rangeX * float64(width)
			py := float64(height) - (y-minY)/rangeY*float64(height)
			if pen {
				fmt.Fprintf(&d, " L%.1f,%.1f", px, py)
			} else {
				fmt.Fprintf(&d, " M%.1f,%.1f", px, py)
				pen = true
			}
		}
		if d.Len() == 0 {
			continue
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, s.Stroke, strings.TrimSpace(d.String()))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
