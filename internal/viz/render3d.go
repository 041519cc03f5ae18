package viz

import (
	"math"
	"sort"
)

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

const (
	cameraDistance = 6.0
	cameraNear     = 0.1
	// fitDivisor maps the unit scene cube onto the smaller canvas side.
	fitDivisor = 4.5
)

// Camera orbits the scene origin. World Z is up; azimuth spins around Z and
// elevation tilts the view from level (0) to straight down (pi/2).
type Camera struct {
	Azimuth, Elevation float64
	Zoom               float64
	Distance           float64
}

func NewCamera(azimuth, elevation, zoom float64) *Camera {
	c := &Camera{Azimuth: azimuth, Distance: cameraDistance, Zoom: 1}
	c.SetElevation(elevation)
	if zoom > 0 {
		c.Zoom = math.Max(0.1, math.Min(10, zoom))
	}
	return c
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// SetElevation clamps the tilt to [-pi/2, pi/2].
func (c *Camera) SetElevation(e float64) {
	c.Elevation = math.Max(-math.Pi/2, math.Min(math.Pi/2, e))
}

// RotatePoint moves p into view space: X to the right, Y up the screen and
// Z toward the viewer.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	ca, sa := math.Cos(c.Azimuth), math.Sin(c.Azimuth)
	x := p.X*ca - p.Y*sa
	y := p.X*sa + p.Y*ca
	ce, se := math.Cos(c.Elevation), math.Sin(c.Elevation)
	return Vec3{
		X: x,
		Y: y*se + p.Z*ce,
		Z: -y*ce + p.Z*se,
	}
}

// InFront reports whether p lies in front of the near plane.
func (c *Camera) InFront(p Vec3) bool {
	return c.RotatePoint(p).Scale(c.Zoom).Z < c.Distance-cameraNear
}

// Project converts 3D world coordinates to 2D screen coordinates.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	if !c.InFront(p) {
		return 0, 0, 0, false
	}
	rot := c.RotatePoint(p).Scale(c.Zoom)
	dist := c.Distance
	scale := dist / (dist - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / fitDivisor
	sx := int(math.Round(rot.X*scale*pScale)) + sw/2
	sy := int(math.Round(-rot.Y*scale*pScale)) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
	Layer      Layer
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe                  { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3, l Layer) { w.Edges = append(w.Edges, Edge{s, e, l}) }
func (w *Wireframe) AddPoint(p Vec3, l Layer)   { w.Edges = append(w.Edges, Edge{p, p, l}) }
func (w *Wireframe) Append(o *Wireframe)        { w.Edges = append(w.Edges, o.Edges...) }

// Count returns the number of edges on layer l.
func (w *Wireframe) Count(l Layer) (n int) {
	for _, e := range w.Edges {
		if e.Layer == l {
			n++
		}
	}
	return n
}

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Layer          Layer
}

// Render3D draws the wireframe to the canvas back to front. Arrow and then
// marker edges are drawn last so the surface never hides them.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	cw, ch := c.PixelWidth(), c.PixelHeight()
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		if !cam.InFront(e.Start) || !cam.InFront(e.End) {
			continue
		}
		x1, y1, d1, v1 := cam.Project(e.Start, cw, ch)
		x2, y2, d2, v2 := cam.Project(e.End, cw, ch)
		if v1 || v2 {
			proj = append(proj, ProjectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Layer})
		}
	}
	sort.SliceStable(proj, func(i, j int) bool {
		if pi, pj := drawOrder(proj[i].Layer), drawOrder(proj[j].Layer); pi != pj {
			return pi < pj
		}
		return proj[i].Depth < proj[j].Depth
	})
	for _, e := range proj {
		if e.X1 == e.X2 && e.Y1 == e.Y2 {
			c.Set(e.X1, e.Y1, e.Layer)
		} else {
			c.DrawLine(e.X1, e.Y1, e.X2, e.Y2, e.Layer)
		}
	}
}

func drawOrder(l Layer) int {
	switch l {
	case LayerArrow:
		return 1
	case LayerMarker:
		return 2
	}
	return 0
}

// FloorWireframe outlines the square [-1, 1]^2 at height z with short
// ticks marking the x and y directions.
func FloorWireframe(z float64) *Wireframe {
	w := NewWireframe()
	c := []Vec3{{-1, -1, z}, {1, -1, z}, {1, 1, z}, {-1, 1, z}}
	for i := range c {
		w.AddEdge(c[i], c[(i+1)%len(c)], LayerAxes)
	}
	w.AddEdge(Vec3{1, -1, z}, Vec3{1.15, -1, z}, LayerAxes)
	w.AddEdge(Vec3{-1, 1, z}, Vec3{-1, 1.15, z}, LayerAxes)
	return w
}
