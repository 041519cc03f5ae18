package viz

import (
	"math"

	"github.com/san-kum/gradviz/internal/surface"
)

const (
	// ArrowScale shrinks the gradient arrow. It is cosmetic only.
	ArrowScale = 0.5
	// DefaultMeshStride draws every third grid line of the 50x50 mesh.
	DefaultMeshStride = 3

	markerSize   = 0.08
	coneSegments = 8
	coneMaxHead  = 0.25
	coneHeadFrac = 0.4
	coneRadius   = 0.45
)

// ArrowVector is the world-space gradient arrow. The vertical lift
// |gx|+|gy| keeps it above the surface.
func ArrowVector(g surface.Gradient) Vec3 {
	return Vec3{g.X, g.Y, math.Abs(g.X) + math.Abs(g.Y)}.Scale(ArrowScale)
}

// Scene is a renderable view of one evaluation. The wireframe lives in a
// normalized cube: x and y map [-2.5, 2.5] to [-1, 1] and z maps the
// sampled height range to [-1, 1].
type Scene struct {
	Wireframe  *Wireframe
	Anchor     Vec3 // P on the surface, world space
	Arrow      Vec3 // gradient arrow, world space
	ZMin, ZMax float64
	HasArrow   bool
}

// BuildScene assembles the surface mesh, the marker at P and the gradient
// cone for r.
func BuildScene(r *surface.Result) *Scene {
	return BuildSceneStride(r, DefaultMeshStride)
}

// BuildSceneStride is BuildScene with a custom mesh line spacing.
func BuildSceneStride(r *surface.Result, stride int) *Scene {
	zmin, zmax := r.Grid.ZRange()
	s := &Scene{
		Wireframe: NewWireframe(),
		Anchor:    Vec3{r.Point.X, r.Point.Y, r.Z},
		Arrow:     ArrowVector(r.Gradient),
		ZMin:      zmin,
		ZMax:      zmax,
	}
	s.Wireframe.Append(FloorWireframe(-1))
	s.addMesh(r.Grid, stride)
	s.addMarker()
	s.addArrow()
	return s
}

// ToView maps a world point into the normalized scene cube.
func (s *Scene) ToView(p Vec3) Vec3 {
	mid := (s.ZMax + s.ZMin) / 2
	half := (s.ZMax - s.ZMin) / 2
	if half == 0 {
		half = 1
	}
	return Vec3{p.X / surface.DomainMax, p.Y / surface.DomainMax, (p.Z - mid) / half}
}

// Tip is the world-space end of the gradient arrow.
func (s *Scene) Tip() Vec3 { return s.Anchor.Add(s.Arrow) }

func (s *Scene) heightLayer(z float64) Layer {
	if s.ZMax == s.ZMin {
		return SurfaceLayer(0.5)
	}
	return SurfaceLayer((z - s.ZMin) / (s.ZMax - s.ZMin))
}

func meshLines(n, stride int) []int {
	if stride < 1 {
		stride = 1
	}
	idx := make([]int, 0, n/stride+2)
	for i := 0; i < n; i += stride {
		idx = append(idx, i)
	}
	if idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}

func (s *Scene) addMesh(g *surface.Grid, stride int) {
	n := g.Size()
	if n < 2 {
		return
	}
	for _, k := range meshLines(n, stride) {
		for m := 0; m+1 < n; m++ {
			// along x at row k
			a := Vec3{g.Xs[m], g.Ys[k], g.Z[k][m]}
			b := Vec3{g.Xs[m+1], g.Ys[k], g.Z[k][m+1]}
			s.Wireframe.AddEdge(s.ToView(a), s.ToView(b), s.heightLayer((a.Z+b.Z)/2))
			// along y at column k
			a = Vec3{g.Xs[k], g.Ys[m], g.Z[m][k]}
			b = Vec3{g.Xs[k], g.Ys[m+1], g.Z[m+1][k]}
			s.Wireframe.AddEdge(s.ToView(a), s.ToView(b), s.heightLayer((a.Z+b.Z)/2))
		}
	}
}

func (s *Scene) addMarker() {
	c := s.ToView(s.Anchor)
	for _, d := range []Vec3{{markerSize, 0, 0}, {0, markerSize, 0}, {0, 0, markerSize}} {
		s.Wireframe.AddEdge(c.Sub(d), c.Add(d), LayerMarker)
	}
	s.Wireframe.AddPoint(c, LayerMarker)
}

func (s *Scene) addArrow() {
	tail, tip := s.ToView(s.Anchor), s.ToView(s.Tip())
	dir := tip.Sub(tail)
	length := dir.Length()
	if length < 1e-9 {
		return
	}
	s.HasArrow = true
	s.Wireframe.AddEdge(tail, tip, LayerArrow)

	dir = dir.Normalize()
	head := math.Min(coneMaxHead, coneHeadFrac*length)
	base := tip.Sub(dir.Scale(head))
	ref := Vec3{0, 0, 1}
	if math.Abs(dir.Dot(ref)) > 0.9 {
		ref = Vec3{1, 0, 0}
	}
	u := dir.Cross(ref).Normalize()
	w := dir.Cross(u).Normalize()
	radius := head * coneRadius

	ring := make([]Vec3, coneSegments)
	for k := range ring {
		th := 2 * math.Pi * float64(k) / coneSegments
		ring[k] = base.Add(u.Scale(radius * math.Cos(th))).Add(w.Scale(radius * math.Sin(th)))
	}
	for k, p := range ring {
		s.Wireframe.AddEdge(tip, p, LayerArrow)
		s.Wireframe.AddEdge(p, ring[(k+1)%len(ring)], LayerArrow)
	}
}

// RenderScene draws s onto a fresh canvas of w x h cells.
func RenderScene(s *Scene, cam *Camera, w, h int) *Canvas {
	c := NewCanvas(w, h)
	Render3D(c, s.Wireframe, cam)
	return c
}
