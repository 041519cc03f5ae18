package surface

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// GridSize is the number of samples per axis of the rendered surface.
	GridSize = 50
	// DomainMin and DomainMax bound the rendered surface on both axes.
	DomainMin = -2.5
	DomainMax = 2.5

	// PointMin and PointMax bound the sample point P on both axes.
	PointMin = -2.0
	PointMax = 2.0
	// PointStep is the slider resolution of P.
	PointStep = 0.1

	// DefaultX and DefaultY place P at (1, 1) on startup.
	DefaultX = 1.0
	DefaultY = 1.0

	rangeSlack   = 1e-9
	criticalEps  = 1e-12
	stepsPerUnit = 1 / PointStep
)

// Point is the sample point P.
type Point struct {
	X, Y float64
}

// DefaultPoint is where P starts.
func DefaultPoint() Point { return Point{X: DefaultX, Y: DefaultY} }

func (p Point) String() string { return fmt.Sprintf("P(%.1f, %.1f)", p.X, p.Y) }

// Valid reports whether both coordinates lie in [PointMin, PointMax].
// NaN coordinates are never valid.
func (p Point) Valid() bool {
	return inRange(p.X) && inRange(p.Y)
}

func inRange(v float64) bool {
	return v >= PointMin-rangeSlack && v <= PointMax+rangeSlack
}

// Snap rounds both coordinates to the nearest PointStep.
func (p Point) Snap() Point {
	return Point{X: snap(p.X), Y: snap(p.Y)}
}

func snap(v float64) float64 {
	s := math.Round(v*stepsPerUnit) / stepsPerUnit
	if s == 0 {
		return 0 // drop negative zero
	}
	return s
}

// Clamp limits both coordinates to [PointMin, PointMax].
func (p Point) Clamp() Point {
	return Point{X: clamp(p.X), Y: clamp(p.Y)}
}

func clamp(v float64) float64 {
	return math.Max(PointMin, math.Min(PointMax, v))
}

// Nudge moves P by (dx, dy) slider steps and keeps it on the step grid
// inside the allowed range.
func (p Point) Nudge(dx, dy int) Point {
	return Point{
		X: p.X + float64(dx)*PointStep,
		Y: p.Y + float64(dy)*PointStep,
	}.Snap().Clamp()
}

// Gradient holds (df/dx, df/dy) at a point.
type Gradient struct {
	X, Y float64
}

func (g Gradient) String() string {
	return "[" + Fixed2(g.X) + ", " + Fixed2(g.Y) + "]"
}

// Fixed2 formats v with two decimals, never as "-0.00".
func Fixed2(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// Magnitude is |grad f|, the rate of steepest ascent.
func (g Gradient) Magnitude() float64 { return math.Hypot(g.X, g.Y) }

// IsCritical reports a vanishing gradient (no ascent direction).
func (g Gradient) IsCritical() bool { return g.Magnitude() < criticalEps }

// Direction is the unit vector of steepest ascent, zero at critical points.
func (g Gradient) Direction() Gradient {
	m := g.Magnitude()
	if m < criticalEps {
		return Gradient{}
	}
	return Gradient{X: g.X / m, Y: g.Y / m}
}

// Descent is the steepest-descent direction -grad f.
func (g Gradient) Descent() Gradient { return Gradient{X: -g.X, Y: -g.Y} }

// Grid is a meshgrid of surface samples. Row i holds y = Ys[i], column j
// holds x = Xs[j], and Z[i][j] = h(Xs[j], Ys[i]).
type Grid struct {
	Xs, Ys []float64
	Z      [][]float64
}

// SampleGrid samples v on an n x n grid over [lo, hi]^2.
func SampleGrid(v Variant, n int, lo, hi float64) *Grid {
	xs := make([]float64, n)
	ys := make([]float64, n)
	floats.Span(xs, lo, hi)
	floats.Span(ys, lo, hi)

	z := make([][]float64, n)
	for i, y := range ys {
		z[i] = make([]float64, n)
		for j, x := range xs {
			z[i][j] = v.Height(x, y)
		}
	}
	return &Grid{Xs: xs, Ys: ys, Z: z}
}

// Size is the number of samples per axis.
func (g *Grid) Size() int { return len(g.Xs) }

// Spacing is the distance between neighbouring samples.
func (g *Grid) Spacing() float64 {
	if len(g.Xs) < 2 {
		return 0
	}
	return g.Xs[1] - g.Xs[0]
}

// ZRange returns the smallest and largest sampled height.
func (g *Grid) ZRange() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range g.Z {
		lo = math.Min(lo, floats.Min(row))
		hi = math.Max(hi, floats.Max(row))
	}
	return lo, hi
}

// Nearest returns the row, column and height of the sample closest to p.
func (g *Grid) Nearest(p Point) (int, int, float64) {
	i := nearestIndex(g.Ys, p.Y)
	j := nearestIndex(g.Xs, p.X)
	return i, j, g.Z[i][j]
}

func nearestIndex(axis []float64, v float64) int {
	n := len(axis)
	if n < 2 {
		return 0
	}
	step := axis[1] - axis[0]
	idx := int(math.Round((v - axis[0]) / step))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// Result is one evaluation of a variant at P.
type Result struct {
	Variant  Variant
	Point    Point
	Grid     *Grid
	Z        float64
	Gradient Gradient
}

// Evaluate samples the surface and computes f(P) and grad f(P). The grid
// and the point value come from the same height function.
func Evaluate(v Variant, p Point) (*Result, error) {
	if !v.Valid() {
		return nil, &InputError{Input: fmt.Sprintf("%d", int(v)), Wrapped: ErrUnknownVariant}
	}
	if !p.Valid() {
		return nil, &InputError{Input: fmt.Sprintf("(%g, %g)", p.X, p.Y), Wrapped: ErrOutOfRange}
	}
	return &Result{
		Variant:  v,
		Point:    p,
		Grid:     SampleGrid(v, GridSize, DomainMin, DomainMax),
		Z:        v.Height(p.X, p.Y),
		Gradient: v.Gradient(p),
	}, nil
}

// Axis picks the coordinate a cross-section runs along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// ParseAxis accepts "x" or "y".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	}
	return AxisX, fmt.Errorf("surface: unknown axis %q (want x or y)", s)
}

// Slice samples h along a line through p parallel to axis, over the
// rendered domain. It returns the positions and heights.
func (v Variant) Slice(axis Axis, p Point, n int) ([]float64, []float64) {
	ts := make([]float64, n)
	floats.Span(ts, DomainMin, DomainMax)
	zs := make([]float64, n)
	for i, t := range ts {
		if axis == AxisY {
			zs[i] = v.Height(p.X, t)
		} else {
			zs[i] = v.Height(t, p.Y)
		}
	}
	return ts, zs
}

// TangentLine returns the tangent of the cross-section through P at each
// position in ts. Positions farther than window from P are NaN.
func (r *Result) TangentLine(axis Axis, ts []float64, window float64) []float64 {
	at, slope := r.Point.X, r.Gradient.X
	if axis == AxisY {
		at, slope = r.Point.Y, r.Gradient.Y
	}
	out := make([]float64, len(ts))
	for i, t := range ts {
		if math.Abs(t-at) > window {
			out[i] = math.NaN()
			continue
		}
		out[i] = r.Z + slope*(t-at)
	}
	return out
}
