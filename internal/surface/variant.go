package surface

import (
	"fmt"
	"math"
	"strings"
)

// Variant selects one of the built-in example functions.
type Variant int

const (
	Paraboloid Variant = iota
	Saddle
	Wave
)

// Variants lists every supported function in menu order.
var Variants = []Variant{Paraboloid, Saddle, Wave}

// String returns the short key used on the command line and in config files.
func (v Variant) String() string {
	switch v {
	case Paraboloid:
		return "paraboloid"
	case Saddle:
		return "saddle"
	case Wave:
		return "wave"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Name is the human readable surface name.
func (v Variant) Name() string {
	switch v {
	case Paraboloid:
		return "Paraboloid"
	case Saddle:
		return "Saddle Surface"
	case Wave:
		return "Wave Surface"
	}
	return v.String()
}

// Difficulty tags the variant for the selection menu.
func (v Variant) Difficulty() string {
	switch v {
	case Paraboloid:
		return "Simple"
	case Saddle:
		return "Medium"
	case Wave:
		return "Complex"
	}
	return ""
}

// Formula is the right-hand side of f(x,y) in plain text.
func (v Variant) Formula() string {
	switch v {
	case Paraboloid:
		return "x^2 + y^2"
	case Saddle:
		return "x^2 - y^2"
	case Wave:
		return "sin(x) * cos(y)"
	}
	return "?"
}

// Label is the full menu entry, e.g. "Paraboloid (Simple): x^2 + y^2".
func (v Variant) Label() string {
	return fmt.Sprintf("%s (%s): %s", v.Name(), v.Difficulty(), v.Formula())
}

// Equation is the compact form shown next to the calculations.
func (v Variant) Equation() string {
	switch v {
	case Wave:
		return "f(x,y) = sin(x)cos(y)"
	}
	return "f(x,y) = " + v.Formula()
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool {
	return v >= Paraboloid && v <= Wave
}

// Next cycles to the following variant in menu order.
func (v Variant) Next() Variant {
	return Variants[(int(v)+1)%len(Variants)]
}

// Height evaluates h(x, y).
func (v Variant) Height(x, y float64) float64 {
	switch v {
	case Paraboloid:
		return x*x + y*y
	case Saddle:
		return x*x - y*y
	case Wave:
		return math.Sin(x) * math.Cos(y)
	}
	panic(fmt.Sprintf("surface: height of invalid variant %d", int(v)))
}

// Partials returns the analytic (dh/dx, dh/dy) at (x, y).
func (v Variant) Partials(x, y float64) (float64, float64) {
	switch v {
	case Paraboloid:
		return 2 * x, 2 * y
	case Saddle:
		return 2 * x, -2 * y
	case Wave:
		return math.Cos(x) * math.Cos(y), -math.Sin(x) * math.Sin(y)
	}
	panic(fmt.Sprintf("surface: partials of invalid variant %d", int(v)))
}

// Gradient is Partials packed as a vector.
func (v Variant) Gradient(p Point) Gradient {
	gx, gy := v.Partials(p.X, p.Y)
	return Gradient{X: gx, Y: gy}
}

// ParseVariant accepts the short key, the surface name or the full menu
// label, case-insensitively.
func ParseVariant(s string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, v := range Variants {
		switch key {
		case v.String(), strings.ToLower(v.Name()), strings.ToLower(v.Label()):
			return v, nil
		}
	}
	return 0, &InputError{Input: fmt.Sprintf("%q", s), Wrapped: ErrUnknownVariant}
}

// VariantKeys returns the short keys of all variants.
func VariantKeys() []string {
	keys := make([]string, len(Variants))
	for i, v := range Variants {
		keys[i] = v.String()
	}
	return keys
}
