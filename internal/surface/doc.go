// Package surface evaluates the closed-form example functions shown by
// gradviz.
//
// The package defines the fixed set of functions and the single pure
// evaluation step that drives every view:
//
//   - [Variant]: closed enum of the supported surfaces (paraboloid, saddle, wave)
//   - [Point]: the sample point P, bounded to [-2, 2] x [-2, 2] on a 0.1 step
//   - [Grid]: 50 x 50 height samples over [-2.5, 2.5] x [-2.5, 2.5]
//   - [Result]: grid, f(P) and the analytic gradient at P
//
// # Example
//
//	v, _ := surface.ParseVariant("saddle")
//	r, _ := surface.Evaluate(v, surface.Point{X: 1, Y: 1})
//	fmt.Println(r.Z, r.Gradient) // 0 [2.00, -2.00]
//
// Partial derivatives are hand-written per variant. Nothing here
// differentiates numerically.
package surface
