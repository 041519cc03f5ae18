// Package viz renders gradviz scenes in the terminal.
//
// The package turns a [surface.Result] into a 3D braille wireframe and a
// calculations panel, and hosts the interactive Bubble Tea view:
//
//   - [Scene]: surface mesh, marker at P and gradient cone in a unit cube
//   - [Canvas]: Braille-based pixel canvas with per-cell color layers
//   - [Camera]: orbiting perspective projection (world Z up)
//   - [App]: interactive view; every key press re-evaluates the surface
//   - Theme selection with 6 built-in color schemes
//
// # Key Bindings
//
//	tab/v - Next function (1-3 pick directly)
//	h/l   - Move P along x by 0.1
//	j/k   - Move P along y by 0.1
//	z/Z   - Orbit camera
//	x/X   - Tilt camera
//	+/-   - Zoom
//	t     - Cycle color themes
//	r     - Reset to the starting inputs
//	?     - Show help
//
// The arrow is drawn along (gx, gy, |gx|+|gy|) scaled by 0.5. The vertical
// lift only keeps it visible above the surface.
package viz
