// Package particle simulates the two animated populations drawn behind the
// slides: a field of twinkling background stars and a page-dependent set of
// foreground particles (fireworks or drifting gold motes).
//
// Every entity is advanced once per frame by Tick and drawn by Render. The
// package keeps no goroutines and no locks; callers drive it from a single
// frame loop.
package particle

import "image/color"

// Surface is the 2D drawing target entities render onto.
// Origin is top-left, y grows downward, units are device pixels.
type Surface interface {
	Clear()
	// FillCircle paints a filled circle. alpha is the global paint alpha in
	// [0,1]; it multiplies whatever alpha fill already carries.
	FillCircle(x, y, r float64, fill color.Color, alpha float64)
}
