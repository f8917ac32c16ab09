package tools

import (
	roomimage "room-masker/internal/image"
	"room-masker/internal/mask"
	"room-masker/internal/raster"
	"room-masker/pkg/geometry"
)

// DefaultWandTolerance is the maximum luminance difference from the seed
// that the flood fill accepts.
const DefaultWandTolerance = 38

// autoToleranceRadius is the seed neighborhood sampled when deriving a
// tolerance from local statistics.
const autoToleranceRadius = 8

// Wand flood-fills a luminance-similar region from the clicked pixel into
// the active room's mask.
type Wand struct {
	Tolerance float64
}

// Fill runs a 4-connected flood fill from (x, y) and commits the accepted
// pixels to the room. The store's assignment rules apply during the fill
// itself: pixels owned by another room are rejected and not traversed
// through. Returns the dirty rectangle of changed pixels.
func (wd Wand) Fill(st *mask.Store, r *mask.Room, ctx *roomimage.Context, x, y int) geometry.PixelRect {
	tol := wd.Tolerance
	if tol <= 0 {
		tol = AutoTolerance(ctx, x, y)
	}
	pred := func(idx int) bool { return st.CanAssign(r, idx) }
	indices := raster.FloodFill(ctx.Luminance, ctx.Width, ctx.Height, x, y, tol, pred)
	return st.Paint(r, indices, 1)
}

// AutoTolerance derives a fill tolerance from the luminance spread of the
// seed neighborhood (two standard deviations), floored at the default so a
// flat region still fills usefully.
func AutoTolerance(ctx *roomimage.Context, x, y int) float64 {
	_, stddev := ctx.SeedStats(x, y, autoToleranceRadius)
	tol := 2 * stddev
	if tol < DefaultWandTolerance {
		tol = DefaultWandTolerance
	}
	return tol
}
