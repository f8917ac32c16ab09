package tools

import (
	"room-masker/internal/mask"
	"room-masker/internal/raster"
	"room-masker/pkg/geometry"
)

// Brush radius bounds. The radius is an operator-tunable integer parameter.
const (
	BrushRadiusMin     = 1
	BrushRadiusMax     = 40
	BrushRadiusDefault = 12
)

// ClampBrushRadius restricts a radius to the configured bounds.
func ClampBrushRadius(r int) int {
	if r < BrushRadiusMin {
		return BrushRadiusMin
	}
	if r > BrushRadiusMax {
		return BrushRadiusMax
	}
	return r
}

// Brush paints (or erases, when Erase is set) circular stamps along the
// pointer path. Motion between two samples is interpolated with Bresenham
// so fast strokes stay solid.
type Brush struct {
	Radius int
	Erase  bool
}

// Stroke stamps every interpolated point between two pointer samples.
// Painting honors the store's assignment rules; erasing only ever clears
// the room's own pixels. Returns the dirty rectangle of changed pixels.
func (b Brush) Stroke(st *mask.Store, r *mask.Room, from, to geometry.PointInt) geometry.PixelRect {
	w, h := st.Width(), st.Height()
	value := uint8(1)
	var pred func(idx int) bool
	if b.Erase {
		value = 0
	} else {
		pred = func(idx int) bool { return st.CanAssign(r, idx) }
	}

	var dirty geometry.PixelRect
	for _, p := range raster.Line(from, to) {
		indices := raster.Disc(p.X, p.Y, b.Radius, w, h, pred)
		dirty = dirty.Union(st.Paint(r, indices, value))
	}
	return dirty
}

// Stamp applies a single dab at one point, used for click-without-drag.
func (b Brush) Stamp(st *mask.Store, r *mask.Room, at geometry.PointInt) geometry.PixelRect {
	return b.Stroke(st, r, at, at)
}
