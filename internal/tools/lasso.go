package tools

import (
	"room-masker/internal/mask"
	"room-masker/internal/raster"
	"room-masker/pkg/geometry"
)

// Lasso captures a free-form polygon from the raw sequence of sampled
// pointer positions. On release the polygon is scan-filled into the active
// room's mask.
type Lasso struct {
	points []geometry.Point2D
}

// Start begins a new capture at the given point.
func (l *Lasso) Start(p geometry.Point2D) {
	l.points = l.points[:0]
	l.points = append(l.points, p)
}

// Extend appends a sampled point to the path.
func (l *Lasso) Extend(p geometry.Point2D) {
	l.points = append(l.points, p)
}

// Points returns the captured path, for preview rendering.
func (l *Lasso) Points() []geometry.Point2D {
	return l.points
}

// Active reports whether a capture is in progress.
func (l *Lasso) Active() bool {
	return len(l.points) > 0
}

// Reset discards the captured path.
func (l *Lasso) Reset() {
	l.points = l.points[:0]
}

// Commit fills the captured polygon into the room's mask, honoring the
// store's assignment rules, and resets the capture. Paths with fewer than
// 3 points are a no-op.
func (l *Lasso) Commit(st *mask.Store, r *mask.Room) geometry.PixelRect {
	defer l.Reset()
	if len(l.points) < 3 {
		return geometry.PixelRect{}
	}
	pred := func(idx int) bool { return st.CanAssign(r, idx) }
	indices := raster.FillPolygon(l.points, st.Width(), st.Height(), pred)
	return st.Paint(r, indices, 1)
}
