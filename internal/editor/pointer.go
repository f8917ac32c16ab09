package editor

import (
	"room-masker/internal/tools"
	"room-masker/pkg/geometry"
)

// PointerDown begins a gesture at image coordinates. Coordinates may be
// fractional; mutating tools require an active session and are otherwise
// ignored. Out-of-range positions are clamped to the image.
func (e *Engine) PointerDown(x, y float64) {
	if e.ctx == nil {
		return
	}
	raw := geometry.Point2D{X: x, Y: y}
	p := raw.Round().Clamp(e.ctx.Width, e.ctx.Height)

	if e.tool == tools.ToolMove {
		e.selectAt(p.X, p.Y)
		return
	}
	if !e.session.Active() {
		return
	}
	room := e.session.Room
	e.pointerDown = true
	e.lastPoint = pointInt{X: p.X, Y: p.Y}

	switch e.tool {
	case tools.ToolBrush, tools.ToolEraser:
		e.snapshotSession()
		b := tools.Brush{Radius: e.brushRadius, Erase: e.tool == tools.ToolEraser}
		e.markDirty(b.Stamp(e.store, room, p))
		e.Emit(EventModified, nil)
	case tools.ToolLasso:
		e.lasso.Start(raw)
	case tools.ToolMagneticLasso:
		e.magnetic.SearchRadius = e.snapRadius
		e.magnetic.StartAt(e.ctx, raw)
	case tools.ToolWand:
		e.snapshotSession()
		wd := tools.Wand{Tolerance: e.wandTolerance}
		dirty := wd.Fill(e.store, room, e.ctx, p.X, p.Y)
		e.pointerDown = false
		e.markDirty(dirty)
		if !dirty.Empty() {
			e.Emit(EventModified, nil)
		}
	}
}

// PointerMove continues the current gesture. Samples arriving without a
// preceding PointerDown are ignored.
func (e *Engine) PointerMove(x, y float64) {
	if e.ctx == nil || !e.pointerDown || !e.session.Active() {
		return
	}
	raw := geometry.Point2D{X: x, Y: y}
	p := raw.Round().Clamp(e.ctx.Width, e.ctx.Height)
	room := e.session.Room

	switch e.tool {
	case tools.ToolBrush, tools.ToolEraser:
		from := geometry.PointInt{X: e.lastPoint.X, Y: e.lastPoint.Y}
		b := tools.Brush{Radius: e.brushRadius, Erase: e.tool == tools.ToolEraser}
		dirty := b.Stroke(e.store, room, from, p)
		e.markDirty(dirty)
		if !dirty.Empty() {
			e.Emit(EventModified, nil)
		}
	case tools.ToolLasso:
		e.lasso.Extend(raw)
	case tools.ToolMagneticLasso:
		e.magnetic.ExtendAt(e.ctx, raw)
	}

	e.lastPoint = pointInt{X: p.X, Y: p.Y}
}

// PointerUp ends the current gesture. Lasso paths are committed here; a
// path with fewer than three vertices is discarded without touching the
// mask or history.
func (e *Engine) PointerUp(x, y float64) {
	if e.ctx == nil || !e.pointerDown {
		return
	}
	e.PointerMove(x, y)
	e.pointerDown = false
	if !e.session.Active() {
		return
	}
	room := e.session.Room

	switch e.tool {
	case tools.ToolLasso:
		if len(e.lasso.Points()) >= 3 {
			e.snapshotSession()
			dirty := e.lasso.Commit(e.store, room)
			e.markDirty(dirty)
			if !dirty.Empty() {
				e.Emit(EventModified, nil)
			}
		} else {
			e.lasso.Reset()
		}
	case tools.ToolMagneticLasso:
		if len(e.magnetic.Points()) >= 3 {
			e.snapshotSession()
			dirty := e.magnetic.Commit(e.store, room)
			e.markDirty(dirty)
			if !dirty.Empty() {
				e.Emit(EventModified, nil)
			}
		} else {
			e.magnetic.Reset()
		}
	}
}

// LassoPreview returns the path captured so far by the active lasso tool,
// for rendering the in-progress outline.
func (e *Engine) LassoPreview() []geometry.Point2D {
	switch e.tool {
	case tools.ToolLasso:
		return e.lasso.Points()
	case tools.ToolMagneticLasso:
		return e.magnetic.Points()
	}
	return nil
}

func (e *Engine) selectAt(x, y int) {
	room := e.store.RoomAt(x, y)
	if room == e.selected {
		return
	}
	e.selected = room
	e.Emit(EventSelectionChanged, room)
}

// snapshotSession records the session room's state before a gesture.
func (e *Engine) snapshotSession() {
	room := e.session.Room
	e.hist.Snapshot(room.ID, room.Mask, e.store.OwnerSnapshot())
}
