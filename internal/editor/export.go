package editor

import "image/color"

// ExportedMask is the per-room result handed to the embedding application:
// the room's metadata plus an independent copy of its binary mask, one byte
// per pixel in row-major order.
type ExportedMask struct {
	RoomID         string
	Name           string
	Description    string
	Tags           []string
	Color          color.RGBA
	VisibleAtStart bool
	Width          int
	Height         int
	Mask           []uint8
}

// ExportMasks returns a snapshot of every room's mask in creation order.
// The in-progress session room is included as-is; callers that want only
// confirmed boundaries should confirm or cancel first.
func (e *Engine) ExportMasks() []ExportedMask {
	if e.store == nil {
		return nil
	}
	rooms := e.store.Rooms()
	out := make([]ExportedMask, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, ExportedMask{
			RoomID:         r.ID,
			Name:           r.Name,
			Description:    r.Description,
			Tags:           append([]string(nil), r.Tags...),
			Color:          r.Color,
			VisibleAtStart: r.VisibleAtStart,
			Width:          e.store.Width(),
			Height:         e.store.Height(),
			Mask:           r.CloneMask(),
		})
	}
	return out
}
