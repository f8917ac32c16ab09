// Package mask provides the room model and the mask store: one binary mask
// per room plus the shared pixel-owner index array, with the one-room-per-
// pixel rule enforced while a room is being drawn.
package mask

import (
	"image/color"

	"room-masker/pkg/colorutil"
)

// Room is a closed region painted over the loaded map. The mask is the
// ground truth of the room's extent; the store's owner array is only a
// cache derived from it.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	// VisibleAtStart marks rooms revealed before any play starts.
	VisibleAtStart bool `json:"visible_at_start"`

	// Confirmed is set once the operator accepts the boundary. Confirmed
	// rooms are repainted without cross-room protection; a later owner
	// rebuild is canonical.
	Confirmed bool `json:"confirmed"`

	Color       color.RGBA `json:"color"`
	ColorVector [3]int     `json:"color_vector"`

	// Mask is a width*height buffer of 0/1 bytes, row-major, owned
	// exclusively by this room.
	Mask []uint8 `json:"-"`
}

// NewRoom creates an empty room with the given identity and overlay color.
// The mask is allocated by the store when the room is added.
func NewRoom(id, name string, c color.RGBA) *Room {
	return &Room{
		ID:          id,
		Name:        name,
		Color:       c,
		ColorVector: colorutil.Vector(c),
	}
}

// SetColor updates the overlay color and its integer vector together.
func (r *Room) SetColor(c color.RGBA) {
	r.Color = c
	r.ColorVector = colorutil.Vector(c)
}

// CloneMask returns a copy of the room's mask buffer.
func (r *Room) CloneMask() []uint8 {
	out := make([]uint8, len(r.Mask))
	copy(out, r.Mask)
	return out
}
