// Package compositor merges all rooms' masks into a single color+alpha
// overlay buffer. Mutations report dirty rectangles; rectangles accumulate
// into one pending bounding box which is flushed at most once per display
// refresh, so many stroke samples coalesce into a single rewrite.
package compositor

import (
	"image"

	"room-masker/internal/mask"
	"room-masker/pkg/geometry"
)

const (
	// roomAlpha is the fixed alpha contribution of each covering room.
	roomAlpha = 140
	// alphaMin/alphaMax clamp the summed alpha of overlapping rooms.
	alphaMin = 80
	alphaMax = 200
)

// Compositor owns the RGBA overlay sized to the image.
type Compositor struct {
	width  int
	height int

	overlay *image.NRGBA

	pending   geometry.PixelRect
	scheduled bool

	// schedule, when set, is invoked once per batch of MarkDirty calls to
	// request a flush from the display side. When nil the owner drives
	// flushes directly (tests do this).
	schedule func()
}

// New creates a compositor for a w x h image.
func New(w, h int) *Compositor {
	return &Compositor{
		width:   w,
		height:  h,
		overlay: image.NewNRGBA(image.Rect(0, 0, w, h)),
	}
}

// SetScheduler installs the flush-request callback.
func (c *Compositor) SetScheduler(schedule func()) {
	c.schedule = schedule
}

// Overlay returns the current overlay buffer. Callers must not retain it
// across flushes.
func (c *Compositor) Overlay() *image.NRGBA { return c.overlay }

// MarkDirty merges the rectangle into the single pending dirty rectangle
// (bounding-box union, never a list) and schedules a flush if none is
// pending yet.
func (c *Compositor) MarkDirty(rect geometry.PixelRect) {
	rect = rect.Intersect(c.width, c.height)
	if rect.Empty() {
		return
	}
	c.pending = c.pending.Union(rect)
	if !c.scheduled {
		c.scheduled = true
		if c.schedule != nil {
			c.schedule()
		}
	}
}

// Pending reports whether a flush is outstanding.
func (c *Compositor) Pending() bool { return !c.pending.Empty() }

// Flush rewrites the pending dirty rectangle from the rooms' masks and
// clears it. Only pixels inside the rectangle are touched. Returns the
// rectangle that was flushed (empty when there was nothing to do).
func (c *Compositor) Flush(rooms []*mask.Room) geometry.PixelRect {
	rect := c.pending
	c.pending = geometry.PixelRect{}
	c.scheduled = false
	if rect.Empty() {
		return rect
	}
	c.composite(rooms, rect)
	return rect
}

// Recomposite rebuilds the full overlay from scratch, discarding any
// pending rectangle. Used after image load and room deletion.
func (c *Compositor) Recomposite(rooms []*mask.Room) {
	c.pending = geometry.PixelRect{}
	c.scheduled = false
	c.composite(rooms, geometry.FullImage(c.width, c.height))
}

// composite blends every covering room into each pixel of the rectangle:
// RGB is the average of the contributing color vectors, alpha the clamped
// sum of the per-room contributions. Uncovered pixels go fully transparent.
func (c *Compositor) composite(rooms []*mask.Room, rect geometry.PixelRect) {
	for y := rect.MinY; y <= rect.MaxY; y++ {
		row := y * c.width
		for x := rect.MinX; x <= rect.MaxX; x++ {
			idx := row + x
			var sumR, sumG, sumB, n int
			for _, r := range rooms {
				if r.Mask[idx] != 1 {
					continue
				}
				sumR += r.ColorVector[0]
				sumG += r.ColorVector[1]
				sumB += r.ColorVector[2]
				n++
			}

			p := c.overlay.PixOffset(x, y)
			pix := c.overlay.Pix[p : p+4 : p+4]
			if n == 0 {
				pix[0], pix[1], pix[2], pix[3] = 0, 0, 0, 0
				continue
			}

			alpha := n * roomAlpha
			if alpha < alphaMin {
				alpha = alphaMin
			}
			if alpha > alphaMax {
				alpha = alphaMax
			}
			pix[0] = uint8(sumR / n)
			pix[1] = uint8(sumG / n)
			pix[2] = uint8(sumB / n)
			pix[3] = uint8(alpha)
		}
	}
}
