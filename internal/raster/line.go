// Package raster provides the low-level pixel operations the editing tools
// are built from: line interpolation, disc stamping, scanline polygon fill,
// and tolerance-bounded flood fill. All functions work in image pixel space
// and clip to the image bounds themselves.
package raster

import (
	"room-masker/pkg/geometry"
)

// Line rasterizes the segment between two integer points using Bresenham's
// algorithm. Both endpoints are included. Pointer motion between two input
// samples is interpolated through this so fast strokes do not leave gaps.
func Line(from, to geometry.PointInt) []geometry.PointInt {
	x1, y1 := from.X, from.Y
	x2, y2 := to.X, to.Y

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	points := make([]geometry.PointInt, 0, dx+dy+1)
	err := dx - dy

	for {
		points = append(points, geometry.PointInt{X: x1, Y: y1})
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}

	return points
}
