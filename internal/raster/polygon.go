package raster

import (
	"math"
	"sort"

	"room-masker/pkg/geometry"
)

// FillPolygon scan-converts the polygon using the even-odd rule and returns
// the indices of the covered pixels, filtered by pred. Vertices are rounded
// and clamped to the image bounds first. Polygons with fewer than 3 points
// cover nothing.
//
// For each scanline every edge-crossing x intersection is computed, the
// intersections are sorted, and pixels in [ceil(x1), ceil(x2)) are filled
// between successive pairs.
func FillPolygon(points []geometry.Point2D, w, h int, pred func(idx int) bool) []int {
	if len(points) < 3 || w <= 0 || h <= 0 {
		return nil
	}

	// Round and clamp vertices into image space.
	verts := make([]geometry.Point2D, len(points))
	minY, maxY := h-1, 0
	for i, p := range points {
		q := p.Round().Clamp(w, h)
		verts[i] = q.ToFloat()
		if q.Y < minY {
			minY = q.Y
		}
		if q.Y > maxY {
			maxY = q.Y
		}
	}

	var out []int
	n := len(verts)
	crossings := make([]float64, 0, n)

	for y := minY; y <= maxY; y++ {
		fy := float64(y)
		crossings = crossings[:0]

		for i := 0; i < n; i++ {
			p1 := verts[i]
			p2 := verts[(i+1)%n]
			if (p1.Y <= fy && p2.Y > fy) || (p2.Y <= fy && p1.Y > fy) {
				t := (fy - p1.Y) / (p2.Y - p1.Y)
				crossings = append(crossings, p1.X+t*(p2.X-p1.X))
			}
		}

		sort.Float64s(crossings)

		for i := 0; i+1 < len(crossings); i += 2 {
			x1 := int(math.Ceil(crossings[i]))
			x2 := int(math.Ceil(crossings[i+1]))
			if x1 < 0 {
				x1 = 0
			}
			if x2 > w {
				x2 = w
			}
			for x := x1; x < x2; x++ {
				idx := y*w + x
				if pred != nil && !pred(idx) {
					continue
				}
				out = append(out, idx)
			}
		}
	}

	return out
}
