package raster

import (
	"math"
)

// FloodFill performs a 4-connected breadth-first flood fill over the
// luminance buffer, starting at the seed pixel. A pixel is accepted when its
// luminance differs from the seed luminance by at most tolerance AND pred
// (when non-nil) accepts it. Rejected pixels are not traversed through.
// Returns the accepted pixel indices, or nil when the seed is out of bounds
// or itself rejected.
func FloodFill(lum []float64, w, h, seedX, seedY int, tolerance float64, pred func(idx int) bool) []int {
	if w <= 0 || h <= 0 || len(lum) < w*h {
		return nil
	}
	if seedX < 0 || seedX >= w || seedY < 0 || seedY >= h {
		return nil
	}

	seedIdx := seedY*w + seedX
	seedLum := lum[seedIdx]

	accept := func(idx int) bool {
		if math.Abs(lum[idx]-seedLum) > tolerance {
			return false
		}
		return pred == nil || pred(idx)
	}

	if !accept(seedIdx) {
		return nil
	}

	visited := make([]bool, w*h)
	visited[seedIdx] = true
	queue := []int{seedIdx}
	out := []int{seedIdx}

	var neighbors [4][2]int
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		x := idx % w
		y := idx / w

		neighbors = [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}}
		for _, nb := range neighbors {
			nx, ny := nb[0], nb[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			nIdx := ny*w + nx
			if visited[nIdx] {
				continue
			}
			visited[nIdx] = true
			if !accept(nIdx) {
				continue
			}
			queue = append(queue, nIdx)
			out = append(out, nIdx)
		}
	}

	return out
}
