package raster

// Disc returns the indices of all pixels (x,y) with
// (x-cx)^2 + (y-cy)^2 <= radius^2, clipped to the w x h image bounds and
// filtered by pred. A nil pred accepts every pixel. Radius 0 stamps the
// single center pixel.
func Disc(cx, cy, radius, w, h int, pred func(idx int) bool) []int {
	if w <= 0 || h <= 0 || radius < 0 {
		return nil
	}

	r2 := radius * radius
	out := make([]int, 0, (2*radius+1)*(2*radius+1))

	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= h {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x := cx + dx
			if x < 0 || x >= w {
				continue
			}
			idx := y*w + x
			if pred != nil && !pred(idx) {
				continue
			}
			out = append(out, idx)
		}
	}

	return out
}
