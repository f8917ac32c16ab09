package image

import (
	"gonum.org/v1/gonum/stat"
)

// SeedStats returns the mean and standard deviation of the luminance inside
// the square window of the given radius centered on (cx, cy), clipped to the
// image. Used to derive a flood-fill tolerance from the seed neighborhood.
func (c *Context) SeedStats(cx, cy, radius int) (mean, stddev float64) {
	if !c.InBounds(cx, cy) || radius < 0 {
		return 0, 0
	}

	samples := make([]float64, 0, (2*radius+1)*(2*radius+1))
	for y := cy - radius; y <= cy+radius; y++ {
		if y < 0 || y >= c.Height {
			continue
		}
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || x >= c.Width {
				continue
			}
			samples = append(samples, c.Luminance[c.Index(x, y)])
		}
	}
	if len(samples) == 0 {
		return 0, 0
	}

	mean, stddev = stat.MeanStdDev(samples, nil)
	if len(samples) < 2 {
		stddev = 0
	}
	return mean, stddev
}
