package tools

import (
	roomimage "room-masker/internal/image"
	"room-masker/pkg/geometry"
)

// DefaultSnapRadius is the search radius around each raw sample when
// snapping to edges.
const DefaultSnapRadius = 14

// Magnetic is a lasso whose sampled points are pulled toward strong
// luminance edges before being added to the path, so the boundary hugs
// walls while still tracking the operator's gesture.
type Magnetic struct {
	Lasso
	SearchRadius int
}

// SnapToEdge evaluates score = normalizedGradient(p) - 2*distance(p, raw)
// over all candidate pixels within the search radius of the raw point and
// returns the maximum-scoring pixel. The raw point itself is always a
// candidate, so a flat neighborhood snaps nowhere.
func SnapToEdge(ctx *roomimage.Context, raw geometry.Point2D, searchRadius int) geometry.PointInt {
	center := raw.Round().Clamp(ctx.Width, ctx.Height)
	if searchRadius <= 0 {
		return center
	}

	best := center
	bestScore := ctx.NormGradientAt(center.X, center.Y) - 2*center.ToFloat().Distance(raw)

	for dy := -searchRadius; dy <= searchRadius; dy++ {
		y := center.Y + dy
		if y < 0 || y >= ctx.Height {
			continue
		}
		for dx := -searchRadius; dx <= searchRadius; dx++ {
			x := center.X + dx
			if x < 0 || x >= ctx.Width {
				continue
			}
			p := geometry.PointInt{X: x, Y: y}
			score := ctx.NormGradientAt(x, y) - 2*p.ToFloat().Distance(raw)
			if score > bestScore {
				bestScore = score
				best = p
			}
		}
	}

	return best
}

// StartAt begins a capture with the snapped position of the raw point.
func (m *Magnetic) StartAt(ctx *roomimage.Context, raw geometry.Point2D) {
	m.Start(SnapToEdge(ctx, raw, m.radius()).ToFloat())
}

// ExtendAt appends the snapped position of the raw point to the path.
func (m *Magnetic) ExtendAt(ctx *roomimage.Context, raw geometry.Point2D) {
	m.Extend(SnapToEdge(ctx, raw, m.radius()).ToFloat())
}

func (m *Magnetic) radius() int {
	if m.SearchRadius > 0 {
		return m.SearchRadius
	}
	return DefaultSnapRadius
}
