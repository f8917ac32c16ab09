// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Round converts to the nearest integer point.
func (p Point2D) Round() PointInt {
	return PointInt{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// PointInt represents a 2D point with integer coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToFloat converts to Point2D.
func (p PointInt) ToFloat() Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}

// Clamp restricts the point to the rectangle [0,w-1] x [0,h-1].
func (p PointInt) Clamp(w, h int) PointInt {
	q := p
	if q.X < 0 {
		q.X = 0
	}
	if q.X > w-1 {
		q.X = w - 1
	}
	if q.Y < 0 {
		q.Y = 0
	}
	if q.Y > h-1 {
		q.Y = h - 1
	}
	return q
}

// PixelRect is an inclusive pixel-space rectangle used to track dirty
// regions. The zero value is the empty rectangle.
type PixelRect struct {
	MinX, MinY int
	MaxX, MaxY int
	valid      bool
}

// NewPixelRect creates a rectangle spanning the two corner points.
func NewPixelRect(minX, minY, maxX, maxY int) PixelRect {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return PixelRect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY, valid: true}
}

// PixelRectAround returns the rectangle covering a disc of the given radius.
func PixelRectAround(cx, cy, radius int) PixelRect {
	return NewPixelRect(cx-radius, cy-radius, cx+radius, cy+radius)
}

// FullImage returns the rectangle covering an entire w x h image.
func FullImage(w, h int) PixelRect {
	return NewPixelRect(0, 0, w-1, h-1)
}

// Empty reports whether the rectangle covers no pixels.
func (r PixelRect) Empty() bool {
	return !r.valid
}

// Union returns the bounding box of both rectangles. Dirty regions are never
// split: merging always takes the single enclosing box.
func (r PixelRect) Union(other PixelRect) PixelRect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	out := r
	if other.MinX < out.MinX {
		out.MinX = other.MinX
	}
	if other.MinY < out.MinY {
		out.MinY = other.MinY
	}
	if other.MaxX > out.MaxX {
		out.MaxX = other.MaxX
	}
	if other.MaxY > out.MaxY {
		out.MaxY = other.MaxY
	}
	return out
}

// Include grows the rectangle to cover the given pixel.
func (r PixelRect) Include(x, y int) PixelRect {
	return r.Union(NewPixelRect(x, y, x, y))
}

// Intersect clips the rectangle to the image bounds [0,w-1] x [0,h-1].
// Returns the empty rectangle when nothing remains.
func (r PixelRect) Intersect(w, h int) PixelRect {
	if r.Empty() {
		return PixelRect{}
	}
	out := r
	if out.MinX < 0 {
		out.MinX = 0
	}
	if out.MinY < 0 {
		out.MinY = 0
	}
	if out.MaxX > w-1 {
		out.MaxX = w - 1
	}
	if out.MaxY > h-1 {
		out.MaxY = h - 1
	}
	if out.MinX > out.MaxX || out.MinY > out.MaxY {
		return PixelRect{}
	}
	return out
}

// Width returns the number of pixel columns covered.
func (r PixelRect) Width() int {
	if r.Empty() {
		return 0
	}
	return r.MaxX - r.MinX + 1
}

// Height returns the number of pixel rows covered.
func (r PixelRect) Height() int {
	if r.Empty() {
		return 0
	}
	return r.MaxY - r.MinY + 1
}

// Contains reports whether the pixel lies inside the rectangle.
func (r PixelRect) Contains(x, y int) bool {
	return !r.Empty() && x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}
