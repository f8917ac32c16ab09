// Package image provides the per-image raster context: the RGBA pixel
// buffer of the loaded map plus the precomputed luminance and Sobel gradient
// magnitude buffers the editing tools sample from. Buffers are computed once
// per loaded image and are immutable afterwards.
package image

import (
	"fmt"
	"math"

	"room-masker/pkg/colorutil"
)

// Context holds the raster data for one loaded image. Width and height are
// fixed for the lifetime of the context.
type Context struct {
	Width  int
	Height int

	// Pix is the source image in RGBA order, 4 bytes per pixel, row-major.
	Pix []uint8

	// Luminance holds the perceptual luma (0.2126R + 0.7152G + 0.0722B)
	// per pixel on a 0-255 scale.
	Luminance []float64

	// Gradient holds the Sobel gradient magnitude per pixel; GradientMax is
	// the largest magnitude, kept for normalization.
	Gradient    []float64
	GradientMax float64
}

// NewContext builds a context from raw RGBA pixels. The only fatal input is
// a zero-area image, which is rejected before any buffer allocation.
func NewContext(pix []uint8, w, h int) (*Context, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", w, h)
	}
	if len(pix) < w*h*4 {
		return nil, fmt.Errorf("pixel buffer too small: have %d bytes, need %d", len(pix), w*h*4)
	}

	ctx := &Context{
		Width:  w,
		Height: h,
		Pix:    pix,
	}
	ctx.computeLuminance()
	ctx.computeGradient()
	return ctx, nil
}

// Index converts pixel coordinates to a buffer index. Coordinates must be
// in bounds.
func (c *Context) Index(x, y int) int {
	return y*c.Width + x
}

// InBounds reports whether the pixel coordinates lie inside the image.
func (c *Context) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// LuminanceAt returns the luma at the given pixel, 0 when out of bounds.
func (c *Context) LuminanceAt(x, y int) float64 {
	if !c.InBounds(x, y) {
		return 0
	}
	return c.Luminance[c.Index(x, y)]
}

// GradientAt returns the raw Sobel magnitude at the given pixel, 0 when out
// of bounds.
func (c *Context) GradientAt(x, y int) float64 {
	if !c.InBounds(x, y) {
		return 0
	}
	return c.Gradient[c.Index(x, y)]
}

// NormGradientAt returns the Sobel magnitude normalized to a 0-255 scale by
// the per-image maximum, so edge strength is commensurate with pixel
// distances when scoring snap candidates.
func (c *Context) NormGradientAt(x, y int) float64 {
	if c.GradientMax == 0 {
		return 0
	}
	return c.GradientAt(x, y) / c.GradientMax * 255.0
}

func (c *Context) computeLuminance() {
	c.Luminance = make([]float64, c.Width*c.Height)
	for i := range c.Luminance {
		p := i * 4
		c.Luminance[i] = colorutil.Luminance(c.Pix[p], c.Pix[p+1], c.Pix[p+2])
	}
}

// computeGradient applies the 3x3 Sobel operator to the luminance buffer.
// Border pixels use replicated edge samples.
func (c *Context) computeGradient() {
	w, h := c.Width, c.Height
	c.Gradient = make([]float64, w*h)
	c.GradientMax = 0

	lumAt := func(x, y int) float64 {
		if x < 0 {
			x = 0
		}
		if x > w-1 {
			x = w - 1
		}
		if y < 0 {
			y = 0
		}
		if y > h-1 {
			y = h - 1
		}
		return c.Luminance[y*w+x]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tl := lumAt(x-1, y-1)
			tc := lumAt(x, y-1)
			tr := lumAt(x+1, y-1)
			ml := lumAt(x-1, y)
			mr := lumAt(x+1, y)
			bl := lumAt(x-1, y+1)
			bc := lumAt(x, y+1)
			br := lumAt(x+1, y+1)

			gx := (tr + 2*mr + br) - (tl + 2*ml + bl)
			gy := (bl + 2*bc + br) - (tl + 2*tc + tr)

			mag := math.Sqrt(gx*gx + gy*gy)
			c.Gradient[c.Index(x, y)] = mag
			if mag > c.GradientMax {
				c.GradientMax = mag
			}
		}
	}
}
