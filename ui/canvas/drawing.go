package canvas

import (
	"image"
	"image/color"

	"room-masker/internal/editor"
	roomimage "room-masker/internal/image"
	"room-masker/pkg/geometry"
)

var hoverTextColor = color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}

func fillBackground(output *image.RGBA) {
	for i := 0; i < len(output.Pix); i += 4 {
		output.Pix[i] = 0x1E
		output.Pix[i+1] = 0x1E
		output.Pix[i+2] = 0x1E
		output.Pix[i+3] = 0xFF
	}
}

// drawBaseImage renders the loaded image scaled by zoom with nearest
// neighbor sampling.
func drawBaseImage(output *image.RGBA, ctx *roomimage.Context, zoom float64) {
	b := output.Bounds()
	for y := 0; y < b.Dy(); y++ {
		srcY := int(float64(y) / zoom)
		if srcY >= ctx.Height {
			break
		}
		for x := 0; x < b.Dx(); x++ {
			srcX := int(float64(x) / zoom)
			if srcX >= ctx.Width {
				break
			}
			si := ctx.Index(srcX, srcY) * 4
			di := output.PixOffset(x, y)
			output.Pix[di] = ctx.Pix[si]
			output.Pix[di+1] = ctx.Pix[si+1]
			output.Pix[di+2] = ctx.Pix[si+2]
			output.Pix[di+3] = 0xFF
		}
	}
}

// drawOverlay alpha-blends the composited room overlay over the base image.
func drawOverlay(output *image.RGBA, overlay *image.NRGBA, zoom float64) {
	if overlay == nil {
		return
	}
	ob := overlay.Bounds()
	b := output.Bounds()
	for y := 0; y < b.Dy(); y++ {
		srcY := int(float64(y) / zoom)
		if srcY >= ob.Dy() {
			break
		}
		for x := 0; x < b.Dx(); x++ {
			srcX := int(float64(x) / zoom)
			if srcX >= ob.Dx() {
				break
			}
			si := overlay.PixOffset(srcX, srcY)
			a := overlay.Pix[si+3]
			if a == 0 {
				continue
			}
			di := output.PixOffset(x, y)
			alpha := float64(a) / 255
			inv := 1 - alpha
			output.Pix[di] = uint8(float64(overlay.Pix[si])*alpha + float64(output.Pix[di])*inv)
			output.Pix[di+1] = uint8(float64(overlay.Pix[si+1])*alpha + float64(output.Pix[di+1])*inv)
			output.Pix[di+2] = uint8(float64(overlay.Pix[si+2])*alpha + float64(output.Pix[di+2])*inv)
		}
	}
}

// previewColor picks the in-progress lasso outline color from the active
// session room.
func previewColor(eng *editor.Engine) color.RGBA {
	if s := eng.Session(); s.Active() {
		return s.Room.Color
	}
	return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}

// drawPreviewPath renders the captured lasso path as an open polyline in
// canvas coordinates.
func drawPreviewPath(output *image.RGBA, path []geometry.Point2D, zoom float64, c color.RGBA) {
	for i := 1; i < len(path); i++ {
		drawSegment(output,
			int(path[i-1].X*zoom), int(path[i-1].Y*zoom),
			int(path[i].X*zoom), int(path[i].Y*zoom), c)
	}
}

func drawSegment(output *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	b := output.Bounds()
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if x0 >= 0 && x0 < b.Dx() && y0 >= 0 && y0 < b.Dy() {
			di := output.PixOffset(x0, y0)
			output.Pix[di] = c.R
			output.Pix[di+1] = c.G
			output.Pix[di+2] = c.B
			output.Pix[di+3] = 0xFF
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
