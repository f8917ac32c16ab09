package image

import (
	goimage "image"
	"image/color"
	"math"
	"testing"
)

// grayPix builds an RGBA buffer where every pixel of column x has gray
// value vals[x].
func grayPix(vals []uint8, h int) []uint8 {
	w := len(vals)
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i] = vals[x]
			pix[i+1] = vals[x]
			pix[i+2] = vals[x]
			pix[i+3] = 255
		}
	}
	return pix
}

func uniformPix(v uint8, w, h int) []uint8 {
	vals := make([]uint8, w)
	for i := range vals {
		vals[i] = v
	}
	return grayPix(vals, h)
}

func TestNewContextRejectsBadInput(t *testing.T) {
	if _, err := NewContext(make([]uint8, 16), 0, 2); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := NewContext(make([]uint8, 16), 2, -1); err == nil {
		t.Error("negative height accepted")
	}
	if _, err := NewContext(make([]uint8, 8), 2, 2); err == nil {
		t.Error("short pixel buffer accepted")
	}
}

func TestLuminanceGrayIsIdentity(t *testing.T) {
	ctx, err := NewContext(uniformPix(173, 4, 4), 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := ctx.LuminanceAt(2, 2); math.Abs(got-173) > 0.5 {
		t.Errorf("gray luminance = %f, want ~173", got)
	}
}

func TestLuminanceWeights(t *testing.T) {
	pix := make([]uint8, 4)
	pix[0] = 255 // pure red
	pix[3] = 255
	ctx, err := NewContext(pix, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := 0.2126 * 255
	if got := ctx.LuminanceAt(0, 0); math.Abs(got-want) > 0.5 {
		t.Errorf("red luminance = %f, want %f", got, want)
	}
}

func TestGradientFlatImageIsZero(t *testing.T) {
	ctx, err := NewContext(uniformPix(100, 6, 6), 6, 6)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if g := ctx.GradientAt(x, y); g != 0 {
				t.Fatalf("flat image gradient at (%d, %d) = %f", x, y, g)
			}
		}
	}
}

func TestGradientPeaksAtEdge(t *testing.T) {
	// Vertical step edge between columns 3 and 4.
	vals := []uint8{50, 50, 50, 50, 200, 200, 200, 200}
	ctx, err := NewContext(grayPix(vals, 8), 8, 8)
	if err != nil {
		t.Fatal(err)
	}

	edge := ctx.GradientAt(4, 4)
	flat := ctx.GradientAt(1, 4)
	if edge <= flat {
		t.Errorf("edge gradient %f not above flat gradient %f", edge, flat)
	}
	if ctx.GradientMax <= 0 {
		t.Error("GradientMax not computed")
	}
	if norm := ctx.NormGradientAt(4, 4); norm < 200 {
		t.Errorf("strongest edge normalizes to %f, want near 255", norm)
	}
}

func TestSeedStatsFlatRegion(t *testing.T) {
	ctx, err := NewContext(uniformPix(120, 8, 8), 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	mean, stddev := ctx.SeedStats(4, 4, 3)
	if math.Abs(mean-120) > 0.5 {
		t.Errorf("flat mean = %f, want ~120", mean)
	}
	if stddev != 0 {
		t.Errorf("flat stddev = %f, want 0", stddev)
	}
}

func TestSeedStatsClipsAtBorder(t *testing.T) {
	ctx, err := NewContext(uniformPix(90, 4, 4), 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	// Window centered at the corner must not panic and still sample.
	mean, _ := ctx.SeedStats(0, 0, 8)
	if math.Abs(mean-90) > 0.5 {
		t.Errorf("corner mean = %f, want ~90", mean)
	}
}

func TestFromImageConvertsToContext(t *testing.T) {
	img := goimage.NewRGBA(goimage.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	ctx, err := FromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Width != 3 || ctx.Height != 2 {
		t.Fatalf("context size %dx%d, want 3x2", ctx.Width, ctx.Height)
	}
	i := ctx.Index(1, 1) * 4
	if ctx.Pix[i] != 10 || ctx.Pix[i+1] != 20 || ctx.Pix[i+2] != 30 {
		t.Errorf("pixel (1,1) = %v", ctx.Pix[i:i+4])
	}
}

func TestIsSupportedFormat(t *testing.T) {
	for _, path := range []string{"map.png", "scan.TIFF", "photo.jpeg"} {
		if !IsSupportedFormat(path) {
			t.Errorf("%s should be supported", path)
		}
	}
	if IsSupportedFormat("map.webp") {
		t.Error("webp is not a supported format")
	}
}
