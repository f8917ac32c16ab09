// Command wandprobe loads a map image and reports the luminance and edge
// statistics the wand and magnetic lasso would see at a given pixel. Useful
// for tuning tolerances against a new batch of scans without opening the UI.
package main

import (
	"flag"
	"fmt"
	"os"

	"room-masker/internal/image"
	"room-masker/internal/tools"
)

func main() {
	imagePath := flag.String("image", "", "Path to map image (TIFF, PNG, or JPEG)")
	x := flag.Int("x", 0, "Probe X coordinate")
	y := flag.Int("y", 0, "Probe Y coordinate")
	radius := flag.Int("radius", 8, "Neighborhood radius for statistics")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: wandprobe -image <path> -x <px> -y <px> [-radius 8]")
		os.Exit(1)
	}

	ctx, err := image.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded image: %dx%d pixels\n", ctx.Width, ctx.Height)

	if !ctx.InBounds(*x, *y) {
		fmt.Fprintf(os.Stderr, "Probe (%d, %d) is outside the image\n", *x, *y)
		os.Exit(1)
	}

	mean, stddev := ctx.SeedStats(*x, *y, *radius)
	fmt.Printf("\nProbe (%d, %d), radius %d:\n", *x, *y, *radius)
	fmt.Printf("  Luminance:       %.1f\n", ctx.LuminanceAt(*x, *y))
	fmt.Printf("  Local mean:      %.1f\n", mean)
	fmt.Printf("  Local stddev:    %.1f\n", stddev)
	fmt.Printf("  Gradient:        %.1f (max %.1f)\n", ctx.GradientAt(*x, *y), ctx.GradientMax)
	fmt.Printf("  Norm gradient:   %.1f\n", ctx.NormGradientAt(*x, *y))
	fmt.Printf("  Auto tolerance:  %.1f\n", tools.AutoTolerance(ctx, *x, *y))
}
