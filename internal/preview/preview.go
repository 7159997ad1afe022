// Package preview renders a generated surface grid into PNG images.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"GopherSurface/internal/surface"

	"github.com/disintegration/gift"
)

var ErrEmptyGrid = errors.New("preview: grid has no vertices")

// ColorImage maps each vertex color to one pixel, x to the right and z downwards.
func ColorImage(grid *surface.Grid) (*image.NRGBA, error) {
	side, err := sideOf(grid)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for v, c := range grid.Colors {
		img.SetNRGBA(v%side, v/side, color.NRGBA{
			R: toByte(c.X()),
			G: toByte(c.Y()),
			B: toByte(c.Z()),
			A: toByte(c.W()),
		})
	}
	return img, nil
}

// HeightImage renders vertex heights as grayscale, stretched so the lowest vertex is
// black and the highest white. A flat grid renders mid gray.
func HeightImage(grid *surface.Grid) (*image.Gray, error) {
	side, err := sideOf(grid)
	if err != nil {
		return nil, err
	}

	lo, hi := grid.Vertices[0].Y(), grid.Vertices[0].Y()
	for _, v := range grid.Vertices {
		lo = min(lo, v.Y())
		hi = max(hi, v.Y())
	}

	img := image.NewGray(image.Rect(0, 0, side, side))
	for v, p := range grid.Vertices {
		level := float32(0.5)
		if hi > lo {
			level = (p.Y() - lo) / (hi - lo)
		}
		img.SetGray(v%side, v/side, color.Gray{Y: toByte(level)})
	}
	return img, nil
}

// Upscale resizes img to size×size pixels, keeping hard cell edges.
func Upscale(img image.Image, size int) image.Image {
	if size <= 0 || img.Bounds().Dx() == size {
		return img
	}

	g := gift.New(gift.Resize(size, size, gift.NearestNeighborResampling))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode preview %s: %w", path, err)
	}
	return nil
}

func sideOf(grid *surface.Grid) (int, error) {
	if grid == nil || len(grid.Vertices) == 0 {
		return 0, ErrEmptyGrid
	}
	return grid.Resolution + 1, nil
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
