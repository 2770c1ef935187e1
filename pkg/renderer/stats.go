package renderer

import (
	"image"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	LitPixels        int           // Pixels with a non-black color
	ClippedPixels    int           // Pixels with a channel above 1 before clamping
	AverageLuminance float64       // Mean Rec. 709 luminance of the final image
	Duration         time.Duration // Wall time of the render
}

// AddPixel records the unclamped color of one pixel
func (s *RenderStats) AddPixel(c core.Color) {
	s.TotalPixels++
	if !c.IsBlack() {
		s.LitPixels++
	}
	if c.R > 1 || c.G > 1 || c.B > 1 {
		s.ClippedPixels++
	}
}

// RaysPerSecond returns the primary ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			total += pixelLuminance(img, x, y)
		}
	}
	return total / float64(bounds.Dx()*bounds.Dy())
}

// pixelLuminance returns the Rec. 709 luminance of one pixel in [0,1]
func pixelLuminance(img image.Image, x, y int) float64 {
	r, g, b, _ := img.At(x, y).RGBA()
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
}
