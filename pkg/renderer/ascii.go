package renderer

import (
	"image"
	"strings"
)

// asciiRamp runs from dark to bright
const asciiRamp = " .:-=+*#%@"

// ASCII renders img as text columns characters wide. Each character averages
// a block of pixels twice as tall as it is wide, roughly matching terminal
// cell proportions. A columns value of zero or more than the image width
// uses one column per pixel.
func ASCII(img image.Image, columns int) string {
	bounds := img.Bounds()
	if bounds.Empty() {
		return ""
	}
	if columns <= 0 || columns > bounds.Dx() {
		columns = bounds.Dx()
	}

	cellW := float64(bounds.Dx()) / float64(columns)
	cellH := cellW * 2
	rows := max(1, int(float64(bounds.Dy())/cellH))

	var sb strings.Builder
	sb.Grow((columns + 1) * rows)
	for row := 0; row < rows; row++ {
		y0 := bounds.Min.Y + int(float64(row)*cellH)
		y1 := min(bounds.Max.Y, max(y0+1, bounds.Min.Y+int(float64(row+1)*cellH)))
		for col := 0; col < columns; col++ {
			x0 := bounds.Min.X + int(float64(col)*cellW)
			x1 := min(bounds.Max.X, max(x0+1, bounds.Min.X+int(float64(col+1)*cellW)))
			sb.WriteByte(rampChar(blockLuminance(img, x0, y0, x1, y1)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func blockLuminance(img image.Image, x0, y0, x1, y1 int) float64 {
	total := 0.0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			total += pixelLuminance(img, x, y)
		}
	}
	return total / float64((x1-x0)*(y1-y0))
}

func rampChar(luminance float64) byte {
	i := int(luminance * float64(len(asciiRamp)))
	return asciiRamp[min(max(i, 0), len(asciiRamp)-1)]
}
