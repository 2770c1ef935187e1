package renderer

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func filled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestASCII_Uniform(t *testing.T) {
	assert.Equal(t, "@@@@\n", ASCII(filled(4, 2, color.RGBA{255, 255, 255, 255}), 0))
	assert.Equal(t, "    \n", ASCII(filled(4, 2, color.RGBA{0, 0, 0, 255}), 0))
}

func TestASCII_Downsamples(t *testing.T) {
	out := ASCII(filled(40, 40, color.RGBA{255, 255, 255, 255}), 10)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	// cells are twice as tall as they are wide
	assert.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat("@", 10), line)
	}
}

func TestASCII_Gradient(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 2))
	for x := 0; x < 10; x++ {
		v := uint8(x * 255 / 9)
		img.SetRGBA(x, 0, color.RGBA{v, v, v, 255})
		img.SetRGBA(x, 1, color.RGBA{v, v, v, 255})
	}

	out := ASCII(img, 0)
	assert.Equal(t, byte(' '), out[0])
	assert.Equal(t, byte('@'), out[9])
	for i := 1; i < 10; i++ {
		assert.GreaterOrEqual(t, strings.IndexByte(asciiRamp, out[i]), strings.IndexByte(asciiRamp, out[i-1]))
	}
}

func TestASCII_Empty(t *testing.T) {
	assert.Empty(t, ASCII(image.NewRGBA(image.Rect(0, 0, 0, 0)), 10))
}
