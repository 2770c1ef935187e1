package renderer

import (
	"context"
	"image"
	"time"

	"github.com/df07/go-raycaster/pkg/camera"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/integrator"
	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Renderer casts one ray per pixel on a single goroutine
type Renderer struct {
	Camera     camera.Camera
	Integrator integrator.Integrator
	Width      int
	Height     int
}

// NewRenderer creates a renderer
func NewRenderer(cam camera.Camera, integ integrator.Integrator, width, height int) *Renderer {
	return &Renderer{
		Camera:     cam,
		Integrator: integ,
		Width:      width,
		Height:     height,
	}
}

// NewSceneRenderer renders s at its own size with the named integrator
func NewSceneRenderer(s *scene.Scene, integratorName string, twoSided bool) (*Renderer, error) {
	integ, err := integrator.New(integratorName, s, twoSided)
	if err != nil {
		return nil, err
	}
	return NewRenderer(s.Camera, integ, s.Width, s.Height), nil
}

// Render produces the image. Pixel (x, y) is shaded with the ray through
// (x/width, y/height), row 0 at the top. Cancellation is checked between rows.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	var stats RenderStats
	if r.Camera == nil || r.Integrator == nil {
		return nil, stats, errors.New("renderer needs a camera and an integrator")
	}
	if r.Width <= 0 || r.Height <= 0 {
		return nil, stats, errors.Errorf("image size %dx%d must be positive", r.Width, r.Height)
	}

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	w, h := float32(r.Width), float32(r.Height)

	for y := 0; y < r.Height; y++ {
		if err := ctx.Err(); err != nil {
			return nil, stats, errors.Wrapf(err, "render cancelled at row %d", y)
		}
		for x := 0; x < r.Width; x++ {
			ray := r.Camera.At(core.NewVec2(float32(x)/w, float32(y)/h))
			c := r.Integrator.Li(ray)
			stats.AddPixel(c)
			img.SetRGBA(x, y, c.ToRGBA())
		}
	}

	stats.Duration = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(img)
	klog.V(1).InfoS("Rendered image",
		"width", r.Width, "height", r.Height, "pixels", stats.TotalPixels,
		"litPixels", stats.LitPixels, "duration", stats.Duration)
	return img, stats, nil
}
