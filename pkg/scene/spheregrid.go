package scene

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-raycaster/pkg/camera"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
)

// oklchToRGB converts OKLCH (lightness, chroma, hue in degrees) to linear RGB,
// clamped to [0,1]
func oklchToRGB(l, c, h float32) core.Color {
	a, b := math32.Cos(h*math32.Pi/180)*c, math32.Sin(h*math32.Pi/180)*c

	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	return core.NewColor(
		+4.0767416621*l_-3.3077115913*m_+0.2309699292*s_,
		-1.2684380046*l_+2.6097574011*m_-0.3413193965*s_,
		-0.0041960863*l_-0.7034186147*m_+1.7076147010*s_,
	).Clamp()
}

// NewSphereGridScene creates a grid of rainbow-colored spheres seen from above
// through an orthographic camera
func NewSphereGridScene() *Scene {
	const (
		gridSize = 7
		spacing  = 1.6
		radius   = spacing * 0.35
	)
	extent := float32(gridSize) * spacing

	cameraConfig := camera.Config{
		Projection: camera.ProjectionOrthographic,
		Position:   core.NewVec3(0, 10, 0),
		Forward:    core.NewVec3(0, -1, 0),
		Up:         core.NewVec3(0, 0, -1), // -z is up in the image
		Size:       core.NewVec2(extent, extent),
	}

	s := NewScene("sphere-grid").mustSetCamera(cameraConfig, 256, 256)

	s.AddWithMaterial(
		geometry.NewAABB(core.NewVec3(-extent, -0.5, -extent), core.NewVec3(extent, 0, extent)),
		material.NewLambertian(core.Gray(0.5)),
	)

	// hue runs along x, chroma along z
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := (float32(i) - float32(gridSize-1)/2) * spacing
			z := (float32(j) - float32(gridSize-1)/2) * spacing

			hue := float32(i) / float32(gridSize-1) * 360
			chroma := 0.05 + float32(j)/float32(gridSize-1)*0.2
			albedo := oklchToRGB(0.7, chroma, hue)

			s.AddWithMaterial(geometry.NewSphere(core.NewVec3(x, radius, z), radius), material.NewLambertian(albedo))
		}
	}

	s.AddPointLight(core.NewVec3(-4, 8, 6), core.Gray(60))
	s.AddPointLight(core.NewVec3(6, 5, -6), core.NewColor(10, 12, 20))

	return s
}
