package scene

import (
	"github.com/df07/go-raycaster/pkg/camera"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/pkg/errors"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Camera       camera.Camera
	CameraConfig camera.Config
	Geometry     *geometry.Group // Objects in the scene, with their materials
	Lights       []lights.Light
	Width        int // Image width
	Height       int // Image height
}

// NewScene creates an empty scene with no camera
func NewScene(name string) *Scene {
	return &Scene{
		Name:     name,
		Geometry: geometry.NewGroup(),
		Lights:   make([]lights.Light, 0),
	}
}

// Add pushes a geometry shaded with the default material and returns its index
func (s *Scene) Add(g geometry.Geometry) int {
	return s.Geometry.Push(g)
}

// AddWithMaterial pushes a geometry with its material and returns its index
func (s *Scene) AddWithMaterial(g geometry.Geometry, m material.Material) int {
	return s.Geometry.PushWithMaterial(g, m)
}

// AddLight adds a light to the scene
func (s *Scene) AddLight(l lights.Light) {
	s.Lights = append(s.Lights, l)
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(center core.Vec3, intensity core.Color) {
	s.AddLight(lights.NewPointLight(center, intensity))
}

// SetCamera sets the image size, derives the perspective aspect ratio from it
// and builds the camera
func (s *Scene) SetCamera(config camera.Config, width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("image size %dx%d must be positive", width, height)
	}
	config.Aspect = float32(width) / float32(height)

	cam, err := config.Build()
	if err != nil {
		return errors.Wrapf(err, "scene %q", s.Name)
	}
	s.Camera = cam
	s.CameraConfig = config
	s.Width = width
	s.Height = height
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return countPrimitives(s.Geometry)
}

// countPrimitives counts leaves, descending into nested groups
func countPrimitives(g geometry.Geometry) int {
	group, ok := g.(*geometry.Group)
	if !ok {
		return 1
	}
	count := 0
	for i := 0; i < group.Len(); i++ {
		count += countPrimitives(group.At(i))
	}
	return count
}

// mustSetCamera is used by the builtin scenes, whose camera parameters are
// fixed and known to be valid
func (s *Scene) mustSetCamera(config camera.Config, width, height int) *Scene {
	if err := s.SetCamera(config, width, height); err != nil {
		panic(err)
	}
	return s
}
