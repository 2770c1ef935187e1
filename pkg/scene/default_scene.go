package scene

import (
	"github.com/df07/go-raycaster/pkg/camera"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/material"
)

// NewDefaultScene creates a default scene with spheres, a triangle, a box
// floor and two point lights
func NewDefaultScene() *Scene {
	position := core.NewVec3(0, 0.75, 2)
	lookAt := core.NewVec3(0, 0.5, -1) // center sphere
	cameraConfig := camera.Config{
		Projection: camera.ProjectionPerspective,
		Position:   position,
		Forward:    lookAt.Subtract(position),
		Up:         core.NewVec3(0, 1, 0),
		FOV:        60,
	}

	s := NewScene("default").mustSetCamera(cameraConfig, 400, 225)

	// Create materials
	floorGray := material.NewLambertian(core.Gray(0.5))
	red := material.NewLambertian(core.NewColor(0.65, 0.25, 0.2))
	blue := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	gold := material.NewLambertian(core.NewColor(0.8, 0.6, 0.2))

	// Floor slab; its top face sits at y=0
	s.AddWithMaterial(geometry.NewAABB(core.NewVec3(-5, -0.1, -6), core.NewVec3(5, 0, 2)), floorGray)

	s.AddWithMaterial(geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5), red)
	s.AddWithMaterial(geometry.NewSphere(core.NewVec3(-1.1, 0.5, -1.2), 0.5), blue)
	s.AddWithMaterial(geometry.NewSphere(core.NewVec3(1.1, 0.35, -0.8), 0.35), gold)

	// Upright triangle behind the spheres, wound to face the camera
	s.Add(geometry.NewTriangle(
		core.NewVec3(-0.6, 0, -2.2),
		core.NewVec3(0, 1.2, -2.2),
		core.NewVec3(0.6, 0, -2.2),
	))

	s.AddPointLight(core.NewVec3(2, 3, 1), core.NewColor(9, 8.5, 8))
	s.AddPointLight(core.NewVec3(-3, 2, 0.5), core.NewColor(2, 2.5, 4))

	return s
}

// NewEmptyScene creates a scene with a camera and a light but no geometry.
// Every pixel renders black.
func NewEmptyScene() *Scene {
	cameraConfig := camera.Config{
		Projection: camera.ProjectionPerspective,
		Forward:    core.NewVec3(0, 0, -1),
		Up:         core.NewVec3(0, 1, 0),
		FOV:        60,
	}

	s := NewScene("empty").mustSetCamera(cameraConfig, 160, 90)
	s.AddPointLight(core.NewVec3(0, 2, 0), core.White)
	return s
}
