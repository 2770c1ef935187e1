package integrator

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/df07/go-raycaster/pkg/scene"
)

// RayTrace shades the nearest hit with direct light from every light in the
// scene. There are no secondary bounces.
type RayTrace struct {
	Scene *scene.Scene

	// TwoSided turns the surface normal toward the viewer before shading.
	// Off by default, so triangles seen from behind are lit as their front
	// face would be and usually come out black.
	TwoSided bool
}

// NewRayTrace creates a one-sided ray tracing integrator
func NewRayTrace(s *scene.Scene) *RayTrace {
	return &RayTrace{Scene: s}
}

// Li returns black for a miss. Otherwise it sums the reflected radiance of
// each light, using the default Lambertian for members without a material.
func (rt *RayTrace) Li(ray core.Ray) core.Color {
	hit, m, ok := rt.Scene.Geometry.IntersectMaterial(ray)
	if !ok {
		return core.Black
	}
	if m == nil {
		m = material.DefaultLambertian
	}

	normal := hit.Normal
	if rt.TwoSided && ray.Direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}

	view := ray.Direction.Negate()
	color := core.Black
	for _, light := range rt.Scene.Lights {
		radiance, direction := light.Sample(hit.Point, rt.Scene.Geometry)
		if radiance.IsBlack() {
			continue
		}
		color = color.Add(m.BRDF(radiance, direction, view, normal))
	}
	return color
}
