package lights

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// Light is a source of direct illumination
type Light interface {
	// Sample returns the radiance arriving at point from this light and the
	// unit direction from point toward the light. Occlusion is tested
	// against scene; an occluded light returns black but still returns the
	// direction.
	Sample(point core.Vec3, scene geometry.Geometry) (core.Color, core.Vec3)
}
