package lights

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// PointLight emits uniformly from a single position with inverse-square falloff
type PointLight struct {
	Center    core.Vec3  // Light position in world space
	Intensity core.Color // Radiant intensity
}

// NewPointLight creates a new point light
func NewPointLight(center core.Vec3, intensity core.Color) *PointLight {
	return &PointLight{
		Center:    center,
		Intensity: intensity,
	}
}

// Sample implements Light. The shadow ray covers [RayEpsilon, distance) so the
// surface under point and occluders beyond the light are ignored.
func (pl *PointLight) Sample(point core.Vec3, scene geometry.Geometry) (core.Color, core.Vec3) {
	toLight := pl.Center.Subtract(point)
	distance2 := toLight.LengthSquared()
	if distance2 == 0 {
		// the point sits on the light; there is no direction to shade with
		return core.Black, core.Vec3{}
	}
	distance := toLight.Length()
	direction := toLight.Divide(distance)

	shadow := core.NewBoundedRay(point, direction, core.RayEpsilon, distance)
	if scene.DoesIntersect(shadow) {
		return core.Black, direction
	}
	return pl.Intensity.Divide(distance2), direction
}
