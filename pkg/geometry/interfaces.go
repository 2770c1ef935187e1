package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Geometry is anything a ray can be tested against
type Geometry interface {
	// Intersect returns the nearest hit inside the ray's valid interval
	Intersect(ray core.Ray) (Hit, bool)

	// DoesIntersect reports whether any hit exists, without building a Hit.
	// Shadow rays use this.
	DoesIntersect(ray core.Ray) bool

	// Bounds returns an axis-aligned box enclosing the geometry
	Bounds() AABB
}

// Hit records where a ray struck a surface
type Hit struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit outward normal
	Distance float32   // Ray parameter of the hit
}

// NewHit creates a hit record, normalizing the normal
func NewHit(point, normal core.Vec3, distance float32) Hit {
	return Hit{
		Point:    point,
		Normal:   normal.Normalize(),
		Distance: distance,
	}
}
