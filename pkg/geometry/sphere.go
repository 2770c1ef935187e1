package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-raycaster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float32
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// entry returns the ray parameter where the ray enters the sphere. Only the
// near root is considered, so rays starting inside never hit.
func (s *Sphere) entry(ray core.Ray) (float32, bool) {
	d := ray.Origin.Subtract(s.Center)
	// parameter of the point on the ray closest to the center
	closest := -d.Dot(ray.Direction)
	height2 := s.Center.Subtract(ray.At(closest)).LengthSquared()
	radius2 := s.Radius * s.Radius
	if height2 > radius2 {
		return 0, false
	}
	t := closest - math32.Sqrt(radius2-height2)
	return t, ray.Contains(t)
}

// Intersect tests if a ray hits the outside of the sphere
func (s *Sphere) Intersect(ray core.Ray) (Hit, bool) {
	t, ok := s.entry(ray)
	if !ok {
		return Hit{}, false
	}
	point := ray.At(t)
	return Hit{
		Point:    point,
		Normal:   point.Subtract(s.Center).Normalize(),
		Distance: t,
	}, true
}

// DoesIntersect is Intersect without building the hit record
func (s *Sphere) DoesIntersect(ray core.Ray) bool {
	_, ok := s.entry(ray)
	return ok
}

// Bounds returns the axis-aligned bounding box for this sphere
func (s *Sphere) Bounds() AABB {
	r := core.Splat3(s.Radius)
	return NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
