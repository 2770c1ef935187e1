package core

import "github.com/chewxy/math32"

// Ray is a half-line with a cached reciprocal direction and a valid hit
// interval [MinDistance, MaxDistance).
type Ray struct {
	Origin       Vec3
	Direction    Vec3 // always unit length
	InvDirection Vec3 // 1/Direction per component, ±Inf on zero components
	MinDistance  float32
	MaxDistance  float32
}

// NewRay creates a ray valid over [RayEpsilon, +Inf). The direction is
// normalized here.
func NewRay(origin, direction Vec3) Ray {
	return NewBoundedRay(origin, direction, RayEpsilon, math32.Inf(1))
}

// NewBoundedRay creates a ray valid over [minDistance, maxDistance).
//
// A zero-length direction is a programmer error. Builds with the raydebug tag
// panic; other builds carry NaN components, which compare false everywhere
// and so never produce a hit.
func NewBoundedRay(origin, direction Vec3, minDistance, maxDistance float32) Ray {
	if debugAssertions && direction.LengthSquared() == 0 {
		panic("core: ray direction has zero length")
	}
	d := direction.Normalize()
	return Ray{
		Origin:       origin,
		Direction:    d,
		InvDirection: d.Reciprocal(),
		MinDistance:  minDistance,
		MaxDistance:  maxDistance,
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Contains reports whether t lies in the valid interval
func (r Ray) Contains(t float32) bool {
	return t >= r.MinDistance && t < r.MaxDistance
}
