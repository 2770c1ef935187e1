package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-raycaster/pkg/core"
)

// AABB represents an axis-aligned bounding box. It is also a solid
// primitive in its own right.
type AABB struct {
	Min core.Vec3 // Minimum corner
	Max core.Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max core.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns an inverted box that is the identity for Union
func EmptyAABB() AABB {
	inf := math32.Inf(1)
	return AABB{Min: core.Splat3(inf), Max: core.Splat3(-inf)}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...core.Vec3) AABB {
	box := EmptyAABB()
	for _, p := range points {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}

// slabs returns the per-axis entry and exit distances of the ray
func (b AABB) slabs(ray core.Ray) (tNear, tFar core.Vec3) {
	t0 := b.Min.Subtract(ray.Origin).MultiplyVec(ray.InvDirection)
	t1 := b.Max.Subtract(ray.Origin).MultiplyVec(ray.InvDirection)
	return t0.Min(t1), t0.Max(t1)
}

// Intersect tests the ray against the box using the slab method. Rays that
// start inside the box have a negative entry distance and are not reported.
func (b AABB) Intersect(ray core.Ray) (Hit, bool) {
	tNear, tFar := b.slabs(ray)
	entry := tNear.MaxComponent()
	exit := tFar.MinComponent()
	if !(entry <= exit && exit >= 0 && ray.Contains(entry)) {
		return Hit{}, false
	}

	// first axis whose slab produced the entry distance
	axis := 2
	switch entry {
	case tNear.X:
		axis = 0
	case tNear.Y:
		axis = 1
	}

	unit := core.UnitAxis(axis)
	normal := unit.Multiply(-core.Sign(ray.Direction.Dot(unit)))
	return Hit{
		Point:    ray.At(entry),
		Normal:   normal,
		Distance: entry,
	}, true
}

// DoesIntersect is Intersect without the normal bookkeeping
func (b AABB) DoesIntersect(ray core.Ray) bool {
	tNear, tFar := b.slabs(ray)
	entry := tNear.MaxComponent()
	exit := tFar.MinComponent()
	return entry <= exit && exit >= 0 && ray.Contains(entry)
}

// Bounds returns the box itself
func (b AABB) Bounds() AABB {
	return b
}

// Union returns an AABB that bounds both this AABB and another
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Center returns the center point of the AABB
func (b AABB) Center() core.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (b AABB) Size() core.Vec3 {
	return b.Max.Subtract(b.Min)
}

// IsValid returns true if min <= max on every axis
func (b AABB) IsValid() bool {
	return b.Min.X <= b.Max.X &&
		b.Min.Y <= b.Max.Y &&
		b.Min.Z <= b.Max.Z
}

// Contains reports whether p lies inside or on the box
func (b AABB) Contains(p core.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
