package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-raycaster/pkg/core"
)

// Triangle represents a single triangle defined by three vertices. The
// vertex winding fixes the normal; it is not flipped toward incoming rays,
// so back-face hits report the same normal as front-face hits.
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2}
	t.normal = v2.Subtract(v0).Cross(v1.Subtract(v0)).Normalize()
	return t
}

// Normal returns the triangle's geometric normal, normalize(e2 × e1)
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// barycentric runs Möller–Trumbore and returns the barycentric coordinates
// and ray parameter of the hit
func (t *Triangle) barycentric(ray core.Ray) (u, v, dist float32, ok bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// ray lies in, or parallel to, the triangle plane
	if math32.Abs(a) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1 / a
	s := ray.Origin.Subtract(t.V0)
	u = f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	dist = f * edge2.Dot(q)
	return u, v, dist, ray.Contains(dist)
}

// Intersect tests if a ray intersects with the triangle
func (t *Triangle) Intersect(ray core.Ray) (Hit, bool) {
	_, _, dist, ok := t.barycentric(ray)
	if !ok {
		return Hit{}, false
	}
	return Hit{
		Point:    ray.At(dist),
		Normal:   t.normal,
		Distance: dist,
	}, true
}

// DoesIntersect is Intersect without building the hit record
func (t *Triangle) DoesIntersect(ray core.Ray) bool {
	_, _, _, ok := t.barycentric(ray)
	return ok
}

// Barycentric returns the (u, v) coordinates of a hit
func (t *Triangle) Barycentric(ray core.Ray) (u, v float32, ok bool) {
	u, v, _, ok = t.barycentric(ray)
	return u, v, ok
}

// Bounds returns the component-wise min/max of the vertices
func (t *Triangle) Bounds() AABB {
	return NewAABB(t.V0.Min(t.V1).Min(t.V2), t.V0.Max(t.V1).Max(t.V2))
}
