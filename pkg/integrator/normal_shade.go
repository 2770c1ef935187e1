package integrator

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"k8s.io/klog/v2"
)

// NormalShade is a debugging integrator. Front faces render green in
// proportion to how squarely they face the ray, back faces red, misses
// black. It also cross-checks Intersect against DoesIntersect for every
// ray.
type NormalShade struct {
	Geometry geometry.Geometry
}

// NewNormalShade creates a normal shading integrator over g
func NewNormalShade(g geometry.Geometry) *NormalShade {
	return &NormalShade{Geometry: g}
}

// Li implements Integrator
func (ns *NormalShade) Li(ray core.Ray) core.Color {
	hit, ok := ns.Geometry.Intersect(ray)
	if does := ns.Geometry.DoesIntersect(ray); does != ok {
		klog.V(1).InfoS("Intersect and DoesIntersect disagree",
			"origin", ray.Origin, "direction", ray.Direction, "intersect", ok, "doesIntersect", does)
	}
	if !ok {
		return core.Black
	}

	cos := ray.Direction.Dot(hit.Normal)
	return core.NewColor(cos, -cos, 0)
}
