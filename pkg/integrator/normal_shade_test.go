package integrator

import (
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// disagreeing reports hits from Intersect but never from DoesIntersect
type disagreeing struct {
	geometry.Geometry
}

func (disagreeing) DoesIntersect(core.Ray) bool { return false }

func TestNormalShade_Li(t *testing.T) {
	tests := []struct {
		name     string
		geometry geometry.Geometry
		expected core.Color
	}{
		{"front face", facingTriangle(), core.NewColor(-1, 1, 0)},
		{"back face", awayTriangle(), core.NewColor(1, -1, 0)},
		{"sphere", geometry.NewSphere(core.NewVec3(0, 0, -5), 1), core.NewColor(-1, 1, 0)},
		{"miss", geometry.NewSphere(core.NewVec3(0, 5, -5), 1), core.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertColor(t, tt.expected, NewNormalShade(tt.geometry).Li(towardMinusZ))
		})
	}
}

func TestNormalShade_Oblique(t *testing.T) {
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, -1))
	group := geometry.NewGroup()
	group.Push(facingTriangle())
	group.Push(geometry.NewAABB(core.NewVec3(-10, -30, -20), core.NewVec3(10, 30, -19)))

	c := NewNormalShade(group).Li(ray)
	// the ray leaves the triangle's extent and strikes the slab's front face
	assertColor(t, core.NewColor(-0.70710677, 0.70710677, 0), c)
}

func TestNormalShade_DisagreementStillShades(t *testing.T) {
	g := disagreeing{Geometry: facingTriangle()}
	assertColor(t, core.NewColor(-1, 1, 0), NewNormalShade(g).Li(towardMinusZ))
}
