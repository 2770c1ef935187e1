package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphere_Intersect_AimedAtCenter(t *testing.T) {
	tests := []struct {
		name   string
		center core.Vec3
		radius float32
		origin core.Vec3
	}{
		{"unit sphere from +z", core.NewVec3(0, 0, 0), 1, core.NewVec3(0, 0, 5)},
		{"unit sphere from -x", core.NewVec3(0, 0, 0), 1, core.NewVec3(-2, 0, 0)},
		{"offset sphere", core.NewVec3(1, 1, 1), 2, core.NewVec3(3, 4, 10)},
		{"large sphere", core.NewVec3(-20, 5, 3), 7.5, core.NewVec3(10, -10, 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius)
			ray := core.NewRay(tt.origin, tt.center.Subtract(tt.origin))

			hit, ok := sphere.Intersect(ray)
			require.True(t, ok, "expected hit")

			expected := tt.origin.Distance(tt.center) - tt.radius
			assert.InDelta(t, expected, hit.Distance, 1e-4)

			// normal points away from the center, back toward the ray origin
			assert.True(t, hit.Normal.ApproxEqual(ray.Direction.Negate(), 1e-3), "normal %v", hit.Normal)
			assert.InDelta(t, 1.0, hit.Normal.Length(), 1e-5)
			assert.InDelta(t, tt.radius, hit.Point.Distance(tt.center), 1e-4)

			assert.True(t, sphere.DoesIntersect(ray))
		})
	}
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1)

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
	}{
		{"passes above", core.NewVec3(-5, 1.01, 0), core.NewVec3(1, 0, 0)},
		{"points away", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)},
		{"perpendicular", core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0)},
		{"starts inside", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)},
		{"starts inside off center", core.NewVec3(0.5, 0, -0.5), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.dir)
			_, ok := sphere.Intersect(ray)
			assert.False(t, ok)
			assert.False(t, sphere.DoesIntersect(ray))
		})
	}
}

func TestSphere_Intersect_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, ok := sphere.Intersect(ray)
	require.True(t, ok)
	assert.True(t, hit.Point.ApproxEqual(core.NewVec3(1, 0, 0), 1e-5))
	assert.True(t, hit.Normal.ApproxEqual(core.NewVec3(1, 0, 0), 1e-5))
}

func TestSphere_Intersect_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1)
	origin := core.NewVec3(0, 0, 2)
	dir := core.NewVec3(0, 0, -1)

	_, ok := sphere.Intersect(core.NewBoundedRay(origin, dir, core.RayEpsilon, 0.5))
	assert.False(t, ok, "hit at t=1 is beyond the far clip")

	_, ok = sphere.Intersect(core.NewBoundedRay(origin, dir, core.RayEpsilon, 1))
	assert.False(t, ok, "interval is half-open")

	_, ok = sphere.Intersect(core.NewBoundedRay(origin, dir, 1.5, 1000))
	assert.False(t, ok, "entry is before the near clip")

	hit, ok := sphere.Intersect(core.NewBoundedRay(origin, dir, 0.5, 1.5))
	require.True(t, ok)
	assert.InDelta(t, 1.0, hit.Distance, 1e-6)
}

func TestSphere_Bounds(t *testing.T) {
	b := NewSphere(core.NewVec3(1, 2, 3), 0.5).Bounds()
	assert.Equal(t, core.NewVec3(0.5, 1.5, 2.5), b.Min)
	assert.Equal(t, core.NewVec3(1.5, 2.5, 3.5), b.Max)
}

func TestSphere_Intersect_NaNRayNeverHits(t *testing.T) {
	ray := core.Ray{
		Origin:      core.NewVec3(0, 0, 5),
		Direction:   core.Splat3(math32.NaN()),
		MinDistance: core.RayEpsilon,
		MaxDistance: math32.Inf(1),
	}
	_, ok := NewSphere(core.Vec3{}, 1).Intersect(ray)
	assert.False(t, ok)
}
