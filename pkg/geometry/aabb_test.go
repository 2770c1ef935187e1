package geometry

import (
	"math/rand"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitBox() AABB {
	return NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))
}

func TestAABB_Intersect_AxisAligned(t *testing.T) {
	tests := []struct {
		name     string
		origin   core.Vec3
		dir      core.Vec3
		distance float32
		normal   core.Vec3
	}{
		{"from -z", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 4, core.NewVec3(0, 0, -1)},
		{"from +z", core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1), 4, core.NewVec3(0, 0, 1)},
		{"from +x", core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), 4, core.NewVec3(1, 0, 0)},
		{"from -y", core.NewVec3(0.2, -3, -0.7), core.NewVec3(0, 1, 0), 2, core.NewVec3(0, -1, 0)},
	}

	box := unitBox()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.dir)
			hit, ok := box.Intersect(ray)
			require.True(t, ok)
			assert.InDelta(t, tt.distance, hit.Distance, 1e-5)
			assert.Equal(t, tt.normal, hit.Normal)
			assert.True(t, box.DoesIntersect(ray))
		})
	}
}

func TestAABB_Intersect_EdgeTieBreaksOnX(t *testing.T) {
	box := unitBox()
	ray := core.NewRay(core.NewVec3(-5, -5, 0), core.NewVec3(1, 1, 0))

	hit, ok := box.Intersect(ray)
	require.True(t, ok)
	assert.Equal(t, core.NewVec3(-1, 0, 0), hit.Normal)
}

func TestAABB_Intersect_ObliqueNormalOpposesRay(t *testing.T) {
	box := NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(2, 1, 1))
	ray := core.NewRay(core.NewVec3(1, 5, 0.5), core.NewVec3(0.1, -1, 0.05))

	hit, ok := box.Intersect(ray)
	require.True(t, ok)
	assert.Equal(t, core.NewVec3(0, 1, 0), hit.Normal)
	assert.Less(t, hit.Normal.Dot(ray.Direction), float32(0))
	assert.InDelta(t, 1.0, hit.Point.Y, 1e-5)
}

func TestAABB_Intersect_Miss(t *testing.T) {
	box := unitBox()

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
	}{
		{"parallel outside slab", core.NewVec3(0, 5, -5), core.NewVec3(0, 0, 1)},
		{"passes beside", core.NewVec3(-5, 0, 2), core.NewVec3(1, 0, 0.1)},
		{"box behind ray", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.dir)
			_, ok := box.Intersect(ray)
			assert.False(t, ok)
			assert.False(t, box.DoesIntersect(ray))
		})
	}
}

func TestAABB_Intersect_RayInsideIsRejected(t *testing.T) {
	box := unitBox()
	ray := core.NewRay(core.NewVec3(0.2, 0.1, 0), core.NewVec3(1, 0.3, 0))

	tNear, tFar := box.slabs(ray)
	assert.LessOrEqual(t, tNear.MaxComponent(), float32(0), "entry lies behind the origin")
	assert.Greater(t, tFar.MinComponent(), float32(0), "exit lies ahead of the origin")

	_, ok := box.Intersect(ray)
	assert.False(t, ok)
	assert.False(t, box.DoesIntersect(ray))
}

func TestAABB_Intersect_FarClip(t *testing.T) {
	box := unitBox()
	ray := core.NewBoundedRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), core.RayEpsilon, 3.9)
	assert.False(t, box.DoesIntersect(ray))
}

func TestAABB_IntersectAndDoesIntersectAgree(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	box := NewAABB(core.NewVec3(-1, -0.5, 2), core.NewVec3(1.5, 2, 3))

	coord := func(spread float32) float32 {
		return (random.Float32()*2 - 1) * spread
	}

	hits := 0
	for i := 0; i < 2000; i++ {
		origin := core.NewVec3(coord(6), coord(6), coord(6))
		dir := core.NewVec3(coord(1), coord(1), coord(1))
		if i%7 == 0 {
			// axis-aligned rays exercise the infinite reciprocals
			dir = core.UnitAxis(i % 3).Multiply(core.Sign(coord(1)) + 0.5)
		}
		if dir.LengthSquared() == 0 {
			continue
		}
		ray := core.NewRay(origin, dir)

		_, ok := box.Intersect(ray)
		require.Equal(t, ok, box.DoesIntersect(ray), "origin %v dir %v", origin, dir)
		if ok {
			hits++
		}
	}
	assert.Greater(t, hits, 0, "sample set should contain hits")
}

func TestAABB_FromPointsAndUnion(t *testing.T) {
	b := NewAABBFromPoints(core.NewVec3(1, 5, -1), core.NewVec3(-2, 0, 3), core.NewVec3(0, 2, 0))
	assert.Equal(t, core.NewVec3(-2, 0, -1), b.Min)
	assert.Equal(t, core.NewVec3(1, 5, 3), b.Max)
	assert.True(t, b.IsValid())

	u := b.Union(NewAABB(core.NewVec3(5, 5, 5), core.NewVec3(6, 6, 6)))
	assert.Equal(t, core.NewVec3(-2, 0, -1), u.Min)
	assert.Equal(t, core.NewVec3(6, 6, 6), u.Max)

	assert.False(t, EmptyAABB().IsValid())
	assert.Equal(t, b, EmptyAABB().Union(b))
	assert.True(t, b.Contains(b.Center()))
	assert.Equal(t, core.NewVec3(3, 5, 4), b.Size())
}
